package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: db.Collection(userCollectionName)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return insertResult(res), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var user entity.User
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]entity.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *userRepository) ListVerifiedSellers(ctx context.Context) ([]entity.User, error) {
	return r.find(ctx, bson.M{"role": entity.RoleSeller, "verified": true})
}

func (r *userRepository) SetVerified(ctx context.Context, id string) (*repository.UpdateResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"verified": true}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to verify seller %s: %w", id, err)
	}
	return updateResult(res), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return deleteResult(res), nil
}

func (r *userRepository) find(ctx context.Context, filter bson.M) ([]entity.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []entity.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode listed users: %w", err)
	}
	return users, nil
}
