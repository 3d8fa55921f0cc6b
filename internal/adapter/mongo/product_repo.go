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

const productCollectionName = "products"

type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{collection: db.Collection(productCollectionName)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) (*repository.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return insertResult(res), nil
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var product entity.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return deleteResult(res), nil
}

func (r *productRepository) ListAvailableByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"category": category, "status": entity.ProductStatusAvailable})
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

func (r *productRepository) SetAdvertising(ctx context.Context, id string) (*repository.UpdateResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"advertising": true}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to set advertising on product %s: %w", id, err)
	}
	return updateResult(res), nil
}

func (r *productRepository) ListAdvertising(ctx context.Context) ([]entity.Product, error) {
	return r.find(ctx, bson.M{"advertising": true})
}

func (r *productRepository) MarkSold(ctx context.Context, id string) error {
	objID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	// MatchedCount == 0 is deliberately not an error: a dangling product id
	// leaves the catalog untouched.
	update := bson.M{"$set": bson.M{"status": entity.ProductStatusSold}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark product %s sold: %w", id, err)
	}
	return nil
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []entity.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode listed products: %w", err)
	}
	return products, nil
}
