package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/app/config"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

func NewClient(ctx context.Context, cfg config.MongoDBConfig) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	if cfg.User != "" && cfg.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	connectCtx, cancelConnect := context.WithTimeout(ctx, connectTimeout)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, pingTimeout)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, repository.ErrInvalidID)
	}
	return objID, nil
}

func insertResult(res *mongo.InsertOneResult) *repository.InsertResult {
	out := &repository.InsertResult{Acknowledged: true}
	if objID, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.InsertedID = objID.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) *repository.UpdateResult {
	out := &repository.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if objID, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = objID.Hex()
	}
	return out
}

func deleteResult(res *mongo.DeleteResult) *repository.DeleteResult {
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
