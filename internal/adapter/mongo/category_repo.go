package mongo

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const categoryCollectionName = "productsCategories"

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{collection: db.Collection(categoryCollectionName)}
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []entity.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode listed categories: %w", err)
	}
	return categories, nil
}
