package mongo

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const reportCollectionName = "reports"

type reportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository(db *mongo.Database) repository.ReportRepository {
	return &reportRepository{collection: db.Collection(reportCollectionName)}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) (*repository.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return insertResult(res), nil
}

func (r *reportRepository) List(ctx context.Context) ([]entity.Report, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []entity.Report
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode listed reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete report %s: %w", id, err)
	}
	return deleteResult(res), nil
}
