package mongo

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

const paymentCollectionName = "payments"

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{collection: db.Collection(paymentCollectionName)}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) (*repository.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return insertResult(res), nil
}
