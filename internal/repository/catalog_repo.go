package repository

import (
	"context"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*InsertResult, error)
	List(ctx context.Context) ([]entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
	// ListAvailableByCategory hides anything whose status is not "available".
	ListAvailableByCategory(ctx context.Context, category string) ([]entity.Product, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]entity.Product, error)
	// SetAdvertising upserts advertising=true; there is no toggle-off path.
	SetAdvertising(ctx context.Context, id string) (*UpdateResult, error)
	ListAdvertising(ctx context.Context) ([]entity.Product, error)
	// MarkSold sets status="sold". A missing product is a silent no-op.
	MarkSold(ctx context.Context, id string) error
}
