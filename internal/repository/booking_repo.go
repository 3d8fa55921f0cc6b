package repository

import (
	"context"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (*InsertResult, error)
	List(ctx context.Context) ([]entity.Booking, error)
	ListByBuyer(ctx context.Context, buyerEmail string) ([]entity.Booking, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]entity.Booking, error)
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	// ExistsForProduct reports whether any booking references the product,
	// regardless of its paid state.
	ExistsForProduct(ctx context.Context, productID string) (bool, error)
	// MarkPaid sets paid=true and the transaction id. A missing booking is
	// a silent no-op.
	MarkPaid(ctx context.Context, bookingID, transactionID string) error
}
