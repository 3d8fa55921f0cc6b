package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingCollectionName = "bookings"

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &bookingRepository{collection: db.Collection(bookingCollectionName)}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (*repository.InsertResult, error) {
	res, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return insertResult(res), nil
}

func (r *bookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *bookingRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]entity.Booking, error) {
	return r.find(ctx, bson.M{"buyerEmail": buyerEmail})
}

func (r *bookingRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]entity.Booking, error) {
	return r.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var booking entity.Booking
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID %s: %w", id, err)
	}
	return &booking, nil
}

func (r *bookingRepository) ExistsForProduct(ctx context.Context, productID string) (bool, error) {
	// Bookings reference products by hex string, so no id parsing here. The
	// paid state is deliberately ignored.
	count, err := r.collection.CountDocuments(ctx, bson.M{"productId": productID})
	if err != nil {
		return false, fmt.Errorf("failed to check booked status for product %s: %w", productID, err)
	}
	return count > 0, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	objID, err := parseObjectID(bookingID)
	if err != nil {
		return err
	}

	// MatchedCount == 0 is deliberately not an error: a dangling booking id
	// leaves the bookings collection untouched.
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s paid: %w", bookingID, err)
	}
	return nil
}

func (r *bookingRepository) find(ctx context.Context, filter bson.M) ([]entity.Booking, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []entity.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode listed bookings: %w", err)
	}
	return bookings, nil
}
