package service

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/nats"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

const natsSubjectBookingCreated = "booking.created"

type BookingService interface {
	CreateBooking(ctx context.Context, booking *entity.Booking) (*repository.InsertResult, error)
	Bookings(ctx context.Context) ([]entity.Booking, error)
	BuyerOrders(ctx context.Context, buyerEmail string) ([]entity.Booking, error)
	SellerOrders(ctx context.Context, sellerEmail string) ([]entity.Booking, error)
	// IsProductBooked reports whether any booking references the product,
	// paid or not.
	IsProductBooked(ctx context.Context, productID string) (bool, error)
	Booking(ctx context.Context, id string) (*entity.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	publisher   nats.MessagePublisher
	log         logger.Logger
}

func NewBookingService(bookingRepo repository.BookingRepository, publisher nats.MessagePublisher, log logger.Logger) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		log:         log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *entity.Booking) (*repository.InsertResult, error) {
	// New bookings always start unpaid; the paid flag and transaction id
	// are only ever set by payment confirmation.
	booking.Paid = false
	booking.TransactionID = ""

	s.log.Infof("Creating booking for product %s by %s", booking.ProductID, booking.BuyerEmail)
	res, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, natsSubjectBookingCreated, booking); err != nil {
			s.log.Warnf("Failed to publish booking created event for product %s: %v", booking.ProductID, err)
		}
	}

	return res, nil
}

func (s *bookingService) Bookings(ctx context.Context) ([]entity.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) BuyerOrders(ctx context.Context, buyerEmail string) ([]entity.Booking, error) {
	return s.bookingRepo.ListByBuyer(ctx, buyerEmail)
}

func (s *bookingService) SellerOrders(ctx context.Context, sellerEmail string) ([]entity.Booking, error) {
	return s.bookingRepo.ListBySeller(ctx, sellerEmail)
}

func (s *bookingService) IsProductBooked(ctx context.Context, productID string) (bool, error) {
	return s.bookingRepo.ExistsForProduct(ctx, productID)
}

func (s *bookingService) Booking(ctx context.Context, id string) (*entity.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}
