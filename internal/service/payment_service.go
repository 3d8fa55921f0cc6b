package service

import (
	"context"
	"fmt"
	"math"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/email"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/adapter/nats"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

const natsSubjectPaymentConfirmed = "payment.confirmed"

// IntentCreator requests a card payment intent from the external processor
// and returns its client secret. Amounts are in minor units.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type PaymentService interface {
	// CreatePaymentIntent converts the resale price to minor units
	// (price x 100) and asks the processor for a card intent. Pure
	// pass-through: no local state changes.
	CreatePaymentIntent(ctx context.Context, reselPrice float64) (string, error)
	ConfirmPayment(ctx context.Context, payment *entity.Payment) (*repository.InsertResult, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	productRepo repository.ProductRepository
	intents     IntentCreator
	publisher   nats.MessagePublisher
	mailer      email.Sender
	log         logger.Logger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	productRepo repository.ProductRepository,
	intents IntentCreator,
	publisher nats.MessagePublisher,
	mailer email.Sender,
	log logger.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		intents:     intents,
		publisher:   publisher,
		mailer:      mailer,
		log:         log,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, reselPrice float64) (string, error) {
	// Round instead of truncate: prices like 19.99 are not exactly
	// representable and would otherwise come out a cent short.
	amount := int64(math.Round(reselPrice * 100))
	s.log.Infof("Creating payment intent for amount %d", amount)

	clientSecret, err := s.intents.CreateIntent(ctx, amount)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return clientSecret, nil
}

// ConfirmPayment runs three writes in a fixed order with no transaction
// around them: the ledger insert, the booking update, the product update.
// The ledger insert alone decides the outcome. The two derived-state
// updates are best-effort: a dangling id is a silent no-op, a store error
// is logged and swallowed, and a crash between writes leaves a persisted
// payment whose booking or product was never updated. Callers see success
// as soon as the ledger entry is stored.
func (s *paymentService) ConfirmPayment(ctx context.Context, payment *entity.Payment) (*repository.InsertResult, error) {
	s.log.Infof("Confirming payment for booking %s, product %s, txn %s", payment.BookingID, payment.ProductID, payment.TransactionID)

	res, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	if err := s.bookingRepo.MarkPaid(ctx, payment.BookingID, payment.TransactionID); err != nil {
		s.log.Warnf("Payment %s stored but booking %s update failed: %v", res.InsertedID, payment.BookingID, err)
	}

	if err := s.productRepo.MarkSold(ctx, payment.ProductID); err != nil {
		s.log.Warnf("Payment %s stored but product %s update failed: %v", res.InsertedID, payment.ProductID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, natsSubjectPaymentConfirmed, payment); err != nil {
			s.log.Warnf("Failed to publish payment confirmed event for booking %s: %v", payment.BookingID, err)
		}
	}

	if s.mailer != nil && payment.BuyerEmail != "" {
		body := fmt.Sprintf(
			"Your payment was received.\n\nBooking: %s\nProduct: %s\nTransaction: %s\nAmount: %.2f\n",
			payment.BookingID, payment.ProductID, payment.TransactionID, payment.Amount,
		)
		if err := s.mailer.Send(ctx, payment.BuyerEmail, "Payment receipt", body); err != nil {
			s.log.Warnf("Failed to send payment receipt to %s: %v", payment.BuyerEmail, err)
		}
	}

	return res, nil
}
