package payment

import (
	"context"
	"fmt"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/app/config"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// StripeIntentCreator requests card payment intents from Stripe. Each call
// carries a fresh idempotency key, so a transport-level retry by the Stripe
// client cannot double-create an intent.
type StripeIntentCreator struct {
	currency string
}

func NewStripeIntentCreator(cfg config.StripeConfig) *StripeIntentCreator {
	stripe.Key = cfg.SecretKey
	return &StripeIntentCreator{currency: cfg.Currency}
}

func (c *StripeIntentCreator) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
