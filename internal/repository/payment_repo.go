package repository

import (
	"context"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
)

// PaymentRepository is an append-only ledger: entries are inserted once and
// never mutated.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) (*InsertResult, error)
}
