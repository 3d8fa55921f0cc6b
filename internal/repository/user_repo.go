package repository

import (
	"context"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*InsertResult, error)
	// GetByEmail returns ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
	ListVerifiedSellers(ctx context.Context) ([]entity.User, error)
	// SetVerified upserts verified=true on the seller document.
	SetVerified(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
