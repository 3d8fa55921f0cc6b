package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/auth"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
)

// TokenCache remembers issued credentials so deleting a user can drop the
// matching entry. Optional: a nil cache disables the behavior.
type TokenCache interface {
	Cache(ctx context.Context, email, token string, ttl time.Duration) error
	Invalidate(ctx context.Context, email string) error
}

type UserService interface {
	Register(ctx context.Context, user *entity.User) (*repository.InsertResult, error)
	// IssueToken returns repository.ErrNotFound when no user has the email.
	IssueToken(ctx context.Context, email string) (string, error)
	IsBuyer(ctx context.Context, email string) (bool, error)
	IsSeller(ctx context.Context, email string) (bool, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Users(ctx context.Context) ([]entity.User, error)
	Sellers(ctx context.Context) ([]entity.User, error)
	VerifiedSellers(ctx context.Context) ([]entity.User, error)
	VerifySeller(ctx context.Context, id string) (*repository.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*repository.DeleteResult, error)
}

type userService struct {
	userRepo   repository.UserRepository
	tokens     *auth.JWT
	tokenCache TokenCache
	log        logger.Logger
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.JWT, tokenCache TokenCache, log logger.Logger) UserService {
	return &userService{
		userRepo:   userRepo,
		tokens:     tokens,
		tokenCache: tokenCache,
		log:        log,
	}
}

func (s *userService) Register(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	s.log.Infof("Registering user %s with role %s", user.Email, user.Role)
	res, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return res, nil
}

func (s *userService) IssueToken(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("Token requested for unknown email %s", email)
			return "", err
		}
		return "", fmt.Errorf("failed to look up user for token: %w", err)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	if s.tokenCache != nil {
		if err := s.tokenCache.Cache(ctx, email, token, s.tokens.TTL()); err != nil {
			s.log.Warnf("Failed to cache issued token for %s: %v", email, err)
		}
	}

	s.log.Infof("Issued credential for %s", email)
	return token, nil
}

func (s *userService) IsBuyer(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, entity.RoleBuyer)
}

func (s *userService) IsSeller(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, entity.RoleSeller)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, entity.RoleAdmin)
}

// hasRole answers false, not an error, for an absent user.
func (s *userService) hasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check role for %s: %w", email, err)
	}
	return user.Role == role, nil
}

func (s *userService) Users(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Sellers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.ListByRole(ctx, entity.RoleSeller)
}

func (s *userService) VerifiedSellers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.ListVerifiedSellers(ctx)
}

func (s *userService) VerifySeller(ctx context.Context, id string) (*repository.UpdateResult, error) {
	s.log.Infof("Verifying seller %s", id)
	res, err := s.userRepo.SetVerified(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to verify seller: %w", err)
	}
	return res, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*repository.DeleteResult, error) {
	s.log.Infof("Deleting user %s", id)

	if s.tokenCache != nil {
		if user, err := s.userRepo.GetByID(ctx, id); err == nil {
			if err := s.tokenCache.Invalidate(ctx, user.Email); err != nil {
				s.log.Warnf("Failed to invalidate cached token for %s: %v", user.Email, err)
			}
		}
	}

	res, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return res, nil
}
