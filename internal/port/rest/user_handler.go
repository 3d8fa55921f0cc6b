package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/domain/entity"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/platform/logger"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/repository"
	"github.com/1Md-Rakibul-Islam/sokher-furniture-server-side/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users service.UserService
	log   logger.Logger
}

func NewUserHandler(users service.UserService, log logger.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// IssueToken answers GET /jwt: a token for a known email, otherwise 403
// with an empty accessToken.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	token, err := h.users.IssueToken(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusForbidden, accessTokenResponse{AccessToken: ""})
			return
		}
		h.log.Errorf("Failed to issue token for %s: %v", email, err)
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, accessTokenResponse{AccessToken: token})
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user entity.User
	if !decodeBody(w, r, &user) {
		return
	}

	res, err := h.users.Register(r.Context(), &user)
	if err != nil {
		h.log.Errorf("Failed to register user: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *UserHandler) IsBuyer(w http.ResponseWriter, r *http.Request) {
	h.roleCheck(w, r, "isBuyer", h.users.IsBuyer)
}

func (h *UserHandler) IsSeller(w http.ResponseWriter, r *http.Request) {
	h.roleCheck(w, r, "isSeller", h.users.IsSeller)
}

func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	h.roleCheck(w, r, "isAdmin", h.users.IsAdmin)
}

// roleCheck is advisory: an absent user simply answers false.
func (h *UserHandler) roleCheck(w http.ResponseWriter, r *http.Request, field string, check func(context.Context, string) (bool, error)) {
	email := chi.URLParam(r, "email")

	ok, err := check(r.Context(), email)
	if err != nil {
		h.log.Errorf("Failed role check %s for %s: %v", field, email, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{field: ok})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Users(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.users.Sellers(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list sellers: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sellers)
}

func (h *UserHandler) ListVerifiedSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.users.VerifiedSellers(r.Context())
	if err != nil {
		h.log.Errorf("Failed to list verified sellers: %v", err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sellers)
}

func (h *UserHandler) VerifySeller(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.users.VerifySeller(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to verify seller %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.users.DeleteUser(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to delete user %s: %v", id, err)
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
