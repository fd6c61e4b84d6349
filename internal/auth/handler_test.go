package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/modamall/backoffice/internal/auth"
	"github.com/modamall/backoffice/internal/shared"
	_ "github.com/modamall/backoffice/testing"
)

type stubRepo struct {
	account *auth.Account
}

func (s *stubRepo) GetByUsername(_ context.Context, username string) (auth.Account, error) {
	if s.account == nil || s.account.Username != username {
		return auth.Account{}, auth.ErrInvalidCredentials
	}
	return *s.account, nil
}

func newAuthRouter(t *testing.T, repo auth.Repository) (chi.Router, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := shared.NewSessionManager(client, time.Hour)
	handler := auth.NewHandler(discardLogger(), auth.NewService(repo, sessions))

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		handler.MountRoutes(r)
	})
	return r, sessions
}

func sellerAccount(t *testing.T) *auth.Account {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.MinCost)
	require.NoError(t, err)
	return &auth.Account{
		ID:               7,
		Username:         "modamall",
		PasswordHash:     string(hashed),
		PermissionTypeID: shared.PermissionSeller,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	router, sessions := newAuthRouter(t, &stubRepo{account: sellerAccount(t)})

	body := `{"username":"modamall","password":"correctpass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var payload struct {
		Message string `json:"message"`
		Result  struct {
			Token            string `json:"token"`
			AccountID        int64  `json:"account_id"`
			PermissionTypeID int    `json:"permission_type_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	assert.Equal(t, "success", payload.Message)
	assert.Equal(t, int64(7), payload.Result.AccountID)
	assert.Equal(t, shared.PermissionSeller, payload.Result.PermissionTypeID)

	id, err := sessions.Resolve(context.Background(), payload.Result.Token)
	require.NoError(t, err)
	assert.Equal(t, "modamall", id.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newAuthRouter(t, &stubRepo{account: sellerAccount(t)})

	body := `{"username":"modamall","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "invalid_user")
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := newAuthRouter(t, &stubRepo{})

	body := `{"username":"nobody","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestLoginMissingFields(t *testing.T) {
	router, _ := newAuthRouter(t, &stubRepo{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"modamall"}`))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body.String(), "required_field_missing")
}

func TestLogoutDestroysSession(t *testing.T) {
	router, sessions := newAuthRouter(t, &stubRepo{account: sellerAccount(t)})

	token, err := sessions.Issue(context.Background(), shared.Identity{AccountID: 7, PermissionTypeID: shared.PermissionSeller})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	_, err = sessions.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
}
