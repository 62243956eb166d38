package services

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"translation-office/internal/dto"
	"translation-office/internal/entities"
	"translation-office/pkg/config"
	"translation-office/pkg/constants"
	apperrors "translation-office/pkg/errors"
	"translation-office/pkg/service"
	"translation-office/pkg/utils"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint64) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.Email] = user
	return nil
}

// fakeCache is an in-memory stand-in for the redis-backed attempt store.
type fakeCache struct {
	counters map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: make(map[string]int64)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	count, ok := c.counters[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return strconv.FormatInt(count, 10), nil
}

func (c *fakeCache) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	c.counters[key] = 1
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.counters, key)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.counters[key]++
	return c.counters[key], nil
}

func (c *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeCache) {
	t.Helper()

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: map[string]*entities.User{
		"admin@translated.ae": {
			ID:       1,
			Email:    "admin@translated.ae",
			Password: hashed,
			Name:     "Administrator",
			Role:     constants.RoleAdmin,
		},
	}}

	cache := newFakeCache()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour*24, zap.NewNop())
	cfg := config.AuthConfig{MaxLoginAttempts: 5, LockoutDuration: time.Minute * 15}

	svc := NewAuthService(userRepo, cache, jwtSvc, cfg, zap.NewNop()).(*AuthService)
	return svc, cache
}

func TestLogin_Success(t *testing.T) {
	svc, cache := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "correct-horse",
	}, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "admin@translated.ae", resp.User.Email)
	assert.Equal(t, constants.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Empty(t, cache.counters)
}

func TestLogin_WrongPasswordCountsAttempt(t *testing.T) {
	svc, cache := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "wrong",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Len(t, cache.counters, 1)
}

func TestLogin_UnknownEmailCountsAttempt(t *testing.T) {
	svc, cache := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "nobody@translated.ae",
		Password: "whatever",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Len(t, cache.counters, 1)
}

func TestLogin_LockoutAfterMaxAttempts(t *testing.T) {
	svc, _ := newAuthFixture(t)

	for i := 0; i < 5; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{
			Email:    "admin@translated.ae",
			Password: "wrong",
		}, "203.0.113.7")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the correct password is rejected from the blocked address.
	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "correct-horse",
	}, "203.0.113.7")
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestLogin_RotatingEmailsFromOneAddressIsLimited(t *testing.T) {
	svc, cache := newAuthFixture(t)

	// A single origin cycling through emails must not dodge the limit.
	for i := 0; i < 5; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{
			Email:    "guess" + strconv.Itoa(i) + "@translated.ae",
			Password: "wrong",
		}, "203.0.113.7")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}
	assert.Len(t, cache.counters, 1, "attempts from one address share one counter")

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "yet-another@translated.ae",
		Password: "wrong",
	}, "203.0.113.7")

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
}

func TestLogin_LockoutDoesNotFollowTheAccount(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// Someone else hammering the account from their address must not lock
	// the owner out.
	for i := 0; i < 6; i++ {
		_, _ = svc.Login(context.Background(), dto.LoginDTO{
			Email:    "admin@translated.ae",
			Password: "wrong",
		}, "198.51.100.23")
	}

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "correct-horse",
	}, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "admin@translated.ae", resp.User.Email)
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	svc, cache := newAuthFixture(t)

	for i := 0; i < 3; i++ {
		_, _ = svc.Login(context.Background(), dto.LoginDTO{
			Email:    "admin@translated.ae",
			Password: "wrong",
		}, "203.0.113.7")
	}

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "correct-horse",
	}, "203.0.113.7")
	require.NoError(t, err)
	assert.Empty(t, cache.counters)

	// The window starts over after a successful login.
	_, err = svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "wrong",
	}, "203.0.113.7")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginDTO{
		Email:    "admin@translated.ae",
		Password: "correct-horse",
	}, "203.0.113.7")
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)

	refreshed, err := svc.RefreshTokens(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@translated.ae", refreshed.User.Email)
	assert.NotEmpty(t, refreshed.AccessToken)
}
