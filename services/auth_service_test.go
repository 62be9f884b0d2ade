package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"solestyle/models"
	"solestyle/repositories"
	"solestyle/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
	next  int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return repositories.ErrDuplicateEmail
	}
	f.next++
	user.ID = f.next
	user.CreatedAt = time.Now()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, exists := f.users[email]
	if !exists {
		return nil, repositories.ErrUserNotFound
	}
	return &user, nil
}

func newTestAuthService() (*AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewAuthService(store, "test-secret", time.Hour), store
}

func TestAuthService_Register(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	err := svc.Register(ctx, models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	stored := store.users["a@x.com"]
	assert.Equal(t, "Alice", stored.Name)
	// Only the argon2 encoding is persisted, never the plaintext.
	assert.True(t, strings.HasPrefix(stored.Password, "$argon2"))
	assert.NotContains(t, stored.Password, "pw123456")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	req := models.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw123456"}
	require.NoError(t, svc.Register(ctx, req))

	req.Name = "Impostor"
	err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, store.users, 1)
	assert.Equal(t, "Alice", store.users["a@x.com"].Name)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw123456",
	}))

	token, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	claims, err := utils.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw123456",
	}))

	token, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "nope1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	token, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@x.com",
		Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}
