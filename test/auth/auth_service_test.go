package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	authdomain "github.com/m-orlov/taskboard/internal/auth/domain"
	authrepo "github.com/m-orlov/taskboard/internal/auth/repository"
	"github.com/m-orlov/taskboard/internal/auth/service"
	"github.com/m-orlov/taskboard/internal/common/clock"
	"github.com/m-orlov/taskboard/internal/common/logger"
)

func setupAuthService(t *testing.T, repo authrepo.Repository) (*service.AuthService, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()

	hasher := &mockHasher{}
	idGenerator := &mockIDGenerator{}
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	log, _ := logger.New("", "test", "info")

	svc := service.NewAuthService(service.AuthServiceDeps{
		Repo:        repo,
		Hasher:      hasher,
		IDGenerator: idGenerator,
		Clock:       mockClock,
		Log:         log,
	})

	return svc, hasher, idGenerator, mockClock
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := &mockUserRepo{}
	svc, hasher, idGenerator, mockClock := setupAuthService(t, repo)

	hasher.hashFunc = func(p string) (string, error) {
		if p != "password123" {
			t.Errorf("expected raw password to reach hasher, got %s", p)
		}
		return "hashed_password123", nil
	}
	idGenerator.newIDFunc = func() (string, error) {
		return "user-123", nil
	}

	var created authdomain.User
	repo.createFunc = func(_ context.Context, user authdomain.User) error {
		created = user
		return nil
	}

	err := svc.Register(context.Background(), service.RegisterInput{
		Username: "testuser",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created.Username != "testuser" {
		t.Errorf("expected username testuser, got %s", created.Username)
	}
	if created.PasswordHash != "hashed_password123" {
		t.Errorf("expected stored hash, got %s", created.PasswordHash)
	}
	if created.ID != "user-123" {
		t.Errorf("expected id user-123, got %s", created.ID)
	}
	if !created.CreatedAt.Equal(mockClock.Now()) {
		t.Errorf("expected created_at from clock, got %v", created.CreatedAt)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc, hasher, _, _ := setupAuthService(t, store)

	hashes := []string{"hash-one", "hash-two"}
	calls := 0
	hasher.hashFunc = func(string) (string, error) {
		h := hashes[calls]
		calls++
		return h, nil
	}

	if err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "first"}); err != nil {
		t.Fatalf("first register: expected no error, got %v", err)
	}

	err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "second"})
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	if len(store.users) != 1 {
		t.Errorf("expected a single user record, got %d", len(store.users))
	}
	if store.users["alice"].PasswordHash != "hash-one" {
		t.Errorf("expected the original password hash to survive, got %s", store.users["alice"].PasswordHash)
	}
}

func TestAuthService_Register_HashError(t *testing.T) {
	repo := &mockUserRepo{}
	svc, hasher, _, _ := setupAuthService(t, repo)

	hasher.hashFunc = func(string) (string, error) {
		return "", errors.New("bcrypt failure")
	}
	repo.createFunc = func(context.Context, authdomain.User) error {
		t.Error("create must not be called when hashing fails")
		return nil
	}

	err := svc.Register(context.Background(), service.RegisterInput{Username: "bob", Password: "pw"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockUserRepo{}
	svc, hasher, _, _ := setupAuthService(t, repo)

	repo.findByUsernameFunc = func(_ context.Context, username string) (authdomain.User, error) {
		return authdomain.User{
			ID:           "user-123",
			Username:     username,
			PasswordHash: "stored-hash",
			CreatedAt:    time.Now(),
		}, nil
	}
	hasher.compareFunc = func(hash, password string) error {
		if hash != "stored-hash" {
			t.Errorf("expected stored hash to reach comparer, got %s", hash)
		}
		if password != "password123" {
			t.Errorf("expected submitted password to reach comparer, got %s", password)
		}
		return nil
	}

	if err := svc.Login(context.Background(), service.LoginInput{Username: "testuser", Password: "password123"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &mockUserRepo{}
	svc, _, _, _ := setupAuthService(t, repo)

	err := svc.Login(context.Background(), service.LoginInput{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{}
	svc, hasher, _, _ := setupAuthService(t, repo)

	repo.findByUsernameFunc = func(_ context.Context, username string) (authdomain.User, error) {
		return authdomain.User{Username: username, PasswordHash: "stored-hash"}, nil
	}
	hasher.compareFunc = func(string, string) error {
		return errors.New("mismatch")
	}

	err := svc.Login(context.Background(), service.LoginInput{Username: "testuser", Password: "wrong"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	repo := &mockUserRepo{}
	svc, _, _, _ := setupAuthService(t, repo)

	repo.findByUsernameFunc = func(context.Context, string) (authdomain.User, error) {
		return authdomain.User{}, errors.New("connection refused")
	}

	err := svc.Login(context.Background(), service.LoginInput{Username: "testuser", Password: "password123"})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		t.Error("store failures must not masquerade as credential failures")
	}
}
