package auth

import (
	"context"

	authdomain "github.com/m-orlov/taskboard/internal/auth/domain"
	authrepo "github.com/m-orlov/taskboard/internal/auth/repository"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user authdomain.User) error
	findByUsernameFunc func(ctx context.Context, username string) (authdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user authdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (authdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return authdomain.User{}, authrepo.ErrUserNotFound
}

// fakeUserStore is an in-memory repository with real uniqueness semantics,
// used where a test needs state across calls.
type fakeUserStore struct {
	users map[string]authdomain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]authdomain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user authdomain.User) error {
	if _, ok := f.users[user.Username]; ok {
		return authrepo.ErrUsernameAlreadyExists
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (authdomain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return authdomain.User{}, authrepo.ErrUserNotFound
	}
	return user, nil
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash string, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	return nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "test-id-123", nil
}
