package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"content_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByUsername is the mock implementation of the FindByUsername method.
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, ErrUserNotFound // Default: not found
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound // Default: not found
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	GenerateTokenFunc func(userID uint, username string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, username)
	}
	return "mock-jwt-token", nil // Default: dummy token
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup hashes the password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 7
				return nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		user, err := uc.Signup(context.Background(), "alice", "password123")

		require.NoError(t, err, "signup should succeed")
		assert.Equal(t, uint(7), user.ID, "ID should come from the repository")
		assert.Equal(t, "alice", user.Username, "username does not match")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		called := false
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				called = true
				return nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		user, err := uc.Signup(context.Background(), "alice", "short")

		assert.Error(t, err, "short password should be rejected")
		assert.Nil(t, user, "no user should be returned")
		assert.False(t, called, "repository should not be called")
	})

	t.Run("duplicate username surfaces as conflict", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUsernameAlreadyExists
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		user, err := uc.Signup(context.Background(), "alice", "password123")

		assert.ErrorIs(t, err, ErrUsernameAlreadyExists, "conflict should be a distinct error kind")
		assert.Nil(t, user, "no user should be returned")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &entity.User{ID: 1, Username: "alice", Password: string(hashed)}

	t.Run("successful login returns token", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				assert.Equal(t, "alice", username)
				return existing, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, username string) (string, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, "alice", username)
				return "signed-token", nil
			},
		}
		uc := NewAuthUsecase(mockRepo, mockJWT)

		token, err := uc.Login(context.Background(), "alice", "password123")

		assert.NoError(t, err, "login should succeed")
		assert.Equal(t, "signed-token", token, "token does not match")
	})

	t.Run("wrong password returns generic error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return existing, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		token, err := uc.Login(context.Background(), "alice", "wrongpassword")

		assert.ErrorIs(t, err, ErrInvalidCredentials, "should return generic credentials error")
		assert.Empty(t, token, "token should be empty")
	})

	t.Run("unknown user returns the same generic error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		token, err := uc.Login(context.Background(), "nobody", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials, "user existence must not be distinguishable")
		assert.Empty(t, token, "token should be empty")
	})
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	t.Run("returns the user for a known id", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				assert.Equal(t, uint(3), id)
				return &entity.User{ID: 3, Username: "carol"}, nil
			},
		}
		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})

		user, err := uc.CurrentUser(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "carol", user.Username)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		user, err := uc.CurrentUser(context.Background(), 99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
