package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yuzuhara/task-tracker-api/internal/models"
	"github.com/yuzuhara/task-tracker-api/internal/repository"
)

func setupUserService(t *testing.T) *UserService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewUserService(repository.NewUserRepository(db))
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.Equal(t, "alice@example.com", user.Email, "email is normalized")
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestUserService_Register_PasswordRequired(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "",
	})
	require.ErrorIs(t, err, ErrPasswordRequired)
}

func TestUserService_Register_AcceptsAnyNonEmptyPassword(t *testing.T) {
	svc := setupUserService(t)

	// No minimum length; a single character is a valid password.
	user, err := svc.Register(context.Background(), RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "a@x.com",
		Password: "p",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestUserService_Register_ForcesRoleForNonAdminActor(t *testing.T) {
	svc := setupUserService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Name:         "Mallory",
		Email:        "mallory@example.com",
		Password:     "supersecret",
		Role:         models.RoleAdmin,
		ActorIsAdmin: false,
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc := setupUserService(t)

	input := RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}

	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "wrongpassword",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
