package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/internal/kvstore"
	"github.com/limbo/habitlog/internal/repository"
	"github.com/limbo/habitlog/internal/service"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestUserService(t *testing.T) {
	store := kvstore.NewMemoryStore()
	us := service.NewUserService(repository.NewUsersRepo(store), store)
	ctx := context.Background()
	email := "Test@Example.com "
	password := "test_password"
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Email:    email,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    "test@example.com",
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("invalid registration", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Email:    "not-an-email",
			Password: "short",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, "TEST@example.com", password)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("login with wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, "test@example.com", "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("error login on unexisted user", func(t *testing.T) {
		_, err := us.Login(ctx, "nobody@example.com", "bbbbbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("not found by id", func(t *testing.T) {
		_, err := us.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, "dasdasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted with habits and history", func(t *testing.T) {
		hs := service.NewHabitsService(store, service.WithLocation(time.UTC))
		habit, err := hs.AddHabit(ctx, user.ID, readRequest())
		require.NoError(t, err)
		_, err = hs.ToggleComplete(ctx, user.ID, habit.ID)
		require.NoError(t, err)

		require.NoError(t, us.DeleteAccount(ctx, user.ID, password))
		_, err = store.Get(ctx, repository.HabitsKey(user.ID))
		assert.ErrorIs(t, err, errorvalues.ErrKeyNotFound)
		_, err = store.Get(ctx, repository.HistoryKey(user.ID))
		assert.ErrorIs(t, err, errorvalues.ErrKeyNotFound)
	})
	t.Run("failed to delete unexist user", func(t *testing.T) {
		err := us.DeleteAccount(ctx, user.ID, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
