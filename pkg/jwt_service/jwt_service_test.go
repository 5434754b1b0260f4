package jwtservice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitlog/internal/error_values"
	"github.com/limbo/habitlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	s := New("secret", time.Minute)

	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := s.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
	})
	t.Run("other secret", func(t *testing.T) {
		_, err := New("other", time.Minute).ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		later := New("secret", time.Minute)
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := later.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, time.Hour, New("secret", 0).ttl)
}
