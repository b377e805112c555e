package services

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "frontdesk/errors"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func operatorClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"userinfo": map[string]interface{}{"userid": 42, "role": 3},
		"exp":      exp.Unix(),
	}
}

func TestGetOperatorFromToken(t *testing.T) {
	token := signToken(t, "s3cret", operatorClaims(time.Now().Add(time.Hour)))

	t.Run("verified", func(t *testing.T) {
		claims, err := GetOperatorFromToken("Bearer "+token, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.OperatorID)
		assert.Equal(t, 3, claims.Role)
	})

	t.Run("decoded without secret", func(t *testing.T) {
		claims, err := GetOperatorFromToken(token, "")
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.OperatorID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := GetOperatorFromToken(token, "other")
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.CodeOf(err))
	})

	t.Run("expired", func(t *testing.T) {
		expired := signToken(t, "s3cret", operatorClaims(time.Now().Add(-time.Hour)))
		_, err := GetOperatorFromToken(expired, "s3cret")
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.CodeOf(err))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := GetOperatorFromToken("abc", "")
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.CodeOf(err))
	})

	t.Run("missing userinfo", func(t *testing.T) {
		bare := signToken(t, "s3cret", jwt.MapClaims{"sub": "x"})
		_, err := GetOperatorFromToken(bare, "s3cret")
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.CodeOf(err))
	})
}
