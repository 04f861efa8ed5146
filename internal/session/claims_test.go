package session

import (
	"testing"

	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestUserFromToken(t *testing.T) {
	tests := []struct {
		claims jwt.MapClaims
		want   model.User
		name   string
	}{
		{
			name:   "admin claims",
			claims: jwt.MapClaims{"user_id": float64(7), "role": "admin"},
			want:   model.User{ID: 7, Email: "a@x.com", Role: model.RoleAdmin},
		},
		{
			name:   "regular user",
			claims: jwt.MapClaims{"user_id": float64(3), "role": "user"},
			want:   model.User{ID: 3, Email: "a@x.com", Role: model.RoleUser},
		},
		{
			name:   "missing role defaults to user",
			claims: jwt.MapClaims{"user_id": float64(12)},
			want:   model.User{ID: 12, Email: "a@x.com", Role: model.RoleUser},
		},
		{
			name:   "missing user_id leaves zero id",
			claims: jwt.MapClaims{"role": "user"},
			want:   model.User{Email: "a@x.com", Role: model.RoleUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := UserFromToken(signedToken(t, tt.claims), "a@x.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestUserFromToken_Malformed(t *testing.T) {
	_, err := UserFromToken("not-a-jwt", "a@x.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode token claims")
}
