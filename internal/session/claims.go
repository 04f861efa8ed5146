package session

import (
	"fmt"

	"github.com/AmalFalah/expense-tracker/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// UserFromToken derives the authenticated user from the access token's
// claims. The login response carries no user object; the backend embeds
// user_id and role in the token instead. Claims are decoded without
// signature verification — the client holds no signing key and the backend
// re-checks the token on every request anyway. The email is taken from the
// credentials the user logged in with.
func UserFromToken(token, email string) (model.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return model.User{}, fmt.Errorf("failed to decode token claims: %w", err)
	}

	user := model.User{
		Email: email,
		Role:  model.RoleUser,
	}

	// JSON numbers decode as float64.
	if id, ok := claims["user_id"].(float64); ok {
		user.ID = int(id)
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		user.Role = role
	}

	return user, nil
}
