package auth

import (
	"errors"
	"time"

	"careerpilot_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the external identity id (the Clerk subject) through the
// request. The backend never stores credentials itself.
type Claims struct {
	ClerkUserID string `json:"clerk_user_id"`
	jwt.RegisteredClaims
}

func GenerateToken(clerkUserID string) (string, error) {
	cfg := config.GetConfig()

	claims := Claims{
		ClerkUserID: clerkUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clerkUserID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ClerkUserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
