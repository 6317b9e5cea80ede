package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleOwner    = "owner"
	RoleCustomer = "customer"
)

type JWTCustomClaims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken - 24 saat geçerli HS256 token üretir.
func GenerateToken(secret string, userID uint, role string) (string, error) {
	claims := &JWTCustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
