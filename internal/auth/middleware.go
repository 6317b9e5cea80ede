package auth

import (
	"fmt"
	"strings"

	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserRoleKey = "user_role"
)

func parseToken(cfg *config.Config, tokenStr string) (*JWTCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("geçersiz imzalama yöntemi")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("geçersiz token")
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		return nil, fmt.Errorf("token çözümlenemedi")
	}
	return claims, nil
}

// JWTMiddleware - Bearer token zorunlu. Claims'i locals'a koyar.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		claims, err := parseToken(cfg, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserRoleKey, claims.Role)

		return c.Next()
	}
}

// OptionalJWTMiddleware - token varsa çözer, yoksa isteği reddetmeden geçirir.
// Herkese açık ama kimliğe göre zenginleşen listeler için (örn. item listesinde favori işareti).
func OptionalJWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
				if claims, err := parseToken(cfg, parts[1]); err == nil {
					c.Locals(CtxUserIDKey, claims.UserID)
					c.Locals(CtxUserRoleKey, claims.Role)
				}
			}
		}
		return c.Next()
	}
}

// CurrentOwner - locals'taki kimliği Owner kaydına çözer.
func CurrentOwner(c *fiber.Ctx) (*models.Owner, error) {
	role, _ := c.Locals(CtxUserRoleKey).(string)
	userID, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok || role != RoleOwner {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Dükkan sahibi girişi gerekli")
	}

	var owner models.Owner
	if err := database.DB.First(&owner, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Dükkan sahibi girişi gerekli")
	}
	return &owner, nil
}

// CurrentCustomer - locals'taki kimliği Customer kaydına çözer.
func CurrentCustomer(c *fiber.Ctx) (*models.Customer, error) {
	role, _ := c.Locals(CtxUserRoleKey).(string)
	userID, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok || role != RoleCustomer {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Müşteri girişi gerekli")
	}

	var customer models.Customer
	if err := database.DB.First(&customer, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Müşteri girişi gerekli")
	}
	return &customer, nil
}
