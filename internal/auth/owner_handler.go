package auth

import (
	"errors"
	"strings"

	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"
	"foodcourt-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func ownerJSON(o *models.Owner) fiber.Map {
	return fiber.Map{
		"id":    o.ID,
		"name":  o.Name,
		"email": o.Email,
	}
}

// POST /api/owner/signup
func OwnerSignUpHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SignUpRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		// Email benzersizliği sadece owner tablosu içinde kontrol edilir
		var count int64
		database.DB.Model(&models.Owner{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu email zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		owner := models.Owner{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
		}
		if err := database.DB.Create(&owner).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap oluşturulamadı")
		}

		token, err := GenerateToken(cfg.JWTSecret, owner.ID, RoleOwner)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token": token,
			"owner": ownerJSON(&owner),
		})
	}
}

// POST /api/owner/login
func OwnerLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email ve şifre zorunlu")
		}

		var owner models.Owner
		if err := database.DB.Where("email = ?", body.Email).First(&owner).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, owner.ID, RoleOwner)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"owner": ownerJSON(&owner),
		})
	}
}

// GET /api/owner/details
func OwnerDetailsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := CurrentOwner(c)
		if err != nil {
			return err
		}
		return c.JSON(ownerJSON(owner))
	}
}

// PUT /api/owner/details
func UpdateOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := CurrentOwner(c)
		if err != nil {
			return err
		}

		var body UpdateAccountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
			}
			owner.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Email boş olamaz")
			}
			if email != owner.Email {
				var count int64
				database.DB.Model(&models.Owner{}).Where("email = ?", email).Count(&count)
				if count > 0 {
					return fiber.NewError(fiber.StatusConflict, "Bu email zaten kayıtlı")
				}
				owner.Email = email
			}
		}
		if body.Password != nil && *body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
			}
			owner.PasswordHash = string(hash)
		}

		if err := database.DB.Save(owner).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap güncellenemedi")
		}
		return c.JSON(ownerJSON(owner))
	}
}

// DELETE /api/owner/details
// Hesapla birlikte outlet'ler, menü bağlantıları ve yorumlar da silinir.
func DeleteOwnerHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := CurrentOwner(c)
		if err != nil {
			return err
		}

		imagePaths, err := DeleteOwnerAccount(owner.ID)
		if err != nil {
			if errors.Is(err, ErrOwnerNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Dükkan sahibi bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap silinemedi")
		}

		// Görsel dosyaları transaction dışında temizlenir
		for _, p := range imagePaths {
			if err := upload.Remove(cfg, p); err != nil {
				logrus.WithError(err).WithField("image", p).Warn("Outlet görseli silinemedi")
			}
		}

		return c.JSON(fiber.Map{"message": "Hesap silindi"})
	}
}
