package auth

import (
	"errors"
	"strings"

	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func customerJSON(cu *models.Customer) fiber.Map {
	return fiber.Map{
		"id":    cu.ID,
		"name":  cu.Name,
		"email": cu.Email,
	}
}

// POST /api/customer/signup
func CustomerSignUpHandler(cfg *config.Config) fiber.Handler {
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

		var count int64
		database.DB.Model(&models.Customer{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu email zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		customer := models.Customer{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
		}
		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap oluşturulamadı")
		}

		token, err := GenerateToken(cfg.JWTSecret, customer.ID, RoleCustomer)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"token":    token,
			"customer": customerJSON(&customer),
		})
	}
}

// POST /api/customer/login
func CustomerLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email ve şifre zorunlu")
		}

		var customer models.Customer
		if err := database.DB.Where("email = ?", body.Email).First(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Email veya şifre hatalı")
		}

		token, err := GenerateToken(cfg.JWTSecret, customer.ID, RoleCustomer)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token":    token,
			"customer": customerJSON(&customer),
		})
	}
}

// GET /api/customer/details
func CustomerDetailsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := CurrentCustomer(c)
		if err != nil {
			return err
		}
		return c.JSON(customerJSON(customer))
	}
}

// PUT /api/customer/details
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := CurrentCustomer(c)
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
			customer.Name = name
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Email boş olamaz")
			}
			if email != customer.Email {
				var count int64
				database.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count)
				if count > 0 {
					return fiber.NewError(fiber.StatusConflict, "Bu email zaten kayıtlı")
				}
				customer.Email = email
			}
		}
		if body.Password != nil && *body.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
			}
			customer.PasswordHash = string(hash)
		}

		if err := database.DB.Save(customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap güncellenemedi")
		}
		return c.JSON(customerJSON(customer))
	}
}

// DELETE /api/customer/details
// Hesapla birlikte siparişler, rezervasyonlar ve favoriler de silinir.
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := CurrentCustomer(c)
		if err != nil {
			return err
		}

		if err := DeleteCustomerAccount(customer.ID); err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Hesap silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Hesap silindi"})
	}
}
