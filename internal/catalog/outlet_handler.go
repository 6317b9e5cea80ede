package catalog

import (
	"errors"
	"strings"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"
	"foodcourt-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OutletResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	OwnerID      uint   `json:"owner_id"`
	ImagePath    string `json:"image_path"`
}

func outletResponse(o *models.Outlet) OutletResponse {
	image := o.ImagePath
	if strings.TrimSpace(image) == "" {
		image = upload.DefaultImage
	}
	return OutletResponse{
		ID:           o.ID,
		Name:         o.Name,
		CategoryName: o.CategoryName,
		OwnerID:      o.OwnerID,
		ImagePath:    image,
	}
}

// GET /api/outlets - herkese açık liste
func ListOutletsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var outlets []models.Outlet
		if err := database.DB.Find(&outlets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet'ler listelenemedi")
		}

		res := make([]OutletResponse, 0, len(outlets))
		for i := range outlets {
			res = append(res, outletResponse(&outlets[i]))
		}
		return c.JSON(fiber.Map{"outlets": res})
	}
}

// POST /api/outlets - sadece dükkan sahibi. multipart (görselli) veya JSON kabul eder.
func CreateOutletHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := auth.CurrentOwner(c)
		if err != nil {
			return err
		}

		var name, categoryName string
		imageFilename := upload.DefaultImage

		contentType := strings.ToLower(c.Get("Content-Type"))
		if strings.Contains(contentType, "multipart/form-data") {
			name = c.FormValue("name")
			categoryName = c.FormValue("category_name")

			if fileHeader, ferr := c.FormFile("image"); ferr == nil {
				saved, serr := upload.SaveImage(cfg, fileHeader, "outlet", name)
				if serr != nil {
					return fiber.NewError(fiber.StatusBadRequest, serr.Error())
				}
				imageFilename = saved
			}
		} else {
			var body struct {
				Name         string `json:"name"`
				CategoryName string `json:"category_name"`
				ImagePath    string `json:"image_path"`
			}
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
			}
			name = body.Name
			categoryName = body.CategoryName
			if body.ImagePath != "" {
				imageFilename = body.ImagePath
			}
		}

		name = strings.TrimSpace(name)
		categoryName = strings.TrimSpace(categoryName)
		if name == "" || categoryName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim ve kategori zorunlu")
		}

		outlet := models.Outlet{
			Name:         name,
			CategoryName: categoryName,
			OwnerID:      owner.ID,
			ImagePath:    imageFilename,
		}
		if err := database.DB.Create(&outlet).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(outletResponse(&outlet))
	}
}

// GET /api/outlets/:id
func GetOutletHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var outlet models.Outlet
		if err := database.DB.First(&outlet, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
		}
		return c.JSON(outletResponse(&outlet))
	}
}

// PATCH /api/outlets/:id - sadece outlet'in sahibi
func UpdateOutletHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := auth.CurrentOwner(c)
		if err != nil {
			return err
		}

		var outlet models.Outlet
		if err := database.DB.First(&outlet, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
		}
		if outlet.OwnerID != owner.ID {
			return fiber.NewError(fiber.StatusForbidden, "Bu outlet'in sahibi değilsiniz")
		}

		contentType := strings.ToLower(c.Get("Content-Type"))
		if strings.Contains(contentType, "multipart/form-data") {
			if name := strings.TrimSpace(c.FormValue("name")); name != "" {
				outlet.Name = name
			}
			if category := strings.TrimSpace(c.FormValue("category_name")); category != "" {
				outlet.CategoryName = category
			}
			if fileHeader, ferr := c.FormFile("image"); ferr == nil {
				saved, serr := upload.SaveImage(cfg, fileHeader, "outlet", outlet.Name)
				if serr != nil {
					return fiber.NewError(fiber.StatusBadRequest, serr.Error())
				}
				// Eski görseli temizle
				if err := upload.Remove(cfg, outlet.ImagePath); err != nil {
					logrus.WithError(err).Warn("Eski outlet görseli silinemedi")
				}
				outlet.ImagePath = saved
			}
		} else {
			var body struct {
				Name         *string `json:"name"`
				CategoryName *string `json:"category_name"`
				ImagePath    *string `json:"image_path"`
			}
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
			}
			if body.Name != nil {
				name := strings.TrimSpace(*body.Name)
				if name == "" {
					return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
				}
				outlet.Name = name
			}
			if body.CategoryName != nil {
				outlet.CategoryName = strings.TrimSpace(*body.CategoryName)
			}
			if body.ImagePath != nil {
				outlet.ImagePath = *body.ImagePath
			}
		}

		if err := database.DB.Save(&outlet).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet güncellenemedi")
		}
		return c.JSON(outletResponse(&outlet))
	}
}

// DELETE /api/outlets/:id - sadece outlet'in sahibi; menü bağlantıları ve
// yorumlar da silinir, görsel dosyası temizlenir.
func DeleteOutletHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := auth.CurrentOwner(c)
		if err != nil {
			return err
		}

		var outlet models.Outlet
		if err := database.DB.First(&outlet, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
		}
		if outlet.OwnerID != owner.ID {
			return fiber.NewError(fiber.StatusForbidden, "Bu outlet'in sahibi değilsiniz")
		}

		imagePath, err := DeleteOutlet(outlet.ID)
		if err != nil {
			if errors.Is(err, ErrOutletNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet silinemedi")
		}

		if err := upload.Remove(cfg, imagePath); err != nil {
			logrus.WithError(err).WithField("image", imagePath).Warn("Outlet görseli silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Outlet silindi: " + outlet.Name})
	}
}

// GET /api/outlets/:id/menu - outlet menüsü, item detaylarıyla
func OutletMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var outlet models.Outlet
		if err := database.DB.First(&outlet, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
		}

		var links []models.MenuItem
		if err := database.DB.Preload("Item").
			Where("outlet_id = ?", outlet.ID).
			Order("id ASC").
			Find(&links).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}

		menu := make([]fiber.Map, 0, len(links))
		for _, link := range links {
			image := link.Item.ImagePath
			if strings.TrimSpace(image) == "" {
				image = upload.DefaultImage
			}
			menu = append(menu, fiber.Map{
				"id":        link.ID,
				"item_id":   link.ItemID,
				"item_name": link.Item.Name,
				"price":     link.Item.Price,
				"image":     image,
			})
		}

		return c.JSON(fiber.Map{"outlet": outlet.Name, "menu": menu})
	}
}

// GET /api/owner/outlets - giriş yapmış sahibin outlet'leri
func OwnerOutletsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := auth.CurrentOwner(c)
		if err != nil {
			return err
		}

		var outlets []models.Outlet
		if err := database.DB.Where("owner_id = ?", owner.ID).Find(&outlets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet'ler listelenemedi")
		}

		res := make([]OutletResponse, 0, len(outlets))
		for i := range outlets {
			res = append(res, outletResponse(&outlets[i]))
		}
		return c.JSON(fiber.Map{"outlets": res})
	}
}

// GET /api/owner/:id/outlets - id ile herkese açık liste
func OutletsByOwnerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		var owner models.Owner
		if err := database.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dükkan sahibi bulunamadı")
		}

		var outlets []models.Outlet
		if err := database.DB.Where("owner_id = ?", owner.ID).Find(&outlets).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Outlet'ler listelenemedi")
		}

		res := make([]OutletResponse, 0, len(outlets))
		for i := range outlets {
			res = append(res, outletResponse(&outlets[i]))
		}
		return c.JSON(res)
	}
}
