package catalog

import (
	"errors"
	"strconv"
	"strings"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"
	"foodcourt-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

func itemImage(path string) string {
	if strings.TrimSpace(path) == "" {
		return upload.DefaultImage
	}
	return path
}

// GET /api/menu - tüm menü kayıtları, item detaylarıyla
func ListMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var links []models.MenuItem
		if err := database.DB.Preload("Item").Preload("Outlet").
			Order("id ASC").
			Find(&links).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü listelenemedi")
		}

		res := make([]fiber.Map, 0, len(links))
		for _, link := range links {
			category := link.Item.CategoryName
			if category == "" {
				category = "Uncategorized"
			}
			res = append(res, fiber.Map{
				"id":           link.ID,
				"outlet_id":    link.OutletID,
				"outlet_name":  link.Outlet.Name,
				"item_id":      link.ItemID,
				"item_name":    link.Item.Name,
				"image":        itemImage(link.Item.ImagePath),
				"image_path":   itemImage(link.Item.ImagePath),
				"description":  link.Item.Description,
				"price":        link.Item.Price,
				"category":     category,
				"is_available": link.Item.IsAvailable,
			})
		}
		return c.JSON(res)
	}
}

// POST /api/menu - yeni item oluşturur ve outlet menüsüne bağlar (multipart/form-data).
// Item ve bağlantı tek transaction'da yazılır.
func CreateMenuHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		name := strings.TrimSpace(c.FormValue("name"))
		priceStr := c.FormValue("price")
		outletIDStr := c.FormValue("outlet_id")

		if name == "" || priceStr == "" || outletIDStr == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, fiyat ve outlet_id zorunlu")
		}

		price, err := strconv.Atoi(priceStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz fiyat formatı")
		}
		outletID, err := strconv.ParseUint(outletIDStr, 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz outlet_id formatı")
		}

		isAvailable := true
		if v := c.FormValue("is_available"); v != "" {
			isAvailable = strings.EqualFold(v, "true")
		}

		imageFilename := upload.DefaultImage
		if fileHeader, ferr := c.FormFile("image"); ferr == nil {
			saved, serr := upload.SaveImage(cfg, fileHeader, "item", name)
			if serr != nil {
				return fiber.NewError(fiber.StatusBadRequest, serr.Error())
			}
			imageFilename = saved
		}

		item := models.Item{
			Name:         name,
			Price:        price,
			Description:  c.FormValue("description"),
			CategoryName: c.FormValue("category"),
			IsAvailable:  isAvailable,
			ImagePath:    imageFilename,
		}

		link, err := CreateItemWithLink(uint(outletID), &item)
		if err != nil {
			if errors.Is(err, ErrOutletNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Menü kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   "Item oluşturuldu ve menüye eklendi",
			"item_id":   item.ID,
			"menu_id":   link.ID,
			"image_url": "/uploads/" + imageFilename,
		})
	}
}

// POST /api/menu/link - var olan bir item'ı outlet menüsüne bağlar
func AddMenuLinkHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		var body struct {
			OutletID uint `json:"outlet_id"`
			ItemID   uint `json:"item_id"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.OutletID == 0 || body.ItemID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "outlet_id ve item_id zorunlu")
		}

		link, err := AddMenuLink(body.OutletID, body.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, ErrOutletNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Outlet bulunamadı")
			case errors.Is(err, ErrItemNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
			case errors.Is(err, ErrDuplicateMenuItem):
				return fiber.NewError(fiber.StatusConflict, "Item bu outlet menüsünde zaten var")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Menü kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        link.ID,
			"outlet_id": link.OutletID,
			"item_id":   link.ItemID,
		})
	}
}

// GET /api/menu/:id
func GetMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var link models.MenuItem
		if err := database.DB.Preload("Item").Preload("Outlet").
			First(&link, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü kaydı bulunamadı")
		}

		return c.JSON(fiber.Map{
			"id":          link.ID,
			"outlet_id":   link.OutletID,
			"outlet_name": link.Outlet.Name,
			"item_id":     link.ItemID,
			"item_name":   link.Item.Name,
			"image":       itemImage(link.Item.ImagePath),
			"image_path":  itemImage(link.Item.ImagePath),
			"description": link.Item.Description,
			"price":       link.Item.Price,
		})
	}
}

// PUT /api/menu/:id - bağlı item'ın alanlarını günceller (multipart/form-data)
func UpdateMenuHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		var link models.MenuItem
		if err := database.DB.First(&link, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Menü kaydı bulunamadı")
		}
		var item models.Item
		if err := database.DB.First(&item, link.ItemID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
		}

		if name := strings.TrimSpace(c.FormValue("name")); name != "" {
			item.Name = name
		}
		if priceStr := c.FormValue("price"); priceStr != "" {
			price, err := strconv.Atoi(priceStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz fiyat formatı")
			}
			item.Price = price
		}
		if category := c.FormValue("category"); category != "" {
			item.CategoryName = category
		}
		if v := c.FormValue("is_available"); v != "" {
			item.IsAvailable = strings.EqualFold(v, "true")
		}
		if fileHeader, ferr := c.FormFile("image"); ferr == nil {
			saved, serr := upload.SaveImage(cfg, fileHeader, "item", item.Name)
			if serr != nil {
				return fiber.NewError(fiber.StatusBadRequest, serr.Error())
			}
			item.ImagePath = saved
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item güncellenemedi")
		}

		return c.JSON(fiber.Map{
			"message": "Item güncellendi",
			"item_id": item.ID,
			"menu_id": link.ID,
			"image":   item.ImagePath,
		})
	}
}

// DELETE /api/menu/:id - bağlantıyı kaldırır; bağlı sipariş varsa 409 döner
func DeleteMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		menuID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz menü id")
		}

		if err := DeleteMenuLink(uint(menuID)); err != nil {
			switch {
			case errors.Is(err, ErrMenuNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Menü kaydı bulunamadı")
			case errors.Is(err, ErrMenuHasOrders):
				return fiber.NewError(fiber.StatusConflict, "Menü kaydına bağlı siparişler var, silinemez")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Menü kaydı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
