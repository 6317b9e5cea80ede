package favourite

import (
	"errors"
	"strconv"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/customer/favourites - giriş yapmış müşterinin favorileri
func ListFavouritesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := auth.CurrentCustomer(c)
		if err != nil {
			return err
		}

		items, err := ListForCustomer(customer.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Favoriler listelenemedi")
		}

		res := make([]fiber.Map, 0, len(items))
		for _, item := range items {
			res = append(res, fiber.Map{
				"id":              item.ID,
				"name":            item.Name,
				"description":     item.Description,
				"image":           item.ImagePath,
				"price":           item.Price,
				"is_available":    item.IsAvailable,
				"favourite_count": item.FavouriteCount,
			})
		}
		return c.JSON(fiber.Map{"favourites": res})
	}
}

// POST /api/items/:id/favourite - favori aç/kapat (sadece müşteri)
func ToggleFavouriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := auth.CurrentCustomer(c)
		if err != nil {
			return err
		}

		itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz item id")
		}

		result, err := Toggle(customer.ID, uint(itemID))
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Favori güncellenemedi")
		}

		status := fiber.StatusOK
		message := result.ItemName + " favorilerden çıkarıldı"
		if result.Favourited {
			status = fiber.StatusCreated
			message = result.ItemName + " favorilere eklendi"
		}

		return c.Status(status).JSON(fiber.Map{
			"message":         message,
			"favourited":      result.Favourited,
			"favourite_count": result.FavouriteCount,
		})
	}
}

// GET /api/items/top_favourites - anasayfa için en popüler 4 item
func TopFavouritesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := Top(4)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Popüler item'lar listelenemedi")
		}

		res := make([]fiber.Map, 0, len(items))
		for _, item := range items {
			// Item'ın bağlı olduğu ilk outlet (varsa)
			var link models.MenuItem
			entry := fiber.Map{
				"id":              item.ID,
				"name":            item.Name,
				"price":           item.Price,
				"image":           item.ImagePath,
				"description":     item.Description,
				"category_name":   item.CategoryName,
				"favourite_count": item.FavouriteCount,
				"outlet_id":       nil,
				"outlet_name":     nil,
			}
			if err := database.DB.Preload("Outlet").
				Where("item_id = ?", item.ID).
				Order("id ASC").
				First(&link).Error; err == nil {
				entry["outlet_id"] = link.Outlet.ID
				entry["outlet_name"] = link.Outlet.Name
			}
			res = append(res, entry)
		}
		return c.JSON(res)
	}
}
