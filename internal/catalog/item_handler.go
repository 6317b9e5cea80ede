package catalog

import (
	"errors"
	"strconv"
	"strings"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ItemResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int    `json:"price"`
	Category       string `json:"category"`
	IsAvailable    bool   `json:"is_available"`
	FavouriteCount int    `json:"favourite_count"`
	IsFavourite    bool   `json:"isFavourite"`
}

// GET /items - herkese açık; müşteri girişliyse favori işareti de döner
func ListItemsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Item
		if err := database.DB.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item'lar listelenemedi")
		}

		// Opsiyonel kimlik: müşteri ise favori item id'lerini topla
		favouriteIDs := map[uint]bool{}
		if role, _ := c.Locals(auth.CtxUserRoleKey).(string); role == auth.RoleCustomer {
			if customerID, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
				var favs []models.Favourite
				database.DB.Where("customer_id = ?", customerID).Find(&favs)
				for _, f := range favs {
					favouriteIDs[f.ItemID] = true
				}
			}
		}

		res := make([]ItemResponse, 0, len(items))
		for _, item := range items {
			res = append(res, ItemResponse{
				ID:             item.ID,
				Name:           item.Name,
				Price:          item.Price,
				Category:       item.CategoryName,
				IsAvailable:    item.IsAvailable,
				FavouriteCount: item.FavouriteCount,
				IsFavourite:    favouriteIDs[item.ID],
			})
		}
		return c.JSON(res)
	}
}

// POST /items - outlet bağlantısı olmadan item oluşturur.
// Bağlantısız item geçerli ama sipariş edilemez.
func CreateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name         string `json:"name"`
			Price        *int   `json:"price"`
			Description  string `json:"description"`
			CategoryName string `json:"category_name"`
			Image        string `json:"image"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Price == nil {
			return fiber.NewError(fiber.StatusBadRequest, "İsim ve fiyat zorunlu")
		}

		item := models.Item{
			Name:         body.Name,
			Price:        *body.Price,
			Description:  body.Description,
			CategoryName: body.CategoryName,
			ImagePath:    body.Image,
			IsAvailable:  true,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Item oluşturuldu",
			"item_id": item.ID,
		})
	}
}

// GET /items/:id
func GetItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item models.Item
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
		}
		return c.JSON(fiber.Map{
			"id":    item.ID,
			"name":  item.Name,
			"price": item.Price,
		})
	}
}

// PUT /items/:id - sadece dükkan sahibi
func UpdateItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		var item models.Item
		if err := database.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
		}

		var body struct {
			Name  *string `json:"name"`
			Price *int    `json:"price"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "İsim boş olamaz")
			}
			item.Name = name
		}
		if body.Price != nil {
			item.Price = *body.Price
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Item güncellenemedi")
		}
		return c.JSON(fiber.Map{"message": "Item güncellendi"})
	}
}

// DELETE /items/:id - sadece dükkan sahibi; bağlantılarına sipariş
// referans veriyorsa 409 döner
func DeleteItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := auth.CurrentOwner(c); err != nil {
			return err
		}

		itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz item id")
		}

		if err := DeleteItem(uint(itemID)); err != nil {
			switch {
			case errors.Is(err, ErrItemNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Item bulunamadı")
			case errors.Is(err, ErrItemHasOrders):
				return fiber.NewError(fiber.StatusConflict, "Item'a bağlı siparişler var, silinemez")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Item silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
