package order

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"
	"foodcourt-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

// serializeOrder - siparişi outlet, item, toplam fiyat ve rezervasyon
// bilgileriyle birlikte döner. Toplam her zaman item fiyatından hesaplanır.
func serializeOrder(o *models.Order) fiber.Map {
	item := o.MenuItem.Item
	outlet := o.MenuItem.Outlet
	total := item.Price * o.Quantity

	var estimated interface{}
	if o.Estimated != nil {
		estimated = o.Estimated.Format(time.RFC3339)
	}

	var bookingData fiber.Map
	if o.TableBooking != nil {
		var bookingDate interface{}
		if o.TableBooking.BookingDate != nil {
			bookingDate = o.TableBooking.BookingDate.Format(time.RFC3339)
		}
		bookingData = fiber.Map{
			"id":             o.TableBooking.ID,
			"table_number":   o.TableBooking.TableNumber,
			"capacity":       o.TableBooking.Capacity,
			"duration_hours": o.TableBooking.DurationHours,
			"status":         o.TableBooking.Status,
			"booking_date":   bookingDate,
			"created_at":     o.TableBooking.CreatedAt.Format(time.RFC3339),
		}
	}

	image := item.ImagePath
	if strings.TrimSpace(image) == "" {
		image = upload.DefaultImage
	}

	return fiber.Map{
		"id":              o.ID,
		"customer_id":     o.CustomerID,
		"menu_item_id":    o.MenuItemID,
		"quantity":        o.Quantity,
		"status":          o.Status,
		"created_at":      o.CreatedAt.Format(time.RFC3339),
		"estimated":       estimated,
		"outlet_id":       outlet.ID,
		"outlet_name":     outlet.Name,
		"outlet_category": outlet.CategoryName,
		"customer_name":   o.Customer.Name,
		"items": []fiber.Map{
			{
				"name":       item.Name,
				"quantity":   o.Quantity,
				"price":      item.Price,
				"image_path": image,
			},
		},
		"total":         total,
		"table_booking": bookingData,
	}
}

func loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := database.DB.
		Preload("MenuItem.Item").Preload("MenuItem.Outlet").
		Preload("Customer").Preload("TableBooking").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GET /api/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orders []models.Order
		if err := database.DB.
			Preload("MenuItem.Item").Preload("MenuItem.Outlet").
			Preload("Customer").Preload("TableBooking").
			Order("id ASC").
			Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]fiber.Map, 0, len(orders))
		for i := range orders {
			res = append(res, serializeOrder(&orders[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/orders - sipariş oluşturur; table_number verilmişse aynı
// transaction'da pending rezervasyon da oluşur.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			CustomerID  *uint `json:"customer_id"`
			MenuItemID  *uint `json:"menu_item_id"`
			Quantity    *int  `json:"quantity"`
			TableNumber *int  `json:"table_number"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.CustomerID == nil || body.MenuItemID == nil || body.Quantity == nil {
			return fiber.NewError(fiber.StatusBadRequest, "customer_id, menu_item_id ve quantity zorunlu")
		}

		var booking *BookingRequest
		if body.TableNumber != nil && *body.TableNumber > 0 {
			booking = &BookingRequest{TableNumber: *body.TableNumber}
		}

		created, err := PlaceOrder(*body.CustomerID, *body.MenuItemID, *body.Quantity, booking)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidQuantity):
				return fiber.NewError(fiber.StatusBadRequest, "Adet pozitif tamsayı olmalı")
			case errors.Is(err, ErrCustomerNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
			case errors.Is(err, ErrMenuItemNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Menü kaydı bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
		}

		order, err := loadOrder(created.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş okunamadı")
		}
		return c.Status(fiber.StatusCreated).JSON(serializeOrder(order))
	}
}

// GET /api/orders/:id
func GetOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		order, err := loadOrder(uint(orderID))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}
		return c.JSON(serializeOrder(order))
	}
}

// PUT /api/orders/:id - adet, durum ve tahmini süre güncellenebilir.
// Adet değişince toplam yeniden hesaplanır (toplam zaten saklanmıyor).
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		var body struct {
			Quantity  *int    `json:"quantity"`
			Status    *string `json:"status"`
			Estimated *string `json:"estimated"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		patch := OrderPatch{Quantity: body.Quantity}
		if body.Status != nil {
			status := models.OrderStatus(*body.Status)
			patch.Status = &status
		}
		if body.Estimated != nil {
			t, perr := time.Parse(time.RFC3339, *body.Estimated)
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz tarih formatı")
			}
			patch.Estimated = &t
		}

		if _, err := UpdateOrder(uint(orderID), patch); err != nil {
			switch {
			case errors.Is(err, ErrOrderNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			case errors.Is(err, ErrInvalidQuantity):
				return fiber.NewError(fiber.StatusBadRequest, "Adet pozitif tamsayı olmalı")
			case errors.Is(err, ErrInvalidStatus):
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz durum değeri")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}

		order, err := loadOrder(uint(orderID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş okunamadı")
		}
		return c.JSON(serializeOrder(order))
	}
}

// DELETE /api/orders/:id - rezervasyonuyla birlikte siler
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş id")
		}

		if err := DeleteOrder(uint(orderID)); err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/orders/customer/:id
func CustomerOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}

		orders, err := OrdersForCustomer(uint(customerID))
		if err != nil {
			if errors.Is(err, ErrCustomerNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler listelenemedi")
		}

		res := make([]fiber.Map, 0, len(orders))
		for i := range orders {
			res = append(res, serializeOrder(&orders[i]))
		}
		return c.JSON(res)
	}
}

// GET /api/orders/owner/:id
func OwnerOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sahip id")
		}

		orders, err := OrdersForOwner(uint(ownerID))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dükkan sahibi bulunamadı")
		}

		res := make([]fiber.Map, 0, len(orders))
		for i := range orders {
			res = append(res, serializeOrder(&orders[i]))
		}
		return c.JSON(res)
	}
}
