package order

import (
	"errors"
	"strconv"
	"time"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func serializeBooking(b *models.TableBooking) fiber.Map {
	var bookingDate interface{}
	if b.BookingDate != nil {
		bookingDate = b.BookingDate.Format(time.RFC3339)
	}
	return fiber.Map{
		"id":               b.ID,
		"order_id":         b.OrderID,
		"table_number":     b.TableNumber,
		"capacity":         b.Capacity,
		"duration_hours":   b.DurationHours,
		"status":           b.Status,
		"booking_date":     bookingDate,
		"special_requests": b.SpecialRequests,
		"created_at":       b.CreatedAt.Format(time.RFC3339),
	}
}

// parseBookingDate - "2025-08-29" + "19:30" çiftini tek zamana çevirir
func parseBookingDate(dateStr, timeStr string) *time.Time {
	if dateStr == "" || timeStr == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04", dateStr+"T"+timeStr)
	if err != nil {
		return nil
	}
	return &t
}

// GET /api/table-bookings
func ListBookingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var bookings []models.TableBooking
		if err := database.DB.Order("id ASC").Find(&bookings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyonlar listelenemedi")
		}

		res := make([]fiber.Map, 0, len(bookings))
		for i := range bookings {
			res = append(res, serializeBooking(&bookings[i]))
		}
		return c.JSON(res)
	}
}

// POST /api/table-bookings - sipariş + rezervasyonu birlikte oluşturur
func CreateBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			CustomerID      *uint  `json:"customer_id"`
			MenuItemID      *uint  `json:"menu_item_id"`
			Quantity        *int   `json:"quantity"`
			TableNumber     *int   `json:"table_number"`
			Capacity        *int   `json:"capacity"`
			DurationHours   int    `json:"duration_hours"`
			BookingDate     string `json:"booking_date"`
			BookingTime     string `json:"booking_time"`
			SpecialRequests string `json:"special_requests"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.CustomerID == nil || body.MenuItemID == nil || body.Quantity == nil ||
			body.TableNumber == nil || body.Capacity == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"customer_id, menu_item_id, quantity, table_number ve capacity zorunlu")
		}

		booking := &BookingRequest{
			TableNumber:     *body.TableNumber,
			Capacity:        *body.Capacity,
			DurationHours:   body.DurationHours,
			BookingDate:     parseBookingDate(body.BookingDate, body.BookingTime),
			SpecialRequests: body.SpecialRequests,
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
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Masa rezervasyonu oluşturuldu",
			"booking": serializeBooking(created.TableBooking),
		})
	}
}

// GET /api/table-bookings/:id
func GetBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var booking models.TableBooking
		if err := database.DB.Preload("Order").
			First(&booking, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
		}

		res := serializeBooking(&booking)
		res["order"] = fiber.Map{
			"id":       booking.Order.ID,
			"status":   booking.Order.Status,
			"quantity": booking.Order.Quantity,
		}
		return c.JSON(res)
	}
}

// PUT /api/table-bookings/:id - rezervasyon güncellenir; durum "cancelled"
// olursa bağlı sipariş de aynı çağrıda iptal edilir.
func UpdateBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rezervasyon id")
		}

		var body struct {
			TableNumber     *int    `json:"table_number"`
			Capacity        *int    `json:"capacity"`
			DurationHours   *int    `json:"duration_hours"`
			BookingDate     string  `json:"booking_date"`
			BookingTime     string  `json:"booking_time"`
			SpecialRequests *string `json:"special_requests"`
			Status          *string `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		patch := BookingPatch{
			TableNumber:     body.TableNumber,
			Capacity:        body.Capacity,
			DurationHours:   body.DurationHours,
			BookingDate:     parseBookingDate(body.BookingDate, body.BookingTime),
			SpecialRequests: body.SpecialRequests,
		}
		if body.Status != nil {
			status := models.BookingStatus(*body.Status)
			patch.Status = &status
		}

		booking, err := UpdateBooking(uint(bookingID), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrBookingNotFound):
				return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
			case errors.Is(err, ErrInvalidStatus):
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz durum değeri")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon güncellenemedi")
		}

		return c.JSON(fiber.Map{
			"message": "Rezervasyon güncellendi",
			"booking": serializeBooking(booking),
		})
	}
}

// DELETE /api/table-bookings/:id
func DeleteBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rezervasyon id")
		}

		if err := DeleteBooking(uint(bookingID)); err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon silinemedi")
		}
		return c.JSON(fiber.Map{"message": "Rezervasyon iptal edildi"})
	}
}

// GET /api/table-bookings/available-tables
func AvailableTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		available, booked, err := AvailableTables()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masa durumu okunamadı")
		}
		return c.JSON(fiber.Map{
			"available_tables": available,
			"booked_tables":    booked,
			"total_tables":     TotalTables,
		})
	}
}

// GET /api/customer/:id/table-bookings - müşterinin rezervasyonları,
// outlet ve item detaylarıyla
func CustomerBookingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		customerID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz müşteri id")
		}

		var bookings []models.TableBooking
		if err := database.DB.
			Preload("Order.MenuItem.Item").Preload("Order.MenuItem.Outlet").
			Joins("JOIN orders ON orders.id = table_bookings.order_id").
			Where("orders.customer_id = ?", customerID).
			Order("table_bookings.id ASC").
			Find(&bookings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyonlar listelenemedi")
		}

		res := make([]fiber.Map, 0, len(bookings))
		for i := range bookings {
			b := &bookings[i]
			entry := serializeBooking(b)
			entry["outlet_id"] = b.Order.MenuItem.Outlet.ID
			entry["outlet_name"] = b.Order.MenuItem.Outlet.Name
			entry["items"] = []fiber.Map{
				{
					"name":     b.Order.MenuItem.Item.Name,
					"quantity": b.Order.Quantity,
					"price":    b.Order.MenuItem.Item.Price,
				},
			}
			res = append(res, entry)
		}
		return c.JSON(res)
	}
}
