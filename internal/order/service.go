package order

import (
	"errors"
	"time"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("müşteri bulunamadı")
	ErrMenuItemNotFound = errors.New("menü kaydı bulunamadı")
	ErrOrderNotFound    = errors.New("sipariş bulunamadı")
	ErrBookingNotFound  = errors.New("rezervasyon bulunamadı")
	ErrInvalidQuantity  = errors.New("adet pozitif tamsayı olmalı")
	ErrInvalidStatus    = errors.New("geçersiz durum değeri")
)

// TotalTables - masa evreni 1..20. Rezervasyon durumu ve zaman aralığı
// hesaba katılmaz; var olan her rezervasyon masasını işgal eder
// (bilinçli olarak korunan basit model).
const TotalTables = 20

// BookingRequest - sipariş ile birlikte oluşturulacak masa rezervasyonu isteği
type BookingRequest struct {
	TableNumber     int
	Capacity        int
	DurationHours   int
	BookingDate     *time.Time
	SpecialRequests string
}

// PlaceOrder - siparişi ve (istenmişse) masa rezervasyonunu tek transaction'da
// oluşturur. İkisi birden yazılır ya da hiçbiri; sipariş rezervasyonsuz
// kalamaz. Toplam fiyat saklanmaz, okuma anında item fiyatından hesaplanır.
func PlaceOrder(customerID, menuItemID uint, quantity int, booking *BookingRequest) (*models.Order, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var order models.Order

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			return ErrCustomerNotFound
		}
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, menuItemID).Error; err != nil {
			return ErrMenuItemNotFound
		}

		order = models.Order{
			CustomerID: customerID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			Status:     models.OrderPending,
		}
		if booking != nil {
			estimated := time.Now().Add(30 * time.Minute)
			order.Estimated = &estimated
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if booking != nil {
			capacity := booking.Capacity
			if capacity <= 0 {
				capacity = 4
			}
			duration := booking.DurationHours
			if duration <= 0 {
				duration = 2
			}
			bookingDate := booking.BookingDate
			if bookingDate == nil {
				d := time.Now().Add(time.Hour)
				bookingDate = &d
			}

			tb := models.TableBooking{
				OrderID:         order.ID,
				TableNumber:     booking.TableNumber,
				Capacity:        capacity,
				DurationHours:   duration,
				Status:          models.BookingPending,
				BookingDate:     bookingDate,
				SpecialRequests: booking.SpecialRequests,
			}
			if err := tx.Create(&tb).Error; err != nil {
				return err
			}
			order.TableBooking = &tb
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderPatch - sipariş güncelleme alanları. Status için sadece enum üyeliği
// kontrol edilir; geçişler arası kısıtlama yok (rezervasyon iptali bu serbest
// davranışa dayanıyor).
type OrderPatch struct {
	Quantity  *int
	Status    *models.OrderStatus
	Estimated *time.Time
}

func UpdateOrder(orderID uint, patch OrderPatch) (*models.Order, error) {
	var order models.Order

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		if patch.Quantity != nil {
			if *patch.Quantity <= 0 {
				return ErrInvalidQuantity
			}
			order.Quantity = *patch.Quantity
		}
		if patch.Status != nil {
			if !models.ValidOrderStatus(*patch.Status) {
				return ErrInvalidStatus
			}
			order.Status = *patch.Status
		}
		if patch.Estimated != nil {
			order.Estimated = patch.Estimated
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder - siparişi ve bağlı rezervasyonunu birlikte siler.
func DeleteOrder(orderID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return ErrOrderNotFound
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.TableBooking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// BookingPatch - rezervasyon güncelleme alanları
type BookingPatch struct {
	TableNumber     *int
	Capacity        *int
	DurationHours   *int
	BookingDate     *time.Time
	SpecialRequests *string
	Status          *models.BookingStatus
}

// UpdateBooking - rezervasyonu günceller. Durum "cancelled" olursa bağlı
// sipariş de aynı transaction'da iptal edilir (tek yönlü yayılım).
func UpdateBooking(bookingID uint, patch BookingPatch) (*models.TableBooking, error) {
	var booking models.TableBooking

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return ErrBookingNotFound
		}

		if patch.TableNumber != nil {
			booking.TableNumber = *patch.TableNumber
		}
		if patch.Capacity != nil {
			booking.Capacity = *patch.Capacity
		}
		if patch.DurationHours != nil {
			booking.DurationHours = *patch.DurationHours
		}
		if patch.BookingDate != nil {
			booking.BookingDate = patch.BookingDate
		}
		if patch.SpecialRequests != nil {
			booking.SpecialRequests = *patch.SpecialRequests
		}
		if patch.Status != nil {
			if !models.ValidBookingStatus(*patch.Status) {
				return ErrInvalidStatus
			}
			booking.Status = *patch.Status

			if booking.Status == models.BookingCancelled {
				if err := tx.Model(&models.Order{}).
					Where("id = ?", booking.OrderID).
					Update("status", models.OrderCancelled).Error; err != nil {
					return err
				}
			}
		}

		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// DeleteBooking - rezervasyon kaydını siler; sipariş yerinde kalır.
func DeleteBooking(bookingID uint) error {
	var booking models.TableBooking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		return ErrBookingNotFound
	}
	return database.DB.Delete(&booking).Error
}

// AvailableTables - masa evreni ile rezervasyonlardaki masa numaralarının
// kümesel farkı. Rezervasyon durumu ne olursa olsun masa dolu sayılır.
func AvailableTables() (available []int, booked []int, err error) {
	var bookings []models.TableBooking
	if err := database.DB.Find(&bookings).Error; err != nil {
		return nil, nil, err
	}

	occupied := map[int]bool{}
	booked = make([]int, 0, len(bookings))
	for _, b := range bookings {
		if !occupied[b.TableNumber] {
			booked = append(booked, b.TableNumber)
		}
		occupied[b.TableNumber] = true
	}

	available = make([]int, 0, TotalTables)
	for t := 1; t <= TotalTables; t++ {
		if !occupied[t] {
			available = append(available, t)
		}
	}
	return available, booked, nil
}

// OrdersForCustomer - müşterinin siparişleri, ilişkileriyle birlikte
func OrdersForCustomer(customerID uint) ([]models.Order, error) {
	var customer models.Customer
	if err := database.DB.First(&customer, customerID).Error; err != nil {
		return nil, ErrCustomerNotFound
	}

	var orders []models.Order
	err := database.DB.
		Preload("MenuItem.Item").Preload("MenuItem.Outlet").
		Preload("Customer").Preload("TableBooking").
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

// OrdersForOwner - sahibin outlet'lerindeki menü kayıtlarına gelen siparişler
// (outlet -> menü kaydı -> sipariş zinciri üzerinden).
func OrdersForOwner(ownerID uint) ([]models.Order, error) {
	var owner models.Owner
	if err := database.DB.First(&owner, ownerID).Error; err != nil {
		return nil, errors.New("dükkan sahibi bulunamadı")
	}

	var orders []models.Order
	err := database.DB.
		Preload("MenuItem.Item").Preload("MenuItem.Outlet").
		Preload("Customer").Preload("TableBooking").
		Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
		Joins("JOIN outlets ON outlets.id = menu_items.outlet_id").
		Where("outlets.owner_id = ?", ownerID).
		Order("orders.id ASC").
		Find(&orders).Error
	return orders, err
}
