package models

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus - durum değeri enum üyesi mi kontrol eder.
// Geçişler arası kısıtlama yok (bilinçli olarak serbest bırakıldı).
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         uint        `gorm:"primaryKey"`
	MenuItemID uint        `gorm:"index;not null"`
	MenuItem   MenuItem    `gorm:"foreignKey:MenuItemID"`
	CustomerID uint        `gorm:"index;not null"`
	Customer   Customer    `gorm:"foreignKey:CustomerID"`
	Quantity   int         `gorm:"not null"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:pending"`
	Estimated  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	TableBooking *TableBooking `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
