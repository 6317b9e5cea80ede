package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCheckedIn BookingStatus = "checked-in"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no-show"
)

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn,
		BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}

// TableBooking - bir siparişe bağlı masa rezervasyonu (opsiyonel, 1:1).
// Sipariş silinince rezervasyon da silinir.
type TableBooking struct {
	ID              uint          `gorm:"primaryKey"`
	OrderID         uint          `gorm:"uniqueIndex;not null"`
	Order           Order         `gorm:"foreignKey:OrderID"`
	TableNumber     int           `gorm:"not null"`
	Capacity        int           `gorm:"not null"`
	DurationHours   int           `gorm:"not null;default:2"`
	Status          BookingStatus `gorm:"type:varchar(20);not null;default:pending"`
	BookingDate     *time.Time
	SpecialRequests string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
