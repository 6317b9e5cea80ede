package models

import "time"

// Testimonial - outlet hakkında yorum. Kimlik doğrulamasına bağlı değil,
// customer_name serbest metin (orijinal tasarımdan korunan davranış).
type Testimonial struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	OutletID     uint   `gorm:"index;not null"`
	Outlet       Outlet `gorm:"foreignKey:OutletID"`
	CustomerName string `gorm:"size:120;not null"`
	Avatar       string `gorm:"size:255"`
	Rating       int    `gorm:"not null"` // 1-5 yıldız
	ReviewText   string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
