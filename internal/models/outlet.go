package models

import "time"

type Outlet struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120;not null"`
	CategoryName string `gorm:"size:120"`
	OwnerID      uint   `gorm:"index;not null"`
	Owner        Owner  `gorm:"foreignKey:OwnerID"`
	ImagePath    string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	MenuItems    []MenuItem    `gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`
	Testimonials []Testimonial `gorm:"foreignKey:OutletID;constraint:OnDelete:CASCADE"`
}
