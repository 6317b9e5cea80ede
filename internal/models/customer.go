package models

import "time"

type Customer struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Orders     []Order     `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Favourites []Favourite `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}
