package models

import "time"

type Item struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120;not null"`
	ImagePath    string `gorm:"size:255"`
	Price        int    `gorm:"not null"` // kuruş değil, tam fiyat (orijinal şema tamsayı)
	Description  string `gorm:"size:255"`
	CategoryName string `gorm:"size:120"`
	IsAvailable  bool   `gorm:"not null;default:true"`
	// Favori sayısı cache'lenir; Favourite satır sayısıyla her zaman eşit tutulmalı
	FavouriteCount int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	MenuLinks          []MenuItem  `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CustomerFavourites []Favourite `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}
