package models

import "time"

type Owner struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120;not null"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Outlets []Outlet `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
