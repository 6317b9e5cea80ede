package models

// MenuItem - bir Item'ın bir Outlet menüsünde satıldığını gösteren bağlantı kaydı.
// Bir item ancak bu bağlantı üzerinden sipariş edilebilir.
type MenuItem struct {
	ID       uint   `gorm:"primaryKey"`
	OutletID uint   `gorm:"not null;uniqueIndex:unique_outlet_item"`
	Outlet   Outlet `gorm:"foreignKey:OutletID"`
	ItemID   uint   `gorm:"not null;uniqueIndex:unique_outlet_item"`
	Item     Item   `gorm:"foreignKey:ItemID"`
}
