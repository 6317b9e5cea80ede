package models

// Favourite - müşterinin bir item'ı favorilemesi. Satırın varlığı "favori" demek;
// Item.FavouriteCount bu tablodaki satır sayısıyla aynı tutulur.
type Favourite struct {
	ID         uint     `gorm:"primaryKey"`
	CustomerID uint     `gorm:"not null;uniqueIndex:unique_customer_item"`
	Customer   Customer `gorm:"foreignKey:CustomerID"`
	ItemID     uint     `gorm:"not null;uniqueIndex:unique_customer_item"`
	Item       Item     `gorm:"foreignKey:ItemID"`
}
