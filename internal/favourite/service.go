package favourite

import (
	"errors"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item bulunamadı")

// ToggleResult - toggle çağrısının sonucu
type ToggleResult struct {
	ItemName       string
	Favourited     bool // çağrı sonrası durum
	FavouriteCount int
}

// Toggle - (müşteri, item) çifti için favori kaydını açar/kapatır.
// Kayıt ve sayaç aynı transaction'da yazılır; sayaç artış/azalışları tek SQL
// ifadesiyle yapılır ki eş zamanlı çağrılar sayacı ilişki satır sayısından
// koparamasın. Azalış 0'ın altına inemez.
func Toggle(customerID, itemID uint) (*ToggleResult, error) {
	var result ToggleResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return ErrItemNotFound
		}
		result.ItemName = item.Name

		var existing models.Favourite
		err := tx.Where("customer_id = ? AND item_id = ?", customerID, itemID).
			First(&existing).Error

		if err == nil {
			// Favoriden çıkar. Silme 0 satır etkilediyse (aynı çiftin eş zamanlı
			// untoggle'ı kaydı bizden önce sildiyse) sayaç düşülmez; aksi halde
			// sayaç satır sayısından kopar.
			res := tx.Where("customer_id = ? AND item_id = ?", customerID, itemID).
				Delete(&models.Favourite{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				if err := tx.Model(&models.Item{}).Where("id = ?", itemID).
					UpdateColumn("favourite_count",
						gorm.Expr("CASE WHEN favourite_count > 0 THEN favourite_count - 1 ELSE 0 END")).Error; err != nil {
					return err
				}
			}
			result.Favourited = false
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			// Favoriye ekle; unique index eş zamanlı çift eklemeyi engeller
			fav := models.Favourite{CustomerID: customerID, ItemID: itemID}
			if err := tx.Create(&fav).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Item{}).Where("id = ?", itemID).
				UpdateColumn("favourite_count", gorm.Expr("favourite_count + 1")).Error; err != nil {
				return err
			}
			result.Favourited = true
		} else {
			return err
		}

		var updated models.Item
		if err := tx.First(&updated, itemID).Error; err != nil {
			return err
		}
		result.FavouriteCount = updated.FavouriteCount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListForCustomer - müşterinin favorilediği item'lar
func ListForCustomer(customerID uint) ([]models.Item, error) {
	var favourites []models.Favourite
	if err := database.DB.Preload("Item").
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&favourites).Error; err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(favourites))
	for _, fav := range favourites {
		items = append(items, fav.Item)
	}
	return items, nil
}

// Top - en çok favorilenen item'lar. Sıralama (sayı azalan, id artan)
// deterministiktir.
func Top(limit int) ([]models.Item, error) {
	if limit <= 0 {
		limit = 4
	}

	var items []models.Item
	err := database.DB.
		Where("favourite_count > 0").
		Order("favourite_count DESC, id ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
