package auth

import (
	"errors"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound    = errors.New("dükkan sahibi bulunamadı")
	ErrCustomerNotFound = errors.New("müşteri bulunamadı")
)

// DeleteOwnerAccount - sahibi ve sahip olduğu her şeyi tek transaction'da siler:
// outlet'ler, menü bağlantıları ve testimonial'lar. Silinen outlet görsellerinin
// yollarını döner ki çağıran dosyaları temizleyebilsin.
func DeleteOwnerAccount(ownerID uint) ([]string, error) {
	var imagePaths []string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, ownerID).Error; err != nil {
			return ErrOwnerNotFound
		}

		var outlets []models.Outlet
		if err := tx.Where("owner_id = ?", ownerID).Find(&outlets).Error; err != nil {
			return err
		}

		if len(outlets) > 0 {
			outletIDs := make([]uint, 0, len(outlets))
			for _, o := range outlets {
				outletIDs = append(outletIDs, o.ID)
				if o.ImagePath != "" {
					imagePaths = append(imagePaths, o.ImagePath)
				}
			}

			if err := tx.Where("outlet_id IN ?", outletIDs).Delete(&models.Testimonial{}).Error; err != nil {
				return err
			}
			if err := tx.Where("outlet_id IN ?", outletIDs).Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Outlet{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&owner).Error
	})
	if err != nil {
		return nil, err
	}
	return imagePaths, nil
}

// DeleteCustomerAccount - müşteriyi, siparişlerini (rezervasyonlarıyla) ve
// favorilerini tek transaction'da siler. Favori sayaçları da aynı anda düşülür.
func DeleteCustomerAccount(customerID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			return ErrCustomerNotFound
		}

		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", customerID).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.TableBooking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("customer_id = ?", customerID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		// Sayaç tutarlılığı: silinen her favori için item sayacı düşülür
		var favourites []models.Favourite
		if err := tx.Where("customer_id = ?", customerID).Find(&favourites).Error; err != nil {
			return err
		}
		for _, fav := range favourites {
			if err := tx.Model(&models.Item{}).Where("id = ?", fav.ItemID).
				UpdateColumn("favourite_count",
					gorm.Expr("CASE WHEN favourite_count > 0 THEN favourite_count - 1 ELSE 0 END")).Error; err != nil {
				return err
			}
		}
		if len(favourites) > 0 {
			if err := tx.Where("customer_id = ?", customerID).Delete(&models.Favourite{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&customer).Error
	})
}
