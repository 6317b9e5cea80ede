package catalog

import (
	"errors"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrOutletNotFound    = errors.New("outlet bulunamadı")
	ErrItemNotFound      = errors.New("item bulunamadı")
	ErrMenuNotFound      = errors.New("menü kaydı bulunamadı")
	ErrDuplicateMenuItem = errors.New("item bu outlet menüsünde zaten var")
	ErrMenuHasOrders     = errors.New("menü kaydına bağlı siparişler var")
	ErrItemHasOrders     = errors.New("item'a bağlı siparişler var")
)

// AddMenuLink - var olan bir item'ı outlet menüsüne bağlar.
// (outlet, item) çifti benzersizdir; tekrar eklemek çakışma hatası döner.
func AddMenuLink(outletID, itemID uint) (*models.MenuItem, error) {
	var link models.MenuItem

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var outlet models.Outlet
		if err := tx.First(&outlet, outletID).Error; err != nil {
			return ErrOutletNotFound
		}
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return ErrItemNotFound
		}

		var count int64
		tx.Model(&models.MenuItem{}).
			Where("outlet_id = ? AND item_id = ?", outletID, itemID).
			Count(&count)
		if count > 0 {
			return ErrDuplicateMenuItem
		}

		link = models.MenuItem{OutletID: outletID, ItemID: itemID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CreateItemWithLink - yeni item oluşturur ve aynı transaction'da outlet
// menüsüne bağlar. Ya ikisi birden kalıcı olur ya hiçbiri.
func CreateItemWithLink(outletID uint, item *models.Item) (*models.MenuItem, error) {
	var link models.MenuItem

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var outlet models.Outlet
		if err := tx.First(&outlet, outletID).Error; err != nil {
			return ErrOutletNotFound
		}
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		link = models.MenuItem{OutletID: outletID, ItemID: item.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteMenuLink - menü bağlantısını kaldırır. Bağlantıya referans veren
// sipariş varsa silme reddedilir; siparişler sahipsiz kalmamalı.
func DeleteMenuLink(menuID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var link models.MenuItem
		if err := tx.First(&link, menuID).Error; err != nil {
			return ErrMenuNotFound
		}

		var orderCount int64
		tx.Model(&models.Order{}).Where("menu_item_id = ?", menuID).Count(&orderCount)
		if orderCount > 0 {
			return ErrMenuHasOrders
		}

		return tx.Delete(&link).Error
	})
}

// DeleteItem - item'ı, menü bağlantılarını ve favori kayıtlarını tek
// transaction'da siler. Bağlantılarından herhangi birine referans veren
// sipariş varsa silme reddedilir; siparişler sahipsiz kalmamalı.
func DeleteItem(itemID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			return ErrItemNotFound
		}

		var orderCount int64
		tx.Model(&models.Order{}).
			Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
			Where("menu_items.item_id = ?", itemID).
			Count(&orderCount)
		if orderCount > 0 {
			return ErrItemHasOrders
		}

		if err := tx.Where("item_id = ?", itemID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", itemID).Delete(&models.Favourite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
}

// DeleteOutlet - outlet'i, menü bağlantılarını ve yorumlarını tek
// transaction'da siler. Görsel yolunu döner ki çağıran dosyayı temizlesin.
func DeleteOutlet(outletID uint) (string, error) {
	var imagePath string

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var outlet models.Outlet
		if err := tx.First(&outlet, outletID).Error; err != nil {
			return ErrOutletNotFound
		}
		imagePath = outlet.ImagePath

		if err := tx.Where("outlet_id = ?", outletID).Delete(&models.Testimonial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("outlet_id = ?", outletID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&outlet).Error
	})
	if err != nil {
		return "", err
	}
	return imagePath, nil
}
