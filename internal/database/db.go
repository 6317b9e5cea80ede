package database

import (
	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init - production bağlantısı (Postgres). Testler Connect'i sqlite ile çağırır.
func Init(cfg *config.Config) {
	if err := Connect(postgres.Open(cfg.DatabaseDSN)); err != nil {
		logrus.WithError(err).Fatal("Veritabanına bağlanılamadı")
	}
	logrus.Info("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Connect - verilen dialector ile bağlanır ve tüm modelleri migrate eder.
func Connect(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.Owner{},
		&models.Customer{},
		&models.Outlet{},
		&models.Item{},
		&models.MenuItem{},
		&models.Order{},
		&models.TableBooking{},
		&models.Favourite{},
		&models.Testimonial{},
	); err != nil {
		return err
	}

	DB = db
	return nil
}
