package auth

import (
	"errors"
	"strings"
	"testing"

	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
)

func setupDB(t *testing.T) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	if err := database.Connect(sqlite.Open("file:" + name + "?mode=memory&cache=shared")); err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
}

func TestDeleteOwnerAccountCascades(t *testing.T) {
	setupDB(t)
	db := database.DB

	owner := models.Owner{Name: "Raj Patel", Email: "raj@foodcourt.com", PasswordHash: "x"}
	db.Create(&owner)
	outlet1 := models.Outlet{Name: "Addis Kitchen", OwnerID: owner.ID, ImagePath: "addis.jpg"}
	outlet2 := models.Outlet{Name: "Nairobi Bites", OwnerID: owner.ID, ImagePath: "nairobi.jpg"}
	db.Create(&outlet1)
	db.Create(&outlet2)

	item := models.Item{Name: "Doro Wat", Price: 100, IsAvailable: true}
	db.Create(&item)
	db.Create(&models.MenuItem{OutletID: outlet1.ID, ItemID: item.ID})
	db.Create(&models.Testimonial{
		ID: uuid.NewString(), OutletID: outlet1.ID,
		CustomerName: "Emily", Rating: 5, ReviewText: "Harika",
	})

	imagePaths, err := DeleteOwnerAccount(owner.ID)
	if err != nil {
		t.Fatalf("DeleteOwnerAccount hata döndü: %v", err)
	}
	if len(imagePaths) != 2 {
		t.Fatalf("2 görsel yolu bekleniyor, %d geldi", len(imagePaths))
	}

	var ownerCount, outletCount, linkCount, testimonialCount, itemCount int64
	db.Model(&models.Owner{}).Count(&ownerCount)
	db.Model(&models.Outlet{}).Count(&outletCount)
	db.Model(&models.MenuItem{}).Count(&linkCount)
	db.Model(&models.Testimonial{}).Count(&testimonialCount)
	db.Model(&models.Item{}).Count(&itemCount)
	if ownerCount != 0 || outletCount != 0 || linkCount != 0 || testimonialCount != 0 {
		t.Fatalf("sahip ve bağlı kayıtlar silinmeli: %d/%d/%d/%d",
			ownerCount, outletCount, linkCount, testimonialCount)
	}
	if itemCount != 1 {
		t.Fatalf("katalog item'ı yerinde kalmalı, %d bulundu", itemCount)
	}
}

func TestDeleteOwnerAccountNotFound(t *testing.T) {
	setupDB(t)

	if _, err := DeleteOwnerAccount(9999); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("ErrOwnerNotFound bekleniyor, %v geldi", err)
	}
}

func TestDeleteCustomerAccountCascades(t *testing.T) {
	setupDB(t)
	db := database.DB

	owner := models.Owner{Name: "Raj Patel", Email: "raj@foodcourt.com", PasswordHash: "x"}
	db.Create(&owner)
	outlet := models.Outlet{Name: "Addis Kitchen", OwnerID: owner.ID}
	db.Create(&outlet)
	item := models.Item{Name: "Doro Wat", Price: 100, IsAvailable: true, FavouriteCount: 2}
	db.Create(&item)
	link := models.MenuItem{OutletID: outlet.ID, ItemID: item.ID}
	db.Create(&link)

	customer := models.Customer{Name: "John Smith", Email: "john@email.com", PasswordHash: "x"}
	db.Create(&customer)
	order := models.Order{MenuItemID: link.ID, CustomerID: customer.ID, Quantity: 1, Status: models.OrderPending}
	db.Create(&order)
	db.Create(&models.TableBooking{OrderID: order.ID, TableNumber: 5, Capacity: 4, Status: models.BookingPending})
	db.Create(&models.Favourite{CustomerID: customer.ID, ItemID: item.ID})

	if err := DeleteCustomerAccount(customer.ID); err != nil {
		t.Fatalf("DeleteCustomerAccount hata döndü: %v", err)
	}

	var customerCount, orderCount, bookingCount, favCount int64
	db.Model(&models.Customer{}).Count(&customerCount)
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.TableBooking{}).Count(&bookingCount)
	db.Model(&models.Favourite{}).Count(&favCount)
	if customerCount != 0 || orderCount != 0 || bookingCount != 0 || favCount != 0 {
		t.Fatalf("müşteri ve bağlı kayıtlar silinmeli: %d/%d/%d/%d",
			customerCount, orderCount, bookingCount, favCount)
	}

	// Silinen favori için sayaç düşmüş olmalı
	var updated models.Item
	db.First(&updated, item.ID)
	if updated.FavouriteCount != 1 {
		t.Fatalf("favori sayacı 1'e düşmeli, %d geldi", updated.FavouriteCount)
	}
}

func TestDeleteCustomerAccountNotFound(t *testing.T) {
	setupDB(t)

	if err := DeleteCustomerAccount(9999); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("ErrCustomerNotFound bekleniyor, %v geldi", err)
	}
}
