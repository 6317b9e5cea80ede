package catalog

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

func seedOutlet(t *testing.T) models.Outlet {
	t.Helper()
	owner := models.Owner{Name: "Raj Patel", Email: "raj@foodcourt.com", PasswordHash: "x"}
	if err := database.DB.Create(&owner).Error; err != nil {
		t.Fatalf("owner oluşturulamadı: %v", err)
	}
	outlet := models.Outlet{Name: "Addis Kitchen", CategoryName: "Ethiopian", OwnerID: owner.ID, ImagePath: "addis.jpg"}
	if err := database.DB.Create(&outlet).Error; err != nil {
		t.Fatalf("outlet oluşturulamadı: %v", err)
	}
	return outlet
}

func seedItem(t *testing.T, name string) models.Item {
	t.Helper()
	item := models.Item{Name: name, Price: 100, IsAvailable: true}
	if err := database.DB.Create(&item).Error; err != nil {
		t.Fatalf("item oluşturulamadı: %v", err)
	}
	return item
}

func TestAddMenuLink(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")

	link, err := AddMenuLink(outlet.ID, item.ID)
	if err != nil {
		t.Fatalf("AddMenuLink hata döndü: %v", err)
	}
	if link.OutletID != outlet.ID || link.ItemID != item.ID {
		t.Fatalf("bağlantı yanlış kayda işaret ediyor: %+v", link)
	}
}

func TestAddMenuLinkDuplicate(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")

	if _, err := AddMenuLink(outlet.ID, item.ID); err != nil {
		t.Fatalf("ilk bağlantı eklenemedi: %v", err)
	}
	if _, err := AddMenuLink(outlet.ID, item.ID); !errors.Is(err, ErrDuplicateMenuItem) {
		t.Fatalf("ErrDuplicateMenuItem bekleniyor, %v geldi", err)
	}

	var count int64
	database.DB.Model(&models.MenuItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("menüde tek bağlantı kalmalı, %d bulundu", count)
	}
}

func TestAddMenuLinkSameItemDifferentOutlets(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")

	other := models.Outlet{Name: "Lagos Grill", OwnerID: outlet.OwnerID}
	if err := database.DB.Create(&other).Error; err != nil {
		t.Fatalf("outlet oluşturulamadı: %v", err)
	}

	if _, err := AddMenuLink(outlet.ID, item.ID); err != nil {
		t.Fatalf("ilk bağlantı eklenemedi: %v", err)
	}
	if _, err := AddMenuLink(other.ID, item.ID); err != nil {
		t.Fatalf("aynı item farklı outlet menüsüne eklenebilmeli: %v", err)
	}
}

func TestAddMenuLinkUnknownRecords(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")

	if _, err := AddMenuLink(9999, item.ID); !errors.Is(err, ErrOutletNotFound) {
		t.Fatalf("ErrOutletNotFound bekleniyor, %v geldi", err)
	}
	if _, err := AddMenuLink(outlet.ID, 9999); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("ErrItemNotFound bekleniyor, %v geldi", err)
	}
}

func TestCreateItemWithLink(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)

	item := models.Item{Name: "Injera Platter", Price: 300, IsAvailable: true}
	link, err := CreateItemWithLink(outlet.ID, &item)
	if err != nil {
		t.Fatalf("CreateItemWithLink hata döndü: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("item id atanmalı")
	}
	if link.ItemID != item.ID || link.OutletID != outlet.ID {
		t.Fatalf("bağlantı yanlış kayda işaret ediyor: %+v", link)
	}
}

func TestCreateItemWithLinkRollsBack(t *testing.T) {
	setupDB(t)
	seedOutlet(t)

	item := models.Item{Name: "Injera Platter", Price: 300}
	if _, err := CreateItemWithLink(9999, &item); !errors.Is(err, ErrOutletNotFound) {
		t.Fatalf("ErrOutletNotFound bekleniyor, %v geldi", err)
	}

	var itemCount int64
	database.DB.Model(&models.Item{}).Count(&itemCount)
	if itemCount != 0 {
		t.Fatalf("başarısız oluşturma item bırakmamalı, %d bulundu", itemCount)
	}
}

func TestDeleteMenuLinkBlockedByOrders(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")
	link, _ := AddMenuLink(outlet.ID, item.ID)

	customer := models.Customer{Name: "John", Email: "john@email.com", PasswordHash: "x"}
	database.DB.Create(&customer)
	order := models.Order{MenuItemID: link.ID, CustomerID: customer.ID, Quantity: 1, Status: models.OrderPending}
	database.DB.Create(&order)

	if err := DeleteMenuLink(link.ID); !errors.Is(err, ErrMenuHasOrders) {
		t.Fatalf("ErrMenuHasOrders bekleniyor, %v geldi", err)
	}

	var count int64
	database.DB.Model(&models.MenuItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("bağlantı yerinde kalmalı, %d bulundu", count)
	}
}

func TestDeleteMenuLink(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")
	link, _ := AddMenuLink(outlet.ID, item.ID)

	if err := DeleteMenuLink(link.ID); err != nil {
		t.Fatalf("DeleteMenuLink hata döndü: %v", err)
	}
	if err := DeleteMenuLink(link.ID); !errors.Is(err, ErrMenuNotFound) {
		t.Fatalf("silinmiş bağlantı için ErrMenuNotFound bekleniyor, %v geldi", err)
	}

	// Item katalogda kalır
	var itemCount int64
	database.DB.Model(&models.Item{}).Count(&itemCount)
	if itemCount != 1 {
		t.Fatalf("item silinmemeli, %d bulundu", itemCount)
	}
}

func TestDeleteItemBlockedByOrders(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")
	link, _ := AddMenuLink(outlet.ID, item.ID)

	customer := models.Customer{Name: "John", Email: "john@email.com", PasswordHash: "x"}
	database.DB.Create(&customer)
	order := models.Order{MenuItemID: link.ID, CustomerID: customer.ID, Quantity: 1, Status: models.OrderPending}
	database.DB.Create(&order)

	if err := DeleteItem(item.ID); !errors.Is(err, ErrItemHasOrders) {
		t.Fatalf("ErrItemHasOrders bekleniyor, %v geldi", err)
	}

	// Item ve bağlantı yerinde kalır
	var itemCount, linkCount int64
	database.DB.Model(&models.Item{}).Count(&itemCount)
	database.DB.Model(&models.MenuItem{}).Count(&linkCount)
	if itemCount != 1 || linkCount != 1 {
		t.Fatalf("reddedilen silme iz bırakmamalı: %d/%d", itemCount, linkCount)
	}
}

func TestDeleteItemCascades(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")
	if _, err := AddMenuLink(outlet.ID, item.ID); err != nil {
		t.Fatalf("bağlantı eklenemedi: %v", err)
	}

	customer := models.Customer{Name: "John", Email: "john@email.com", PasswordHash: "x"}
	database.DB.Create(&customer)
	database.DB.Create(&models.Favourite{CustomerID: customer.ID, ItemID: item.ID})

	if err := DeleteItem(item.ID); err != nil {
		t.Fatalf("DeleteItem hata döndü: %v", err)
	}

	var itemCount, linkCount, favCount int64
	database.DB.Model(&models.Item{}).Count(&itemCount)
	database.DB.Model(&models.MenuItem{}).Count(&linkCount)
	database.DB.Model(&models.Favourite{}).Count(&favCount)
	if itemCount != 0 || linkCount != 0 || favCount != 0 {
		t.Fatalf("item, bağlantı ve favoriler birlikte silinmeli: %d/%d/%d", itemCount, linkCount, favCount)
	}

	if err := DeleteItem(item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("silinmiş item için ErrItemNotFound bekleniyor, %v geldi", err)
	}
}

func TestDeleteOutletCascades(t *testing.T) {
	setupDB(t)
	outlet := seedOutlet(t)
	item := seedItem(t, "Doro Wat")
	if _, err := AddMenuLink(outlet.ID, item.ID); err != nil {
		t.Fatalf("bağlantı eklenemedi: %v", err)
	}

	testimonial := models.Testimonial{
		ID:           uuid.NewString(),
		OutletID:     outlet.ID,
		CustomerName: "Emily Chen",
		Rating:       5,
		ReviewText:   "Harika",
	}
	database.DB.Create(&testimonial)

	imagePath, err := DeleteOutlet(outlet.ID)
	if err != nil {
		t.Fatalf("DeleteOutlet hata döndü: %v", err)
	}
	if imagePath != "addis.jpg" {
		t.Fatalf("görsel yolu dönmeli, %q geldi", imagePath)
	}

	var outletCount, linkCount, testimonialCount, itemCount int64
	database.DB.Model(&models.Outlet{}).Count(&outletCount)
	database.DB.Model(&models.MenuItem{}).Count(&linkCount)
	database.DB.Model(&models.Testimonial{}).Count(&testimonialCount)
	database.DB.Model(&models.Item{}).Count(&itemCount)
	if outletCount != 0 || linkCount != 0 || testimonialCount != 0 {
		t.Fatalf("outlet, bağlantı ve yorumlar birlikte silinmeli: %d/%d/%d", outletCount, linkCount, testimonialCount)
	}
	if itemCount != 1 {
		t.Fatalf("katalog item'ı outlet silinince yaşamaya devam etmeli, %d bulundu", itemCount)
	}
}
