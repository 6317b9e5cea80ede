package main

import (
	"time"

	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo verisi: sahipler, outlet'ler, item'lar, menü bağlantıları, müşteriler,
// siparişler, rezervasyonlar, yorumlar ve favoriler.

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("Şifre hashlenemedi")
	}
	return string(hash)
}

func main() {
	cfg := config.Load()
	database.Init(cfg)
	db := database.DB

	// Eski veriyi temizle (bağımlılık sırasına dikkat)
	logrus.Info("Mevcut tablolar temizleniyor...")
	for _, table := range []string{
		"testimonials", "favourites", "table_bookings", "orders",
		"menu_items", "items", "outlets", "customers", "owners",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logrus.WithError(err).WithField("table", table).Fatal("Tablo temizlenemedi")
		}
	}

	logrus.Info("Sahipler oluşturuluyor...")
	owners := []models.Owner{
		{Name: "Raj Patel", Email: "raj.patel@foodcourt.com", PasswordHash: mustHash("owner123")},
		{Name: "Maria Garcia", Email: "maria.garcia@foodcourt.com", PasswordHash: mustHash("owner456")},
		{Name: "Chen Wei", Email: "chen.wei@foodcourt.com", PasswordHash: mustHash("owner789")},
	}
	if err := db.Create(&owners).Error; err != nil {
		logrus.WithError(err).Fatal("Sahipler oluşturulamadı")
	}

	logrus.Info("Outlet'ler oluşturuluyor...")
	outlets := []models.Outlet{
		{Name: "Addis Kitchen", CategoryName: "Ethiopian", OwnerID: owners[0].ID, ImagePath: "taj1.jpg"},
		{Name: "Lagos Grill", CategoryName: "Nigerian", OwnerID: owners[1].ID, ImagePath: "taj2.jpg"},
		{Name: "Cairo Eats", CategoryName: "Egyptian", OwnerID: owners[2].ID, ImagePath: "taj3.jpg"},
		{Name: "Nairobi Bites", CategoryName: "Kenyan", OwnerID: owners[0].ID, ImagePath: "taj4.jpg"},
		{Name: "Cape Town Kitchen", CategoryName: "South African", OwnerID: owners[1].ID, ImagePath: "taj5.jpg"},
		{Name: "Zanzibari Spice House", CategoryName: "Zanzibari", OwnerID: owners[0].ID, ImagePath: "taj7.jpg"},
	}
	if err := db.Create(&outlets).Error; err != nil {
		logrus.WithError(err).Fatal("Outlet'ler oluşturulamadı")
	}

	logrus.Info("Item'lar oluşturuluyor...")
	itemsByOutlet := [][]models.Item{
		{
			{Name: "Doro Wat", ImagePath: "taj14.jpg", Price: 350, Description: "Spicy chicken stew simmered in berbere sauce with boiled eggs", IsAvailable: true, CategoryName: "Stew"},
			{Name: "Injera Platter", ImagePath: "taj15.jpg", Price: 300, Description: "Assorted lentils and vegetables served on traditional injera", IsAvailable: true, CategoryName: "Platter"},
			{Name: "Kitfo", ImagePath: "taj16.jpg", Price: 380, Description: "Minced beef seasoned with butter and spices", IsAvailable: true, CategoryName: "Raw Meat"},
			{Name: "Tibs", ImagePath: "taj17.jpg", Price: 360, Description: "Sautéed beef with onions and peppers", IsAvailable: true, CategoryName: "Sautéed Meat"},
		},
		{
			{Name: "Jollof Rice", ImagePath: "taj10.jpg", Price: 250, Description: "Smoky Nigerian jollof with grilled chicken and plantains", IsAvailable: true, CategoryName: "Rice Dish"},
			{Name: "Suya Skewers", ImagePath: "taj11.jpg", Price: 200, Description: "Spiced grilled beef with peanut seasoning and onions", IsAvailable: true, CategoryName: "Grilled Meat"},
			{Name: "Egusi Soup", ImagePath: "taj12.jpg", Price: 280, Description: "Melon seed soup with assorted meat and fish", IsAvailable: true, CategoryName: "Soup"},
			{Name: "Pounded Yam", ImagePath: "taj13.jpg", Price: 220, Description: "Smooth pounded yam with rich vegetable soup", IsAvailable: true, CategoryName: "Side Dish"},
		},
		{
			{Name: "Koshari", ImagePath: "taj18.jpg", Price: 220, Description: "Egyptian comfort food with rice, lentils, and pasta", IsAvailable: true, CategoryName: "Street Food"},
			{Name: "Shawarma", ImagePath: "taj19.jpg", Price: 240, Description: "Slow-roasted meat with tahini and pickles in pita", IsAvailable: true, CategoryName: "Street Food"},
			{Name: "Falafel", ImagePath: "taj20.jpg", Price: 180, Description: "Crispy chickpea fritters with tahini sauce", IsAvailable: true, CategoryName: "Street Food"},
			{Name: "Molokhia", ImagePath: "taj21.jpg", Price: 260, Description: "Jute leaf soup with rabbit and rice", IsAvailable: true, CategoryName: "Soup"},
		},
		{
			{Name: "Nyama Choma", ImagePath: "taj22.jpg", Price: 420, Description: "Roasted goat meat with ugali and kachumbari", IsAvailable: true, CategoryName: "Grilled Meat"},
			{Name: "Ugali & Sukuma Wiki", ImagePath: "taj24.jpg", Price: 180, Description: "Collard greens sautéed with onions and tomatoes", IsAvailable: true, CategoryName: "Vegetables"},
			{Name: "Githeri", ImagePath: "taj23.jpg", Price: 200, Description: "Boiled maize and beans with vegetables", IsAvailable: true, CategoryName: "Stew"},
			{Name: "Mandazi", ImagePath: "taj25.jpg", Price: 120, Description: "Fried dough bread with coconut and spices", IsAvailable: true, CategoryName: "Dessert"},
		},
		{
			{Name: "Bobotie", ImagePath: "taj26.jpg", Price: 340, Description: "Spiced minced meat topped with egg custard", IsAvailable: true, CategoryName: "Casserole"},
			{Name: "Bunny Chow", ImagePath: "taj27.jpg", Price: 300, Description: "Curry served in a hollowed loaf of bread", IsAvailable: true, CategoryName: "Street Food"},
			{Name: "Boerewors", ImagePath: "taj28.jpg", Price: 280, Description: "Traditional South African farmer's sausage", IsAvailable: true, CategoryName: "Grilled Meat"},
			{Name: "Malva Pudding", ImagePath: "taj45.jpg", Price: 160, Description: "Sweet spongy pudding with apricots", IsAvailable: true, CategoryName: "Dessert"},
		},
		{
			{Name: "Zanzibar Pilau", ImagePath: "taj34.jpg", Price: 260, Description: "Aromatic rice with cloves and cardamom", IsAvailable: true, CategoryName: "Rice Dish"},
			{Name: "Octopus Curry", ImagePath: "taj35.jpg", Price: 340, Description: "Tender octopus in spiced coconut curry", IsAvailable: true, CategoryName: "Curry"},
			{Name: "Urojo Soup", ImagePath: "taj36.jpg", Price: 200, Description: "Zanzibari soup with vegetables and meat", IsAvailable: true, CategoryName: "Soup"},
			{Name: "Seafood Mishkaki", ImagePath: "taj38.jpg", Price: 300, Description: "Grilled seafood skewers with spice rub", IsAvailable: true, CategoryName: "Grilled Seafood"},
		},
	}

	var menuLinks []models.MenuItem
	for i := range itemsByOutlet {
		if err := db.Create(&itemsByOutlet[i]).Error; err != nil {
			logrus.WithError(err).Fatal("Item'lar oluşturulamadı")
		}
		for j := range itemsByOutlet[i] {
			menuLinks = append(menuLinks, models.MenuItem{
				OutletID: outlets[i].ID,
				ItemID:   itemsByOutlet[i][j].ID,
			})
		}
	}

	logrus.Info("Menü bağlantıları oluşturuluyor...")
	if err := db.Create(&menuLinks).Error; err != nil {
		logrus.WithError(err).Fatal("Menü bağlantıları oluşturulamadı")
	}

	logrus.Info("Müşteriler oluşturuluyor...")
	customers := []models.Customer{
		{Name: "John Smith", Email: "john.smith@email.com", PasswordHash: mustHash("customer123")},
		{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", PasswordHash: mustHash("customer456")},
		{Name: "Amit Kumar", Email: "amit.kumar@email.com", PasswordHash: mustHash("customer789")},
	}
	if err := db.Create(&customers).Error; err != nil {
		logrus.WithError(err).Fatal("Müşteriler oluşturulamadı")
	}

	logrus.Info("Siparişler oluşturuluyor...")
	now := time.Now().UTC()
	est1 := now.Add(-105 * time.Minute)
	est2 := now.Add(30 * time.Minute)
	est3 := now.Add(25 * time.Minute)
	orders := []models.Order{
		{MenuItemID: menuLinks[0].ID, CustomerID: customers[0].ID, Quantity: 2, Status: models.OrderCompleted, Estimated: &est1},
		{MenuItemID: menuLinks[5].ID, CustomerID: customers[1].ID, Quantity: 1, Status: models.OrderPending, Estimated: &est2},
		{MenuItemID: menuLinks[10].ID, CustomerID: customers[2].ID, Quantity: 3, Status: models.OrderPending, Estimated: &est3},
	}
	if err := db.Create(&orders).Error; err != nil {
		logrus.WithError(err).Fatal("Siparişler oluşturulamadı")
	}

	logrus.Info("Rezervasyonlar oluşturuluyor...")
	date1 := now.Add(-2 * time.Hour)
	date2 := now.Add(45 * time.Minute)
	bookings := []models.TableBooking{
		{OrderID: orders[0].ID, TableNumber: 5, Capacity: 4, DurationHours: 2, Status: models.BookingCompleted, BookingDate: &date1},
		{OrderID: orders[1].ID, TableNumber: 3, Capacity: 2, DurationHours: 1, Status: models.BookingConfirmed, BookingDate: &date2},
	}
	if err := db.Create(&bookings).Error; err != nil {
		logrus.WithError(err).Fatal("Rezervasyonlar oluşturulamadı")
	}

	logrus.Info("Yorumlar oluşturuluyor...")
	testimonials := []models.Testimonial{
		{ID: uuid.NewString(), OutletID: outlets[0].ID, CustomerName: "Emily Chen", Avatar: "avatar-emily.jpg", Rating: 5, ReviewText: "The Doro Wat was rich, spicy, and incredibly authentic. Injera was fresh and perfect!"},
		{ID: uuid.NewString(), OutletID: outlets[0].ID, CustomerName: "Michael Brown", Avatar: "avatar-michael.jpg", Rating: 4, ReviewText: "Loved the Injera platter and tibs. Great flavors, would definitely order again."},
		{ID: uuid.NewString(), OutletID: outlets[1].ID, CustomerName: "Sofia Rodriguez", Avatar: "avatar-sofia.jpg", Rating: 5, ReviewText: "Best Jollof Rice I've had in a long time! The suya was perfectly spiced."},
		{ID: uuid.NewString(), OutletID: outlets[2].ID, CustomerName: "Lisa Wang", Avatar: "avatar-lisa.jpg", Rating: 4, ReviewText: "Koshari was comforting and perfectly balanced. Felt like home!"},
		{ID: uuid.NewString(), OutletID: outlets[3].ID, CustomerName: "James Wilson", Avatar: "avatar-james.jpg", Rating: 5, ReviewText: "Nyama Choma was grilled to perfection. Authentic Kenyan taste!"},
		{ID: uuid.NewString(), OutletID: outlets[5].ID, CustomerName: "Ahmed Hassan", Avatar: "avatar-ahmed.jpg", Rating: 5, ReviewText: "The octopus curry and Zanzibar pilau were bursting with flavor. Highly recommended!"},
	}
	if err := db.Create(&testimonials).Error; err != nil {
		logrus.WithError(err).Fatal("Yorumlar oluşturulamadı")
	}

	logrus.Info("Favoriler oluşturuluyor...")
	shawarma := itemsByOutlet[2][1].ID
	jollof := itemsByOutlet[1][0].ID
	kitfo := itemsByOutlet[0][2].ID
	nyamaChoma := itemsByOutlet[3][0].ID
	favourites := []models.Favourite{
		{CustomerID: customers[0].ID, ItemID: shawarma},
		{CustomerID: customers[0].ID, ItemID: jollof},
		{CustomerID: customers[1].ID, ItemID: shawarma},
		{CustomerID: customers[1].ID, ItemID: nyamaChoma},
		{CustomerID: customers[2].ID, ItemID: shawarma},
		{CustomerID: customers[2].ID, ItemID: kitfo},
	}
	if err := db.Create(&favourites).Error; err != nil {
		logrus.WithError(err).Fatal("Favoriler oluşturulamadı")
	}

	// Cache'lenen sayaçları favori satırlarıyla eşitle
	for _, fav := range favourites {
		if err := db.Model(&models.Item{}).Where("id = ?", fav.ItemID).
			UpdateColumn("favourite_count", gorm.Expr("favourite_count + 1")).Error; err != nil {
			logrus.WithError(err).Fatal("Favori sayacı güncellenemedi")
		}
	}

	logrus.WithFields(logrus.Fields{
		"owners":       len(owners),
		"outlets":      len(outlets),
		"menu_links":   len(menuLinks),
		"customers":    len(customers),
		"orders":       len(orders),
		"bookings":     len(bookings),
		"testimonials": len(testimonials),
		"favourites":   len(favourites),
	}).Info("Demo verisi yüklendi")
	logrus.Info("Test girişleri: raj.patel@foodcourt.com/owner123, john.smith@email.com/customer123")
}
