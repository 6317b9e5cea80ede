package main

import (
	"strings"

	"foodcourt-backend/internal/auth"
	"foodcourt-backend/internal/catalog"
	"foodcourt-backend/internal/config"
	"foodcourt-backend/internal/database"
	"foodcourt-backend/internal/favourite"
	"foodcourt-backend/internal/order"
	"foodcourt-backend/internal/testimonial"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadSize) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logrus.WithError(err).Error("Beklenmeyen hata")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den temizle
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Yüklenen görseller
	app.Static("/uploads", cfg.UploadPath)

	api := app.Group("/api")

	// Kimlik: kayıt ve giriş (public)
	api.Post("/owner/signup", auth.OwnerSignUpHandler(cfg))
	api.Post("/owner/login", auth.OwnerLoginHandler(cfg))
	api.Post("/customer/signup", auth.CustomerSignUpHandler(cfg))
	api.Post("/customer/login", auth.CustomerLoginHandler(cfg))

	// Hesap detayları (token zorunlu)
	account := api.Group("", auth.JWTMiddleware(cfg))
	account.Get("/owner/details", auth.OwnerDetailsHandler())
	account.Put("/owner/details", auth.UpdateOwnerHandler())
	account.Delete("/owner/details", auth.DeleteOwnerHandler(cfg))
	account.Get("/customer/details", auth.CustomerDetailsHandler())
	account.Put("/customer/details", auth.UpdateCustomerHandler())
	account.Delete("/customer/details", auth.DeleteCustomerHandler())

	// Outlet'ler
	api.Get("/outlets", catalog.ListOutletsHandler())
	api.Post("/outlets", auth.JWTMiddleware(cfg), catalog.CreateOutletHandler(cfg))
	api.Get("/outlets/:id", catalog.GetOutletHandler())
	api.Patch("/outlets/:id", auth.JWTMiddleware(cfg), catalog.UpdateOutletHandler(cfg))
	api.Delete("/outlets/:id", auth.JWTMiddleware(cfg), catalog.DeleteOutletHandler(cfg))
	api.Get("/outlets/:id/menu", catalog.OutletMenuHandler())
	api.Post("/outlets/:id/menu/import", auth.JWTMiddleware(cfg), catalog.ImportMenuHandler())
	api.Get("/owner/outlets", auth.JWTMiddleware(cfg), catalog.OwnerOutletsHandler())
	api.Get("/owner/:id/outlets", catalog.OutletsByOwnerHandler())

	// Menü kayıtları
	api.Get("/menu", catalog.ListMenuHandler())
	api.Post("/menu", auth.JWTMiddleware(cfg), catalog.CreateMenuHandler(cfg))
	api.Post("/menu/link", auth.JWTMiddleware(cfg), catalog.AddMenuLinkHandler())
	api.Get("/menu/:id", catalog.GetMenuHandler())
	api.Put("/menu/:id", auth.JWTMiddleware(cfg), catalog.UpdateMenuHandler(cfg))
	api.Delete("/menu/:id", auth.JWTMiddleware(cfg), catalog.DeleteMenuHandler())

	// Item'lar (liste müşteri girişliyse favori işaretli döner)
	app.Get("/items", auth.OptionalJWTMiddleware(cfg), catalog.ListItemsHandler())
	app.Post("/items", catalog.CreateItemHandler())
	app.Get("/items/:id", catalog.GetItemHandler())
	app.Put("/items/:id", auth.JWTMiddleware(cfg), catalog.UpdateItemHandler())
	app.Delete("/items/:id", auth.JWTMiddleware(cfg), catalog.DeleteItemHandler())

	// Siparişler
	api.Get("/orders", order.ListOrdersHandler())
	api.Post("/orders", order.CreateOrderHandler())
	api.Get("/orders/customer/:id", order.CustomerOrdersHandler())
	api.Get("/orders/owner/:id", order.OwnerOrdersHandler())
	api.Get("/orders/:id", order.GetOrderHandler())
	api.Put("/orders/:id", order.UpdateOrderHandler())
	api.Delete("/orders/:id", order.DeleteOrderHandler())

	// Masa rezervasyonları
	api.Get("/table-bookings", order.ListBookingsHandler())
	api.Post("/table-bookings", order.CreateBookingHandler())
	api.Get("/table-bookings/available-tables", order.AvailableTablesHandler())
	api.Get("/table-bookings/:id", order.GetBookingHandler())
	api.Put("/table-bookings/:id", order.UpdateBookingHandler())
	api.Delete("/table-bookings/:id", order.DeleteBookingHandler())
	api.Get("/customer/:id/table-bookings", order.CustomerBookingsHandler())

	// Favoriler
	api.Get("/customer/favourites", auth.JWTMiddleware(cfg), favourite.ListFavouritesHandler())
	api.Post("/items/:id/favourite", auth.JWTMiddleware(cfg), favourite.ToggleFavouriteHandler())
	api.Get("/items/top_favourites", favourite.TopFavouritesHandler())

	// Yorumlar (kimlik doğrulaması yok, orijinal davranış)
	api.Get("/testimonials", testimonial.ListTestimonialsHandler())
	api.Post("/testimonials", testimonial.CreateTestimonialHandler())
	api.Get("/testimonials/:id", testimonial.GetTestimonialHandler())
	api.Patch("/testimonials/:id", testimonial.UpdateTestimonialHandler())
	api.Delete("/testimonials/:id", testimonial.DeleteTestimonialHandler())

	logrus.WithField("port", cfg.HTTPPort).Info("Server çalışıyor")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logrus.WithError(err).Fatal("Server başlatılamadı")
	}
}
