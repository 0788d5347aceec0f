package handler

import (
	"go-bms-api/internal/middleware"
	"go-bms-api/internal/repository"
	"go-bms-api/internal/service"
	"go-bms-api/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires repositories, services, handlers and routes into a Fiber
// application. Delete endpoints are registered for every method: POST
// performs the delete, anything else gets the bare acknowledgment.
func NewApp(db *gorm.DB, wsHub *ws.Hub) *fiber.App {
	// Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	consumptionRepo := repository.NewConsumptionRepo(db)
	userRepo := repository.NewUserRepo(db)

	authService := service.NewAuthService(userRepo, wsHub)
	productService := service.NewProductService(productRepo, wsHub)
	saleService := service.NewSaleService(saleRepo, productRepo, wsHub)
	consumptionService := service.NewConsumptionService(consumptionRepo, productRepo, wsHub)
	analyticsService := service.NewAnalyticsService(productRepo, saleRepo, consumptionRepo)
	userService := service.NewUserService(userRepo, wsHub)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService)
	saleHandler := NewSaleHandler(saleService, productService)
	consumptionHandler := NewConsumptionHandler(consumptionService, productService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	userHandler := NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		AppName: "BMS API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// ============ PUBLIC ROUTES ============
	app.Get("/signup", middleware.OptionalAuth(userRepo), authHandler.Signup)
	app.Post("/signup", middleware.OptionalAuth(userRepo), authHandler.Signup)
	app.Get("/login", middleware.OptionalAuth(userRepo), authHandler.Login)
	app.Post("/login", middleware.OptionalAuth(userRepo), authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// ============ STAFF ROUTES ============
	admin := app.Group("/admin", middleware.RequireAuth(userRepo), middleware.RequireStaff())

	admin.Get("/dashboard", productHandler.Dashboard)
	admin.Get("/product/add", productHandler.AddProduct)
	admin.Post("/product/add", productHandler.AddProduct)
	admin.Get("/product/update/:id", productHandler.UpdateProduct)
	admin.Post("/product/update/:id", productHandler.UpdateProduct)
	admin.All("/product/delete/:id", productHandler.DeleteProduct)

	admin.Get("/analysis", analyticsHandler.Analysis)

	admin.Get("/consumption", consumptionHandler.AdminList)
	admin.Get("/consumption/add", consumptionHandler.AdminAdd)
	admin.Post("/consumption/add", consumptionHandler.AdminAdd)
	admin.Get("/consumption/update/:id", consumptionHandler.AdminUpdate)
	admin.Post("/consumption/update/:id", consumptionHandler.AdminUpdate)
	admin.All("/consumption/delete/:id", consumptionHandler.AdminDelete)

	admin.Get("/users", userHandler.ListUsers)
	admin.All("/users/delete/:id", userHandler.DeleteUser)

	// ============ REGULAR USER ROUTES ============
	sales := app.Group("/sales", middleware.RequireAuth(userRepo), middleware.RequireNonStaff())
	sales.Get("/", saleHandler.Sales)
	sales.Get("/add", saleHandler.AddSale)
	sales.Post("/add", saleHandler.AddSale)
	sales.Get("/update/:id", saleHandler.UpdateSale)
	sales.Post("/update/:id", saleHandler.UpdateSale)
	sales.All("/delete/:id", saleHandler.DeleteSale)

	consumption := app.Group("/consumption", middleware.RequireAuth(userRepo), middleware.RequireNonStaff())
	consumption.Get("/", consumptionHandler.UserList)
	consumption.Get("/add", consumptionHandler.UserAdd)
	consumption.Post("/add", consumptionHandler.UserAdd)
	consumption.Get("/update/:id", consumptionHandler.UserUpdate)
	consumption.Post("/update/:id", consumptionHandler.UserUpdate)
	consumption.All("/delete/:id", consumptionHandler.UserDelete)

	// ============ WEBSOCKET ============
	if wsHub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", middleware.RequireAuth(userRepo), websocket.New(func(c *websocket.Conn) {
			wsHub.Register <- c
			defer func() { wsHub.Unregister <- c }()

			for {
				// Keep alive loop
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}

	return app
}
