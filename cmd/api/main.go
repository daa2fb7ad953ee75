package main

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/coinclub/coinclub-api/internal/config"
	"github.com/coinclub/coinclub-api/internal/db"
	"github.com/coinclub/coinclub-api/internal/middleware"
	"github.com/coinclub/coinclub-api/internal/services/admin"
	"github.com/coinclub/coinclub-api/internal/services/auth"
	"github.com/coinclub/coinclub-api/internal/services/classified"
	"github.com/coinclub/coinclub-api/internal/services/cloudinary"
	"github.com/coinclub/coinclub-api/internal/services/coin"
	"github.com/coinclub/coinclub-api/internal/services/join"
	"github.com/coinclub/coinclub-api/internal/services/metals"
	"github.com/coinclub/coinclub-api/internal/services/profile"
)

func main() {
	cfg := config.LoadConfig()

	if err := db.InitDB(cfg); err != nil {
		log.Fatalf("initializing database: %v", err)
	}
	defer db.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "Coin Club API",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	classifiedStore := db.NewClassifiedStore()

	authService := auth.NewAuthService(cfg)
	classifiedService := classified.NewClassifiedService(cfg, classifiedStore)
	coinService := coin.NewCoinService(cfg)
	metalsService := metals.NewMetalsService(cfg)
	joinService := join.NewJoinService(cfg)
	profileService := profile.NewProfileService(cfg, classifiedStore)
	adminService := admin.NewAdminService(cfg, classifiedStore)
	cloudinaryService := cloudinary.NewCloudinaryService(cfg)

	requireAuth := middleware.AuthMiddleware(authService.GetJWTService())
	requireAdmin := middleware.AdminMiddleware(db.GetProfileRole)

	authService.SetupRoutes(app)
	classifiedService.SetupRoutes(app, requireAuth)
	coinService.SetupRoutes(app)
	metalsService.SetupRoutes(app)
	joinService.SetupRoutes(app)
	profileService.SetupRoutes(app, requireAuth)
	adminService.SetupRoutes(app, requireAuth, requireAdmin)
	cloudinaryService.SetupRoutes(app, requireAuth)

	log.Printf("Coin Club API listening on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler translates uncaught errors into the JSON error shape.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
