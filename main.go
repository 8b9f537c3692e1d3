package main

import (
	"biotrunk/config"
	"biotrunk/database"
	"biotrunk/middleware"
	authRoutes "biotrunk/routers/authRoutes"
	contactRoutes "biotrunk/routers/contactRoutes"
	contentRoutes "biotrunk/routers/contentRoutes"
	courseRoutes "biotrunk/routers/courseRoutes"
	notificationRoutes "biotrunk/routers/notificationRoutes"
	paymentRoutes "biotrunk/routers/paymentRoutes"
	userRoutes "biotrunk/routers/userRoutes"
	"biotrunk/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.StartRosterScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := database.Database.Db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unreachable!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", fiber.Map{
			"gatewayMode": utils.RazorpayMode(),
		})
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	contactRoutes.SetupContactRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
