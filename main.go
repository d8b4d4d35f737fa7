package main

import (
	"internhub/config"
	"internhub/database"
	"internhub/routers/internshipRoutes"
	"internhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	internshipRoutes.SetupInternshipRoutes(app)
	internshipRoutes.SetupAdminRoutes(app)

	utils.StartEnrollmentScheduler()

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
