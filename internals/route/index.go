// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "perpustakaan_backend/internals/helpers"
	routeDetails "perpustakaan_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Health: siap hanya kalau pool DB (dari locals, diisi DBMiddleware)
	// bisa di-ping.
	app.Get("/health", healthHandler)

	api := app.Group("/api")

	log.Println("[INFO] Mounting Library routes...")
	routeDetails.LibraryRoutes(api, db)

	log.Println("[INFO] Mounting Borrow routes...")
	routeDetails.BorrowRoutes(api, db)
}

func healthHandler(c *fiber.Ctx) error {
	db, ok := c.Locals("db").(*gorm.DB)
	if !ok || db == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "database tidak siap")
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "database tidak siap")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
