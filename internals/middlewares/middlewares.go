package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpustakaan_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery paling luar supaya panic dari handler mana pun tertangkap;
// DBMiddleware paling dalam supaya handler selalu menemukan pool di locals).
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
