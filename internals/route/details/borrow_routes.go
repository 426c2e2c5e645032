// file: internals/route/details/borrow_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "perpustakaan_backend/internals/features/library/controller"
)

func BorrowRoutes(api fiber.Router, db *gorm.DB) {
	borrowCtrl := controller.NewBorrowController(db)
	borrows := api.Group("/borrows")
	borrows.Post("/checkout", borrowCtrl.Checkout)
	borrows.Post("/checkin", borrowCtrl.Checkin)
}
