// file: internals/route/details/library_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "perpustakaan_backend/internals/features/library/controller"
)

// LibraryRoutes memasang pola CRUD yang seragam untuk keenam entitas.
func LibraryRoutes(api fiber.Router, db *gorm.DB) {
	authorCtrl := controller.NewAuthorController(db)
	authors := api.Group("/authors")
	authors.Get("/", authorCtrl.List)
	authors.Get("/:id", authorCtrl.GetByID)
	authors.Post("/", authorCtrl.Create)
	authors.Put("/:id", authorCtrl.Update)
	authors.Delete("/:id", authorCtrl.Delete)

	genreCtrl := controller.NewGenreController(db)
	genres := api.Group("/genres")
	genres.Get("/", genreCtrl.List)
	genres.Get("/:id", genreCtrl.GetByID)
	genres.Post("/", genreCtrl.Create)
	genres.Put("/:id", genreCtrl.Update)
	genres.Delete("/:id", genreCtrl.Delete)

	bookCtrl := controller.NewBookController(db)
	books := api.Group("/books")
	books.Get("/", bookCtrl.List)
	books.Get("/:id", bookCtrl.GetByID)
	books.Post("/", bookCtrl.Create)
	books.Put("/:id", bookCtrl.Update)
	books.Delete("/:id", bookCtrl.Delete)

	memberCtrl := controller.NewMemberController(db)
	members := api.Group("/members")
	members.Get("/", memberCtrl.List)
	members.Get("/:id", memberCtrl.GetByID)
	members.Post("/", memberCtrl.Create)
	members.Put("/:id", memberCtrl.Update)
	members.Delete("/:id", memberCtrl.Delete)

	copyCtrl := controller.NewCopyController(db)
	copies := api.Group("/copies")
	copies.Get("/", copyCtrl.List)
	copies.Get("/:id", copyCtrl.GetByID)
	copies.Post("/", copyCtrl.Create)
	copies.Put("/:id", copyCtrl.Update)
	copies.Delete("/:id", copyCtrl.Delete)

	trxCtrl := controller.NewTransactionController(db)
	transactions := api.Group("/transactions")
	transactions.Get("/", trxCtrl.List)
	transactions.Get("/:id", trxCtrl.GetByID)
	transactions.Post("/", trxCtrl.Create)
	transactions.Put("/:id", trxCtrl.Update)
	transactions.Delete("/:id", trxCtrl.Delete)
}
