// file: internals/features/library/controller/book_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	service "perpustakaan_backend/internals/features/library/service"
	helper "perpustakaan_backend/internals/helpers"
)

type BookController struct {
	DB  *gorm.DB
	svc *service.BookService
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{
		DB:  db,
		svc: service.NewBookService(db),
	}
}

// =========================================================
// LIST - GET /api/books
// Filter opsional: ?q= &isbn= &year= &limit= &offset=
// Tanpa parameter: list penuh, urut book_id.
// =========================================================
func (h *BookController) List(c *fiber.Ctx) error {
	year, err := helper.ParseIntQuery(c, "year")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	paging := helper.ResolvePaging(c, 100)

	items, err := h.svc.List(c.UserContext(), service.BookListFilter{
		Q:      c.Query("q"),
		ISBN:   c.Query("isbn"),
		Year:   year,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, items)
}

// =========================================================
// GET BY ID - GET /api/books/:id (dengan authors + genres)
// =========================================================
func (h *BookController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	detail, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data buku")
	}
	if detail == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	return helper.JsonOK(c, detail)
}

// =========================================================
// CREATE - POST /api/books
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	detail, err := h.svc.Create(c.UserContext(), &req)
	if err != nil {
		var refErr *service.MissingRefError
		if errors.As(err, &refErr) {
			return helper.JsonError(c, fiber.StatusBadRequest, refErr.Error())
		}
		return jsonStoreError(c, err, "Gagal membuat buku")
	}
	return helper.JsonCreated(c, detail)
}

// =========================================================
// UPDATE - PUT /api/books/:id
// Patch parsial; author_ids/genre_ids (bila dikirim) me-replace
// seluruh himpunan relasi.
// =========================================================
func (h *BookController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal ("+err.Error()+")")
	}

	detail, err := h.svc.Update(c.UserContext(), id, &req)
	if err != nil {
		var refErr *service.MissingRefError
		if errors.As(err, &refErr) {
			return helper.JsonError(c, fiber.StatusBadRequest, refErr.Error())
		}
		return jsonStoreError(c, err, "Gagal memperbarui buku")
	}
	if detail == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	return helper.JsonOK(c, detail)
}

// =========================================================
// DELETE - DELETE /api/books/:id (relasi dibersihkan dulu)
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus buku")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}
