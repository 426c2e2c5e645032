// file: internals/features/library/controller/author_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
	helper "perpustakaan_backend/internals/helpers"
)

type AuthorController struct {
	DB    *gorm.DB
	store *store.Store[model.AuthorModel]
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{
		DB:    db,
		store: store.New[model.AuthorModel](db, "author_id"),
	}
}

// =========================================================
// LIST - GET /api/authors
// =========================================================
func (h *AuthorController) List(c *fiber.Ctx) error {
	items, err := h.store.ListAll(c.UserContext())
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data penulis")
	}
	return helper.JsonOK(c, items)
}

// =========================================================
// GET BY ID - GET /api/authors/:id
// =========================================================
func (h *AuthorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data penulis")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penulis tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

// =========================================================
// CREATE - POST /api/authors
// =========================================================
func (h *AuthorController) Create(c *fiber.Ctx) error {
	var req dto.AuthorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.store.Create(c.UserContext(), m); err != nil {
		return jsonStoreError(c, err, "Gagal membuat penulis")
	}
	return helper.JsonCreated(c, m)
}

// =========================================================
// UPDATE - PUT /api/authors/:id
// =========================================================
func (h *AuthorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.AuthorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.store.UpdateByID(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return jsonStoreError(c, err, "Gagal memperbarui penulis")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penulis tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

// =========================================================
// DELETE - DELETE /api/authors/:id
// =========================================================
func (h *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.store.DeleteByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus penulis")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Penulis tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}
