// file: internals/features/library/controller/genre_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
	helper "perpustakaan_backend/internals/helpers"
)

type GenreController struct {
	DB    *gorm.DB
	store *store.Store[model.GenreModel]
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{
		DB:    db,
		store: store.New[model.GenreModel](db, "genre_id"),
	}
}

func (h *GenreController) List(c *fiber.Ctx) error {
	items, err := h.store.ListAll(c.UserContext())
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data genre")
	}
	return helper.JsonOK(c, items)
}

func (h *GenreController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data genre")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

func (h *GenreController) Create(c *fiber.Ctx) error {
	var req dto.GenreCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.store.Create(c.UserContext(), m); err != nil {
		return jsonStoreError(c, err, "Gagal membuat genre")
	}
	return helper.JsonCreated(c, m)
}

func (h *GenreController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.GenreUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.store.UpdateByID(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return jsonStoreError(c, err, "Gagal memperbarui genre")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

func (h *GenreController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.store.DeleteByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus genre")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}
