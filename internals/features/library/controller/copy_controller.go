// file: internals/features/library/controller/copy_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
	helper "perpustakaan_backend/internals/helpers"
)

type CopyController struct {
	DB    *gorm.DB
	store *store.Store[model.CopyModel]
}

func NewCopyController(db *gorm.DB) *CopyController {
	return &CopyController{
		DB:    db,
		store: store.New[model.CopyModel](db, "copy_id"),
	}
}

func (h *CopyController) List(c *fiber.Ctx) error {
	items, err := h.store.ListAll(c.UserContext())
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data eksemplar")
	}
	return helper.JsonOK(c, items)
}

func (h *CopyController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data eksemplar")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Eksemplar tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

func (h *CopyController) Create(c *fiber.Ctx) error {
	var req dto.CopyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.store.Create(c.UserContext(), m); err != nil {
		switch {
		case isUniqueViolation(err):
			return helper.JsonError(c, fiber.StatusConflict, "copy_identifier sudah digunakan")
		case isFKViolation(err):
			return helper.JsonError(c, fiber.StatusBadRequest, "book_id berisi id yang tidak terdaftar")
		default:
			return jsonStoreError(c, err, "Gagal membuat eksemplar")
		}
	}
	return helper.JsonCreated(c, m)
}

func (h *CopyController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CopyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal ("+err.Error()+")")
	}

	m, err := h.store.UpdateByID(c.UserContext(), id, req.ToPatch())
	if err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "copy_identifier sudah digunakan")
		}
		return jsonStoreError(c, err, "Gagal memperbarui eksemplar")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Eksemplar tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

// DELETE tidak menyentuh transactions yang menunjuk eksemplar ini —
// perilaku lama yang dipertahankan (lihat catatan desain).
func (h *CopyController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.store.DeleteByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus eksemplar")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Eksemplar tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}
