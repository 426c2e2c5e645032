// file: internals/features/library/controller/member_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	store "perpustakaan_backend/internals/features/library/store"
	helper "perpustakaan_backend/internals/helpers"
)

type MemberController struct {
	DB    *gorm.DB
	store *store.Store[model.MemberModel]
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		DB:    db,
		store: store.New[model.MemberModel](db, "member_id"),
	}
}

func (h *MemberController) List(c *fiber.Ctx) error {
	items, err := h.store.ListAll(c.UserContext())
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data anggota")
	}
	return helper.JsonOK(c, items)
}

func (h *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.store.FindByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data anggota")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

func (h *MemberController) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.store.Create(c.UserContext(), m); err != nil {
		return jsonStoreError(c, err, "Gagal membuat anggota")
	}
	return helper.JsonCreated(c, m)
}

func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal ("+err.Error()+")")
	}

	m, err := h.store.UpdateByID(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return jsonStoreError(c, err, "Gagal memperbarui anggota")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

// DELETE tidak menyentuh transactions milik anggota — perilaku lama
// yang dipertahankan (lihat catatan desain).
func (h *MemberController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.store.DeleteByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus anggota")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}
