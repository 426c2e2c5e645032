// file: internals/features/library/controller/transaction_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	service "perpustakaan_backend/internals/features/library/service"
	helper "perpustakaan_backend/internals/helpers"
)

type TransactionController struct {
	DB  *gorm.DB
	svc *service.LoanService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{
		DB:  db,
		svc: service.NewLoanService(db),
	}
}

func (h *TransactionController) List(c *fiber.Ctx) error {
	items, err := h.svc.Store().ListAll(c.UserContext())
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data transaksi")
	}
	return helper.JsonOK(c, items)
}

func (h *TransactionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Store().FindByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal mengambil data transaksi")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

// =========================================================
// CREATE - POST /api/transactions
// Jalur checkout: aturan batas pinjaman ditegakkan di sini.
// =========================================================
func (h *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.svc.Checkout(c.UserContext(), req.ToModel())
	if err != nil {
		return mapCheckoutError(c, err)
	}
	return helper.JsonCreated(c, m)
}

func (h *TransactionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.TransactionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal ("+err.Error()+")")
	}

	m, err := h.svc.Store().UpdateByID(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return jsonStoreError(c, err, "Gagal memperbarui transaksi")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}

func (h *TransactionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ok, err := h.svc.Store().DeleteByID(c.UserContext(), id)
	if err != nil {
		return jsonStoreError(c, err, "Gagal menghapus transaksi")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.JsonDeleted(c)
}

// mapCheckoutError memetakan error domain checkout ke status HTTP.
// BorrowLimitError harus tetap bisa dibedakan dari kegagalan store.
func mapCheckoutError(c *fiber.Ctx, err error) error {
	var limitErr *service.BorrowLimitError
	if errors.As(err, &limitErr) {
		return helper.JsonError(c, fiber.StatusConflict, limitErr.Error())
	}
	var refErr *service.MissingRefError
	if errors.As(err, &refErr) {
		return helper.JsonError(c, fiber.StatusBadRequest, refErr.Error())
	}
	if isFKViolation(err) {
		return helper.JsonError(c, fiber.StatusBadRequest, "copy_id berisi id yang tidak terdaftar")
	}
	return jsonStoreError(c, err, "Gagal membuat transaksi")
}
