// file: internals/features/library/controller/borrow_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpustakaan_backend/internals/features/library/dto"
	model "perpustakaan_backend/internals/features/library/model"
	service "perpustakaan_backend/internals/features/library/service"
	helper "perpustakaan_backend/internals/helpers"
)

// Lama pinjam default kalau due_date tidak dikirim di /borrows/checkout.
const defaultLoanDays = 14

// BorrowController: jalur checkout/checkin yang ramah klien — timestamp
// boleh dikosongkan. Aturannya tetap LoanService yang pegang.
type BorrowController struct {
	DB  *gorm.DB
	svc *service.LoanService
}

func NewBorrowController(db *gorm.DB) *BorrowController {
	return &BorrowController{
		DB:  db,
		svc: service.NewLoanService(db),
	}
}

// =========================================================
// POST /api/borrows/checkout
// =========================================================
func (h *BorrowController) Checkout(c *fiber.Ctx) error {
	var req dto.BorrowCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	checkoutAt := time.Now()
	if req.CheckoutTimestamp != nil {
		checkoutAt = *req.CheckoutTimestamp
	}
	dueDate := checkoutAt.AddDate(0, 0, defaultLoanDays)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	m, err := h.svc.Checkout(c.UserContext(), &model.TransactionModel{
		MemberID:          req.MemberID,
		CopyID:            req.CopyID,
		CheckoutTimestamp: checkoutAt,
		DueDate:           dueDate,
	})
	if err != nil {
		return mapCheckoutError(c, err)
	}
	return helper.JsonCreated(c, m)
}

// =========================================================
// POST /api/borrows/checkin
// =========================================================
func (h *BorrowController) Checkin(c *fiber.Ctx) error {
	var req dto.BorrowCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	returnAt := time.Now()
	if req.ReturnTimestamp != nil {
		returnAt = *req.ReturnTimestamp
	}

	m, err := h.svc.Checkin(c.UserContext(), req.TransactionID, returnAt)
	if err != nil {
		return jsonStoreError(c, err, "Gagal memproses pengembalian")
	}
	if m == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}
	return helper.JsonOK(c, m)
}
