// file: internals/features/library/controller/common.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "perpustakaan_backend/internals/helpers"
)

var validate = validator.New()

// jsonStoreError: detail kegagalan store hanya ke log server,
// pemanggil cuma menerima pesan generik 500.
func jsonStoreError(c *fiber.Ctx, err error, message string) error {
	log.Printf("[ERROR] %s: %v", message, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, message)
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

func isFKViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "foreign")
}
