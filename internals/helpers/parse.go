// file: internals/helpers/parse.go
package helper

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var ErrInvalidID = errors.New("id harus bilangan bulat positif")

// ParseID membaca :id dari path; hanya bilangan bulat positif yang sah.
func ParseID(c *fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseIntQuery membaca query numerik opsional; (nil, nil) kalau tidak dikirim.
func ParseIntQuery(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(key + " harus bilangan bulat")
	}
	return &v, nil
}
