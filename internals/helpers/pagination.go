// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Paging struct {
	Offset int
	Limit  int
}

// ResolvePaging membaca ?limit= & ?offset= dan normalisasi.
// - limit 0 berarti tanpa batas (list penuh)
// - maxLimit membatasi limit maksimum (0 = tanpa batas)
func ResolvePaging(c *fiber.Ctx, maxLimit int) Paging {
	limitStr := strings.TrimSpace(c.Query("limit", "0"))
	offsetStr := strings.TrimSpace(c.Query("offset", "0"))

	limit, _ := strconv.Atoi(limitStr)
	if limit < 0 {
		limit = 0
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset, _ := strconv.Atoi(offsetStr)
	if offset < 0 {
		offset = 0
	}

	return Paging{Offset: offset, Limit: limit}
}
