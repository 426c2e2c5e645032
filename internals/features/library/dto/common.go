// file: internals/features/library/dto/common.go
package dto

import "strings"

// util kecil
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
