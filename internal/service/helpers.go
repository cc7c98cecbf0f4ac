package service

import "contact_system/internal/apperr"

// nullable maps an absent optional field to a NULL column value
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// validID rejects non-positive identifiers before any lookup runs
func validID(id uint, field string) error {
	if id == 0 {
		return apperr.Validation(field + " must be a positive number")
	}
	return nil
}
