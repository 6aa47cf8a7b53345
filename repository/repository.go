package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Typed failures surfaced by the repositories. Controllers map these to
// HTTP status codes; everything else is treated as a server error.
var (
	ErrDuplicate  = errors.New("duplicate record")
	ErrNotFound   = errors.New("record not found")
	ErrOutOfRange = errors.New("value out of range")
)

// translate converts gorm's translated store errors into the
// repository's sentinel errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return ErrOutOfRange
	default:
		return err
	}
}
