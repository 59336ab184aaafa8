// Package repository defines the persistence interfaces the services depend
// on, plus their GORM implementations. Implementations translate
// gorm.ErrRecordNotFound into the domain taxonomy so nothing above this
// package imports gorm.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
