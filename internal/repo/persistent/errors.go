package persistent

import (
	"errors"
	"fmt"

	"immo-media/internal/entity"

	"gorm.io/gorm"
)

// translateError maps gorm sentinels onto the domain taxonomy. The gorm handle
// must be opened with TranslateError for duplicate keys to be recognised.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", entity.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", entity.ErrConflict, err)
	default:
		return err
	}
}
