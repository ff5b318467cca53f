package errors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// WrapGormError maps a raw GORM/driver error onto the shared taxonomy.
// Errors with no specific mapping are treated as store failures.
func WrapGormError(rawErr error) error {
	if rawErr == nil {
		return nil
	}

	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(rawErr, gorm.ErrDuplicatedKey):
		return ErrDuplicateEntry
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062: // unique index violation
			return ErrDuplicateEntry
		case 1452: // foreign key target missing
			return ErrNotFound
		case 1045, 1049, 1146:
			return fmt.Errorf("%w: %s", ErrStoreUnavailable, mysqlErr.Message)
		}
	}

	if errors.Is(rawErr, gorm.ErrInvalidDB) ||
		errors.Is(rawErr, gorm.ErrInvalidTransaction) {
		return ErrStoreUnavailable
	}

	return fmt.Errorf("%w: %v", ErrStoreUnavailable, rawErr)
}
