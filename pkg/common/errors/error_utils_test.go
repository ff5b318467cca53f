package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/mcmikius/TILApp/pkg/common/errors"
)

func TestWrapGormError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, apperrors.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, apperrors.ErrDuplicateEntry},
		{"mysql unique violation", &mysql.MySQLError{Number: 1062, Message: "duplicate"}, apperrors.ErrDuplicateEntry},
		{"mysql missing fk target", &mysql.MySQLError{Number: 1452, Message: "fk"}, apperrors.ErrNotFound},
		{"mysql missing table", &mysql.MySQLError{Number: 1146, Message: "no table"}, apperrors.ErrStoreUnavailable},
		{"unknown error", stderrors.New("boom"), apperrors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperrors.WrapGormError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
