package ids_test

import (
	"errors"
	"testing"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/ids"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	want := uuid.New()

	got, err := ids.Parse("employee_id", " "+want.String()+" ")
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	for _, bad := range []string{"", "42", uuid.Nil.String()} {
		_, err := ids.Parse("employee_id", bad)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr), bad)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, map[string]string{"field": "employee_id"}, appErr.Details)
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ids.ParseOptional("employee_shift_id", nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	blank := "  "
	got, err = ids.ParseOptional("employee_shift_id", &blank)
	assert.NoError(t, err)
	assert.Nil(t, got)

	v := uuid.NewString()
	got, err = ids.ParseOptional("employee_shift_id", &v)
	assert.NoError(t, err)
	assert.Equal(t, v, got.String())

	bad := "x"
	_, err = ids.ParseOptional("employee_shift_id", &bad)
	assert.Error(t, err)
}

func TestParseAll(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	got, err := ids.ParseAll("ids", []string{a, b})
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ids.ParseAll("ids", []string{a, "nope"})
	assert.Error(t, err)
}
