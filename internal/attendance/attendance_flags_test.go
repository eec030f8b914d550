package attendance

import (
	"testing"

	attendanceerrors "go-workforce/internal/attendance/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseNoteFlags(t *testing.T) {
	flags, err := ParseNoteFlags([]string{"on_leave", " LATE ", "late", ""})
	assert.NoError(t, err)
	assert.Equal(t, NoteFlags{FlagLate, FlagOnLeave}, flags)
	assert.True(t, flags.Has(FlagLate))
	assert.False(t, flags.Has(FlagEarlyLeave))

	_, err = ParseNoteFlags([]string{"sick"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidNoteFlag)
}

func TestNoteFlags_ValueAndScan(t *testing.T) {
	v, err := NoteFlags{FlagLate, FlagEarlyLeave}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "late,early_leave", v)

	v, err = NoteFlags(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, v)

	var flags NoteFlags
	assert.NoError(t, flags.Scan([]byte("early_leave,late")))
	assert.Equal(t, NoteFlags{FlagLate, FlagEarlyLeave}, flags)

	assert.NoError(t, flags.Scan(nil))
	assert.Empty(t, flags)

	assert.Error(t, flags.Scan(42))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))
	assert.False(t, CanTransition(StatusApproved, StatusRejected))
	assert.False(t, CanTransition(StatusRejected, StatusApproved))
	assert.False(t, CanTransition(StatusPending, StatusPending))

	assert.True(t, Deletable(StatusPending))
	assert.True(t, Deletable(StatusRejected))
	assert.False(t, Deletable(StatusApproved))
}
