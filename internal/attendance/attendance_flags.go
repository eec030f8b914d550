package attendance

import (
	"database/sql/driver"
	"fmt"
	"slices"
	"strings"

	attendanceerrors "go-workforce/internal/attendance/errors"
)

type NoteFlag string

const (
	FlagLate       NoteFlag = "late"
	FlagEarlyLeave NoteFlag = "early_leave"
	FlagOnLeave    NoteFlag = "on_leave"
)

var flagOrder = []NoteFlag{FlagLate, FlagEarlyLeave, FlagOnLeave}

// NoteFlags is a set of note tokens. It is stored as a comma-joined string and rendered as a
// JSON array.
type NoteFlags []NoteFlag

// ParseNoteFlags dedupes and orders raw tokens. Unknown tokens are rejected.
func ParseNoteFlags(raw []string) (NoteFlags, error) {
	seen := make(map[NoteFlag]bool, len(raw))
	for _, r := range raw {
		f := NoteFlag(strings.ToLower(strings.TrimSpace(r)))
		if f == "" {
			continue
		}
		if !slices.Contains(flagOrder, f) {
			return nil, attendanceerrors.ErrInvalidNoteFlag
		}
		seen[f] = true
	}
	out := make(NoteFlags, 0, len(seen))
	for _, f := range flagOrder {
		if seen[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

func (n NoteFlags) Has(f NoteFlag) bool {
	return slices.Contains(n, f)
}

func (n NoteFlags) Strings() []string {
	out := make([]string, len(n))
	for i, f := range n {
		out[i] = string(f)
	}
	return out
}

func (n NoteFlags) Value() (driver.Value, error) {
	if len(n) == 0 {
		return nil, nil
	}
	return strings.Join(n.Strings(), ","), nil
}

func (n *NoteFlags) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*n = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("attendance: cannot scan %T into NoteFlags", src)
	}
	if s == "" {
		*n = nil
		return nil
	}
	flags, err := ParseNoteFlags(strings.Split(s, ","))
	if err != nil {
		return err
	}
	*n = flags
	return nil
}
