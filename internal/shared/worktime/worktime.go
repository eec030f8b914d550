package worktime

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")

func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, v)
}

// TimeOfDay is a wall clock time stored as minutes after midnight.
type TimeOfDay int

func ParseTimeOfDay(v string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidTimeOfDay
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*t = 0
		return nil
	default:
		return fmt.Errorf("worktime: cannot scan %T into TimeOfDay", src)
	}
	if len(s) > 5 {
		s = s[:5] // tolerate "HH:MM:SS"
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// SpanMinutes is the length of the block from start to end, wrapping past midnight when end is
// not after start. A block with start == end spans a full day.
func SpanMinutes(start, end TimeOfDay) int {
	span := int(end) - int(start)
	if span <= 0 {
		span += minutesPerDay
	}
	return span
}

// ShiftHours returns paid hours of a shift block: span minus break, never negative.
func ShiftHours(start, end TimeOfDay, breakMinutes int) decimal.Decimal {
	worked := SpanMinutes(start, end) - breakMinutes
	if worked < 0 {
		worked = 0
	}
	return decimal.NewFromInt(int64(worked)).Div(decimal.NewFromInt(60)).Round(2)
}

// HoursBetween is the elapsed time between two instants in hours, rounded to 2 places.
func HoursBetween(from, to time.Time) decimal.Decimal {
	minutes := int64(to.Sub(from) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)).Round(2)
}
