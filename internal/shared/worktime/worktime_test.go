package worktime_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-workforce/internal/shared/worktime"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	v, err := worktime.ParseTimeOfDay("22:30")
	assert.NoError(t, err)
	assert.Equal(t, worktime.TimeOfDay(22*60+30), v)
	assert.Equal(t, "22:30", v.String())

	_, err = worktime.ParseTimeOfDay("25:00")
	assert.ErrorIs(t, err, worktime.ErrInvalidTimeOfDay)
}

func TestShiftHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		breakMin   int
		want       string
	}{
		{"morning with break", "08:00", "17:00", 60, "8"},
		{"overnight night shift", "22:00", "06:00", 30, "7.5"},
		{"break longer than span", "08:00", "08:30", 60, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := worktime.ParseTimeOfDay(tt.start)
			end, _ := worktime.ParseTimeOfDay(tt.end)
			got := worktime.ShiftHours(start, end, tt.breakMin)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestHoursBetween(t *testing.T) {
	in := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 6, 45, 0, 0, time.UTC)
	assert.True(t, decimal.RequireFromString("8.75").Equal(worktime.HoursBetween(in, out)))
	assert.True(t, worktime.HoursBetween(out, in).IsZero())
}

func TestTimeOfDayJSONAndScan(t *testing.T) {
	var v struct {
		Start worktime.TimeOfDay `json:"start_time"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"start_time":"06:15"}`), &v))
	assert.Equal(t, "06:15", v.Start.String())

	var scanned worktime.TimeOfDay
	assert.NoError(t, scanned.Scan("07:05:00"))
	assert.Equal(t, "07:05", scanned.String())
}
