package config_test

import (
	"testing"
	"time"

	"go-workforce/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ATTENDANCE_WORKFLOW_MODE", "")
	t.Setenv("PAYROLL_STANDARD_MONTHLY_HOURS", "")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, config.WorkflowModeReview, cfg.Attendance.WorkflowMode)
	assert.Equal(t, 0, cfg.Payroll.StandardMonthlyHours)
	assert.Equal(t, 5*time.Minute, cfg.Payroll.StatsCacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Kafka.OutboxLease)
	assert.Equal(t, 7*24*time.Hour, cfg.Kafka.OutboxRetention)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ATTENDANCE_WORKFLOW_MODE", "DIRECT")
	t.Setenv("PAYROLL_STANDARD_MONTHLY_HOURS", "173")
	t.Setenv("OUTBOX_POLL_INTERVAL", "1s")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, config.WorkflowModeDirect, cfg.Attendance.WorkflowMode)
	assert.Equal(t, 173, cfg.Payroll.StandardMonthlyHours)
	assert.Equal(t, time.Second, cfg.Kafka.PollInterval)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("ATTENDANCE_WORKFLOW_MODE", "auto")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("ATTENDANCE_WORKFLOW_MODE", "review")
	t.Setenv("PAYROLL_STANDARD_MONTHLY_HOURS", "many")
	_, err = config.Load()
	assert.Error(t, err)
}
