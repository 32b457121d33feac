package logger

import (
	"testing"

	"github.com/corvidscan/jsurlx/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	cfg := config.NewDefaultLogConfig()

	log, err := New(cfg)

	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "not-a-level"

	log, err := New(cfg)

	require.NoError(t, err)
	assert.Equal(t, "info", log.GetLevel().String())
}

func TestNewWithUnitID_SucceedsWithoutLogFile(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = ""

	_, err := NewWithUnitID(cfg, "unit-1")

	require.NoError(t, err)
}
