package resource

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidscan/jsurlx/internal/config"
)

func TestNew_AppliesDefaults(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: true}, zerolog.Nop())
	require.NotNil(t, m)
	assert.Equal(t, int64(config.DefaultResourceMemoryCeilingMB), m.ceiling)
}

func TestSample_ReportsGoroutinesAndSysMem(t *testing.T) {
	u := Sample()
	assert.NotZero(t, u.SysMB)
	assert.NotZero(t, u.Goroutines)
}

func TestMonitor_StartStopIdempotent(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: true, CheckIntervalSecs: 1, MemoryCeilingMB: 4096}, zerolog.Nop())

	m.Start()
	m.Start()
	assert.True(t, m.isRunning)

	m.Stop()
	m.Stop()
	assert.False(t, m.isRunning)
}

func TestMonitor_DisabledStartIsNoop(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: false}, zerolog.Nop())
	m.Start()
	assert.False(t, m.isRunning)
}

func TestMonitor_CheckCeiling(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: true, MemoryCeilingMB: 1}, zerolog.Nop())
	exceeded, u := m.CheckCeiling(Usage{AllocMB: 2})
	assert.True(t, exceeded)
	assert.Equal(t, int64(2), u.AllocMB)

	exceeded, _ = m.CheckCeiling(Usage{AllocMB: 0})
	assert.False(t, exceeded)
}

func TestMonitor_WrapUnit_RunsFnAndPropagatesError(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: true, MemoryCeilingMB: 4096}, zerolog.Nop())
	sentinel := errors.New("boom")

	called := false
	err := m.WrapUnit("unit-1", func() error {
		called = true
		return sentinel
	})

	assert.True(t, called)
	assert.ErrorIs(t, err, sentinel)
}

func TestMonitor_WrapUnit_DisabledStillRunsFn(t *testing.T) {
	m := New(config.ResourceConfig{Enabled: false}, zerolog.Nop())

	called := false
	err := m.WrapUnit("unit-1", func() error {
		called = true
		return nil
	})

	assert.True(t, called)
	assert.NoError(t, err)
}
