package resource

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	cfgpkg "github.com/corvidscan/jsurlx/internal/config"
)

// Monitor periodically samples resource usage and warns when the
// configured memory ceiling is exceeded, and can bracket a single
// Source Unit's pass with before/after samples.
type Monitor struct {
	cfg      cfgpkg.ResourceConfig
	logger   zerolog.Logger
	ceiling  int64
	interval time.Duration

	mu        sync.RWMutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New builds a Monitor from a config.ResourceConfig. If cfg.Enabled is
// false, Start is a no-op and WrapUnit runs fn without sampling.
func New(cfg cfgpkg.ResourceConfig, logger zerolog.Logger) *Monitor {
	interval := time.Duration(cfg.CheckIntervalSecs) * time.Second
	if interval <= 0 {
		interval = time.Duration(cfgpkg.DefaultResourceCheckIntervalSecs) * time.Second
	}
	ceiling := cfg.MemoryCeilingMB
	if ceiling <= 0 {
		ceiling = cfgpkg.DefaultResourceMemoryCeilingMB
	}

	return &Monitor{
		cfg:      cfg,
		logger:   logger.With().Str("component", "resource.Monitor").Logger(),
		ceiling:  ceiling,
		interval: interval,
	}
}

// Start begins background sampling. No-op if disabled or already running.
func (m *Monitor) Start() {
	if !m.cfg.Enabled {
		return
	}
	m.mu.Lock()
	if m.isRunning {
		m.mu.Unlock()
		return
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.isRunning = true
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run()

	m.logger.Info().
		Int64("memory_ceiling_mb", m.ceiling).
		Dur("check_interval", m.interval).
		Msg("resource monitor started")
}

// Stop halts background sampling.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.isRunning {
		m.mu.Unlock()
		return
	}
	m.isRunning = false
	cancel := m.cancel
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
	m.logger.Info().Msg("resource monitor stopped")
}

func (m *Monitor) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.checkAndLog(Sample())
		}
	}
}

func (m *Monitor) checkAndLog(u Usage) {
	if exceeded, _ := m.CheckCeiling(u); exceeded {
		m.logger.Warn().
			Int64("alloc_mb", u.AllocMB).
			Int64("ceiling_mb", m.ceiling).
			Int("goroutines", u.Goroutines).
			Float64("system_mem_percent", u.SystemMemPercent).
			Msg("memory usage above ceiling")
		return
	}

	m.logger.Debug().
		Int64("alloc_mb", u.AllocMB).
		Int64("sys_mb", u.SysMB).
		Int("goroutines", u.Goroutines).
		Int64("gc_count", u.GCCount).
		Msg("resource usage")
}

// CheckCeiling reports whether u's allocated memory has crossed the
// configured ceiling.
func (m *Monitor) CheckCeiling(u Usage) (bool, Usage) {
	return u.AllocMB > m.ceiling, u
}

// WrapUnit brackets fn — a Source Unit's C2+C7 pass — with before/after
// samples, logging the delta and warning if either sample crosses the
// ceiling. If the monitor is disabled, fn runs unsampled.
func (m *Monitor) WrapUnit(unitID string, fn func() error) error {
	if !m.cfg.Enabled {
		return fn()
	}

	before := Sample()
	if exceeded, _ := m.CheckCeiling(before); exceeded {
		m.logger.Warn().
			Str("unit_id", unitID).
			Int64("alloc_mb", before.AllocMB).
			Int64("ceiling_mb", m.ceiling).
			Msg("memory ceiling already exceeded before unit pass")
	}

	err := fn()

	after := Sample()
	log := m.logger.Debug()
	if exceeded, _ := m.CheckCeiling(after); exceeded {
		log = m.logger.Warn()
	}
	log.
		Str("unit_id", unitID).
		Int64("alloc_before_mb", before.AllocMB).
		Int64("alloc_after_mb", after.AllocMB).
		Int64("delta_mb", after.AllocMB-before.AllocMB).
		Int64("gc_count", after.GCCount-before.GCCount).
		Msg("unit pass resource usage")

	return err
}
