// Package resource implements a gopsutil-backed monitor that samples
// process and system memory around a Source Unit's C2 (symbol-table build)
// and C7 (extraction driver) passes, warning when usage crosses a
// configurable ceiling (§5: "minified bundles ... symbol counts can reach
// the hundreds of thousands").
package resource

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// Usage is a single point-in-time snapshot of process and system memory.
type Usage struct {
	AllocMB          int64
	SysMB            int64
	GCCount          int64
	NextGCMB         int64
	Goroutines       int
	SystemMemUsedMB  int64
	SystemMemTotalMB int64
	SystemMemPercent float64
}

// Sample returns the current resource usage statistics.
func Sample() Usage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	u := Usage{
		AllocMB:    int64(m.Alloc / 1024 / 1024),
		SysMB:      int64(m.Sys / 1024 / 1024),
		GCCount:    int64(m.NumGC),
		NextGCMB:   int64(m.NextGC / 1024 / 1024),
		Goroutines: runtime.NumGoroutine(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		u.SystemMemUsedMB = int64(vm.Used / 1024 / 1024)
		u.SystemMemTotalMB = int64(vm.Total / 1024 / 1024)
		u.SystemMemPercent = vm.UsedPercent
	}

	return u
}
