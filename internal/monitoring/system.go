// Package monitoring exposes a point-in-time snapshot of host
// resources for the ops endpoint.
package monitoring

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemUsedBytes  uint64  `json:"mem_used_bytes"`
	MemTotalBytes uint64  `json:"mem_total_bytes"`
	DiskUsedBytes uint64  `json:"disk_used_bytes"`
	DiskFreeBytes uint64  `json:"disk_free_bytes"`
}

// Snapshot samples CPU, memory and disk usage. Sampling errors leave
// the corresponding fields zero; the endpoint is informational only.
func Snapshot() SystemSnapshot {
	var snap SystemSnapshot

	if percents, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemUsedBytes = vm.Used
		snap.MemTotalBytes = vm.Total
	}
	if du, err := disk.Usage("/"); err == nil {
		snap.DiskUsedBytes = du.Used
		snap.DiskFreeBytes = du.Free
	}

	return snap
}
