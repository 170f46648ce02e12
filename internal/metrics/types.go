package metrics

import "time"

// Snapshot is one complete set of sampled host metrics at a point in time.
// It is built once by the collector and never mutated afterwards; the next
// sample supersedes it wholesale.
//
// A nil section (or nil slice) means the collector could not read that
// sub-metric. Consumers must treat unavailable distinctly from zero.
type Snapshot struct {
	TakenAt   time.Time
	CPU       *CPUMetrics
	Memory    *MemoryMetrics
	Swap      *SwapMetrics
	Network   []NetworkCounters
	Disks     []DiskUsage
	Temps     []TemperatureReading
	Processes []ProcessRecord
}

// CPUMetrics holds per-core utilization percentages, plus an aggregate
// average pseudo-core when enabled.
type CPUMetrics struct {
	PerCore    []float64
	Average    float64
	HasAverage bool
}

// MemoryMetrics captures RAM usage in bytes.
type MemoryMetrics struct {
	UsedBytes  uint64
	TotalBytes uint64
}

// SwapMetrics captures swap usage in bytes.
type SwapMetrics struct {
	UsedBytes  uint64
	TotalBytes uint64
}

// NetworkCounters holds cumulative byte counters for a single interface.
// These are raw counters since boot; rate computation belongs to the
// display transformer, which diffs consecutive snapshots.
type NetworkCounters struct {
	Interface string
	RxBytes   uint64
	TxBytes   uint64
}

// DiskUsage captures usage for one mounted filesystem.
type DiskUsage struct {
	Device      string
	Mount       string
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
}

// TemperatureReading is a single sensor reading, already converted to the
// configured unit.
type TemperatureReading struct {
	Sensor string
	Value  float64
	Unit   TemperatureUnit
}

// ProcessRecord describes one process as reported by the collector.
type ProcessRecord struct {
	PID        int32
	ParentPID  int32
	Name       string
	CPUPercent float64
	MemPercent float64
	// Disk throughput since the previous sample, bytes per second.
	// Zero when no previous reading exists for the pid.
	ReadBytesPerSec  float64
	WriteBytesPerSec float64
}
