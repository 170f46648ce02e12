package metrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"vitop/internal/errors"
)

// CollectorConfig carries the immutable options the collector needs.
type CollectorConfig struct {
	TemperatureUnit TemperatureUnit
	ShowAverageCPU  bool
}

// Collector builds Snapshots from the host via gopsutil. It keeps a small
// cache of previous per-process IO counters so process disk throughput can
// be reported as a rate; everything else in a Snapshot is a direct read.
type Collector struct {
	cfg    CollectorConfig
	stale  *StalenessTracker
	prevIO map[int32]procIO
	prevAt time.Time
}

type procIO struct {
	read  uint64
	write uint64
}

// NewCollector creates a collector with the given options.
func NewCollector(cfg CollectorConfig) *Collector {
	return &Collector{
		cfg:    cfg,
		stale:  NewStalenessTracker(DefaultStaleMax),
		prevIO: make(map[int32]procIO),
	}
}

// Collect reads all sub-metrics and assembles a Snapshot. A sub-metric that
// cannot be read is left unavailable (nil) rather than zeroed; Collect only
// returns an error when nothing at all could be read.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	now := time.Now()
	snap := &Snapshot{TakenAt: now}
	available := 0

	if cpuM := c.collectCPU(ctx); cpuM != nil {
		snap.CPU = cpuM
		available++
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		snap.Memory = &MemoryMetrics{UsedBytes: vm.Used, TotalBytes: vm.Total}
		available++
	}

	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil && sw != nil {
		snap.Swap = &SwapMetrics{UsedBytes: sw.Used, TotalBytes: sw.Total}
		available++
	}

	if counters, err := net.IOCountersWithContext(ctx, true); err == nil {
		for _, nic := range counters {
			snap.Network = append(snap.Network, NetworkCounters{
				Interface: nic.Name,
				RxBytes:   nic.BytesRecv,
				TxBytes:   nic.BytesSent,
			})
		}
		available++
	}

	if disks := c.collectDisks(ctx); disks != nil {
		snap.Disks = disks
		available++
	}

	if temps := c.collectTemps(ctx); temps != nil {
		snap.Temps = temps
		available++
	}

	if procs := c.collectProcesses(ctx, now); procs != nil {
		snap.Processes = procs
		available++
	}

	if available == 0 {
		return nil, errors.New(errors.ErrCollect,
			"No host metrics could be read",
			"Check that /proc and /sys are accessible")
	}
	return snap, nil
}

func (c *Collector) collectCPU(ctx context.Context) *CPUMetrics {
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil || len(perCore) == 0 {
		return nil
	}
	m := &CPUMetrics{PerCore: perCore}
	if c.cfg.ShowAverageCPU {
		if avg, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(avg) > 0 {
			m.Average = avg[0]
			m.HasAverage = true
		}
	}
	return m
}

func (c *Collector) collectDisks(ctx context.Context) []DiskUsage {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil
	}
	var disks []DiskUsage
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage == nil {
			continue
		}
		disks = append(disks, DiskUsage{
			Device:      p.Device,
			Mount:       p.Mountpoint,
			UsedBytes:   usage.Used,
			TotalBytes:  usage.Total,
			UsedPercent: usage.UsedPercent,
		})
	}
	return disks
}

func (c *Collector) collectTemps(ctx context.Context) []TemperatureReading {
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		return nil
	}
	var temps []TemperatureReading
	for _, s := range stats {
		temps = append(temps, TemperatureReading{
			Sensor: s.SensorKey,
			Value:  c.cfg.TemperatureUnit.FromCelsius(s.Temperature),
			Unit:   c.cfg.TemperatureUnit,
		})
	}
	return temps
}

func (c *Collector) collectProcesses(ctx context.Context, now time.Time) []ProcessRecord {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil
	}

	// Per-process IO rates need a previous reading; once the cache is
	// older than the staleness threshold its deltas would misreport
	// ancient activity as current, so it is discarded instead.
	cacheUsable := !c.stale.Expired(c.prevAt, now)
	elapsed := now.Sub(c.prevAt).Seconds()
	newIO := make(map[int32]procIO, len(procs))

	var records []ProcessRecord
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		cpuPct, _ := p.CPUPercentWithContext(ctx)
		memPct, _ := p.MemoryPercentWithContext(ctx)
		ppid, _ := p.PpidWithContext(ctx)

		rec := ProcessRecord{
			PID:        p.Pid,
			ParentPID:  ppid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: float64(memPct),
		}

		if io, err := p.IOCountersWithContext(ctx); err == nil && io != nil {
			if prev, ok := c.prevIO[p.Pid]; ok && cacheUsable && elapsed > 0 {
				if io.ReadBytes >= prev.read {
					rec.ReadBytesPerSec = float64(io.ReadBytes-prev.read) / elapsed
				}
				if io.WriteBytes >= prev.write {
					rec.WriteBytesPerSec = float64(io.WriteBytes-prev.write) / elapsed
				}
			}
			newIO[p.Pid] = procIO{read: io.ReadBytes, write: io.WriteBytes}
		}

		records = append(records, rec)
	}

	c.prevIO = newIO
	c.prevAt = now
	c.stale.MarkSuccess(now)
	return records
}
