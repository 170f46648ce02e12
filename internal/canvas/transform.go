// Package canvas turns raw metric snapshots into render-ready display
// buffers: rolling time series, human-scaled rate strings, and the sorted
// process table. Buffers are rebuilt wholesale on every update so the
// renderer never observes data mixing two snapshots.
package canvas

import (
	"fmt"
	"time"

	"vitop/internal/metrics"
)

// CPUSeries is one CPU line: a labeled rolling window of percentages.
type CPUSeries struct {
	Label  string
	Points []float64
}

// DiskRow is one line of the disk table.
type DiskRow struct {
	Device      string
	Mount       string
	Used        string
	Total       string
	UsedPercent float64
}

// TempRow is one line of the temperature table.
type TempRow struct {
	Sensor  string
	Reading string
}

// Data holds everything the renderer needs for one frame. It is rebuilt
// from the latest snapshot and sort state, never patched in place.
type Data struct {
	NetRx     []float64
	NetTx     []float64
	RxDisplay string
	TxDisplay string

	CPU  []CPUSeries
	Mem  []float64
	Swap []float64

	Disks     []DiskRow
	Temps     []TempRow
	Processes []metrics.ProcessRecord
}

// Transformer converts snapshots into Data. It owns the rolling windows
// and the previous network counters used for rate computation; both
// survive across frames while each produced Data is disposable.
type Transformer struct {
	windowSize int
	stale      *metrics.StalenessTracker

	netRx *Window
	netTx *Window
	cpu   []*Window
	avg   *Window
	mem   *Window
	swap  *Window

	prevRx    uint64
	prevTx    uint64
	prevAt    time.Time
	havePrev  bool
	lastProcs []metrics.ProcessRecord
}

// NewTransformer creates a transformer with the given rolling-window
// capacity (non-positive means DefaultWindowSize) and staleness threshold
// for cached network counters.
func NewTransformer(windowSize int, staleMax time.Duration) *Transformer {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Transformer{
		windowSize: windowSize,
		stale:      metrics.NewStalenessTracker(staleMax),
		netRx:      NewWindow(windowSize),
		netTx:      NewWindow(windowSize),
		mem:        NewWindow(windowSize),
		swap:       NewWindow(windowSize),
	}
}

// Transform rebuilds display buffers from a fresh snapshot. The snapshot
// is read-only input; it is never retained beyond the copies made here.
func (t *Transformer) Transform(snap *metrics.Snapshot, sortState metrics.SortState) *Data {
	d := &Data{}

	t.appendNetwork(snap, d)
	t.appendCPU(snap, d)
	t.appendMemSwap(snap, d)
	buildDisks(snap, d)
	buildTemps(snap, d)

	t.lastProcs = append([]metrics.ProcessRecord(nil), snap.Processes...)
	d.Processes = sortedProcs(t.lastProcs, sortState)

	return d
}

// Resort rebuilds only the process table of prior, using the latest
// snapshot's processes and the given sort state. Sort-affecting input is
// visible immediately instead of waiting for the next sample.
func (t *Transformer) Resort(prior *Data, sortState metrics.SortState) *Data {
	if prior == nil {
		return nil
	}
	next := *prior
	next.Processes = sortedProcs(t.lastProcs, sortState)
	return &next
}

func sortedProcs(procs []metrics.ProcessRecord, sortState metrics.SortState) []metrics.ProcessRecord {
	sorted := append([]metrics.ProcessRecord(nil), procs...)
	metrics.SortProcesses(sorted, sortState.Column, sortState.Descending)
	return sorted
}

// appendNetwork pushes this tick's rx/tx rates. Rates come from diffing
// cumulative counters between consecutive snapshots over wall-clock
// elapsed time. The first snapshot, a counter decrease (reset), and a
// previous reading past the staleness threshold all yield zero rather
// than a bogus rate.
func (t *Transformer) appendNetwork(snap *metrics.Snapshot, d *Data) {
	curRx, curTx, ok := totalCounters(snap.Network)

	var rxRate, txRate float64
	if ok && t.havePrev && !t.stale.Expired(t.prevAt, snap.TakenAt) {
		elapsed := snap.TakenAt.Sub(t.prevAt).Seconds()
		if elapsed > 0 {
			if curRx >= t.prevRx {
				rxRate = float64(curRx-t.prevRx) / elapsed
			}
			if curTx >= t.prevTx {
				txRate = float64(curTx-t.prevTx) / elapsed
			}
		}
	}

	if ok {
		t.prevRx, t.prevTx = curRx, curTx
		t.prevAt = snap.TakenAt
		t.havePrev = true
	}

	t.netRx.Push(rxRate)
	t.netTx.Push(txRate)

	d.NetRx = t.netRx.Values()
	d.NetTx = t.netTx.Values()
	d.RxDisplay = FormatRate(rxRate)
	d.TxDisplay = FormatRate(txRate)
}

// totalCounters sums counters across interfaces, skipping loopback.
func totalCounters(nics []metrics.NetworkCounters) (rx, tx uint64, ok bool) {
	if nics == nil {
		return 0, 0, false
	}
	for _, nic := range nics {
		if nic.Interface == "lo" || nic.Interface == "lo0" {
			continue
		}
		rx += nic.RxBytes
		tx += nic.TxBytes
	}
	return rx, tx, true
}

func (t *Transformer) appendCPU(snap *metrics.Snapshot, d *Data) {
	if snap.CPU == nil {
		return
	}

	for i, pct := range snap.CPU.PerCore {
		if i >= len(t.cpu) {
			t.cpu = append(t.cpu, NewWindow(t.windowSize))
		}
		t.cpu[i].Push(pct)
	}

	if snap.CPU.HasAverage {
		if t.avg == nil {
			t.avg = NewWindow(t.windowSize)
		}
		t.avg.Push(snap.CPU.Average)
		d.CPU = append(d.CPU, CPUSeries{Label: "AVG", Points: t.avg.Values()})
	}

	for i := range snap.CPU.PerCore {
		d.CPU = append(d.CPU, CPUSeries{
			Label:  fmt.Sprintf("CPU%d", i),
			Points: t.cpu[i].Values(),
		})
	}
}

func (t *Transformer) appendMemSwap(snap *metrics.Snapshot, d *Data) {
	if snap.Memory != nil {
		t.mem.Push(usedPercent(snap.Memory.UsedBytes, snap.Memory.TotalBytes))
		d.Mem = t.mem.Values()
	}
	if snap.Swap != nil {
		t.swap.Push(usedPercent(snap.Swap.UsedBytes, snap.Swap.TotalBytes))
		d.Swap = t.swap.Values()
	}
}

// buildDisks and buildTemps have no history: the tables are rebuilt from
// the current reading alone.
func buildDisks(snap *metrics.Snapshot, d *Data) {
	for _, disk := range snap.Disks {
		d.Disks = append(d.Disks, DiskRow{
			Device:      disk.Device,
			Mount:       disk.Mount,
			Used:        FormatBytes(disk.UsedBytes),
			Total:       FormatBytes(disk.TotalBytes),
			UsedPercent: disk.UsedPercent,
		})
	}
}

func buildTemps(snap *metrics.Snapshot, d *Data) {
	for _, temp := range snap.Temps {
		d.Temps = append(d.Temps, TempRow{
			Sensor:  temp.Sensor,
			Reading: fmt.Sprintf("%.0f%s", temp.Value, temp.Unit.Suffix()),
		})
	}
}

func usedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) * 100 / float64(total)
}
