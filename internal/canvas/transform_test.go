package canvas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitop/internal/metrics"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func snapshotAt(at time.Time, rx, tx uint64) *metrics.Snapshot {
	return &metrics.Snapshot{
		TakenAt: at,
		CPU:     &metrics.CPUMetrics{PerCore: []float64{10, 20}},
		Memory:  &metrics.MemoryMetrics{UsedBytes: 4 << 30, TotalBytes: 8 << 30},
		Swap:    &metrics.SwapMetrics{UsedBytes: 1 << 30, TotalBytes: 4 << 30},
		Network: []metrics.NetworkCounters{
			{Interface: "eth0", RxBytes: rx, TxBytes: tx},
			{Interface: "lo", RxBytes: 1 << 40, TxBytes: 1 << 40},
		},
		Processes: []metrics.ProcessRecord{
			{PID: 2, Name: "b", CPUPercent: 5},
			{PID: 1, Name: "a", CPUPercent: 9},
		},
	}
}

func TestFirstSnapshotRateIsZero(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	d := tr.Transform(snapshotAt(t0, 5000, 3000), metrics.DefaultSortState())

	require.Equal(t, []float64{0}, d.NetRx)
	require.Equal(t, []float64{0}, d.NetTx)
	assert.Equal(t, "0 B/s", d.RxDisplay)
	assert.Equal(t, "0 B/s", d.TxDisplay)
}

func TestRateFromCounterDelta(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	tr.Transform(snapshotAt(t0, 1000, 2000), metrics.DefaultSortState())
	d := tr.Transform(snapshotAt(t0.Add(2*time.Second), 1000+4096, 2000+2048), metrics.DefaultSortState())

	require.Len(t, d.NetRx, 2)
	assert.Equal(t, 2048.0, d.NetRx[1]) // 4096 bytes over 2s
	assert.Equal(t, 1024.0, d.NetTx[1])
	assert.Equal(t, "2.0 KiB/s", d.RxDisplay)
	assert.Equal(t, "1.0 KiB/s", d.TxDisplay)
}

func TestCounterResetClampsToZero(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	tr.Transform(snapshotAt(t0, 1_000_000, 1_000_000), metrics.DefaultSortState())
	d := tr.Transform(snapshotAt(t0.Add(time.Second), 500, 400), metrics.DefaultSortState())

	require.Len(t, d.NetRx, 2)
	assert.Equal(t, 0.0, d.NetRx[1], "decreasing counter must clamp to zero, not go negative")
	assert.Equal(t, 0.0, d.NetTx[1])
}

func TestIdenticalCountersYieldZeroRate(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	tr.Transform(snapshotAt(t0, 7777, 8888), metrics.DefaultSortState())
	d := tr.Transform(snapshotAt(t0.Add(time.Second), 7777, 8888), metrics.DefaultSortState())

	require.Len(t, d.NetRx, 2)
	assert.Equal(t, 0.0, d.NetRx[1])
	assert.Equal(t, 0.0, d.NetTx[1])
	assert.Equal(t, "0 B/s", d.RxDisplay)
}

func TestStalePreviousCountersIgnored(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	tr.Transform(snapshotAt(t0, 1000, 1000), metrics.DefaultSortState())

	// Next snapshot arrives well past the staleness threshold; the cached
	// counters must be treated as absent, not diffed.
	d := tr.Transform(snapshotAt(t0.Add(5*time.Minute), 10_000_000, 10_000_000), metrics.DefaultSortState())

	require.Len(t, d.NetRx, 2)
	assert.Equal(t, 0.0, d.NetRx[1])
	assert.Equal(t, 0.0, d.NetTx[1])
}

func TestRollingWindowEviction(t *testing.T) {
	const capacity = 4
	tr := NewTransformer(capacity, time.Minute)

	var d *Data
	for i := 0; i < 9; i++ {
		at := t0.Add(time.Duration(i) * time.Second)
		d = tr.Transform(snapshotAt(at, uint64(i)*1000, uint64(i)*1000), metrics.DefaultSortState())
	}

	assert.Len(t, d.NetRx, capacity)
	assert.Len(t, d.Mem, capacity)
	assert.Len(t, d.Swap, capacity)
	for _, s := range d.CPU {
		assert.Len(t, s.Points, capacity)
	}
}

func TestLoopbackExcludedFromRates(t *testing.T) {
	tr := NewTransformer(10, time.Minute)

	first := snapshotAt(t0, 1000, 1000)
	second := snapshotAt(t0.Add(time.Second), 1000, 1000)
	// Loopback traffic changes; the reported rate must not.
	second.Network[1].RxBytes += 1 << 20

	tr.Transform(first, metrics.DefaultSortState())
	d := tr.Transform(second, metrics.DefaultSortState())
	assert.Equal(t, 0.0, d.NetRx[1])
}

func TestMemSwapPercentSeries(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	d := tr.Transform(snapshotAt(t0, 0, 0), metrics.DefaultSortState())

	require.Len(t, d.Mem, 1)
	assert.InDelta(t, 50.0, d.Mem[0], 0.01)
	require.Len(t, d.Swap, 1)
	assert.InDelta(t, 25.0, d.Swap[0], 0.01)
}

func TestUnavailableSectionsProduceNoSeries(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	snap := &metrics.Snapshot{TakenAt: t0} // everything unavailable

	d := tr.Transform(snap, metrics.DefaultSortState())

	assert.Empty(t, d.CPU)
	assert.Empty(t, d.Mem)
	assert.Empty(t, d.Swap)
	assert.Empty(t, d.Disks)
	assert.Empty(t, d.Temps)
	// Network unavailable is distinct from zero traffic: the rate series
	// still advances, holding zero for the tick.
	assert.Equal(t, []float64{0}, d.NetRx)
}

func TestAverageCPUSeriesFirst(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	snap := snapshotAt(t0, 0, 0)
	snap.CPU.Average = 15
	snap.CPU.HasAverage = true

	d := tr.Transform(snap, metrics.DefaultSortState())

	require.Len(t, d.CPU, 3)
	assert.Equal(t, "AVG", d.CPU[0].Label)
	assert.Equal(t, []float64{15}, d.CPU[0].Points)
	assert.Equal(t, "CPU0", d.CPU[1].Label)
	assert.Equal(t, "CPU1", d.CPU[2].Label)
}

func TestProcessTableSorted(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	d := tr.Transform(snapshotAt(t0, 0, 0), metrics.DefaultSortState())

	require.Len(t, d.Processes, 2)
	assert.Equal(t, int32(1), d.Processes[0].PID, "cpu descending puts pid 1 (9%%) first")
}

func TestResortRebuildsOnlyProcessTable(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	d := tr.Transform(snapshotAt(t0, 0, 0), metrics.DefaultSortState())

	resorted := tr.Resort(d, metrics.SortState{Column: metrics.SortByPID, Descending: false})

	require.Len(t, resorted.Processes, 2)
	assert.Equal(t, int32(1), resorted.Processes[0].PID)
	assert.Equal(t, int32(2), resorted.Processes[1].PID)

	// Series are carried over untouched.
	assert.Equal(t, d.NetRx, resorted.NetRx)
	assert.Equal(t, d.Mem, resorted.Mem)
}

func TestDisksAndTempsRebuilt(t *testing.T) {
	tr := NewTransformer(10, time.Minute)
	snap := snapshotAt(t0, 0, 0)
	snap.Disks = []metrics.DiskUsage{
		{Device: "/dev/sda1", Mount: "/", UsedBytes: 10 << 30, TotalBytes: 50 << 30, UsedPercent: 20},
	}
	snap.Temps = []metrics.TemperatureReading{
		{Sensor: "coretemp", Value: 54.2, Unit: metrics.Celsius},
	}

	d := tr.Transform(snap, metrics.DefaultSortState())

	require.Len(t, d.Disks, 1)
	assert.Equal(t, "/dev/sda1", d.Disks[0].Device)
	assert.Equal(t, "10.0 GiB", d.Disks[0].Used)
	assert.Equal(t, "50.0 GiB", d.Disks[0].Total)

	require.Len(t, d.Temps, 1)
	assert.Equal(t, "54°C", d.Temps[0].Reading)
}
