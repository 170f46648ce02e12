package metrics

import "sort"

// SortColumn identifies a process-table column that can order the table.
type SortColumn int

const (
	SortByCPU SortColumn = iota
	SortByMem
	SortByPID
	SortByName
)

// String returns a human-readable column label.
func (c SortColumn) String() string {
	switch c {
	case SortByMem:
		return "mem"
	case SortByPID:
		return "pid"
	case SortByName:
		return "name"
	default:
		return "cpu"
	}
}

// SortState is the (column, direction) pair that parameterizes process
// table ordering.
type SortState struct {
	Column     SortColumn
	Descending bool
}

// DefaultSortState orders by CPU usage, highest first.
func DefaultSortState() SortState {
	return SortState{Column: SortByCPU, Descending: true}
}

// SortProcesses orders procs in place by the given column and direction.
// The sort is stable: records with equal keys keep the relative order the
// collector reported them in, so repeated sorts of unchanged data are
// idempotent.
func SortProcesses(procs []ProcessRecord, col SortColumn, descending bool) {
	less := lessFunc(procs, col)
	if descending {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(procs, less)
}

func lessFunc(procs []ProcessRecord, col SortColumn) func(i, j int) bool {
	switch col {
	case SortByMem:
		return func(i, j int) bool { return procs[i].MemPercent < procs[j].MemPercent }
	case SortByPID:
		return func(i, j int) bool { return procs[i].PID < procs[j].PID }
	case SortByName:
		return func(i, j int) bool { return procs[i].Name < procs[j].Name }
	default:
		return func(i, j int) bool { return procs[i].CPUPercent < procs[j].CPUPercent }
	}
}
