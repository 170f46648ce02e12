package canvas

// DefaultWindowSize is the default number of points retained per series.
const DefaultWindowSize = 60

// Window is a fixed-capacity rolling series of float64 samples. Pushing
// beyond capacity evicts the oldest point.
type Window struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewWindow creates a window with the given capacity. A non-positive
// capacity falls back to DefaultWindowSize.
func NewWindow(size int) *Window {
	if size <= 0 {
		size = DefaultWindowSize
	}
	return &Window{
		data: make([]float64, size),
		size: size,
	}
}

// Push appends a sample, evicting the oldest if the window is full.
func (w *Window) Push(value float64) {
	w.data[w.head] = value
	w.head = (w.head + 1) % w.size
	if w.count < w.size {
		w.count++
	}
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return w.count
}

// Cap returns the window capacity.
func (w *Window) Cap() int {
	return w.size
}

// Values returns all held samples in chronological order (oldest first).
// The returned slice is a copy; callers may retain it freely.
func (w *Window) Values() []float64 {
	if w.count == 0 {
		return nil
	}
	result := make([]float64, w.count)
	start := (w.head - w.count + w.size) % w.size
	for i := 0; i < w.count; i++ {
		result[i] = w.data[(start+i)%w.size]
	}
	return result
}

// Last returns the most recent sample, or 0 when empty.
func (w *Window) Last() float64 {
	if w.count == 0 {
		return 0
	}
	return w.data[(w.head-1+w.size)%w.size]
}
