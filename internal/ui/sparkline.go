package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution,
// lowest to highest.
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one row of block characters for the given series.
// Percentage-shaped data (everything in 0..100) is scaled against a
// fixed 0..100 range so successive frames stay comparable; any other
// data scales against its own min/max.
func Sparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	minVal, maxVal := seriesRange(data)
	resampled := resample(data, width)

	var out strings.Builder
	for _, val := range resampled {
		idx := int(normalize(val, minVal, maxVal) * float64(len(sparklineBlocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx > len(sparklineBlocks)-1 {
			idx = len(sparklineBlocks) - 1
		}
		out.WriteRune(sparklineBlocks[idx])
	}
	return out.String()
}

// ColoredSparkline renders a sparkline tinted by the severity of the
// most recent value when the data is percentage-shaped, or by color
// otherwise.
func ColoredSparkline(data []float64, width int, color lipgloss.Color) string {
	line := Sparkline(data, width)
	if line == "" {
		return line
	}
	if isPercentage(data) {
		color = MetricColor(data[len(data)-1])
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}

// Bar renders a horizontal usage bar: filled cells colored by their
// position's severity, the remainder muted.
func Bar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	var out strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			pos := float64(i+1) / float64(width) * 100
			out.WriteString(lipgloss.NewStyle().Foreground(MetricColor(pos)).Render("█"))
		} else {
			out.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Render("░"))
		}
	}
	return out.String()
}

func isPercentage(data []float64) bool {
	for _, v := range data {
		if v < 0 || v > 100 {
			return false
		}
	}
	return len(data) > 0
}

// seriesRange picks the scaling bounds for a series. Percentage data
// gets the fixed 0..100 range.
func seriesRange(data []float64) (minVal, maxVal float64) {
	if isPercentage(data) {
		return 0, 100
	}
	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func normalize(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// resample squeezes or stretches data to target points. Downsampling
// keeps the max of each bucket so short spikes stay visible.
func resample(data []float64, target int) []float64 {
	if len(data) == 0 || target <= 0 {
		return nil
	}
	if len(data) == target {
		return data
	}

	out := make([]float64, target)
	if len(data) < target {
		// Stretch by repeating points.
		for i := range out {
			out[i] = data[i*len(data)/target]
		}
		return out
	}

	bucket := float64(len(data)) / float64(target)
	for i := 0; i < target; i++ {
		start := int(float64(i) * bucket)
		end := int(float64(i+1) * bucket)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}
		maxVal := data[start]
		for _, v := range data[start+1 : end] {
			if v > maxVal {
				maxVal = v
			}
		}
		out[i] = maxVal
	}
	return out
}
