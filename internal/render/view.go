package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitop/internal/app"
	"vitop/internal/canvas"
	"vitop/internal/ui"
)

const (
	sparkWidth  = 40
	barWidth    = 30
	maxProcRows = 15
	nameWidth   = 24
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccent).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary)

	selectedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary).
			Background(ui.ColorBorder).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted)
)

// buildView composes one full dashboard frame. Pure with respect to its
// inputs, which keeps it directly testable.
func buildView(data *canvas.Data, state *app.State) string {
	var b strings.Builder

	b.WriteString(renderHeader(state))
	b.WriteString("\n\n")

	if section := renderCPU(data); section != "" {
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := renderMemory(data); section != "" {
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := renderNetwork(data); section != "" {
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := renderDisks(data); section != "" {
		b.WriteString(section)
		b.WriteString("\n")
	}
	if section := renderTemps(data); section != "" {
		b.WriteString(section)
		b.WriteString("\n")
	}
	b.WriteString(renderProcesses(data, state))
	b.WriteString("\n")
	b.WriteString(renderFooter())

	return b.String()
}

func renderHeader(state *app.State) string {
	direction := "asc"
	if state.Sort.Descending {
		direction = "desc"
	}
	title := titleStyle.Render("vitop")
	info := labelStyle.Render(fmt.Sprintf("  sort: %s %s", state.Sort.Column, direction))
	return title + info
}

func renderCPU(data *canvas.Data) string {
	if len(data.CPU) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, sectionStyle.Render("CPU"))
	for _, series := range data.CPU {
		last := 0.0
		if len(series.Points) > 0 {
			last = series.Points[len(series.Points)-1]
		}
		line := fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-5s", series.Label)),
			ui.ColoredSparkline(series.Points, sparkWidth, ui.ColorGraph),
			ui.MetricStyle(last).Render(fmt.Sprintf("%5.1f%%", last)))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderMemory(data *canvas.Data) string {
	if len(data.Mem) == 0 && len(data.Swap) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, sectionStyle.Render("Memory"))
	if len(data.Mem) > 0 {
		lines = append(lines, gaugeLine("mem", data.Mem[len(data.Mem)-1]))
	}
	if len(data.Swap) > 0 {
		lines = append(lines, gaugeLine("swap", data.Swap[len(data.Swap)-1]))
	}
	return strings.Join(lines, "\n") + "\n"
}

func gaugeLine(label string, percent float64) string {
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(fmt.Sprintf("%-5s", label)),
		ui.Bar(barWidth, percent),
		ui.MetricStyle(percent).Render(fmt.Sprintf("%5.1f%%", percent)))
}

func renderNetwork(data *canvas.Data) string {
	if len(data.NetRx) == 0 && len(data.NetTx) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, sectionStyle.Render("Network"))
	lines = append(lines, fmt.Sprintf("%s %s %s",
		labelStyle.Render("rx   "),
		ui.ColoredSparkline(data.NetRx, sparkWidth, ui.ColorGraph),
		valueStyle.Render(data.RxDisplay)))
	lines = append(lines, fmt.Sprintf("%s %s %s",
		labelStyle.Render("tx   "),
		ui.ColoredSparkline(data.NetTx, sparkWidth, ui.ColorGraph),
		valueStyle.Render(data.TxDisplay)))
	return strings.Join(lines, "\n") + "\n"
}

func renderDisks(data *canvas.Data) string {
	if len(data.Disks) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, sectionStyle.Render("Disks"))
	for _, d := range data.Disks {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-18s", truncate(d.Mount, 18))),
			ui.Bar(barWidth, d.UsedPercent),
			valueStyle.Render(fmt.Sprintf("%s / %s", d.Used, d.Total))))
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderTemps(data *canvas.Data) string {
	if len(data.Temps) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, sectionStyle.Render("Temperatures"))
	for _, tr := range data.Temps {
		lines = append(lines, fmt.Sprintf("%s %s",
			labelStyle.Render(fmt.Sprintf("%-24s", truncate(tr.Sensor, 24))),
			valueStyle.Render(tr.Reading)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderProcesses(data *canvas.Data, state *app.State) string {
	var lines []string
	lines = append(lines, sectionStyle.Render("Processes"))
	lines = append(lines, labelStyle.Render(
		fmt.Sprintf("%7s  %-*s %6s %6s %10s %10s",
			"pid", nameWidth, "name", "cpu%", "mem%", "read/s", "write/s")))

	start, end := visibleRange(len(data.Processes), state.Selected, maxProcRows)
	for i := start; i < end; i++ {
		p := data.Processes[i]
		row := fmt.Sprintf("%7d  %-*s %6.1f %6.1f %10s %10s",
			p.PID, nameWidth, truncate(p.Name, nameWidth),
			p.CPUPercent, p.MemPercent,
			canvas.FormatRate(p.ReadBytesPerSec),
			canvas.FormatRate(p.WriteBytesPerSec))
		if i == state.Selected {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, valueStyle.Render(row))
		}
	}
	return strings.Join(lines, "\n")
}

func renderFooter() string {
	return footerStyle.Render(
		"q quit · j/k/wheel select · c cpu · m mem · p pid · n name")
}

// visibleRange picks the window of rows to show so the selection stays
// on screen.
func visibleRange(count, selected, rows int) (int, int) {
	if count <= rows {
		return 0, count
	}
	start := selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > count {
		start = count - rows
	}
	return start, start + rows
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
