// Package report dibuja la analítica de adherencia en la terminal.
package report

import (
	"fmt"
	"strings"
	"time"

	"medtrack/internal/domain/adherence"
	"medtrack/internal/domain/analytics"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c6c"))

	statusStyles = map[adherence.Category]lipgloss.Style{
		adherence.CategoryOnTime: lipgloss.NewStyle().Foreground(lipgloss.Color("#51cf66")),
		adherence.CategoryLate:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fcc419")),
		adherence.CategoryMissed: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true),
		adherence.CategoryNone:   mutedStyle,
	}
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

const cellWidth = 4

type Options struct {
	ChartWidth  int
	ChartHeight int
}

func (o Options) withDefaults() Options {
	if o.ChartWidth < 20 {
		o.ChartWidth = 62
	}
	if o.ChartHeight < 3 {
		o.ChartHeight = 8
	}
	return o
}

// Render arma el reporte completo: resumen, calendario y gráfico diario.
func Render(d analytics.Dashboard, opts Options) string {
	opts = opts.withDefaults()

	var b strings.Builder
	b.WriteString(RenderSummary(d.Summary))
	b.WriteString("\n\n")
	b.WriteString(RenderCalendar(d.Calendar))
	b.WriteString("\n\n")
	b.WriteString(RenderDailyChart(d.Calendar, opts.ChartWidth, opts.ChartHeight))
	b.WriteString("\n")
	return b.String()
}

func RenderSummary(s adherence.Summary) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Adherence %d%%", s.Rate)),
		fmt.Sprintf("%s %d  %s %d  %s %d  %s %d  (total %d)",
			statusStyles[adherence.CategoryOnTime].Render("on time"), s.Tally.OnTime,
			statusStyles[adherence.CategoryLate].Render("late"), s.Tally.Late,
			statusStyles[adherence.CategoryMissed].Render("missed"), s.Tally.Missed,
			mutedStyle.Render("other"), s.Tally.Unclassified,
			s.Total,
		),
	}
	return strings.Join(lines, "\n")
}

// RenderCalendar dibuja una grilla de 7 columnas empezando en domingo; las celdas
// previas al día 1 quedan vacías (FirstWeekdayOffset).
func RenderCalendar(cal adherence.MonthCalendar) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", time.Month(cal.MonthIndex+1).String(), cal.Year)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for _, h := range weekdayHeader {
		b.WriteString(mutedStyle.Render(pad(h)))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < cal.FirstWeekdayOffset; i++ {
		b.WriteString(pad(""))
		col++
	}

	for _, cell := range cal.Days {
		style, ok := statusStyles[cell.DominantStatus]
		if !ok {
			style = mutedStyle
		}
		b.WriteString(style.Render(pad(fmt.Sprintf("%d", cell.Day))))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString(legend())
	return b.String()
}

// RenderDailyChart grafica la tasa diaria (0-100) del mes.
func RenderDailyChart(cal adherence.MonthCalendar, width, height int) string {
	data := cal.DailyRates()
	if len(data) == 0 {
		return mutedStyle.Render("No data available")
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Caption("daily adherence % "+time.Month(cal.MonthIndex+1).String()),
	)
}

func legend() string {
	parts := []string{
		statusStyles[adherence.CategoryOnTime].Render("■ on time"),
		statusStyles[adherence.CategoryLate].Render("■ late"),
		statusStyles[adherence.CategoryMissed].Render("■ missed"),
		mutedStyle.Render("■ no records"),
	}
	return strings.Join(parts, "  ")
}

func pad(s string) string {
	return fmt.Sprintf("%*s", cellWidth, s)
}
