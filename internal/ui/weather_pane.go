package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/render"
)

// paneSink renders the body slots into bordered panes
type paneSink struct {
	render.NopSink
	st styles

	current  strings.Builder
	details  strings.Builder
	forecast strings.Builder
}

func newPaneSink(st styles) *paneSink {
	return &paneSink{st: st}
}

func (p *paneSink) Temperature(current, feelsLike, high, low string) {
	p.current.WriteString(p.st.title.Render("Now"))
	p.current.WriteString("\n\n")
	p.current.WriteString(p.st.temperature.Render(current))
	p.current.WriteString("\n")
	p.current.WriteString(p.st.muted.Render("Feels like " + feelsLike))
	p.current.WriteString("\n\n")
	p.current.WriteString(p.st.label.Render("H: "))
	p.current.WriteString(p.st.value.Render(high))
	p.current.WriteString("  ")
	p.current.WriteString(p.st.label.Render("L: "))
	p.current.WriteString(p.st.value.Render(low))
}

func (p *paneSink) Details(d render.Details) {
	p.details.WriteString(p.st.title.Render("Details"))
	p.details.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Humidity", d.Humidity + " " + meter(d.HumidityPct)},
		{"Wind", d.Wind},
		{"", d.WindDirection},
		{"Visibility", d.Visibility},
		{"Pressure", d.Pressure},
		{"Clouds", d.Cloudiness + " " + meter(d.CloudinessPct)},
		{"Dew point", d.DewPoint},
	}
	for _, r := range rows {
		p.details.WriteString(p.st.label.Render(fmt.Sprintf("%-11s", r.label)))
		p.details.WriteString(p.st.value.Render(r.value))
		p.details.WriteString("\n")
	}
}

func (p *paneSink) Sun(sunrise, sunset string) {
	p.details.WriteString("\n")
	p.details.WriteString(p.st.label.Render("🌅 Sunrise "))
	p.details.WriteString(p.st.value.Render(sunrise))
	p.details.WriteString("\n")
	p.details.WriteString(p.st.label.Render("🌇 Sunset  "))
	p.details.WriteString(p.st.value.Render(sunset))
}

func (p *paneSink) Forecast(rows []render.ForecastRow) {
	cells := make([]string, 0, len(rows))
	for _, r := range rows {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			p.st.muted.Render(r.Time),
			r.Icon,
			p.st.value.Render(r.Temperature),
		)
		cells = append(cells, lipgloss.NewStyle().Padding(0, 2).Render(cell))
	}
	p.forecast.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// layout joins the panes side by side when width allows, stacked otherwise
func (p *paneSink) layout(width int) string {
	var panes []string
	if p.current.Len() > 0 {
		panes = append(panes, p.st.pane.Render(p.current.String()))
	}
	if p.details.Len() > 0 {
		panes = append(panes, p.st.pane.Render(p.details.String()))
	}

	var body string
	if width >= 80 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, panes...)
	}

	if p.forecast.Len() == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		p.st.sectionHeader.Render("FORECAST"),
		p.forecast.String(),
	)
}

// meter draws a ten-cell bar for a percentage
func meter(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := (pct + 5) / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
