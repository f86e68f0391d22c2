package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/render"
)

// palette is one color theme
type palette struct {
	primary lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	border  lipgloss.Color
	danger  lipgloss.Color
	moods   map[render.Mood]lipgloss.Color
}

var (
	darkPalette = palette{
		primary: lipgloss.Color("#00BFFF"), // Deep sky blue
		text:    lipgloss.Color("#FFFFFF"),
		muted:   lipgloss.Color("#6C757D"), // Gray
		border:  lipgloss.Color("#4A90E2"), // Border blue
		danger:  lipgloss.Color("#FF6B6B"), // Red
		moods: map[render.Mood]lipgloss.Color{
			render.MoodClear:        lipgloss.Color("#1E3A8A"),
			render.MoodCloudy:       lipgloss.Color("#374151"),
			render.MoodRainy:        lipgloss.Color("#1F2937"),
			render.MoodThunderstorm: lipgloss.Color("#2E1065"),
			render.MoodSnowy:        lipgloss.Color("#475569"),
		},
	}

	lightPalette = palette{
		primary: lipgloss.Color("#0369A1"),
		text:    lipgloss.Color("#111827"),
		muted:   lipgloss.Color("#6B7280"),
		border:  lipgloss.Color("#93C5FD"),
		danger:  lipgloss.Color("#B91C1C"),
		moods: map[render.Mood]lipgloss.Color{
			render.MoodClear:        lipgloss.Color("#FDE68A"),
			render.MoodCloudy:       lipgloss.Color("#E5E7EB"),
			render.MoodRainy:        lipgloss.Color("#BFDBFE"),
			render.MoodThunderstorm: lipgloss.Color("#DDD6FE"),
			render.MoodSnowy:        lipgloss.Color("#F1F5F9"),
		},
	}
)

// styles are the lipgloss styles for one palette
type styles struct {
	title         lipgloss.Style
	label         lipgloss.Style
	value         lipgloss.Style
	muted         lipgloss.Style
	help          lipgloss.Style
	err           lipgloss.Style
	sectionHeader lipgloss.Style
	pane          lipgloss.Style
	searchBox     lipgloss.Style
	temperature   lipgloss.Style
	spinner       lipgloss.Style

	p palette
}

func newStyles(p palette) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		label: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),

		value: lipgloss.NewStyle().
			Foreground(p.text),

		muted: lipgloss.NewStyle().
			Foreground(p.muted),

		help: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(1, 0),

		err: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true).
			Padding(0, 2),

		sectionHeader: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 1).
			MarginTop(1),

		pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2).
			MarginRight(1),

		searchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			Width(64),

		temperature: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.text),

		spinner: lipgloss.NewStyle().
			Foreground(p.primary),

		p: p,
	}
}

var (
	darkStyles  = newStyles(darkPalette)
	lightStyles = newStyles(lightPalette)
)

func stylesFor(light bool) styles {
	if light {
		return lightStyles
	}
	return darkStyles
}

// header is tinted by the weather mood
func (s styles) header(mood render.Mood) lipgloss.Style {
	bg, ok := s.p.moods[mood]
	if !ok {
		bg = s.p.moods[render.MoodClear]
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(s.p.text).
		Background(bg).
		Padding(0, 1)
}
