package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/render"
)

// headerSink renders the location and condition line
type headerSink struct {
	render.NopSink

	location  string
	condition string
	mood      render.Mood
}

func (h *headerSink) Location(name, country string) {
	if country != "" {
		name = fmt.Sprintf("%s, %s", name, country)
	}
	h.location = "📍 " + name
}

func (h *headerSink) Condition(icon string, mood render.Mood, description string) {
	h.condition = fmt.Sprintf("%s  %s", icon, description)
	h.mood = mood
}

func (h *headerSink) view(st styles) string {
	if h.location == "" {
		return ""
	}
	return st.header(h.mood).Render(strings.Join([]string{h.location, h.condition}, "   "))
}
