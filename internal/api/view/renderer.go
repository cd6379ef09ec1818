// Package view renders timeline views as HTML fragments.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
)

//go:embed templates/*.html
var templateFS embed.FS

const timelineTemplate = "timeline"

// Renderer draws timelines with html/template. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"mapIcon": mapIcon,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render satisfies ports.TimelineRenderer.
func (r *Renderer) Render(w io.Writer, view ports.TimelineView) error {
	return r.tmpl.ExecuteTemplate(w, timelineTemplate, view)
}

func mapIcon(mode timeline.LinkMode) string {
	if mode == timeline.ModeNavigate {
		return "navigation"
	}
	return "map-pin"
}
