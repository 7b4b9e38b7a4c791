package presentation

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type Page struct {
	Form     Form
	Result   *ResultView
	ChartURI template.URL
}

type Pages struct {
	index *template.Template
}

func NewPages() (*Pages, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Pages{index: index}, nil
}

func (p *Pages) RenderIndex(w io.Writer, page Page) error {
	return p.index.ExecuteTemplate(w, "index.html", page)
}
