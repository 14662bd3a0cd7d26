// Package plotpage wraps rendered charts in a self-contained themed HTML
// page.
package plotpage

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
)

// filePerm is the permission for written pages.
const filePerm = 0o600

// Renderable is the interface charts must satisfy to be embedded in a page.
type Renderable interface {
	Render(w io.Writer) error
}

// Page is a single visualization page holding one or more charts.
type Page struct {
	Title       string
	Description string
	Theme       Theme
	charts      []Renderable
}

// NewPage creates a page with the given title and description.
func NewPage(title, description string) *Page {
	return &Page{Title: title, Description: description, Theme: ThemeDark}
}

// WithTheme sets the page theme.
func (p *Page) WithTheme(theme Theme) *Page {
	p.Theme = theme

	return p
}

// Add appends charts to the page.
func (p *Page) Add(charts ...Renderable) {
	p.charts = append(p.charts, charts...)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { background: {{.Cfg.Background}}; color: {{.Cfg.TextPrimary}};
       font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; }
header { padding: 24px 32px; border-bottom: 1px solid {{.Cfg.Border}}; }
header h1 { margin: 0; font-size: 20px; }
header p { margin: 4px 0 0; color: {{.Cfg.TextMuted}}; font-size: 14px; }
main { padding: 24px 32px; }
.chart { background: {{.Cfg.Surface}}; border: 1px solid {{.Cfg.Border}};
         border-radius: 8px; padding: 16px; margin-bottom: 24px; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</header>
<main>
{{range .Charts}}<div class="chart">{{.}}</div>
{{end}}</main>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Cfg         ThemeConfig
	Charts      []template.HTML
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	charts := make([]template.HTML, 0, len(p.charts))

	for i, c := range p.charts {
		var buf bytes.Buffer
		if err := c.Render(&buf); err != nil {
			return fmt.Errorf("rendering chart %d: %w", i, err)
		}

		charts = append(charts, template.HTML(buf.String())) //nolint:gosec // chart output is library-generated
	}

	return pageTemplate.Execute(w, pageData{
		Title:       p.Title,
		Description: p.Description,
		Cfg:         GetThemeConfig(p.Theme),
		Charts:      charts,
	})
}

// WriteFile renders the page into the file at path, replacing it if present.
func (p *Page) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}
