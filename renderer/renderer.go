// Package renderer renders rate reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// RenderIRR renders an IRR report to a markdown string.
func RenderIRR(r *IRR) string {
	partials := map[string]string{
		"rate_summary": "rate_summary.md",
	}
	return renderTemplate("irr", "irr.md", partials, r)
}

// RenderTWRR renders a TWRR report to a markdown string.
func RenderTWRR(r *TWRR) string {
	partials := map[string]string{
		"rate_summary": "rate_summary.md",
	}
	return renderTemplate("twrr", "twrr.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// fmtFloat formats a plain number for tables.
func fmtFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "n/a"
	case math.Abs(f) < 0.005:
		// hides the residual noise of root finding
		return "0.00"
	default:
		return fmt.Sprintf("%.2f", f)
	}
}
