// Package renderer turns trips into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// ItineraryMarkdown renders the day-by-day itinerary report.
func ItineraryMarkdown(v *TripView) string {
	partials := map[string]string{
		"itinerary_title": "templates/itinerary_title.md",
		"itinerary_day":   "templates/itinerary_day.md",
	}
	return renderTemplate("itinerary", "templates/itinerary.md", partials, v)
}

// BudgetMarkdown renders the budget report: totals, per-day spending and the
// category breakdown.
func BudgetMarkdown(v *BudgetView) string {
	partials := map[string]string{
		"budget_days":       "templates/budget_days.md",
		"budget_categories": "templates/budget_categories.md",
	}
	return renderTemplate("budget", "templates/budget.md", partials, v)
}

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
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
