// Package renderer renders cash flow reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates holds the main templates and their partials, by file name.
var templates, _ = fs.Sub(templateFS, "templates")

// RenderCashFlow renders a CashFlowReport to a markdown string.
func RenderCashFlow(r *CashFlowReport) string {
	partials := map[string]string{
		"cashflow_config": "cashflow_config.md",
		"cashflow_flows":  "cashflow_flows.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, r)
}

// RenderComparison renders a ComparisonReport to a markdown string.
func RenderComparison(r *ComparisonReport) string {
	partials := map[string]string{
		"comparison_verdicts": "comparison_verdicts.md",
		"comparison_ratios":   "comparison_ratios.md",
	}
	return renderTemplate("comparison", "comparison.md", partials, r)
}

// RenderBlend renders a BlendReport to a markdown string.
func RenderBlend(r *BlendReport) string {
	partials := map[string]string{
		"blend_holdings":  "blend_holdings.md",
		"cashflow_config": "cashflow_config.md",
		"cashflow_flows":  "cashflow_flows.md",
	}
	return renderTemplate("blend", "blend.md", partials, r)
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
