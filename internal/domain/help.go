package domain

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed plan_help.md
var planHelpTmpl string

// PlanHelpData holds data for rendering the plan file help.
type PlanHelpData struct {
	TimeLayouts []string
}

// RenderPlanHelp renders the plan file format reference.
func RenderPlanHelp() (string, error) {
	return renderTemplate(planHelpTmpl, PlanHelpData{TimeLayouts: timeLayouts})
}

func renderTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("help").Parse(tmplStr)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
