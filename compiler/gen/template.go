package gen

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed template/*.tmpl
var templateFS embed.FS

// Template names.
const (
	DashboardTemplate  = "dashboard.rb.tmpl"
	ControllerTemplate = "controller.rb.tmpl"
)

// templates holds the parsed artifact templates.
var templates = template.Must(template.New("dashgen").Option("missingkey=error").ParseFS(templateFS, "template/*.tmpl"))

// Field is one resolved dashboard entry.
type Field struct {
	// Attribute is the attribute name as declared on the model.
	Attribute string `json:"attribute" yaml:"attribute"`
	// Key is the dashboard key (see AttrName).
	Key string `json:"key" yaml:"key"`
	// Type is the field descriptor name.
	Type string `json:"type" yaml:"type"`
	// Expression is the full field-descriptor expression.
	Expression string `json:"expression" yaml:"expression"`
}

// DashboardData is the data of the dashboard template.
type DashboardData struct {
	Names
	Fields     []Field
	Collection []string
	Show       []string
	Form       []string
}

// ControllerData is the data of the controller template.
type ControllerData struct {
	Names
	// Module is the namespace module ("Admin").
	Module string
}

// execute renders the named template.
func execute(name string, data any) ([]byte, error) {
	var b bytes.Buffer
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return nil, NewGenerationError("template", name, "", err)
	}
	return b.Bytes(), nil
}
