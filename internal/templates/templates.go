package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the raw content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template file and parses it.
// Missing keys are reported as errors rather than rendered as "<no value>".
func Parse(name string) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}
