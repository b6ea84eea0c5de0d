package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/midwire/configure-docs/internal/model"
)

// Render executes a single template against tags and returns the result.
// It has no side effects; a reference to an unknown token is an error.
func Render(name string, text []byte, tags model.Tags) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, tags); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
