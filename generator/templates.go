// This file implements the template registry: an explicit mapping from
// (language, template name) to a parsed template, populated at startup from
// the embedded template set. A lookup miss is a fatal configuration error —
// there is no silent fallback.

package generator

import (
	"bytes"
	"embed"
	"io/fs"
	"strings"
	"text/template"

	"github.com/typesmith/typesmith/tserrors"
)

//go:embed templates/*/*.tmpl
var templateFS embed.FS

// templateKey identifies one registered template.
type templateKey struct {
	Language string
	Name     string
}

// templates is the registry, keyed by exact (language, name).
var templates = make(map[templateKey]*template.Template)

func init() {
	paths, err := fs.Glob(templateFS, "templates/*/*.tmpl")
	if err != nil {
		panic(err)
	}
	for _, path := range paths {
		// templates/<language>/<name>.tmpl
		parts := strings.Split(path, "/")
		key := templateKey{
			Language: parts[1],
			Name:     strings.TrimSuffix(parts[2], ".tmpl"),
		}
		data, err := templateFS.ReadFile(path)
		if err != nil {
			panic(err)
		}
		templates[key] = template.Must(template.New(key.Name).Parse(string(data)))
	}
}

// renderTemplate executes the template registered for (language, name).
// A missing registration aborts the generation run with a TemplateError:
// it indicates a packaging defect, not a transient condition.
func renderTemplate(language, name string, model any) (string, error) {
	tmpl, ok := templates[templateKey{Language: language, Name: name}]
	if !ok {
		return "", &tserrors.TemplateError{Language: language, Template: name}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// hasTemplateSet reports whether any template is registered for a language.
func hasTemplateSet(language string) bool {
	for key := range templates {
		if key.Language == language {
			return true
		}
	}
	return false
}
