package templates

import (
	"fmt"
	"sort"
	"strings"
)

// templates is the internal registry of available templates, keyed by language.
var templates = map[string]Template{
	"js": {
		Name:        "js",
		File:        "js.tmpl",
		Description: "JavaScript function component",
	},
	"ts": {
		Name:        "ts",
		File:        "ts.tmpl",
		Description: "TypeScript function component with typed props",
	},
}

// Get returns the template for a language token.
func Get(lang string) (Template, error) {
	t, ok := templates[lang]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", lang, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns all template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
