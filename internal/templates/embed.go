// Package templates provides the embedded component templates and the
// placeholder substitution applied to them.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed component/*
var componentFS embed.FS

// TemplateFS exposes the embedded templates rooted at the template directory.
var TemplateFS fs.FS = mustSub(componentFS, "component")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("templates: %v", err))
	}
	return sub
}

// Load returns the raw template text for a template.
func Load(t Template) (string, error) {
	content, err := fs.ReadFile(TemplateFS, t.File)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", t.File, err)
	}
	return string(content), nil
}
