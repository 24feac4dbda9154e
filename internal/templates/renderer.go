package templates

import "strings"

// Placeholder tokens recognized in component templates.
const (
	PlaceholderStyles        = "STYLES"
	PlaceholderClassName     = "CLASSNAME"
	PlaceholderComponentName = "COMPONENT_NAME"
)

// Renderer substitutes placeholders with a fixed set of bindings.
type Renderer struct {
	bindings Bindings
}

// NewRenderer creates a new renderer with the given bindings.
func NewRenderer(b Bindings) *Renderer {
	return &Renderer{bindings: b}
}

// RenderString replaces every placeholder occurrence in content.
//
// Replacement runs in a fixed order: STYLES, then CLASSNAME, then
// COMPONENT_NAME. A placeholder token appearing inside the style bindings is
// therefore subject to the later replacements; templates must not rely on that.
func (r *Renderer) RenderString(content string) string {
	out := strings.ReplaceAll(content, PlaceholderStyles, r.bindings.Styles)
	out = strings.ReplaceAll(out, PlaceholderClassName, r.bindings.ClassName)
	return strings.ReplaceAll(out, PlaceholderComponentName, r.bindings.ComponentName)
}

// RenderTemplate loads a template by language and renders it.
func (r *Renderer) RenderTemplate(lang string) (string, error) {
	t, err := Get(lang)
	if err != nil {
		return "", err
	}
	content, err := Load(t)
	if err != nil {
		return "", err
	}
	return r.RenderString(content), nil
}

// Render is shorthand for NewRenderer(b).RenderString(content).
func Render(content string, b Bindings) string {
	return NewRenderer(b).RenderString(content)
}
