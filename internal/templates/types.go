package templates

// Template describes an embedded component template.
type Template struct {
	// Name is the template identifier, equal to the language token (js, ts).
	Name string

	// File is the path within TemplateFS.
	File string

	// Description explains what the template produces.
	Description string
}

// Bindings holds the values substituted for the template placeholders.
type Bindings struct {
	// Styles replaces STYLES: the stylesheet import statement, or empty.
	Styles string

	// ClassName replaces CLASSNAME: the JSX class attribute, or empty.
	ClassName string

	// ComponentName replaces COMPONENT_NAME.
	ComponentName string
}
