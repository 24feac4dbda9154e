package component

import (
	"regexp"
	"strings"
)

var kebabBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Kebab converts a PascalCase or camelCase name to kebab-case by inserting a
// hyphen between a lowercase letter or digit and a following uppercase
// letter, then lowercasing. Runs of capitals are not split.
func Kebab(name string) string {
	return strings.ToLower(kebabBoundary.ReplaceAllString(name, "${1}-${2}"))
}

// StyleArtifact is the stylesheet side of a component: the file to write and
// the fragments spliced into the component template.
type StyleArtifact struct {
	// FileName is the stylesheet file name, empty when no file is produced.
	FileName string

	// Import replaces the STYLES placeholder.
	Import string

	// ClassName replaces the CLASSNAME placeholder.
	ClassName string

	// Content is the initial stylesheet body.
	Content string
}

// HasFile reports whether a stylesheet file must be written.
func (a StyleArtifact) HasFile() bool {
	return a.FileName != ""
}

// NewStyleArtifact derives the stylesheet artifact for a component.
func NewStyleArtifact(style StyleVariant, name string) StyleArtifact {
	ext := style.Extension()
	if ext == "" {
		return StyleArtifact{}
	}

	if !style.IsModule() {
		file := name + ext
		return StyleArtifact{
			FileName:  file,
			Import:    "import './" + file + "';\n\n",
			ClassName: ` className="` + name + `"`,
		}
	}

	class := Kebab(name)
	file := class + ext
	binding := " className={styles." + class + "}"
	if strings.Contains(class, "-") {
		binding = " className={styles['" + class + "']}"
	}
	return StyleArtifact{
		FileName:  file,
		Import:    "import styles from './" + file + "';\n\n",
		ClassName: binding,
		Content:   "." + class + " {\n\n}",
	}
}
