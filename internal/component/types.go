// Package component holds the domain model of a generated component: the
// request, the closed language and style enumerations, and the derived plan.
package component

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/generate-component/internal/errors"
)

// Language is the source language variant of the generated component.
type Language string

const (
	// LanguageJS generates a .js component and a .js barrel.
	LanguageJS Language = "js"

	// LanguageTS generates a .tsx component and a .ts barrel.
	LanguageTS Language = "ts"
)

// Languages returns all supported languages in display order.
func Languages() []Language {
	return []Language{LanguageJS, LanguageTS}
}

// DisplayName returns the human readable language name.
func (l Language) DisplayName() string {
	switch l {
	case LanguageJS:
		return "JavaScript"
	case LanguageTS:
		return "TypeScript"
	default:
		return string(l)
	}
}

// ParseLanguage parses a language token.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.TrimSpace(s)) {
	case LanguageJS:
		return LanguageJS, nil
	case LanguageTS:
		return LanguageTS, nil
	default:
		return "", oerrors.NewValidationError("lang",
			fmt.Sprintf("unsupported language %q", s),
			"Valid languages: js, ts")
	}
}

// StyleVariant is the stylesheet strategy used for a component.
type StyleVariant string

const (
	StyleCSS        StyleVariant = "css"
	StyleCSSModule  StyleVariant = "cssModule"
	StyleSCSS       StyleVariant = "scss"
	StyleSCSSModule StyleVariant = "scssModule"
	StyleNone       StyleVariant = "none"
)

// styleInfo maps each variant to its CLI token and file extension.
var styleInfo = map[StyleVariant]struct {
	token     string
	extension string
}{
	StyleCSS:        {"css", ".css"},
	StyleCSSModule:  {"module.css", ".module.css"},
	StyleSCSS:       {"scss", ".scss"},
	StyleSCSSModule: {"module.scss", ".module.scss"},
	StyleNone:       {"none", ""},
}

// Styles returns all style variants in display order.
func Styles() []StyleVariant {
	return []StyleVariant{StyleCSS, StyleCSSModule, StyleSCSS, StyleSCSSModule, StyleNone}
}

// StyleTokens returns the CLI spelling of every style variant.
func StyleTokens() []string {
	tokens := make([]string, 0, len(styleInfo))
	for _, s := range Styles() {
		tokens = append(tokens, s.Token())
	}
	return tokens
}

// Token returns the CLI spelling of the variant (e.g. "module.scss").
func (s StyleVariant) Token() string {
	return styleInfo[s].token
}

// Extension returns the stylesheet file extension, or "" for StyleNone.
func (s StyleVariant) Extension() string {
	return styleInfo[s].extension
}

// IsModule reports whether the variant produces a CSS module.
func (s StyleVariant) IsModule() bool {
	return s == StyleCSSModule || s == StyleSCSSModule
}

// ParseStyle parses a style token. The enum name ("scssModule"), the CLI
// token ("module.scss") and the extension (".module.scss") are all accepted.
func ParseStyle(s string) (StyleVariant, error) {
	in := strings.TrimSpace(s)
	for _, v := range Styles() {
		info := styleInfo[v]
		if in == string(v) || in == info.token || (info.extension != "" && in == info.extension) {
			return v, nil
		}
	}
	return "", oerrors.NewValidationError("style",
		fmt.Sprintf("unsupported style %q", s),
		"Valid styles: "+strings.Join(StyleTokens(), ", "))
}

// Request describes one component to generate.
type Request struct {
	// Name is the component name, used verbatim for the directory and file names.
	Name string `validate:"required,component_name"`

	// Language selects the component and barrel file extensions.
	Language Language `validate:"required,oneof=js ts"`

	// OutputDir is the parent directory of the component directory.
	OutputDir string `validate:"required"`

	// Style selects the stylesheet strategy.
	Style StyleVariant `validate:"required,oneof=css cssModule scss scssModule none"`
}

// Plan holds every path and extension derived from a Request.
type Plan struct {
	ComponentDir  string
	ComponentFile string
	IndexFile     string

	// StyleFile is empty when the style variant produces no stylesheet.
	StyleFile string

	FileExtension  string
	IndexExtension string
	StyleExtension string

	// Style is the stylesheet artifact spliced into the component template.
	Style StyleArtifact
}
