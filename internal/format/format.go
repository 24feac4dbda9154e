package format

import (
	"regexp"
	"strings"
)

// moduleSpecifier matches import and re-export statements that end with a
// quoted module path.
var moduleSpecifier = regexp.MustCompile(`^(\s*(?:import\s.*\sfrom\s+|export\s.*\sfrom\s+|import\s+))['"]([^'"]+)['"]\s*;?$`)

// Formatter normalizes generated component source.
type Formatter struct {
	opts Options
}

// New creates a Formatter. Invalid widths fall back to the default.
func New(opts Options) *Formatter {
	if opts.TabWidth < 1 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	return &Formatter{opts: opts}
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() Options {
	return f.opts
}

// Format normalizes line endings, trailing whitespace, indentation, module
// specifier quoting and blank lines. The result ends with exactly one newline.
//
// With Semi unset, the statement terminator is dropped from every line that
// ends in one. With Semi set, module specifier lines gain a terminator and
// other lines keep theirs as written.
func (f *Formatter) Format(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := true // suppresses leading blank lines

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false

		line = f.reindent(line)
		line = f.requote(line)
		if !f.opts.Semi {
			line = dropTerminator(line)
		}
		out = append(out, line)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	eol := "\n"
	if f.opts.EndOfLine == EndOfLineCRLF {
		eol = "\r\n"
	}
	return strings.Join(out, eol) + eol
}

// reindent rewrites leading indentation. Templates indent with two spaces per level.
func (f *Formatter) reindent(line string) string {
	body := strings.TrimLeft(line, " \t")
	width := 0
	for _, r := range line[:len(line)-len(body)] {
		if r == '\t' {
			width += 2
		} else {
			width++
		}
	}

	levels, rest := width/2, width%2
	unit := strings.Repeat(" ", f.opts.TabWidth)
	if f.opts.UseTabs {
		unit = "\t"
	}
	return strings.Repeat(unit, levels) + strings.Repeat(" ", rest) + body
}

func (f *Formatter) requote(line string) string {
	m := moduleSpecifier.FindStringSubmatch(line)
	if m == nil {
		return line
	}

	quote := `"`
	if f.opts.SingleQuote {
		quote = "'"
	}
	semi := ""
	if f.opts.Semi {
		semi = ";"
	}
	return m[1] + quote + m[2] + quote + semi
}

// dropTerminator removes a trailing semicolon unless it sits inside an open
// parenthesis, as in a for clause.
func dropTerminator(line string) string {
	if !strings.HasSuffix(line, ";") {
		return line
	}
	if strings.Count(line, "(") > strings.Count(line, ")") {
		return line
	}
	trimmed := strings.TrimRight(strings.TrimSuffix(line, ";"), " \t")
	if trimmed == "" {
		return line
	}
	return trimmed
}
