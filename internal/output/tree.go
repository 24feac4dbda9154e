package output

import (
	"slices"
	"strings"
)

// descriptionColumn is where file descriptions start.
const descriptionColumn = 30

// RenderFileTree lists the files of one component directory under dir,
// sorted by name, each followed by its description. Files maps file names
// to descriptions.
func RenderFileTree(dir string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	sb.WriteString(StyleNoun.Render(dir + "/"))
	sb.WriteString("\n")

	for i, name := range names {
		branch := "├── "
		if i == len(names)-1 {
			branch = "└── "
		}
		line := branch + name
		if desc := files[name]; desc != "" {
			// Branch glyphs are multi-byte, so pad by rune count.
			pad := max(descriptionColumn-len([]rune(line)), 2)
			line += strings.Repeat(" ", pad) + StyleLabel.Render(desc)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
