package component

import "path/filepath"

// NewPlan derives the output paths for req. It performs no I/O and assumes
// req has been validated.
func NewPlan(req Request) Plan {
	fileExt, indexExt := "tsx", "ts"
	if req.Language == LanguageJS {
		fileExt, indexExt = "js", "js"
	}

	dir := filepath.Join(req.OutputDir, req.Name)
	style := NewStyleArtifact(req.Style, req.Name)

	p := Plan{
		ComponentDir:   dir,
		ComponentFile:  filepath.Join(dir, req.Name+"."+fileExt),
		IndexFile:      filepath.Join(dir, "index."+indexExt),
		FileExtension:  fileExt,
		IndexExtension: indexExt,
		StyleExtension: req.Style.Extension(),
		Style:          style,
	}
	if style.HasFile() {
		p.StyleFile = filepath.Join(dir, style.FileName)
	}
	return p
}

// IndexSource returns the barrel file source re-exporting the component.
func IndexSource(name string) string {
	return "export * from './" + name + "';\n" +
		"export { default as " + name + " } from './" + name + "';\n"
}
