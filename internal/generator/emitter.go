package generator

import (
	"github.com/spf13/afero"

	oerrors "github.com/opmodel/generate-component/internal/errors"
)

// Emitter writes generated files.
type Emitter struct {
	fs afero.Fs
}

// NewEmitter creates an Emitter on fsys.
func NewEmitter(fsys afero.Fs) *Emitter {
	return &Emitter{fs: fsys}
}

// Write creates or truncates path and writes content.
func (e *Emitter) Write(path, content string) error {
	if err := afero.WriteFile(e.fs, path, []byte(content), 0o644); err != nil {
		return oerrors.NewIOError("write file", path, err)
	}
	return nil
}
