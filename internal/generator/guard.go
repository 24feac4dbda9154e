package generator

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/generate-component/internal/errors"
)

// Guard prepares the directory a component is written into and refuses to
// reuse an existing one.
type Guard struct {
	fs afero.Fs
}

// NewGuard creates a Guard on fsys.
func NewGuard(fsys afero.Fs) *Guard {
	return &Guard{fs: fsys}
}

// EnsureParent creates path and any missing ancestors. An existing
// directory is not an error.
func (g *Guard) EnsureParent(path string) error {
	if err := g.fs.MkdirAll(path, 0o755); err != nil {
		return oerrors.NewIOError("create directory", path, err)
	}
	return nil
}

// CheckNotExists returns a collision error when dir already exists.
func (g *Guard) CheckNotExists(dir string) error {
	exists, err := afero.Exists(g.fs, dir)
	if err != nil {
		return oerrors.NewIOError("stat", dir, err)
	}
	if exists {
		return oerrors.NewCollisionError(dir)
	}
	return nil
}

// CreateComponentDir creates dir itself, without ancestors. A directory that
// appeared since CheckNotExists is reported as a collision.
func (g *Guard) CreateComponentDir(dir string) error {
	if err := g.fs.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return oerrors.NewCollisionError(dir)
		}
		return oerrors.NewIOError("create directory", dir, err)
	}
	return nil
}
