package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FS is the filesystem surface used by the engine.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Create(name string) (afero.File, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Lstat(name string) (fs.FileInfo, error)

	// Removal
	Remove(name string) error
	RemoveAll(path string) error
}

// Exists reports whether name exists, following symlinks.
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name exists and is a directory.
func IsDir(fsys FS, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
