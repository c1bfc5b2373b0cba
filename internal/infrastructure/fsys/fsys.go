package fsys

import (
	"io/fs"
	"os"
)

// OSFileSystem implements application file access against the host
// operating system.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

func (OSFileSystem) Stat(filename string) (fs.FileInfo, error) {
	return os.Stat(filename)
}
