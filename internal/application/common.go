package application

import "io/fs"

// FileReader interface for abstracting file content reads
type FileReader interface {
	ReadFile(filename string) ([]byte, error)
}

// FileStater interface for abstracting file metadata lookups
type FileStater interface {
	Stat(filename string) (fs.FileInfo, error)
}
