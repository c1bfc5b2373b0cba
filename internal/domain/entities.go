package domain

import (
	"fmt"
	"io/fs"
	"time"
)

// FileMetadata is a point-in-time snapshot of a file's attributes, taken
// independently of any content read.
type FileMetadata struct {
	Size    int64
	ModTime *time.Time
}

// MetadataFromFileInfo creates a FileMetadata instance from the given
// fs.FileInfo. A zero modification time means the filesystem does not
// record one; it is kept as a nil ModTime rather than an error.
func MetadataFromFileInfo(info fs.FileInfo) *FileMetadata {
	meta := &FileMetadata{
		Size: info.Size(),
	}
	if modTime := info.ModTime(); !modTime.IsZero() {
		meta.ModTime = &modTime
	}
	return meta
}

// ModTimeString renders the modification time in RFC 3339, or "none" when
// the filesystem did not provide one.
func (m *FileMetadata) ModTimeString() string {
	if m.ModTime == nil {
		return "none"
	}
	return m.ModTime.Format(time.RFC3339)
}

// ReadError reports a failure to read a file's contents. It is fatal: the
// dump stops and the process exits non-zero.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// MetadataError reports a failed metadata lookup. It is non-fatal: the
// error is printed and the dump still completes successfully.
type MetadataError struct {
	Path string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("cannot read metadata of %s: %v", e.Path, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
