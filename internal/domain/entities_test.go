package domain

import (
	"errors"
	"io/fs"
	"testing"
	"time"
)

type stubFileInfo struct {
	size    int64
	modTime time.Time
}

func (i stubFileInfo) Name() string       { return "stub" }
func (i stubFileInfo) Size() int64        { return i.size }
func (i stubFileInfo) Mode() fs.FileMode  { return 0644 }
func (i stubFileInfo) ModTime() time.Time { return i.modTime }
func (i stubFileInfo) IsDir() bool        { return false }
func (i stubFileInfo) Sys() any           { return nil }

func TestMetadataFromFileInfo(t *testing.T) {
	modTime := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	meta := MetadataFromFileInfo(stubFileInfo{size: 42, modTime: modTime})

	if meta.Size != 42 {
		t.Errorf("Expected size 42, got %d", meta.Size)
	}
	if meta.ModTime == nil || !meta.ModTime.Equal(modTime) {
		t.Errorf("Expected mod time %v, got %v", modTime, meta.ModTime)
	}
	if meta.ModTimeString() != "2026-08-29T10:30:00Z" {
		t.Errorf("Unexpected mod time rendering: %s", meta.ModTimeString())
	}
}

func TestMetadataFromFileInfo_NoModTime(t *testing.T) {
	meta := MetadataFromFileInfo(stubFileInfo{size: 7})

	if meta.ModTime != nil {
		t.Errorf("Zero mod time should be kept as absent, got %v", meta.ModTime)
	}
	if meta.ModTimeString() != "none" {
		t.Errorf("Expected 'none', got '%s'", meta.ModTimeString())
	}
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"read", &ReadError{Path: "secret.txt", Err: cause}, "cannot read file secret.txt: permission denied"},
		{"metadata", &MetadataError{Path: "secret.txt", Err: cause}, "cannot read metadata of secret.txt: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, cause) {
				t.Errorf("Expected %v to wrap the cause", tt.err)
			}
		})
	}
}
