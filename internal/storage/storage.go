// Package storage provides file-based JSON storage for settings and study
// definition files.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store reads and writes JSON documents on a filesystem.
type Store struct {
	fs afero.Fs
}

// New creates a Store on fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOs creates a Store on the operating system filesystem.
func NewOs() *Store {
	return New(afero.NewOsFs())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Exists checks if a regular file exists at path.
func (s *Store) Exists(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Read returns the raw content of path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// Get decodes the JSON document at path into v. Comments and trailing
// commas are tolerated.
func (s *Store) Get(path string, v any) error {
	data, err := s.Read(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	return nil
}

// WriteResult describes a completed Put.
type WriteResult struct {
	Path string
	// Existed is true when Put replaced an existing file.
	Existed bool
	// Previous is the replaced content, nil for a new file.
	Previous []byte
	Data     []byte
}

// Put stores v at path as canonical JSON (see Encode). The file is written
// to a temporary name and renamed into place.
func (s *Store) Put(path string, v any) (*WriteResult, error) {
	data, err := Encode(v)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &WriteResult{Path: path, Data: data}
	if prev, err := s.Read(path); err == nil {
		result.Existed = true
		result.Previous = prev
	}

	// Write to temp file first, then rename (atomic operation)
	tmpPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		s.fs.Remove(tmpPath) // Clean up temp file
		return nil, fmt.Errorf("failed to rename file: %w", err)
	}

	return result, nil
}

// Encode renders v as JSON with object keys sorted at every level, two-space
// indentation, no HTML escaping and a trailing newline. Equal values always
// encode to identical bytes.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}

	// Round-trip through generic values so struct fields are key-sorted too.
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(generic); err != nil {
		return nil, fmt.Errorf("failed to marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// List returns the files in dir whose names match pattern (doublestar
// syntax), sorted.
func (s *Store) List(dir, pattern string) ([]string, error) {
	if _, err := s.fs.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	fsys := afero.NewIOFS(afero.NewBasePathFs(s.fs, dir))
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	items := make([]string, 0, len(matches))
	for _, m := range matches {
		items = append(items, filepath.Join(dir, filepath.FromSlash(m)))
	}
	sort.Strings(items)
	return items, nil
}
