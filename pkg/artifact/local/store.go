// Package local implements an artifact.Store on the local filesystem.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"presell/pkg/artifact"
	"strings"
)

// Options configure the local store.
type Options struct {
	// BaseDir is the root directory artifacts are written under.
	BaseDir string
	// PublicBaseURL, when set, prefixes the returned references instead of a
	// file:// URI.
	PublicBaseURL string
}

// Store writes artifacts to the local filesystem.
type Store struct {
	baseDir       string
	publicBaseURL string
}

var _ artifact.Store = (*Store)(nil)

// New creates a filesystem-backed store, creating BaseDir when missing.
func New(options Options) (*Store, error) {
	if strings.TrimSpace(options.BaseDir) == "" {
		return nil, errors.New("base directory is required")
	}

	baseDir, err := filepath.Abs(options.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("could not resolve base directory: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create base directory: %w", err)
	}
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("could not stat base directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.New("base directory path is not a directory")
	}

	return &Store{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimSuffix(options.PublicBaseURL, "/"),
	}, nil
}

// Put writes r to a file below the base directory.
func (s *Store) Put(_ context.Context, key string, _ string, r io.Reader) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", errors.New("key is required")
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(fullPath, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("key %q escapes the base directory", key)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("could not create parent directories: %w", err)
	}

	// write to a temp file first so readers never see a partial artifact
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("could not create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("could not write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("could not close artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return "", fmt.Errorf("could not move artifact into place: %w", err)
	}

	if s.publicBaseURL != "" {
		rel, _ := filepath.Rel(s.baseDir, fullPath)

		return s.publicBaseURL + "/" + filepath.ToSlash(rel), nil
	}

	return "file://" + filepath.ToSlash(fullPath), nil
}
