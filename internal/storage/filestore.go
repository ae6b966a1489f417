package storage

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/constants"
	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

// FileStore implements Store using the filesystem, laid out the way a
// static host serves it:
//
//	{rootDir}/
//	├── index.html
//	├── installation/
//	│   └── index.html
//	├── privacy/
//	│   └── index.html
//	├── styles.css
//	└── favicon.svg
type FileStore struct {
	rootDir string
	mu      sync.RWMutex
}

// NewFileStore creates a new file-based store, removing temp files left
// behind by an interrupted export.
func NewFileStore(rootDir string) (*FileStore, error) {
	if err := os.MkdirAll(rootDir, constants.DefaultDirMode); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	s := &FileStore{rootDir: rootDir}
	if err := s.cleanupTempFiles(); err != nil {
		slog.Warn("failed to cleanup temp files", "error", err)
	}
	return s, nil
}

// Location returns the output directory.
func (s *FileStore) Location() string {
	return s.rootDir
}

// objectPath returns the filesystem path for a cleaned key.
func (s *FileStore) objectPath(key string) string {
	return filepath.Join(s.rootDir, filepath.FromSlash(key))
}

// Put writes an object atomically.
func (s *FileStore) Put(ctx context.Context, obj Object) error {
	key, err := CleanKey(obj.Key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.objectPath(key)
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultDirMode); err != nil {
		return errors.Wrap(err, "create object directory")
	}

	// Atomic write with fsync for durability
	if err := atomicWriteFile(path, obj.Body, constants.DefaultFileMode); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}
	return nil
}

// Get reads an object. The content type is derived from the file extension.
func (s *FileStore) Get(ctx context.Context, key string) (*Object, error) {
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.objectPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(internalerrors.ErrNotFound, "object %s", key)
		}
		return nil, errors.Wrapf(err, "read %s", key)
	}

	return &Object{
		Key:         key,
		Body:        data,
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
	}, nil
}

// List returns every key under the output directory.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || isTempFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(s.rootDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk output directory")
	}

	sort.Strings(keys)
	return keys, nil
}

// isTempFile matches only the names atomicWriteFile creates. The output
// directory is chosen by the user and may hold unrelated files.
func isTempFile(name string) bool {
	return strings.HasPrefix(name, ".tmp-")
}

// atomicWriteFile writes data to a file atomically using write-to-temp-then-rename pattern.
// It also fsyncs the file to ensure durability.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	// Write to temp file in same directory (ensures same filesystem for atomic rename)
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return errors.Wrap(err, "write to temp file")
	}

	// Fsync to ensure data is on disk before rename
	if err := tmpFile.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}

	// Close before rename (required on Windows)
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}

	success = true
	return nil
}

// cleanupTempFiles removes orphaned temp files in the output directory.
// These can be left behind after crashes during writes.
func (s *FileStore) cleanupTempFiles() error {
	return filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip inaccessible paths
		}
		if d.IsDir() {
			return nil
		}
		if isTempFile(d.Name()) {
			slog.Warn("removing orphaned temp file", "path", path)
			os.Remove(path)
		}
		return nil
	})
}
