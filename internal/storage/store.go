// Package storage provides destinations for the exported site.
package storage

import (
	"context"
	"path"
	"strings"

	"github.com/cockroachdb/errors"

	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

// Object is one file of the exported site.
type Object struct {
	// Key is the slash-separated path relative to the site root,
	// for example "installation/index.html".
	Key          string
	Body         []byte
	ContentType  string
	CacheControl string
	// SHA256 is the hex digest of Body, recorded as object metadata where
	// the store supports it.
	SHA256 string
}

// Store is the interface for writing the exported site.
// Keys are always validated with CleanKey before use.
type Store interface {
	// Put writes an object, replacing any previous object with the same key.
	Put(ctx context.Context, obj Object) error

	// Get reads an object by key.
	Get(ctx context.Context, key string) (*Object, error)

	// List returns every key in the store, sorted.
	List(ctx context.Context) ([]string, error)

	// Location describes where the store writes, for logs and notices.
	Location() string
}

// CleanKey normalizes key and rejects keys that escape the site root.
func CleanKey(key string) (string, error) {
	if key == "" {
		return "", errors.Wrap(internalerrors.ErrInvalidParameter, "empty key")
	}
	if strings.Contains(key, "\\") {
		return "", errors.Wrapf(internalerrors.ErrInvalidParameter, "key %q contains a backslash", key)
	}
	cleaned := path.Clean("/" + key)
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", errors.Wrapf(internalerrors.ErrInvalidParameter, "invalid key %q", key)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

// NullStore is a no-op store used for dry runs.
type NullStore struct{}

func (s *NullStore) Put(ctx context.Context, obj Object) error {
	_, err := CleanKey(obj.Key)
	return err
}

func (s *NullStore) Get(ctx context.Context, key string) (*Object, error) {
	return nil, errors.Wrapf(internalerrors.ErrNotFound, "object %s", key)
}

func (s *NullStore) List(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (s *NullStore) Location() string {
	return "dry run"
}
