package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

func TestFileStore_AtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewFileStore(tmpDir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	ctx := context.Background()
	obj := Object{Key: "installation/index.html", Body: []byte("<h2>Installation Steps</h2>")}

	if err := store.Put(ctx, obj); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Verify no temp files remain
	files, _ := filepath.Glob(filepath.Join(tmpDir, "installation", ".tmp-*"))
	if len(files) > 0 {
		t.Errorf("temp files remaining after put: %v", files)
	}

	loaded, err := store.Get(ctx, "installation/index.html")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(loaded.Body) != string(obj.Body) {
		t.Errorf("body = %q, want %q", loaded.Body, obj.Body)
	}
	if loaded.ContentType != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", loaded.ContentType)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	for _, body := range []string{"first", "second"} {
		if err := store.Put(ctx, Object{Key: "index.html", Body: []byte(body)}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	loaded, err := store.Get(ctx, "index.html")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(loaded.Body) != "second" {
		t.Errorf("body = %q, want second", loaded.Body)
	}
}

func TestFileStore_List(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore(tmpDir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"privacy/index.html", "index.html", "styles.css"} {
		if err := store.Put(ctx, Object{Key: key, Body: []byte(key)}); err != nil {
			t.Fatalf("Put %s failed: %v", key, err)
		}
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"index.html", "privacy/index.html", "styles.css"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestFileStore_TempFileCleanup(t *testing.T) {
	tmpDir := t.TempDir()
	orphan := filepath.Join(tmpDir, ".tmp-12345")
	if err := os.WriteFile(orphan, []byte("partial"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	draft := filepath.Join(tmpDir, "notes", "draft.tmp")
	if err := os.MkdirAll(filepath.Dir(draft), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(draft, []byte("my notes"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := NewFileStore(tmpDir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Error("orphaned temp file should be removed")
	}
	if _, err := os.Stat(draft); err != nil {
		t.Errorf("unrelated user file should survive cleanup: %v", err)
	}

	keys, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"notes/draft.tmp"}) {
		t.Errorf("keys = %v, want [notes/draft.tmp]", keys)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	_, err = store.Get(context.Background(), "missing.html")
	if !internalerrors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"index.html", "index.html", false},
		{"/installation/index.html", "installation/index.html", false},
		{"privacy//index.html", "privacy/index.html", false},
		{"", "", true},
		{"/", "", true},
		{"../etc/passwd", "", true},
		{"a/../../b", "", true},
		{`privacy\index.html`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := CleanKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CleanKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err != nil && !internalerrors.IsInvalid(err) {
				t.Errorf("expected invalid parameter error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("CleanKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestNullStore(t *testing.T) {
	store := &NullStore{}
	ctx := context.Background()

	if err := store.Put(ctx, Object{Key: "index.html"}); err != nil {
		t.Errorf("Put failed: %v", err)
	}
	if err := store.Put(ctx, Object{Key: "../x"}); err == nil {
		t.Error("NullStore should still validate keys")
	}
	if _, err := store.Get(ctx, "index.html"); !internalerrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
