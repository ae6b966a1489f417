package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
)

// fakeS3 is a minimal path-style S3 endpoint holding objects in memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]fakeObject
}

type fakeObject struct {
	body         []byte
	contentType  string
	cacheControl string
	sha256       string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]fakeObject)}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Path is /{bucket}/{key...}
	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch {
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = fakeObject{
			body:         body,
			contentType:  r.Header.Get("Content-Type"),
			cacheControl: r.Header.Get("Cache-Control"),
			sha256:       r.Header.Get("X-Amz-Meta-Sha256"),
		}
		w.Header().Set("ETag", `"fake"`)
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2":
		prefix := r.URL.Query().Get("prefix")
		var keys []string
		for k := range f.objects {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
		b.WriteString(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">`)
		fmt.Fprintf(&b, "<Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>", parts[0], prefix, len(keys))
		for _, k := range keys {
			fmt.Fprintf(&b, "<Contents><Key>%s</Key><Size>%d</Size></Contents>", k, len(f.objects[k].body))
		}
		b.WriteString(`</ListBucketResult>`)
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, b.String())

	case r.Method == http.MethodGet:
		obj, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", obj.contentType)
		w.Header().Set("Cache-Control", obj.cacheControl)
		if obj.sha256 != "" {
			w.Header().Set("X-Amz-Meta-Sha256", obj.sha256)
		}
		w.Header().Set("Content-Length", fmt.Sprint(len(obj.body)))
		w.Write(obj.body)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func testS3Store(t *testing.T, prefix string) (*S3Store, *fakeS3) {
	t.Helper()

	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	store, err := NewS3Store(S3StoreConfig{
		AWSConfig: aws.Config{
			Region:           "us-east-1",
			Credentials:      aws.AnonymousCredentials{},
			RetryMaxAttempts: 1,
		},
		Bucket:  "site-bucket",
		Prefix:  prefix,
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewS3Store failed: %v", err)
	}
	return store, fake
}

func TestS3Store_PutGet(t *testing.T) {
	store, fake := testS3Store(t, "/site/")
	ctx := context.Background()

	obj := Object{
		Key:          "privacy/index.html",
		Body:         []byte("<h2>License Terms</h2>"),
		ContentType:  "text/html; charset=utf-8",
		CacheControl: "public, max-age=300",
		SHA256:       "abc123",
	}
	if err := store.Put(ctx, obj); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	stored, ok := fake.objects["site/privacy/index.html"]
	if !ok {
		t.Fatalf("object not stored under prefix, have %v", fake.objects)
	}
	if stored.contentType != obj.ContentType {
		t.Errorf("stored content type = %q", stored.contentType)
	}

	loaded, err := store.Get(ctx, "privacy/index.html")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(loaded.Body) != string(obj.Body) {
		t.Errorf("body = %q", loaded.Body)
	}
	if loaded.CacheControl != obj.CacheControl {
		t.Errorf("cache control = %q", loaded.CacheControl)
	}
	if loaded.SHA256 != "abc123" {
		t.Errorf("sha256 metadata = %q", loaded.SHA256)
	}
}

func TestS3Store_List(t *testing.T) {
	store, _ := testS3Store(t, "site")
	ctx := context.Background()

	for _, key := range []string{"styles.css", "index.html", "installation/index.html"} {
		if err := store.Put(ctx, Object{Key: key, Body: []byte(key)}); err != nil {
			t.Fatalf("Put %s failed: %v", key, err)
		}
	}

	keys, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"index.html", "installation/index.html", "styles.css"}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestS3Store_GetMissing(t *testing.T) {
	store, _ := testS3Store(t, "")

	_, err := store.Get(context.Background(), "missing.html")
	if !internalerrors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestS3Store_Location(t *testing.T) {
	store, _ := testS3Store(t, "site")
	if store.Location() != "s3://site-bucket/site" {
		t.Errorf("location = %q", store.Location())
	}

	if _, err := NewS3Store(S3StoreConfig{}); !internalerrors.IsInvalid(err) {
		t.Errorf("missing bucket should be an invalid parameter error, got %v", err)
	}
}
