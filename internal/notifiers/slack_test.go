package notifiers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/export"
)

// fakeSlack records the text of every chat.postMessage call.
type fakeSlack struct {
	mu       sync.Mutex
	messages []string
	channels []string
}

func (f *fakeSlack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.URL.Path, "/chat.postMessage") {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.messages = append(f.messages, r.PostForm.Get("text"))
	f.channels = append(f.channels, r.PostForm.Get("channel"))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1700000000.000100"}`))
}

func testNotifier(t *testing.T) (*SlackNotifier, *fakeSlack) {
	t.Helper()

	fake := &fakeSlack{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return NewSlackNotifierWithAPIURL("xoxb-test", "#releases", srv.URL+"/"), fake
}

func testReport() *export.Report {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &export.Report{
		Location:  "s3://site-bucket/site",
		SiteURL:   "https://subham-04.github.io/file-hash-checker-site",
		StartedAt: start,
		Files: []export.File{
			{Key: "index.html", Size: 2048, SHA256: "aaa"},
			{Key: export.DownloadKey, Size: 512, SHA256: "deadbeef"},
		},
		CompletedAt: start.Add(1500 * time.Millisecond),
	}
}

func TestSlackNotifier(t *testing.T) {
	tests := []struct {
		name string
		send func(context.Context, *SlackNotifier, *export.Report) error
		want []string
	}{
		{
			name: "started",
			send: func(ctx context.Context, n *SlackNotifier, r *export.Report) error {
				return n.NotifyPublishStarted(ctx, r)
			},
			want: []string{"Site Publish Started", "s3://site-bucket/site"},
		},
		{
			name: "completed",
			send: func(ctx context.Context, n *SlackNotifier, r *export.Report) error {
				return n.NotifyPublishCompleted(ctx, r)
			},
			want: []string{"Site Published", "2 (2.5 KiB)", "sha256 `deadbeef`", "1.5s"},
		},
		{
			name: "failed",
			send: func(ctx context.Context, n *SlackNotifier, r *export.Report) error {
				return n.NotifyPublishFailed(ctx, r, errors.New("access denied"))
			},
			want: []string{"Site Publish Failed", "Files written*: 2", "access denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, fake := testNotifier(t)

			if err := tt.send(context.Background(), n, testReport()); err != nil {
				t.Fatalf("notify failed: %v", err)
			}
			if len(fake.messages) != 1 {
				t.Fatalf("messages = %d, want 1", len(fake.messages))
			}
			if fake.channels[0] != "#releases" {
				t.Errorf("channel = %q", fake.channels[0])
			}
			for _, s := range tt.want {
				if !strings.Contains(fake.messages[0], s) {
					t.Errorf("message %q is missing %q", fake.messages[0], s)
				}
			}
		})
	}
}

func TestSlackNotifier_NoDownload(t *testing.T) {
	n, fake := testNotifier(t)
	report := testReport()
	report.Files = report.Files[:1]

	if err := n.NotifyPublishCompleted(context.Background(), report); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if !strings.Contains(fake.messages[0], "not included") {
		t.Errorf("message = %q", fake.messages[0])
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestNullNotifier(t *testing.T) {
	var n export.Notifier = &NullNotifier{}
	if err := n.NotifyPublishFailed(context.Background(), testReport(), errors.New("x")); err != nil {
		t.Errorf("NullNotifier returned %v", err)
	}
}
