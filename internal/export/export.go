// Package export renders the whole site into a storage.Store so it can be
// served by any static host.
package export

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/app"
	"github.com/subham-04/file-hash-checker-site/internal/checksum"
	"github.com/subham-04/file-hash-checker-site/internal/constants"
	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
	"github.com/subham-04/file-hash-checker-site/internal/site"
	"github.com/subham-04/file-hash-checker-site/internal/storage"
)

// DownloadKey is the key the downloadable application is exported under.
const DownloadKey = constants.DownloadName

// Notifier is notified about the progress of an export.
type Notifier interface {
	NotifyPublishStarted(ctx context.Context, report *Report) error
	NotifyPublishCompleted(ctx context.Context, report *Report) error
	NotifyPublishFailed(ctx context.Context, report *Report, cause error) error
}

// File is one exported file.
type File struct {
	Key    string `json:"key"`
	Size   int    `json:"size"`
	SHA256 string `json:"sha256"`
}

// Report summarizes an export.
type Report struct {
	Location    string    `json:"location"`
	SiteURL     string    `json:"site_url"`
	Files       []File    `json:"files"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// File returns the exported file with key.
func (r *Report) File(key string) (File, bool) {
	for _, f := range r.Files {
		if f.Key == key {
			return f, true
		}
	}
	return File{}, false
}

// TotalBytes is the combined size of every exported file.
func (r *Report) TotalBytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += int64(f.Size)
	}
	return n
}

// Duration is how long the export took. It is zero until the export completes.
func (r *Report) Duration() time.Duration {
	if r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// target maps a request path to the key it is stored under.
type target struct {
	path     string
	key      string
	optional bool
}

// targets returns the request path and store key of every exported file, in export order.
func targets() []target {
	var ts []target
	for _, p := range site.Pages() {
		key := "index.html"
		if p != site.Home {
			key = p.String() + "/index.html"
		}
		ts = append(ts, target{path: p.Path(), key: key})
	}
	ts = append(ts,
		target{path: "/styles.css", key: "styles.css"},
		target{path: "/favicon.svg", key: "favicon.svg"},
		// Published only when the file is present on disk.
		target{path: "/" + constants.DownloadName, key: DownloadKey, optional: true},
	)
	return ts
}

// Exporter writes the rendered site into a store.
type Exporter struct {
	app      *app.App
	store    storage.Store
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithNotifier sets the notifier told about the export.
func WithNotifier(n Notifier) Option {
	return func(e *Exporter) {
		e.notifier = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}

// New creates an Exporter that renders pages through a and writes them to store.
func New(a *app.App, store storage.Store, opts ...Option) *Exporter {
	e := &Exporter{
		app:    a,
		store:  store,
		logger: a.Logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run renders every page and asset and writes them to the store. Notifier
// failures are logged and never fail the export.
func (e *Exporter) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Location:  e.store.Location(),
		SiteURL:   e.app.Config.SiteURL,
		StartedAt: e.now(),
	}

	e.notify(ctx, "started", func(n Notifier) error { return n.NotifyPublishStarted(ctx, report) })

	if err := e.run(ctx, report); err != nil {
		err = errors.Mark(err, internalerrors.ErrPublishFailed)
		e.notify(ctx, "failed", func(n Notifier) error { return n.NotifyPublishFailed(ctx, report, err) })
		return report, err
	}

	report.CompletedAt = e.now()
	e.logger.Info("site exported",
		slog.String("location", report.Location),
		slog.Int("files", len(report.Files)),
		slog.Int64("bytes", report.TotalBytes()),
		slog.Duration("duration", report.Duration()))

	e.notify(ctx, "completed", func(n Notifier) error { return n.NotifyPublishCompleted(ctx, report) })
	return report, nil
}

func (e *Exporter) run(ctx context.Context, report *Report) error {
	for _, t := range targets() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "export cancelled")
		}

		resp := e.app.HandleRequest(ctx, app.Request{Method: http.MethodGet, Path: t.path})
		if resp.StatusCode == http.StatusNotFound && t.optional {
			e.logger.Warn("skipping missing file", slog.String("key", t.key))
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return errors.Newf("render %s: status %d", t.path, resp.StatusCode)
		}

		digest := checksum.Sum(resp.Body)
		obj := storage.Object{
			Key:          t.key,
			Body:         resp.Body,
			ContentType:  resp.ContentType,
			CacheControl: resp.Headers["Cache-Control"],
			SHA256:       digest.SHA256,
		}
		if err := e.store.Put(ctx, obj); err != nil {
			return errors.Wrapf(err, "store %s", t.key)
		}

		report.Files = append(report.Files, File{Key: t.key, Size: len(resp.Body), SHA256: digest.SHA256})
		e.logger.Debug("exported file", slog.String("key", t.key), slog.Int("size", len(resp.Body)))
	}
	return nil
}

// Verify reads the exported files back from the store and checks each one
// against the digest recorded in report. Keys in the store that the report
// does not name are left alone.
func (e *Exporter) Verify(ctx context.Context, report *Report) error {
	keys, err := e.store.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list exported files")
	}
	stored := make(map[string]bool, len(keys))
	for _, k := range keys {
		stored[k] = true
	}

	for _, f := range report.Files {
		if !stored[f.Key] {
			return errors.Mark(errors.Newf("%s missing from %s", f.Key, report.Location), internalerrors.ErrPublishFailed)
		}
		obj, err := e.store.Get(ctx, f.Key)
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "read back %s", f.Key), internalerrors.ErrPublishFailed)
		}
		if got := checksum.Sum(obj.Body).SHA256; got != f.SHA256 {
			return errors.Mark(errors.Newf("%s: sha256 %s, exported %s", f.Key, got, f.SHA256), internalerrors.ErrPublishFailed)
		}
	}

	e.logger.Info("export verified",
		slog.String("location", report.Location),
		slog.Int("files", len(report.Files)),
		slog.Int("stored", len(keys)))
	return nil
}

func (e *Exporter) notify(ctx context.Context, event string, fn func(Notifier) error) {
	if e.notifier == nil {
		return
	}
	if err := fn(e.notifier); err != nil {
		e.logger.Warn("publish notification failed",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}
