// Package app provides the core application logic for the File Hash Checker site.
package app

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/app/templates"
	"github.com/subham-04/file-hash-checker-site/internal/checksum"
	"github.com/subham-04/file-hash-checker-site/internal/config"
	"github.com/subham-04/file-hash-checker-site/internal/constants"
	"github.com/subham-04/file-hash-checker-site/internal/content"
	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
	"github.com/subham-04/file-hash-checker-site/internal/seo"
)

// App is the main application instance.
type App struct {
	Config         *config.Config
	Logger         *slog.Logger
	Catalog        *content.Catalog
	StructuredData *seo.StructuredData
	Renderer       *Renderer

	assets map[string]asset
}

type asset struct {
	name        string
	data        []byte
	digest      checksum.Digest
	contentType string
	maxAge      int
}

// New creates a new App from the embedded catalog and structured data.
func New(cfg *config.Config) (*App, error) {
	catalog, err := content.Default()
	if err != nil {
		return nil, errors.Wrap(err, "load content catalog")
	}
	return NewWithCatalog(cfg, catalog, config.NewLogger())
}

// NewWithCatalog creates an App that renders the given catalog.
func NewWithCatalog(cfg *config.Config, catalog *content.Catalog, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = config.NewLogger()
	}

	sd, err := seo.Build(cfg.SiteURL)
	if err != nil {
		return nil, errors.Wrap(err, "build structured data")
	}

	renderer, err := NewRenderer(catalog, sd, cfg.BasePath, siteURL(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create renderer")
	}

	app := &App{
		Config:         cfg,
		Logger:         logger,
		Catalog:        catalog,
		StructuredData: sd,
		Renderer:       renderer,
		assets:         make(map[string]asset),
	}

	for _, a := range []struct {
		name        string
		contentType string
		maxAge      int
	}{
		{"styles.css", "text/css; charset=utf-8", constants.StaticFileCacheDuration},
		{"favicon.svg", "image/svg+xml", constants.FaviconCacheDuration},
	} {
		data, err := templates.FS.ReadFile(a.name)
		if err != nil {
			return nil, errors.Wrapf(err, "read embedded %s", a.name)
		}
		app.assets[a.name] = asset{
			name:        a.name,
			data:        data,
			digest:      checksum.Sum(data),
			contentType: a.contentType,
			maxAge:      a.maxAge,
		}
	}

	logger.Debug("app initialized",
		slog.String("base_path", cfg.BasePath),
		slog.String("site_url", siteURL(cfg)),
		slog.Any("structured_data", sd.Types()))

	return app, nil
}

// Download reads the downloadable application from disk.
func (a *App) Download() ([]byte, checksum.Digest, error) {
	data, err := os.ReadFile(a.Config.DownloadFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, checksum.Digest{}, errors.Wrapf(internalerrors.ErrDownloadUnavailable, "%s", a.Config.DownloadFile)
		}
		return nil, checksum.Digest{}, errors.Wrap(err, "read download file")
	}
	return data, checksum.Sum(data), nil
}

// AssetNames lists the embedded static assets served next to the pages.
func (a *App) AssetNames() []string {
	return []string{"styles.css", "favicon.svg"}
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Pages  int    `json:"pages"`
}

func siteURL(cfg *config.Config) string {
	if cfg.SiteURL == "" {
		return constants.DefaultSiteURL
	}
	return cfg.SiteURL
}
