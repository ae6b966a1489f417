// Package constants provides shared constant values used throughout the site.
package constants

import "time"

// HTTP server defaults
const (
	// DefaultHTTPPort is the default HTTP server port.
	DefaultHTTPPort = "3000"

	// DefaultReadTimeout is the default HTTP read timeout.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default HTTP write timeout.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the default HTTP idle timeout.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout is the default graceful shutdown timeout.
	DefaultShutdownTimeout = 10 * time.Second
)

// Cache durations, in seconds
const (
	// PageCacheDuration is the cache duration for rendered pages (5 minutes).
	PageCacheDuration = 300

	// StaticFileCacheDuration is the cache duration for CSS files (1 hour).
	StaticFileCacheDuration = 3600

	// FaviconCacheDuration is the cache duration for the favicon (24 hours).
	FaviconCacheDuration = 86400
)

// Site identity
const (
	// DefaultSiteURL is the canonical URL the site is published at.
	DefaultSiteURL = "https://subham-04.github.io/file-hash-checker-site"

	// RepositoryURL is the source repository of the advertised application.
	RepositoryURL = "https://github.com/subham-04/file-hash-checker"

	// IssuesURL is the issue tracker of the advertised application.
	IssuesURL = RepositoryURL + "/issues"

	// DocumentationURL is the README of the advertised application.
	DocumentationURL = RepositoryURL + "#readme"

	// DownloadName is the file name visitors download.
	DownloadName = "File_Hash_Calculator.py"

	// DefaultDownloadFile is where the server looks for the download by default.
	DefaultDownloadFile = "static/" + DownloadName
)

// Response compression
const (
	// MinCompressSize is the smallest body worth compressing.
	MinCompressSize = 1024

	// BrotliQuality is the brotli level used for rendered pages.
	BrotliQuality = 6
)

// File permissions
const (
	// DefaultDirMode is the default permission mode for directories.
	DefaultDirMode = 0755

	// DefaultFileMode is the default permission mode for files.
	DefaultFileMode = 0644
)
