// Package errors defines sentinel errors for the site.
package errors

import "errors"

var (
	// ErrNotFound is a generic not found error.
	ErrNotFound = errors.New("not found")
	// ErrPageNotFound indicates no page or route matches the request path.
	ErrPageNotFound = errors.New("page not found")
	// ErrAssetNotFound indicates a static asset is missing.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDownloadUnavailable indicates the download file is not present on disk.
	ErrDownloadUnavailable = errors.New("download unavailable")
	// ErrInvalidContent indicates the content catalog failed validation.
	ErrInvalidContent = errors.New("invalid content")
	// ErrInvalidStructuredData indicates the JSON-LD source is malformed.
	ErrInvalidStructuredData = errors.New("invalid structured data")
	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrPublishFailed indicates the site could not be published.
	ErrPublishFailed = errors.New("publish failed")
)

// IsNotFound returns true if the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPageNotFound) ||
		errors.Is(err, ErrAssetNotFound) ||
		errors.Is(err, ErrDownloadUnavailable)
}

// IsInvalid returns true if the error reports malformed embedded data or input.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidContent) ||
		errors.Is(err, ErrInvalidStructuredData) ||
		errors.Is(err, ErrInvalidParameter)
}
