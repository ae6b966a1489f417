// Package httputil serves the site over net/http for the standalone server.
package httputil

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/subham-04/file-hash-checker-site/internal/app"
)

// SiteHandler adapts App.HandleRequest to http.Handler.
type SiteHandler struct {
	site   *app.App
	logger *slog.Logger
}

func NewSiteHandler(site *app.App, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{site: site, logger: logger}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := toAppRequest(r)
	if err != nil {
		http.Error(w, "unable to read request body", http.StatusBadRequest)
		return
	}
	h.write(w, h.site.HandleRequest(r.Context(), req))
}

// toAppRequest lowercases header names. Repeated headers such as
// Accept-Encoding collapse into one comma-separated value.
func toAppRequest(r *http.Request) (app.Request, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return app.Request{}, err
	}

	headers := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		if len(values) == 0 {
			continue
		}
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}

	return app.Request{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.RawQuery,
		Headers: headers,
		Body:    body,
	}, nil
}

func (h *SiteHandler) write(w http.ResponseWriter, resp app.Response) {
	hdr := w.Header()
	for name, value := range resp.Headers {
		hdr.Set(name, value)
	}
	if resp.ContentType != "" && hdr.Get("Content-Type") == "" {
		hdr.Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)

	if len(resp.Body) == 0 {
		return
	}
	if _, err := w.Write(resp.Body); err != nil && h.logger != nil {
		h.logger.Debug("client went away mid-response", slog.String("error", err.Error()))
	}
}
