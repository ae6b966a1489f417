package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/subham-04/file-hash-checker-site/internal/checksum"
	"github.com/subham-04/file-hash-checker-site/internal/constants"
	internalerrors "github.com/subham-04/file-hash-checker-site/internal/errors"
	"github.com/subham-04/file-hash-checker-site/internal/site"
)

// Request represents an HTTP request. Header names are lower case.
type Request struct {
	Method  string            `json:"method,omitempty"`
	Path    string            `json:"path,omitempty"`
	Query   string            `json:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    []byte            `json:"body,omitempty"`
}

// Response is a unified response type.
type Response struct {
	StatusCode  int               `json:"status_code"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        []byte            `json:"body,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
}

// pageRoutes maps every path a page is reachable at, including the
// directory-index layout produced by a static export.
var pageRoutes = map[string]site.Page{
	"/":                        site.Home,
	"/index.html":              site.Home,
	"/installation":            site.Installation,
	"/installation/":           site.Installation,
	"/installation/index.html": site.Installation,
	"/privacy":                 site.Privacy,
	"/privacy/":                site.Privacy,
	"/privacy/index.html":      site.Privacy,
}

// HandleRequest routes incoming requests to the appropriate handler.
func (a *App) HandleRequest(ctx context.Context, req Request) Response {
	start := time.Now()

	requestID := req.Headers["x-request-id"]
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp := a.handleHTTPRequest(ctx, req)
	if a.Config.CompressionEnabled {
		resp = encodeResponse(req.Headers["accept-encoding"], resp)
	}
	if req.Method == "HEAD" {
		resp.Body = nil
	}
	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	resp.Headers["X-Request-Id"] = requestID

	// Log page and API requests (skip static assets)
	if !isStaticPath(a.routePath(req.Path)) {
		a.Logger.Info("request",
			"method", req.Method,
			"path", req.Path,
			"status", resp.StatusCode,
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds())
	}

	return resp
}

// isStaticPath returns true for paths that should not be logged.
func isStaticPath(path string) bool {
	return path == "/styles.css" ||
		strings.HasPrefix(path, "/favicon")
}

// routePath strips the configured base path.
func (a *App) routePath(path string) string {
	if a.Config.BasePath != "" {
		path = strings.TrimPrefix(path, a.Config.BasePath)
		if path == "" {
			path = "/"
		}
	}
	return path
}

// handleHTTPRequest routes HTTP requests.
func (a *App) handleHTTPRequest(ctx context.Context, req Request) Response {
	path := a.routePath(req.Path)
	get := req.Method == "GET" || req.Method == "HEAD"

	if target, ok := pageRoutes[path]; ok {
		if !get {
			return methodNotAllowed("GET, HEAD")
		}
		if target == site.Home {
			// "?page=<id>" navigates from the initial page to <id>.
			if q, err := url.ParseQuery(req.Query); err == nil && q.Has("page") {
				target = site.Parse(q.Get("page"))
			}
		}
		return a.handlePage(req, target)
	}

	switch {
	case path == "/styles.css" && get:
		return a.handleAsset(req, "styles.css")
	case path == "/favicon.svg" && get:
		return a.handleAsset(req, "favicon.svg")
	case path == "/"+constants.DownloadName && get:
		return a.handleDownload(req)
	case path == "/healthz" && get:
		return jsonResponse(200, HealthResponse{Status: "ok", Pages: len(site.Pages())})
	case path == "/server/config" && get:
		return a.handleConfigRequest(req)
	case path == "/styles.css", path == "/favicon.svg", path == "/"+constants.DownloadName,
		path == "/healthz", path == "/server/config":
		return methodNotAllowed("GET, HEAD")
	default:
		return errorResponse(404, internalerrors.ErrPageNotFound.Error())
	}
}

// handlePage renders target for a visitor who loaded the site and navigated to it.
func (a *App) handlePage(req Request, target site.Page) Response {
	head := &site.Head{}
	router := site.NewRouter(head)
	router.Navigate(target)

	body, err := a.Renderer.Render(router, head)
	if err != nil {
		a.Logger.Error("failed to render page",
			slog.String("page", target.String()),
			slog.String("error", err.Error()))
		return errorResponse(500, "failed to render page")
	}

	return cacheable(req, Response{
		StatusCode:  200,
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, checksum.Sum(body), a.Config.PageCacheSeconds)
}

// handleAsset serves an embedded stylesheet or icon.
func (a *App) handleAsset(req Request, name string) Response {
	as, ok := a.assets[name]
	if !ok {
		return errorResponse(404, internalerrors.ErrAssetNotFound.Error())
	}
	return cacheable(req, Response{
		StatusCode:  200,
		ContentType: as.contentType,
		Body:        as.data,
	}, as.digest, as.maxAge)
}

// handleDownload serves the desktop application as an attachment.
func (a *App) handleDownload(req Request) Response {
	data, digest, err := a.Download()
	if err != nil {
		if internalerrors.IsNotFound(err) {
			a.Logger.Warn("download requested but file is missing",
				slog.String("download_file", a.Config.DownloadFile))
			return errorResponse(404, internalerrors.ErrDownloadUnavailable.Error())
		}
		a.Logger.Error("failed to read download", slog.String("error", err.Error()))
		return errorResponse(500, "failed to read download")
	}

	resp := cacheable(req, Response{
		StatusCode:  200,
		ContentType: "text/x-python; charset=utf-8",
		Headers: map[string]string{
			"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, constants.DownloadName),
			"X-Checksum-Sha256":   digest.SHA256,
		},
		Body: data,
	}, digest, constants.StaticFileCacheDuration)
	return resp
}

// handleConfigRequest returns the redacted configuration.
func (a *App) handleConfigRequest(req Request) Response {
	if resp := a.checkAdminAuth(req); resp != nil {
		return *resp
	}
	return jsonResponse(200, a.Config.Redacted())
}

// cacheable adds validators and caching headers to resp, answering 304 when
// the client already holds the current representation.
func cacheable(req Request, resp Response, digest checksum.Digest, maxAge int) Response {
	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	etag := digest.ETag()
	resp.Headers["ETag"] = etag
	resp.Headers["Cache-Control"] = fmt.Sprintf("public, max-age=%d", maxAge)

	if checksum.Matches(req.Headers["if-none-match"], etag) {
		resp.StatusCode = 304
		resp.Body = nil
	}
	return resp
}

func methodNotAllowed(allow string) Response {
	resp := errorResponse(405, "method not allowed")
	resp.Headers["Allow"] = allow
	return resp
}

func jsonResponse(status int, data any) Response {
	body, err := json.Marshal(data)
	if err != nil {
		return errorResponse(500, "failed to encode response")
	}
	return Response{
		StatusCode:  status,
		ContentType: "application/json",
		Headers:     map[string]string{"Content-Type": "application/json"},
		Body:        body,
	}
}

func errorResponse(status int, message string) Response {
	body, _ := json.Marshal(map[string]string{"error": message})
	return Response{
		StatusCode:  status,
		ContentType: "application/json",
		Headers:     map[string]string{"Content-Type": "application/json"},
		Body:        body,
	}
}

func (a *App) checkAdminAuth(req Request) *Response {
	if a.Config.AdminToken == "" {
		return nil
	}

	authHeader := req.Headers["authorization"]
	if authHeader == "" {
		resp := errorResponse(401, "missing authorization header")
		return &resp
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		token = strings.TrimPrefix(authHeader, "bearer ")
	}

	if token != a.Config.AdminToken {
		resp := errorResponse(401, "invalid authorization token")
		return &resp
	}

	return nil
}
