package app

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"

	"github.com/subham-04/file-hash-checker-site/internal/constants"
)

// encodeResponse compresses resp with the best encoding the client accepts.
// Small, binary, or non-200 responses are returned unchanged.
func encodeResponse(acceptEncoding string, resp Response) Response {
	if resp.StatusCode != 200 || len(resp.Body) < constants.MinCompressSize || !compressible(resp.ContentType) {
		return resp
	}

	encoding := negotiateEncoding(acceptEncoding)
	if encoding == "" {
		return resp
	}

	var buf bytes.Buffer
	switch encoding {
	case "br":
		w := brotli.NewWriterLevel(&buf, constants.BrotliQuality)
		if _, err := w.Write(resp.Body); err != nil {
			return resp
		}
		if err := w.Close(); err != nil {
			return resp
		}
	case "gzip":
		w, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
		if err != nil {
			return resp
		}
		if _, err := w.Write(resp.Body); err != nil {
			return resp
		}
		if err := w.Close(); err != nil {
			return resp
		}
	}

	headers := make(map[string]string, len(resp.Headers)+2)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers["Content-Encoding"] = encoding
	headers["Vary"] = "Accept-Encoding"
	// The encoded bytes differ from the identity representation.
	if etag, ok := headers["ETag"]; ok && etag != "" && !strings.HasPrefix(etag, "W/") {
		headers["ETag"] = "W/" + etag
	}

	resp.Headers = headers
	resp.Body = buf.Bytes()
	return resp
}

// negotiateEncoding picks br over gzip from an Accept-Encoding header.
// Codings with q=0 are refused.
func negotiateEncoding(header string) string {
	var br, gz bool
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if refused(params) {
			continue
		}
		switch name {
		case "br":
			br = true
		case "gzip", "x-gzip":
			gz = true
		case "*":
			br = true
		}
	}
	switch {
	case br:
		return "br"
	case gz:
		return "gzip"
	default:
		return ""
	}
}

func refused(params string) bool {
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || strings.TrimSpace(k) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && q == 0
	}
	return false
}

func compressible(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		strings.HasPrefix(contentType, "application/json") ||
		strings.HasPrefix(contentType, "image/svg+xml")
}
