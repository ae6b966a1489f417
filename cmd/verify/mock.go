package main

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"sync"
)

// CapturedCall is one request received by a fakeService.
type CapturedCall struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Query  string `json:"query,omitempty"`
	// Operation is the Slack method or S3 operation the request performs.
	Operation string `json:"operation,omitempty"`
	Size      int    `json:"size"`
}

// CannedResponse is a reply a scenario scripts for S3 or Slack. Entries are
// tried in order; the first whose operation, or method and path, fits wins.
type CannedResponse struct {
	Service    string            `yaml:"service" json:"service"`
	Method     string            `yaml:"method" json:"method"`
	Path       string            `yaml:"path" json:"path"`
	Action     string            `yaml:"action,omitempty" json:"action,omitempty"`
	StatusCode int               `yaml:"status_code" json:"status_code"`
	Headers    map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Body       string            `yaml:"body" json:"body"`
}

func (c CannedResponse) fits(method, urlPath, operation string) bool {
	if c.Method != method {
		return false
	}
	if c.Action != "" {
		return c.Action == operation
	}
	return matchPath(urlPath, c.Path)
}

// fakeService stands in for S3 or the Slack Web API during a publish.
type fakeService struct {
	service string
	verbose bool
	replies []CannedResponse

	mu    sync.Mutex
	calls []CapturedCall
}

func newFakeService(service string, scripted []CannedResponse, verbose bool) *fakeService {
	f := &fakeService{service: service, verbose: verbose}
	for _, c := range scripted {
		if strings.EqualFold(c.Service, service) {
			f.replies = append(f.replies, c)
		}
	}
	return f
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, _ := io.Copy(io.Discard, r.Body)
	r.Body.Close()

	op := operationOf(f.service, r)
	f.mu.Lock()
	f.calls = append(f.calls, CapturedCall{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Operation: op,
		Size:      int(n),
	})
	f.mu.Unlock()

	for _, c := range f.replies {
		if c.fits(r.Method, r.URL.Path, op) {
			if f.verbose {
				fmt.Printf("    -> %-5s %-17s %s %d\n", f.service, op, r.URL.Path, c.StatusCode)
			}
			writeCanned(w, c)
			return
		}
	}

	if f.verbose {
		fmt.Printf("    !  %-5s %-17s %s unscripted\n", f.service, op, r.URL.Path)
	}
	writeCanned(w, CannedResponse{
		StatusCode: http.StatusNotFound,
		Body:       `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NotFound</Code><Message>no scripted response</Message></Error>`,
	})
}

// operationOf names the API call a request makes.
func operationOf(service string, r *http.Request) string {
	if strings.EqualFold(service, "slack") {
		return path.Base(r.URL.Path)
	}
	switch {
	case r.Method == http.MethodPut:
		return "PutObject"
	case r.Method == http.MethodGet && r.URL.Query().Get("list-type") == "2":
		return "ListObjectsV2"
	case r.Method == http.MethodGet:
		return "GetObject"
	default:
		return ""
	}
}

func writeCanned(w http.ResponseWriter, c CannedResponse) {
	for k, v := range c.Headers {
		w.Header().Set(k, v)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/xml")
	}
	w.WriteHeader(c.StatusCode)
	io.WriteString(w, c.Body)
}

// Calls returns a copy of the requests received so far.
func (f *fakeService) Calls() []CapturedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CapturedCall(nil), f.calls...)
}

// matchPath reports whether actual equals pattern, or starts with it when
// pattern ends in "*".
func matchPath(actual, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(actual, prefix)
	}
	return actual == pattern
}
