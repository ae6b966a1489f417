package main

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/subham-04/file-hash-checker-site/internal/app"
)

func TestToRequest(t *testing.T) {
	event := events.APIGatewayV2HTTPRequest{
		RawPath:         "/installation",
		RawQueryString:  "x=1",
		Headers:         map[string]string{"Accept-Encoding": "br", "X-Request-Id": "abc"},
		Body:            base64.StdEncoding.EncodeToString([]byte("payload")),
		IsBase64Encoded: true,
	}
	event.RequestContext.HTTP.Method = "GET"

	req, err := toRequest(event)
	if err != nil {
		t.Fatalf("toRequest failed: %v", err)
	}
	if req.Method != "GET" || req.Path != "/installation" || req.Query != "x=1" {
		t.Errorf("request = %+v", req)
	}
	if req.Headers["accept-encoding"] != "br" || req.Headers["x-request-id"] != "abc" {
		t.Errorf("headers should be lower case: %v", req.Headers)
	}
	if string(req.Body) != "payload" {
		t.Errorf("body = %q", req.Body)
	}

	event.Body = "%%%"
	if _, err := toRequest(event); err == nil {
		t.Error("expected error for invalid base64 body")
	}
}

func TestToResponse(t *testing.T) {
	tests := []struct {
		name       string
		resp       app.Response
		wantBase64 bool
	}{
		{"html", app.Response{StatusCode: 200, ContentType: "text/html; charset=utf-8", Body: []byte("<h1>")}, false},
		{"json", app.Response{StatusCode: 404, ContentType: "application/json", Body: []byte(`{}`)}, false},
		{"svg", app.Response{StatusCode: 200, ContentType: "image/svg+xml", Body: []byte("<svg/>")}, false},
		{"compressed", app.Response{StatusCode: 200, ContentType: "text/html", Headers: map[string]string{"Content-Encoding": "br"}, Body: []byte{0x1b, 0x00}}, true},
		{"binary", app.Response{StatusCode: 200, ContentType: "application/octet-stream", Body: []byte{0xff}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := toResponse(tt.resp)
			if out.StatusCode != tt.resp.StatusCode {
				t.Errorf("status = %d", out.StatusCode)
			}
			if out.Headers["Content-Type"] != tt.resp.ContentType {
				t.Errorf("content type = %q", out.Headers["Content-Type"])
			}
			if out.IsBase64Encoded != tt.wantBase64 {
				t.Fatalf("base64 = %v, want %v", out.IsBase64Encoded, tt.wantBase64)
			}
			body := []byte(out.Body)
			if out.IsBase64Encoded {
				var err error
				if body, err = base64.StdEncoding.DecodeString(out.Body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
			}
			if string(body) != string(tt.resp.Body) {
				t.Errorf("body = %q", body)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	event := events.APIGatewayV2HTTPRequest{RawPath: "/privacy"}
	event.RequestContext.HTTP.Method = "GET"

	resp, err := handler(context.Background(), event)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Body, "License Terms") {
		t.Error("privacy page should be rendered")
	}
}
