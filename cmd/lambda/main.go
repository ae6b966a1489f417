// Package main provides the AWS Lambda entry point for the File Hash Checker
// site, fronted by an API Gateway HTTP API or a Lambda function URL.
package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/subham-04/file-hash-checker-site/internal/app"
	"github.com/subham-04/file-hash-checker-site/internal/config"
)

var appInst *app.App

func init() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic("config init failed: " + err.Error())
	}

	appInst, err = app.New(cfg)
	if err != nil {
		panic("app init failed: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	req, err := toRequest(event)
	if err != nil {
		appInst.Logger.Warn("invalid request body", slog.String("error", err.Error()))
		return events.APIGatewayV2HTTPResponse{StatusCode: 400, Body: `{"error":"invalid request body"}`}, nil
	}
	return toResponse(appInst.HandleRequest(ctx, req)), nil
}

// toRequest converts an API Gateway v2 event into an app.Request.
func toRequest(event events.APIGatewayV2HTTPRequest) (app.Request, error) {
	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[strings.ToLower(k)] = v
	}

	var body []byte
	if event.Body != "" {
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return app.Request{}, err
			}
			body = decoded
		} else {
			body = []byte(event.Body)
		}
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}

	return app.Request{
		Method:  event.RequestContext.HTTP.Method,
		Path:    path,
		Query:   event.RawQueryString,
		Headers: headers,
		Body:    body,
	}, nil
}

// toResponse converts an app.Response into an API Gateway v2 response.
// Compressed and non-text bodies are base64 encoded.
func toResponse(resp app.Response) events.APIGatewayV2HTTPResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	if resp.ContentType != "" {
		headers["Content-Type"] = resp.ContentType
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
	}
	if isBinary(resp) {
		out.Body = base64.StdEncoding.EncodeToString(resp.Body)
		out.IsBase64Encoded = true
	} else {
		out.Body = string(resp.Body)
	}
	return out
}

func isBinary(resp app.Response) bool {
	if resp.Headers["Content-Encoding"] != "" {
		return true
	}
	ct := resp.ContentType
	return ct != "" &&
		!strings.HasPrefix(ct, "text/") &&
		!strings.HasPrefix(ct, "application/json") &&
		!strings.HasPrefix(ct, "image/svg+xml")
}

func main() {
	lambda.Start(handler)
}
