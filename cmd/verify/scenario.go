package main

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/subham-04/file-hash-checker-site/internal/app"
	"github.com/subham-04/file-hash-checker-site/internal/config"
	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/export"
	"github.com/subham-04/file-hash-checker-site/internal/notifiers"
	"github.com/subham-04/file-hash-checker-site/internal/site"
	"github.com/subham-04/file-hash-checker-site/internal/storage"
)

// TestScenario defines a test case: a sequence of navigation or request
// steps, or a publish against mock S3 and Slack endpoints.
type TestScenario struct {
	Name            string            `yaml:"name" json:"name"`
	Description     string            `yaml:"description,omitempty" json:"description,omitempty"`
	Action          string            `yaml:"action" json:"action"`
	ConfigOverrides map[string]string `yaml:"config_overrides,omitempty" json:"config_overrides,omitempty"`
	Steps           []Step            `yaml:"steps,omitempty" json:"steps,omitempty"`
	ExpectedCalls   []ExpectedCall    `yaml:"expected_calls,omitempty" json:"expected_calls,omitempty"`
	MockResponses   []CannedResponse   `yaml:"mock_responses,omitempty" json:"mock_responses,omitempty"`
	ExpectError     bool              `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
	ExpectFiles     int               `yaml:"expect_files,omitempty" json:"expect_files,omitempty"` // Expected number of published files
}

// Step is one navigation or HTTP request and its expectations.
type Step struct {
	// Navigate moves the scenario's router to a page id. Unknown ids land on home.
	Navigate string `yaml:"navigate,omitempty" json:"navigate,omitempty"`
	// Request sends a request to the in-process app instead.
	Request string            `yaml:"request,omitempty" json:"request,omitempty"`
	Method  string            `yaml:"method,omitempty" json:"method,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	ExpectPage        string            `yaml:"expect_page,omitempty" json:"expect_page,omitempty"`
	ExpectStatus      int               `yaml:"expect_status,omitempty" json:"expect_status,omitempty"`
	ExpectTitle       string            `yaml:"expect_title,omitempty" json:"expect_title,omitempty"`
	ExpectDescription string            `yaml:"expect_description,omitempty" json:"expect_description,omitempty"`
	ExpectBody        []string          `yaml:"expect_body,omitempty" json:"expect_body,omitempty"`
	RejectBody        []string          `yaml:"reject_body,omitempty" json:"reject_body,omitempty"`
	ExpectHeaders     map[string]string `yaml:"expect_headers,omitempty" json:"expect_headers,omitempty"`
}

// ExpectedCall defines an HTTP API call the test expects.
type ExpectedCall struct {
	Service string `yaml:"service" json:"service"`
	Method  string `yaml:"method" json:"method"`
	Path    string `yaml:"path" json:"path"`
	Action  string `yaml:"action,omitempty" json:"action,omitempty"`
}

// runScenario executes a single test scenario.
func runScenario(ctx context.Context, scenario TestScenario, verbose bool, logger *slog.Logger) error {
	startTime := time.Now()

	fmt.Printf("\n> Running: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("  %s\n", scenario.Description)
	}

	// Apply config overrides
	for key, value := range scenario.ConfigOverrides {
		os.Setenv(key, value)
	}
	defer func() {
		for key := range scenario.ConfigOverrides {
			os.Unsetenv(key)
		}
	}()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("config creation failed: %w", err)
	}

	catalog, err := content.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	appInst, err := app.NewWithCatalog(cfg, catalog, logger)
	if err != nil {
		return fmt.Errorf("app init failed: %w", err)
	}

	switch scenario.Action {
	case "navigate":
		err = runSteps(ctx, appInst, scenario.Steps, verbose)
	case "publish":
		err = runPublish(ctx, appInst, scenario, verbose, logger)
	default:
		return fmt.Errorf("unknown action: %s", scenario.Action)
	}
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	fmt.Printf("  PASSED (%.2fs)\n", duration.Seconds())
	return nil
}

// runSteps drives one router through the navigation steps, the way a visitor
// moves through the site without reloading it. Request steps go through the
// HTTP handler and leave the router untouched.
func runSteps(ctx context.Context, appInst *app.App, steps []Step, verbose bool) error {
	head := &site.Head{}
	router := site.NewRouter(head)

	for i, step := range steps {
		var (
			status  int
			body    string
			headers map[string]string
			label   string
		)

		switch {
		case step.Request != "":
			method := step.Method
			if method == "" {
				method = http.MethodGet
			}
			path, query, _ := strings.Cut(step.Request, "?")
			lowered := make(map[string]string, len(step.Headers))
			for k, v := range step.Headers {
				lowered[strings.ToLower(k)] = v
			}
			resp := appInst.HandleRequest(ctx, app.Request{Method: method, Path: path, Query: query, Headers: lowered})
			status, body, headers = resp.StatusCode, string(resp.Body), resp.Headers
			label = method + " " + step.Request

		default:
			router.NavigateTo(step.Navigate)
			out, err := appInst.Renderer.Render(router, head)
			if err != nil {
				return fmt.Errorf("step %d: render: %w", i+1, err)
			}
			status, body = http.StatusOK, string(out)
			label = "navigate " + step.Navigate
		}

		if verbose {
			fmt.Printf("    [%d] %-28s -> %d, page %s, title %q\n", i+1, label, status, router.Current(), head.Title)
		}

		if err := checkStep(step, router, head, status, body, headers); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, label, err)
		}
	}
	return nil
}

func checkStep(step Step, router *site.Router, head *site.Head, status int, body string, headers map[string]string) error {
	if step.ExpectStatus != 0 && status != step.ExpectStatus {
		return fmt.Errorf("expected status %d but got %d", step.ExpectStatus, status)
	}
	if step.ExpectPage != "" && router.Current().String() != step.ExpectPage {
		return fmt.Errorf("expected page %s but got %s", step.ExpectPage, router.Current())
	}
	if step.ExpectTitle != "" && !strings.Contains(head.Title, step.ExpectTitle) {
		return fmt.Errorf("title %q does not contain %q", head.Title, step.ExpectTitle)
	}
	if step.ExpectDescription != "" && head.Description != step.ExpectDescription {
		return fmt.Errorf("description %q, want %q", head.Description, step.ExpectDescription)
	}

	text := html.UnescapeString(body)
	for _, want := range step.ExpectBody {
		if !strings.Contains(text, want) {
			return fmt.Errorf("body does not contain %q", want)
		}
	}
	for _, reject := range step.RejectBody {
		if strings.Contains(text, reject) {
			return fmt.Errorf("body should not contain %q", reject)
		}
	}
	for k, want := range step.ExpectHeaders {
		if got := headers[k]; !matchPath(got, want) {
			return fmt.Errorf("header %s = %q, want %q", k, got, want)
		}
	}
	return nil
}

// runPublish exports the site into a mock S3 bucket and posts notices to a
// mock Slack API.
func runPublish(ctx context.Context, appInst *app.App, scenario TestScenario, verbose bool, logger *slog.Logger) error {
	s3Fake := newFakeService("S3", scenario.MockResponses, verbose)
	slackFake := newFakeService("Slack", scenario.MockResponses, verbose)

	s3Server := httptest.NewServer(s3Fake)
	defer s3Server.Close()
	slackServer := httptest.NewServer(slackFake)
	defer slackServer.Close()

	cfg := appInst.Config
	bucket := cfg.PublishBucket
	if bucket == "" {
		bucket = "site-bucket"
	}

	store, err := storage.NewS3Store(storage.S3StoreConfig{
		AWSConfig: aws.Config{
			Region:      cfg.AWSRegion,
			Credentials: aws.AnonymousCredentials{},
			// Disable retries to fail faster in tests
			RetryMaxAttempts: 1,
		},
		Bucket:  bucket,
		Prefix:  cfg.PublishPrefix,
		BaseURL: s3Server.URL,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	notifier := notifiers.NewSlackNotifierWithAPIURL("xoxb-verify", "#site", slackServer.URL+"/api/")
	report, publishErr := export.New(appInst, store,
		export.WithNotifier(notifier),
		export.WithLogger(logger),
	).Run(ctx)

	if scenario.ExpectError {
		if publishErr == nil {
			return fmt.Errorf("expected error but succeeded")
		}
		if verbose {
			fmt.Printf("  Expected error occurred: %v\n", publishErr)
		}
	} else if publishErr != nil {
		return fmt.Errorf("unexpected error: %w", publishErr)
	}

	if scenario.ExpectFiles > 0 && len(report.Files) != scenario.ExpectFiles {
		return fmt.Errorf("expected %d files but got %d", scenario.ExpectFiles, len(report.Files))
	}
	if verbose {
		fmt.Printf("  Files published: %d\n", len(report.Files))
		for i, f := range report.Files {
			fmt.Printf("    [%d] %s (%d bytes)\n", i+1, f.Key, f.Size)
		}
	}

	s3Reqs := s3Fake.Calls()
	slackReqs := slackFake.Calls()

	allReqs := make(map[string][]CapturedCall)
	allReqs["s3"] = s3Reqs
	allReqs["slack"] = slackReqs

	if err := validateExpectedCalls(scenario.ExpectedCalls, allReqs); err != nil {
		fmt.Printf("\n  Validation:\n")
		fmt.Printf("    FAILED: %v\n", err)
		fmt.Printf("\n  Captured requests:\n")
		if len(s3Reqs) > 0 {
			fmt.Printf("    S3 (%d):\n", len(s3Reqs))
			for i, req := range s3Reqs {
				fmt.Printf("      [%d] %s %s [%s]\n", i+1, req.Method, req.Path, req.Operation)
			}
		}
		if len(slackReqs) > 0 {
			fmt.Printf("    Slack (%d):\n", len(slackReqs))
			for i, req := range slackReqs {
				fmt.Printf("      [%d] %s %s\n", i+1, req.Method, req.Path)
			}
		}
		return err
	}
	return nil
}

// validateExpectedCalls verifies that all expected calls were made.
func validateExpectedCalls(expected []ExpectedCall, allReqs map[string][]CapturedCall) error {
	for _, exp := range expected {
		reqs := allReqs[exp.Service]
		found := false
		for _, req := range reqs {
			methodMatch := req.Method == exp.Method
			pathMatch := matchPath(req.Path, exp.Path)
			actionMatch := exp.Action == "" || req.Operation == exp.Action

			if methodMatch && pathMatch && actionMatch {
				found = true
				break
			}
		}
		if !found {
			if exp.Action != "" {
				return fmt.Errorf("expected call not found: %s %s %s [%s]", exp.Service, exp.Method, exp.Path, exp.Action)
			}
			return fmt.Errorf("expected call not found: %s %s %s", exp.Service, exp.Method, exp.Path)
		}
	}
	return nil
}
