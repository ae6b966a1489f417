// sitectl exports, publishes and previews the File Hash Checker site.
//
//	sitectl export --out dist        write the static site to a directory
//	sitectl export --dry-run         render everything, write nothing
//	sitectl publish                  upload to APP_PUBLISH_BUCKET and notify Slack
//	sitectl preview                  browse the site in the terminal
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/subham-04/file-hash-checker-site/internal/app"
	"github.com/subham-04/file-hash-checker-site/internal/config"
	"github.com/subham-04/file-hash-checker-site/internal/content"
	"github.com/subham-04/file-hash-checker-site/internal/export"
	"github.com/subham-04/file-hash-checker-site/internal/notifiers"
	"github.com/subham-04/file-hash-checker-site/internal/preview"
	"github.com/subham-04/file-hash-checker-site/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	// Load .env file if present
	godotenv.Load()

	if len(args) == 0 {
		printHelp(stdout)
		return errors.New("missing command")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "export":
		return runExport(ctx, args[1:], stdout)
	case "publish":
		return runPublish(ctx, args[1:], stdout)
	case "preview":
		return runPreview(args[1:])
	case "help", "-h", "--help":
		printHelp(stdout)
		return nil
	default:
		printHelp(stdout)
		return errors.Newf("unknown command %q", args[0])
	}
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `sitectl manages the File Hash Checker site.

Usage:
  sitectl export [--out DIR] [--dry-run]
  sitectl publish [--bucket NAME] [--prefix PATH] [--no-notify]
  sitectl preview

Configuration is read from the environment (APP_*), an optional .env file,
and the TOML file named by APP_CONFIG_FILE.
`)
}

// newApp loads the configuration and creates the app, applying the common
// --base-path and --site-url flags.
func newApp(basePath, siteURL string) (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if basePath != "" {
		cfg.BasePath = basePath
	}
	if siteURL != "" {
		cfg.SiteURL = siteURL
	}
	// Exported files are served by a static host that does its own encoding.
	cfg.CompressionEnabled = false

	return app.New(cfg)
}

func runExport(ctx context.Context, args []string, stdout io.Writer) error {
	var outDir, basePath, siteURL string
	var dryRun bool

	flagSet := pflag.NewFlagSet("export", pflag.ContinueOnError)
	flagSet.StringVarP(&outDir, "out", "o", "dist", "directory to write the site to")
	flagSet.BoolVar(&dryRun, "dry-run", false, "render every file without writing anything")
	flagSet.StringVar(&basePath, "base-path", "", "URL prefix the site is served under (overrides APP_BASE_PATH)")
	flagSet.StringVar(&siteURL, "site-url", "", "canonical site URL (overrides APP_SITE_URL)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	a, err := newApp(basePath, siteURL)
	if err != nil {
		return err
	}

	var store storage.Store = &storage.NullStore{}
	if !dryRun {
		fs, err := storage.NewFileStore(outDir)
		if err != nil {
			return err
		}
		store = fs
	}

	exporter := export.New(a, store)
	report, err := exporter.Run(ctx)
	if err != nil {
		return err
	}
	if !dryRun {
		if err := exporter.Verify(ctx, report); err != nil {
			return err
		}
	}
	printReport(stdout, report)
	return nil
}

func runPublish(ctx context.Context, args []string, stdout io.Writer) error {
	var bucket, prefix, basePath, siteURL string
	var noNotify bool

	flagSet := pflag.NewFlagSet("publish", pflag.ContinueOnError)
	flagSet.StringVar(&bucket, "bucket", "", "S3 bucket to publish to (overrides APP_PUBLISH_BUCKET)")
	flagSet.StringVar(&prefix, "prefix", "", "key prefix inside the bucket (overrides APP_PUBLISH_PREFIX)")
	flagSet.BoolVar(&noNotify, "no-notify", false, "do not post Slack notices")
	flagSet.StringVar(&basePath, "base-path", "", "URL prefix the site is served under (overrides APP_BASE_PATH)")
	flagSet.StringVar(&siteURL, "site-url", "", "canonical site URL (overrides APP_SITE_URL)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	a, err := newApp(basePath, siteURL)
	if err != nil {
		return err
	}
	cfg := a.Config
	if bucket != "" {
		cfg.PublishBucket = bucket
	}
	if prefix != "" {
		cfg.PublishPrefix = prefix
	}

	awsCfg, err := cfg.LoadAWSConfig(ctx)
	if err != nil {
		return errors.Wrap(err, "load AWS config")
	}
	store, err := storage.NewS3Store(storage.S3StoreConfig{
		AWSConfig: awsCfg,
		Bucket:    cfg.PublishBucket,
		Prefix:    cfg.PublishPrefix,
	})
	if err != nil {
		return err
	}

	var notifier export.Notifier = &notifiers.NullNotifier{}
	if cfg.SlackEnabled && cfg.SlackChannel != "" && !noNotify {
		notifier = notifiers.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannel)
	}

	exporter := export.New(a, store, export.WithNotifier(notifier))
	report, err := exporter.Run(ctx)
	if err != nil {
		return err
	}
	if err := exporter.Verify(ctx, report); err != nil {
		return err
	}
	printReport(stdout, report)
	return nil
}

func runPreview(args []string) error {
	flagSet := pflag.NewFlagSet("preview", pflag.ContinueOnError)
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	catalog, err := content.Default()
	if err != nil {
		return errors.Wrap(err, "load content catalog")
	}

	program := tea.NewProgram(preview.NewModel(catalog), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printReport(w io.Writer, report *export.Report) {
	fmt.Fprintf(w, "Exported %d files to %s\n", len(report.Files), report.Location)
	for _, f := range report.Files {
		fmt.Fprintf(w, "  %-28s %8d  %s\n", f.Key, f.Size, f.SHA256[:12])
	}
}
