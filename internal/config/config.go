// Package config provides configuration loading for the File Hash Checker site.
package config

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/cockroachdb/errors"

	"github.com/subham-04/file-hash-checker-site/internal/constants"
)

// Config holds all configuration for the site.
type Config struct {
	// Server configuration
	Port     string `toml:"port"`
	BasePath string `toml:"base_path"`
	SiteURL  string `toml:"site_url"`

	// Download asset served at /File_Hash_Calculator.py
	DownloadFile string `toml:"download_file"`

	// Admin configuration
	AdminToken string `toml:"admin_token"`

	// Debug settings
	DebugEnabled bool `toml:"debug_enabled"`

	// TLS configuration for server
	TLSEnabled  bool   `toml:"tls_enabled"`
	TLSCertPath string `toml:"tls_cert_path"`
	TLSKeyPath  string `toml:"tls_key_path"`

	// Response compression (brotli or gzip, negotiated per request)
	CompressionEnabled bool `toml:"compression_enabled"`

	// Cache-Control max-age for rendered pages, in seconds
	PageCacheSeconds int `toml:"page_cache_seconds"`

	// Publish target
	PublishBucket string `toml:"publish_bucket"`
	PublishPrefix string `toml:"publish_prefix"`
	AWSRegion     string `toml:"aws_region"`
	AWSProfile    string `toml:"aws_profile"`

	// Slack configuration for publish notices
	SlackEnabled bool   `toml:"slack_enabled"`
	SlackToken   string `toml:"slack_token"`
	SlackChannel string `toml:"slack_channel"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Port:               constants.DefaultHTTPPort,
		SiteURL:            constants.DefaultSiteURL,
		DownloadFile:       constants.DefaultDownloadFile,
		CompressionEnabled: true,
		PageCacheSeconds:   constants.PageCacheDuration,
		AWSRegion:          "us-east-1",
	}
}

// NewConfig creates a new Config. Values from the TOML file named by
// APP_CONFIG_FILE, if set, are applied over the defaults, and environment
// variables are applied last.
func NewConfig() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("APP_CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("APP_PORT", cfg.Port)
	cfg.BasePath = strings.TrimSuffix(getEnv("APP_BASE_PATH", cfg.BasePath), "/")
	cfg.SiteURL = strings.TrimSuffix(getEnv("APP_SITE_URL", cfg.SiteURL), "/")
	cfg.DownloadFile = getEnv("APP_DOWNLOAD_FILE", cfg.DownloadFile)
	cfg.AdminToken = getEnv("APP_ADMIN_TOKEN", cfg.AdminToken)
	cfg.DebugEnabled = getEnvBool("APP_DEBUG_ENABLED", cfg.DebugEnabled)
	cfg.TLSEnabled = getEnvBool("APP_TLS_ENABLED", cfg.TLSEnabled)
	cfg.TLSCertPath = getEnv("APP_TLS_CERT_PATH", cfg.TLSCertPath)
	cfg.TLSKeyPath = getEnv("APP_TLS_KEY_PATH", cfg.TLSKeyPath)
	cfg.CompressionEnabled = getEnvBool("APP_COMPRESSION_ENABLED", cfg.CompressionEnabled)
	cfg.PageCacheSeconds = getEnvInt("APP_PAGE_CACHE_SECONDS", cfg.PageCacheSeconds)
	cfg.PublishBucket = getEnv("APP_PUBLISH_BUCKET", cfg.PublishBucket)
	cfg.PublishPrefix = strings.Trim(getEnv("APP_PUBLISH_PREFIX", cfg.PublishPrefix), "/")
	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.AWSProfile = getEnv("AWS_PROFILE", cfg.AWSProfile)
	cfg.SlackEnabled = getEnvBool("APP_SLACK_ENABLED", cfg.SlackEnabled)
	cfg.SlackToken = getEnv("APP_SLACK_TOKEN", cfg.SlackToken)
	cfg.SlackChannel = getEnv("APP_SLACK_CHANNEL", cfg.SlackChannel)

	if cfg.SlackToken != "" {
		cfg.SlackEnabled = true
	}

	return cfg, nil
}

// LoadFile decodes the TOML file at path into cfg. Keys absent from the file
// leave the existing values untouched.
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "decode config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Newf("config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadAWSConfig loads the AWS SDK configuration.
func (c *Config) LoadAWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}

	if c.AWSProfile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.AWSProfile))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// Redacted returns a copy of the config with sensitive values redacted.
func (c *Config) Redacted() map[string]any {
	return map[string]any{
		"port":                c.Port,
		"base_path":           c.BasePath,
		"site_url":            c.SiteURL,
		"download_file":       c.DownloadFile,
		"admin_token":         redact(c.AdminToken),
		"debug_enabled":       c.DebugEnabled,
		"tls_enabled":         c.TLSEnabled,
		"compression_enabled": c.CompressionEnabled,
		"page_cache_seconds":  c.PageCacheSeconds,
		"publish_bucket":      c.PublishBucket,
		"publish_prefix":      c.PublishPrefix,
		"aws_region":          c.AWSRegion,
		"aws_profile":         c.AWSProfile,
		"slack_enabled":       c.SlackEnabled,
		"slack_token":         redact(c.SlackToken),
		"slack_channel":       c.SlackChannel,
	}
}

// NewLogger creates a new structured logger.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if getEnvBool("APP_DEBUG_ENABLED", false) {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "***" + s[len(s)-4:]
}
