// Package notifiers provides notification integrations.
package notifiers

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/subham-04/file-hash-checker-site/internal/export"
)

// SlackNotifier sends publish notices to Slack.
type SlackNotifier struct {
	client  *slack.Client
	channel string
	apiURL  string
}

// NewSlackNotifier creates a new Slack notifier.
func NewSlackNotifier(token, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// NewSlackNotifierWithAPIURL creates a Slack notifier with a custom API URL (for testing).
func NewSlackNotifierWithAPIURL(token, channel, apiURL string) *SlackNotifier {
	opts := []slack.Option{}
	if apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(apiURL))
	}
	return &SlackNotifier{
		client:  slack.New(token, opts...),
		channel: channel,
		apiURL:  apiURL,
	}
}

// NotifyPublishStarted sends a notification when a publish begins.
func (n *SlackNotifier) NotifyPublishStarted(ctx context.Context, report *export.Report) error {
	text := fmt.Sprintf(":rocket: *Site Publish Started*\n"+
		"• *Destination*: `%s`\n"+
		"• *Site*: %s",
		report.Location, report.SiteURL)

	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	return err
}

// NotifyPublishCompleted sends a notification when a publish completes.
func (n *SlackNotifier) NotifyPublishCompleted(ctx context.Context, report *export.Report) error {
	download := "not included"
	if f, ok := report.File(export.DownloadKey); ok {
		download = fmt.Sprintf("sha256 `%s`", f.SHA256)
	}
	text := fmt.Sprintf(":white_check_mark: *Site Published*\n"+
		"• *Destination*: `%s`\n"+
		"• *Files*: %d (%s)\n"+
		"• *Download*: %s\n"+
		"• *Duration*: %s",
		report.Location, len(report.Files), formatBytes(report.TotalBytes()), download,
		report.Duration().Round(time.Millisecond))

	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	return err
}

// NotifyPublishFailed sends a notification when a publish fails.
func (n *SlackNotifier) NotifyPublishFailed(ctx context.Context, report *export.Report, cause error) error {
	text := fmt.Sprintf(":x: *Site Publish Failed*\n"+
		"• *Destination*: `%s`\n"+
		"• *Files written*: %d\n"+
		"• *Error*: %s",
		report.Location, len(report.Files), cause)

	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	return err
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// NullNotifier is a no-op notifier.
type NullNotifier struct{}

func (n *NullNotifier) NotifyPublishStarted(ctx context.Context, report *export.Report) error {
	return nil
}

func (n *NullNotifier) NotifyPublishCompleted(ctx context.Context, report *export.Report) error {
	return nil
}

func (n *NullNotifier) NotifyPublishFailed(ctx context.Context, report *export.Report, cause error) error {
	return nil
}
