package browser_opener

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/browser"
)

// Browser opens URLs in the default browser of the host running the bot.
type Browser struct{}

// New creates a Browser opener. Output of the launched process is discarded.
func New() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{}
}

func (b *Browser) Open(_ context.Context, url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// LogOnly records URLs instead of opening them, for headless hosts.
type LogOnly struct {
	Logger *slog.Logger
}

func (l *LogOnly) Open(_ context.Context, url string) error {
	l.Logger.Info("open skipped, browser disabled", "url", url)
	return nil
}
