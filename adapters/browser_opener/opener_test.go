package browser_opener

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogOnly(t *testing.T) {
	var buf bytes.Buffer
	o := &LogOnly{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	if err := o.Open(context.Background(), "https://tokuplus.com/Robot/index.asp?email=a%40b.com"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if !strings.Contains(buf.String(), "email=a%40b.com") {
		t.Errorf("log = %q, want url", buf.String())
	}
}
