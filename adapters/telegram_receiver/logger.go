package telegram_receiver

import (
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
)

type slogLogger struct {
	logger *slog.Logger
}

// Logger adapts logger for telego. Polling errors surface as warnings since
// telego retries them itself.
func Logger(logger *slog.Logger) telego.Logger {
	return slogLogger{logger: logger.With("component", "telego")}
}

func (l slogLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l slogLogger) Errorf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}
