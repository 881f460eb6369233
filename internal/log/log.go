package log

import "log/slog"

// Key is the context key type for the process logger.
type Key struct{}

// LoggerKey is a global instance of the Key type
var LoggerKey = Key{}

// LevelTrace sits two steps below slog's debug level (-8). It gates the HTTP
// request/response dumps separately from ordinary debug output.
const LevelTrace = slog.LevelDebug - 4

var configLevels = map[string]slog.Level{
	"trace": LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ConfigLevelStringToSlogLevel maps a configured level literal to its slog
// level. Unknown literals resolve to error so a typo never floods the log.
func ConfigLevelStringToSlogLevel(level string) slog.Level {
	if lvl, ok := configLevels[level]; ok {
		return lvl
	}
	return slog.LevelError
}
