package linkedhashmap

import (
	"log/slog"
	"os"
	"strings"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

// logger is used by maps created without WithLogger.
var logger *slog.Logger

func init() {
	setupLogger(levelFromEnv(os.Getenv("LOG_LEVEL")))
}

func levelFromEnv(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupLogger(level slog.Level) {
	logger = slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         level,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	}))
	colorEnv := strings.ToLower(os.Getenv("NO_COLOR"))
	color.NoColor = colorEnv != ""
}

// SetLogger replaces the package logger. It only affects maps created
// afterwards without WithLogger; existing maps keep the logger they were
// built with. A nil logger restores the default configured from LOG_LEVEL
// and NO_COLOR. To silence output pass a logger over slog.DiscardHandler.
func SetLogger(l *slog.Logger) {
	if l == nil {
		setupLogger(levelFromEnv(os.Getenv("LOG_LEVEL")))
		return
	}
	logger = l
}
