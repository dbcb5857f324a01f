package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

func init() {
	// Default to info unless LOG_LEVEL says otherwise
	level := slog.LevelInfo
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			panic(fmt.Sprintf("invalid log level: %s", s))
		}
	}

	// Debug and explicit text format get coloured, source-annotated output;
	// everything else logs JSON for the log collector.
	pretty := level == slog.LevelDebug || os.Getenv("LOG_FORMAT") == "text"
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, level, pretty)))
	slog.Debug("debug logging enabled")
}

func newLogHandler(w io.Writer, level slog.Level, pretty bool) slog.Handler {
	// Set up the logger to be json output
	if !pretty {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	// Get module name dynamically from runtime build info
	prefix := modulePrefix()
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		AddSource:  level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				// Clean up the file path using the module prefix
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = trimSourcePath(source.File, prefix)
				}
			}
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	})
}

// modulePrefix is "/<last module path element>/", used to shorten source paths.
func modulePrefix() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		// Ultimate fallback
		return "/shouldibuy/"
	}
	// Use the last component of the module path
	// e.g., "github.com/loganlanou/shouldibuy" -> "/shouldibuy/"
	parts := strings.Split(info.Main.Path, "/")
	return "/" + parts[len(parts)-1] + "/"
}

// trimSourcePath removes the module prefix from the file path to make logs more readable
func trimSourcePath(file, prefix string) string {
	// Split the file path on the module name, and keep the last half
	if _, rest, ok := strings.Cut(file, prefix); ok {
		return rest
	}
	// If we can't split on the module prefix, drop the GOPATH part
	if idx := strings.LastIndex(file, "/src/"); idx != -1 {
		return file[idx+len("/src/"):]
	}
	return file
}
