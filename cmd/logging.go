package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mudler/xlog"
)

// xlog writes to stdout, which also carries --json/--yaml output and the live
// view, so only errors are logged unless a level is asked for.
const defaultLogLevel = xlog.LogLevelError

// resolveLogLevel picks the --log-level flag, then LOG_LEVEL, then the
// default. The returned level is lower case.
func resolveLogLevel(flagValue string) (xlog.LogLevel, error) {
	level := strings.TrimSpace(flagValue)
	if level == "" {
		level = strings.TrimSpace(os.Getenv(xlog.EnvLogLevel))
	}
	if level == "" {
		return defaultLogLevel, nil
	}

	level = strings.ToLower(level)
	switch level {
	case xlog.LogLevelDebug, xlog.LogLevelInfo, xlog.LogLevelWarn, xlog.LogLevelError:
		return xlog.LogLevel(level), nil
	default:
		return "", fmt.Errorf("invalid log level %q: want debug, info, warn or error", level)
	}
}

func configureLogging(flagValue string) error {
	level, err := resolveLogLevel(flagValue)
	if err != nil {
		return err
	}

	xlog.SetLogger(xlog.NewLogger(level, os.Getenv(xlog.EnvLogFormat)))
	return nil
}
