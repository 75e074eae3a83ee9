package logger

import (
	"context"
	c "eventers-legacy-adapter/context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

const CorrelationId = "correlation_id"

var newline = regexp.MustCompile(`(\r\n)|(\n)`)

func init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
}

// Configure sets the level ("debug", "info", ...) and the output format
// ("text" or "json") of the package logger.
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("configure: invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("configure: unknown log format %q", format)
	}
	return nil
}

// SetOutput redirects the package logger, mostly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func entry(ctx context.Context) *logrus.Entry {
	return logger.WithField(CorrelationId, c.CorrelationID(ctx))
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Fatalf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Infof(format, args...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Debug(escapeString(format, args...))
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	entry(ctx).Error(escapeString(format, args...))
}

// LogExecutionTime is meant to be deferred: defer LogExecutionTime(ctx, time.Now(), "name").
func LogExecutionTime(ctx context.Context, start time.Time, name string) {
	elapsed := time.Since(start)
	entry(ctx).WithField("elapsed_ms", elapsed.Milliseconds()).Infof("%s took %s", name, elapsed)
}

func escapeString(format string, args ...interface{}) string {
	return newline.ReplaceAllString(fmt.Sprintf(format, args...), "\\n ")
}
