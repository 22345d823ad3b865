package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"slices"
	"strings"

	"sendify/networkresult"
)

// Logger defines the interface for structured logging.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// LogBodyConfig configures body logging behavior.
type LogBodyConfig struct {
	MaxBodySize    int // total body limit in bytes (default: 4096)
	MaxStringValue int // max JSON string value in bytes (default: 1024)
}

// DefaultLogBodyConfig returns the default body logging configuration.
func DefaultLogBodyConfig() LogBodyConfig {
	return LogBodyConfig{
		MaxBodySize:    4096,
		MaxStringValue: 1024,
	}
}

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func newDefaultLogger() *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Log implements Logger.
func (l *SlogLogger) Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

const resultMessage = "HTTP Result"

func (a *Adapter[T, U]) log(ctx context.Context, r networkresult.Result[T, U], headers http.Header, body []byte) {
	if a.opts.logger == nil {
		return
	}

	attrs := []slog.Attr{slog.String("request_id", resolveRequestID(ctx, headers, a.opts.requestIDHeader))}
	level, rest := resultAttrs(r, headers, body, a.opts.logBodyConfig)
	a.opts.logger.Log(ctx, level, resultMessage, append(attrs, rest...)...)
}

// resultAttrs returns the level and attributes for one adapted result.
// Successes log at debug, server errors at warn and everything else at error.
func resultAttrs[T, U any](r networkresult.Result[T, U], headers http.Header, body []byte, cfg LogBodyConfig) (slog.Level, []slog.Attr) {
	level := slog.LevelError
	switch r.Kind() {
	case networkresult.KindSuccess:
		level = slog.LevelDebug
	case networkresult.KindServerError:
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{slog.String("kind", r.Kind().String())}
	if code, ok := statusOf(r); ok {
		attrs = append(attrs, slog.Int("status", code))
	}
	if headers != nil {
		attrs = append(attrs, slog.Any("headers", redactHeaders(headers)))
	}
	if logged := bodyForLog(body, headers.Get("Content-Type"), cfg); logged != nil {
		attrs = append(attrs, slog.Any("body", logged))
	}
	if err := r.Err(); err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	return level, attrs
}

// statusOf reports the status code a result carries. Network errors and
// unknown errors raised before a response arrived have none.
func statusOf[T, U any](r networkresult.Result[T, U]) (int, bool) {
	switch v := r.Variant().(type) {
	case networkresult.Success[T]:
		return v.Code(), true
	case networkresult.ServerError[U]:
		return v.Code(), true
	case networkresult.UnknownError:
		return v.Code()
	default:
		return 0, false
	}
}

// Canonical header names whose values are never logged.
var redactedHeaders = []string{
	"Authorization",
	"Cookie",
	"Proxy-Authorization",
	"Set-Cookie",
	"Www-Authenticate",
}

// Any header whose lowercased name contains one of these is redacted too.
var redactedHeaderWords = []string{"token", "secret", "password", "key"}

func redactHeader(name string) bool {
	if slices.Contains(redactedHeaders, http.CanonicalHeaderKey(name)) {
		return true
	}
	lower := strings.ToLower(name)
	return slices.ContainsFunc(redactedHeaderWords, func(w string) bool {
		return strings.Contains(lower, w)
	})
}

// redactHeaders flattens headers for logging. Repeated values are joined
// with ", " and empty ones dropped.
func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		switch {
		case redactHeader(name):
			out[name] = "[REDACTED]"
		case len(values) > 0:
			out[name] = strings.Join(values, ", ")
		}
	}
	return out
}

// bodyForLog returns what gets logged for a raw body: nil when empty, a size
// note for binary media, a cut prefix when over the limit, decoded JSON with
// long strings shortened, or the text as is.
func bodyForLog(body []byte, contentType string, cfg LogBodyConfig) any {
	if len(body) == 0 {
		return nil
	}

	media, _, _ := mime.ParseMediaType(contentType)
	switch {
	case binaryMedia(media):
		return fmt.Sprintf("[binary: %s]", byteSize(len(body)))
	case len(body) > cfg.MaxBodySize:
		return fmt.Sprintf("%s... [%s truncated]", cut(string(body), cfg.MaxBodySize), byteSize(len(body)-cfg.MaxBodySize))
	case jsonMedia(media):
		var v any
		if json.Unmarshal(body, &v) == nil {
			return shortenStrings(v, cfg.MaxStringValue)
		}
	}
	return string(body)
}

func binaryMedia(media string) bool {
	top, sub, _ := strings.Cut(media, "/")
	switch top {
	case "image", "video", "audio", "font":
		return true
	case "application":
		switch sub {
		case "octet-stream", "pdf", "zip", "gzip", "x-tar", "wasm", "x-protobuf":
			return true
		}
	}
	return false
}

func jsonMedia(media string) bool {
	return media == "application/json" || strings.HasSuffix(media, "+json")
}

// shortenStrings walks decoded JSON and cuts every string longer than limit.
func shortenStrings(v any, limit int) any {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			v[k] = shortenStrings(child, limit)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = shortenStrings(child, limit)
		}
		return v
	case string:
		if len(v) > limit {
			return fmt.Sprintf("%s... [%s]", cut(v, limit), byteSize(len(v)))
		}
		return v
	default:
		return v
	}
}

// cut returns at most n bytes of s without splitting a rune.
func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "")
}

// byteSize renders n bytes with a binary unit, e.g. 512B, 1.5KB, 2.0MB.
func byteSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit && exp < 3; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%cB", float64(n)/float64(div), "KMGT"[exp])
}
