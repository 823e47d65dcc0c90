package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/guessgame/completionrate/internal/platform/logging"
)

// RedactHeaders renders headers as attributes sorted by name, joining repeated
// values with commas. Headers logging.IsSensitiveHeader reports are masked
// with logging.Redacted.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		value := logging.Redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
