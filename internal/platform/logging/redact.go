package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted is the placeholder written instead of a credential.
const Redacted = masq.DefaultRedactMessage

// credentialHeaders holds, lowercase and sorted, every HTTP header that can
// carry a task API token or a session. The handler's field filter and
// IsSensitiveHeader both use this list.
var credentialHeaders = []string{
	"authorization",
	"cookie",
	"proxy-authorization",
	"set-cookie",
	"x-api-key",
}

// credentialFields are attribute keys that never hold loggable values.
var credentialFields = []string{"api_token", "password", "secret", "token"}

var (
	// "Bearer <token>" copied into an unrelated attribute.
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// header.payload.signature; ten characters per segment keeps version
	// strings like 1.2.3 out.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// api_key=..., apikey: ...
	inlineAPIKey = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// IsSensitiveHeader reports whether the named HTTP header carries credentials.
// The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	_, found := slices.BinarySearch(credentialHeaders, strings.ToLower(name))
	return found
}

// redactor builds the masq ReplaceAttr used by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, name := range slices.Concat(credentialHeaders, credentialFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(inlineAPIKey),
	)...)
}
