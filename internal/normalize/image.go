package normalize

import (
	"regexp"
	"strings"
)

// Bare base64 payloads are long runs of the base64 alphabet; anything with
// a scheme or separator fails the match.
var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// base64 signature prefixes of the image formats the backend is known to
// store raw.
var base64Signatures = []struct {
	prefix string
	mime   string
}{
	{"iVBORw0KGgo", "image/png"},
	{"/9j/", "image/jpeg"},
	{"R0lGOD", "image/gif"},
	{"UklGR", "image/webp"},
}

// ImageURL turns whatever the backend stored in an image field into
// something a renderer can load: an absolute URL, a data URI, or "" for no
// image. It never fails, and it is idempotent over every input class.
func ImageURL(raw, base string) string {
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	// Data URIs pass through; trimmed because some devices choke on
	// surrounding whitespace.
	if strings.HasPrefix(raw, "data:image/") {
		return strings.TrimSpace(raw)
	}

	// Raw base64 payload with no data: header. Sniff the format from the
	// encoded signature bytes, defaulting to JPEG.
	if len(raw) > 100 && base64Pattern.MatchString(raw) {
		mime := "image/jpeg"
		for _, sig := range base64Signatures {
			if strings.HasPrefix(raw, sig.prefix) {
				mime = sig.mime
				break
			}
		}
		return "data:" + mime + ";base64," + raw
	}

	// Device-local URIs are already loadable as-is.
	if strings.HasPrefix(raw, "file://") ||
		strings.HasPrefix(raw, "content://") ||
		strings.HasPrefix(raw, "ph://") {
		return raw
	}

	// Anything else is a relative path on the backend. Join with exactly
	// one slash between base and path.
	joined := strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(raw, "/") {
		joined += "/"
	}
	return joined + raw
}
