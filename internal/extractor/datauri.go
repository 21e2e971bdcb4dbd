package extractor

import (
	"regexp"
	"strings"
)

// DefaultImageMIME is used when the image input carries no parseable MIME type.
const DefaultImageMIME = "image/png"

// dataURLPattern matches the strict data:<mime>;base64,<payload> form.
var dataURLPattern = regexp.MustCompile(`^data:([^;,]+);base64,(.*)$`)

// SplitImageData separates an image input string into a MIME type and a bare
// base64 payload. It accepts a full data URL; anything else falls back to
// splitting on the "base64," marker, and a string without the marker is
// treated as a bare base64 payload. The MIME type defaults to DefaultImageMIME
// outside the strict form.
func SplitImageData(input string) (mimeType, data string) {
	s := strings.TrimSpace(input)
	if m := dataURLPattern.FindStringSubmatch(s); m != nil {
		return m[1], m[2]
	}
	if idx := strings.LastIndex(s, "base64,"); idx >= 0 {
		return DefaultImageMIME, s[idx+len("base64,"):]
	}
	return DefaultImageMIME, s
}
