// Content-Type classification for message bodies.
package mimetype

import (
	"strings"
)

/*
MimeType is used to enumerate the default representation for content encoding types.
Non default MimeTypes can be used by wrapping a custom string:

	MimeType("text/csv")
*/
type MimeType string

const (
	// MSGPACK is the canonical media type attached to every outbound MessagePack
	// response.
	MSGPACK = MimeType("application/msgpack")
	JSON    = MimeType("application/json")
	BSON    = MimeType("application/bson")
	YAML    = MimeType("application/yaml")
	TEXT    = MimeType("text/plain")
	// UNKNOWN is used when the incoming string is blank.
	UNKNOWN = MimeType("")
)

// Interface for objects that fetch header information, such as http.Request.Header or
// http.Response.Header.
type headerFetcher interface {
	Get(string) string
}

// FromHeader pulls the raw Content-Type value from a message / request header. A
// missing header comes back as the empty string.
func FromHeader(headers headerFetcher) string {
	return headers.Get("Content-Type")
}

/*
Matcher classifies a Content-Type header string against a single media family. The
recognized names are plain configuration data, so matchers for new families can be
declared without touching this package:

	var csv = mimetype.Matcher{Type: "text", Subtypes: []string{"csv"}}

Matching is an exact, case-sensitive comparison on the parsed type, subtype, and
structured suffix. MIME parameters (charset and friends) never affect the result.
*/
type Matcher struct {
	// Primary media type that must match exactly.
	Type string
	// Subtypes that match exactly.
	Subtypes []string
	// Structured syntax suffix matching any "<subtype>+<Suffix>" form. Blank
	// disables suffix matching.
	Suffix string
}

// MsgPack matches the Content-Type strings that designate a MessagePack payload:
// "application/msgpack", "application/x-msgpack", and any "application/*+msgpack"
// vendor or profile type.
var MsgPack = Matcher{
	Type:     "application",
	Subtypes: []string{"msgpack", "x-msgpack"},
	Suffix:   "msgpack",
}

// IsMsgPack reports whether header designates a MessagePack payload.
func IsMsgPack(header string) bool {
	return MsgPack.Matches(header)
}

/*
Matches reports whether header designates this matcher's media family. A blank,
malformed, or unrelated header reports false rather than erroring: an unparsable
Content-Type is semantically "unrecognized", not a malformed request. Never panics
and never inspects anything beyond the header string itself.
*/
func (matcher Matcher) Matches(header string) bool {
	mediaType, subType, suffix, ok := parseMedia(header)
	if !ok {
		return false
	}

	if mediaType != matcher.Type {
		return false
	}

	for _, recognized := range matcher.Subtypes {
		if subType == recognized {
			return true
		}
	}

	return matcher.Suffix != "" && suffix == matcher.Suffix
}

// parseMedia splits a header value into its "type/subtype[+suffix]" components.
// Anything after a ';' is a parameter and is dropped before parsing. ok is false
// when what remains is not a well-formed pair of HTTP tokens.
func parseMedia(
	header string,
) (mediaType string, subType string, suffix string, ok bool) {
	if paramStart := strings.IndexByte(header, ';'); paramStart >= 0 {
		header = header[:paramStart]
	}
	header = strings.TrimSpace(header)

	slash := strings.IndexByte(header, '/')
	if slash < 0 {
		return "", "", "", false
	}

	mediaType, subType = header[:slash], header[slash+1:]
	if !isToken(mediaType) || !isToken(subType) {
		return "", "", "", false
	}

	if plus := strings.LastIndexByte(subType, '+'); plus >= 0 {
		suffix = subType[plus+1:]
	}

	return mediaType, subType, suffix, true
}

func isToken(value string) bool {
	if value == "" {
		return false
	}
	for index := 0; index < len(value); index++ {
		if !isTokenChar(value[index]) {
			return false
		}
	}
	return true
}

// tchar set from RFC 7230. Anything outside printable ASCII fails here, which also
// rejects header values that are not interpretable text.
func isTokenChar(char byte) bool {
	switch {
	case char >= 'a' && char <= 'z':
		return true
	case char >= 'A' && char <= 'Z':
		return true
	case char >= '0' && char <= '9':
		return true
	}

	switch char {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}

	return false
}
