package packerrors

// Request headers were already consumed / removed by an earlier stage in the
// pipeline. This is an integration or ordering bug in the embedding service rather
// than a content problem, and gets its own identity so it is never mistaken for
// one.
var HeadersUnavailable = NewPackErrorType(
	"HeadersUnavailable",
	1001,
	400,
)

// The Content-Type header is missing, malformed, or does not designate a
// recognized MessagePack type.
var UnsupportedContentType = NewPackErrorType(
	"UnsupportedContentType",
	1002,
	400,
)

// The collaborator could not supply the request body.
var BodyUnavailable = NewPackErrorType(
	"BodyUnavailable",
	1003,
	400,
)

// Body bytes were present but could not be decoded into the expected shape.
var InvalidBody = NewPackErrorType(
	"InvalidBody",
	1004,
	400,
)

// A response value could not be serialized. Encode failures stem from server-side
// data, not client input, so this is the one type that maps to an internal server
// error.
var EncodeFailure = NewPackErrorType(
	"EncodeFailure",
	1005,
	500,
)

// DefaultCodeIndex maps the api codes of this package's error definitions back to
// their types, for rebuilding errors from response headers.
var DefaultCodeIndex = map[int]*PackErrorType{
	HeadersUnavailable.ApiCode():     HeadersUnavailable,
	UnsupportedContentType.ApiCode(): UnsupportedContentType,
	BodyUnavailable.ApiCode():        BodyUnavailable,
	InvalidBody.ApiCode():            InvalidBody,
	EncodeFailure.ApiCode():          EncodeFailure,
}
