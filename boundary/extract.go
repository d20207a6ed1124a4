package boundary

import (
	"bytes"

	"github.com/illuscio-dev/packtools-go/encoding"
	"github.com/illuscio-dev/packtools-go/mimetype"
	"github.com/illuscio-dev/packtools-go/packerrors"
)

/*
Extractor is the inbound adapter: it pulls a MessagePack body off a request source
and decodes it into a typed receiver.

Whether a body is MessagePack is decided purely from the declared Content-Type
header. The body is never touched unless the header matched, and decoding is
all-or-nothing: a failed extraction never leaves a usable partial value in the
receiver.
*/
type Extractor struct {
	engine  encoding.ContentEngine
	matcher mimetype.Matcher
}

// NewExtractor returns an Extractor that decodes MessagePack request bodies with
// engine.
func NewExtractor(engine encoding.ContentEngine) *Extractor {
	return &Extractor{
		engine:  engine,
		matcher: mimetype.MsgPack,
	}
}

/*
Extract decodes the body of source into contentReceiver, which must be a pointer.

Every failure is a *packerrors.PackError with one of the following types:

• packerrors.HeadersUnavailable - headers were already extracted upstream.

• packerrors.UnsupportedContentType - the Content-Type header is missing,
malformed, or not a recognized MessagePack type.

• packerrors.BodyUnavailable - the request body could not be read.

• packerrors.InvalidBody - the body bytes failed to decode into the receiver. The
error message carries the underlying codec error.
*/
func (extractor *Extractor) Extract(
	source Source, contentReceiver interface{},
) error {
	headers, ok := source.Headers()
	if !ok {
		return packerrors.HeadersUnavailable.New(
			"request headers were already extracted by an earlier stage",
			nil,
			nil,
		)
	}

	if !extractor.matcher.Matches(mimetype.FromHeader(headers)) {
		return packerrors.UnsupportedContentType.New(
			"Content-Type does not designate a MessagePack payload",
			nil,
			nil,
		)
	}

	bodyBytes, err := source.BodyBytes()
	if err != nil {
		return packerrors.BodyUnavailable.New(
			"request body could not be read",
			nil,
			err,
		)
	}

	err = extractor.engine.Decode(
		mimetype.MSGPACK, contentReceiver, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return packerrors.InvalidBody.New(err.Error(), nil, err)
	}

	return nil
}
