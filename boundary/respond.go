package boundary

import (
	"bytes"
	"net/http"

	"github.com/illuscio-dev/packtools-go/encoding"
	"github.com/illuscio-dev/packtools-go/mimetype"
	"github.com/illuscio-dev/packtools-go/packerrors"
)

/*
Response is the body-and-headers pair handed back to the collaborator, which turns
it into a full protocol response.

A zero StatusCode means the adapter is not picking a status: choosing a success
code belongs to the caller. The one case where the adapter sets it is the
encode-failure fallback, which is always an internal server error.
*/
type Response struct {
	// StatusCode to send, or 0 to leave the choice to the caller.
	StatusCode int

	// ContentType of Body.
	ContentType mimetype.MimeType

	// Body holds the encoded payload.
	Body []byte
}

// Write sends the response through writer. The Content-Type header is set to
// response.ContentType, overwriting any prior value. A zero StatusCode writes no
// explicit status, leaving net/http's default 200 OK in place.
func (response *Response) Write(writer http.ResponseWriter) error {
	writer.Header().Set("Content-Type", string(response.ContentType))

	if response.StatusCode != 0 {
		writer.WriteHeader(response.StatusCode)
	}

	_, err := writer.Write(response.Body)
	return err
}

/*
Responder is the outbound adapter: it encodes typed values to MessagePack response
payloads tagged with the canonical "application/msgpack" Content-Type.
*/
type Responder struct {
	engine encoding.ContentEngine
}

// NewResponder returns a Responder that encodes response content with engine.
func NewResponder(engine encoding.ContentEngine) *Responder {
	return &Responder{engine: engine}
}

/*
Respond encodes content and always produces a well-formed response.

On encode success the response body is the encoded bytes and the content type is
the canonical MessagePack media type. If content cannot be serialized the fallback
is a text/plain body carrying the error's description with an internal-server-error
status; the failure is never raised to the caller.
*/
func (responder *Responder) Respond(content interface{}) *Response {
	encodeBuffer := new(bytes.Buffer)

	err := responder.engine.Encode(mimetype.MSGPACK, content, encodeBuffer)
	if err != nil {
		packErr := packerrors.EncodeFailure.New(err.Error(), nil, err)
		return &Response{
			StatusCode:  packErr.HttpCode(),
			ContentType: mimetype.TEXT,
			Body:        []byte(err.Error()),
		}
	}

	return &Response{
		ContentType: mimetype.MSGPACK,
		Body:        encodeBuffer.Bytes(),
	}
}
