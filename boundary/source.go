package boundary

import (
	"bytes"
	"net/http"

	"golang.org/x/xerrors"
)

/*
Source is the collaborator-facing view of an incoming request: the one contract the
Extractor needs the surrounding HTTP framework to fulfill. Implement it to plug the
Extractor into frameworks with their own request types.
*/
type Source interface {
	// Headers returns the request headers. ok is false when an earlier pipeline
	// stage has already extracted the headers and they are no longer available.
	Headers() (headers http.Header, ok bool)

	// BodyBytes materializes the full request body as a single contiguous buffer.
	// The underlying body is read at most once.
	BodyBytes() ([]byte, error)
}

// RequestSource adapts *http.Request to the Source interface.
type RequestSource struct {
	request *http.Request

	// Guards the read-once contract on the request body.
	bodyConsumed bool
}

// NewRequestSource wraps request as a Source.
func NewRequestSource(request *http.Request) *RequestSource {
	return &RequestSource{request: request}
}

// A nil header map means an upstream stage moved the headers out of the request.
func (source *RequestSource) Headers() (http.Header, bool) {
	if source.request.Header == nil {
		return nil, false
	}
	return source.request.Header, true
}

func (source *RequestSource) BodyBytes() ([]byte, error) {
	if source.bodyConsumed {
		return nil, xerrors.New("request body was already consumed")
	}
	source.bodyConsumed = true

	if source.request.Body == nil {
		return nil, nil
	}
	defer func() {
		_ = source.request.Body.Close()
	}()

	bodyBuffer := new(bytes.Buffer)
	if _, err := bodyBuffer.ReadFrom(source.request.Body); err != nil {
		return nil, xerrors.Errorf("error reading request body: %w", err)
	}

	return bodyBuffer.Bytes(), nil
}
