package packerrors

import (
	"strconv"
	"strings"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/packtools-go/encoding"
	"github.com/illuscio-dev/packtools-go/mimetype"
)

// Returns a pack error type definition. Each definition should only need to be
// declared once in a shared library for any given ecosystem, ensuring consistent
// error codes and names for the error type across all services / libraries.
func NewPackErrorType(
	name string,
	apiCode int,
	httpCode int,
) *PackErrorType {
	return &PackErrorType{
		name:     name,
		apiCode:  apiCode,
		httpCode: httpCode,
	}
}

type headerFetcher interface {
	Get(key string) string
}

/*
ErrorFromHeaders generates an error object from the headers of an HTTP response. If
a packError object can be made from the header data, a pointer to it is returned.
If an error code is detected in the headers, but the header data is malformed and
cannot be loaded, then hasError is returned as true, and a description of the
parsing issue is returned in err.

If the headers do not contain an error, hasError will be false, packError will be
returned as a nil pointer, and err will specify that no error was found.

A nil errorTypeCodeIndex falls back to DefaultCodeIndex, which knows this package's
own definitions.
*/
func ErrorFromHeaders(
	headers headerFetcher,
	dataEngine encoding.ContentEngine,
	errorTypeCodeIndex map[int]*PackErrorType,
) (packError *PackError, hasError bool, err error) {

	// If there is no error code, then there is no error.
	errorCodeStr := headers.Get("error-code")
	if errorCodeStr == "" {
		return nil, false, xerrors.New("no error in headers")
	}

	// If the error code is not an int, then there is no error.
	errorCode, err := strconv.Atoi(errorCodeStr)
	if err != nil {
		return nil, false, xerrors.New("error-code not int")
	}

	if errorTypeCodeIndex == nil {
		errorTypeCodeIndex = DefaultCodeIndex
	}
	errorType, ok := errorTypeCodeIndex[errorCode]
	if !ok {
		return nil, true, xerrors.New("no known error for code " + errorCodeStr)
	}

	errorMessage := headers.Get("error-message")

	errorID, err := uuid.FromString(headers.Get("error-id"))
	if err != nil {
		return nil, true, xerrors.New("error ID is not valid UUID")
	}

	errorData := make(map[string]interface{})
	if errorDataStr := headers.Get("error-data"); errorDataStr != "" {
		stringReader := strings.NewReader(errorDataStr)
		err := dataEngine.Decode(mimetype.JSON, &errorData, stringReader)
		if err != nil {
			return nil, true, xerrors.New("error data could not be parsed as JSON")
		}
	} else {
		errorData = nil
	}

	packError = errorType.New(errorMessage, errorData, nil)
	packError.ID = errorID

	return packError, true, nil
}
