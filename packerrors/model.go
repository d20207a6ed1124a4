package packerrors

import (
	"bytes"
	"fmt"
	"runtime/debug"
	"strconv"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/packtools-go/encoding"
	"github.com/illuscio-dev/packtools-go/mimetype"
)

// Interface for objects that can set header information, such as
// http.Request.Header or http.Response.Header.
type headerSetter interface {
	Set(key string, value string)
}

/*
PackErrorType defines a TYPE of error that CAN be returned by the boundary
adapters. Each PackErrorType for a given ecosystem should have a unique Name and
ApiCode.

Codes 1000-1999 are reserved for packtools' default error definitions.

Since types are declared as pointers, to protect against accidental mutation of the
error type by other packages, the underlying fields of this struct are private and
accessed through methods. Define new error types using NewPackErrorType().
*/
type PackErrorType struct {
	// Unique human-readable name of the error type for the API ecosystem.
	name string

	// Unique number to identify the error type in the API ecosystem.
	apiCode int

	// HTTP code that should be returned when this error type is returned. Set to
	// -1 if the http code is determined dynamically.
	httpCode int
}

// Returns a new pack error to be returned by the boundary adapter or panicked.
func (errorType *PackErrorType) New(
	message string,
	errorData map[string]interface{},
	source error,
) *PackError {
	packError := PackError{
		PackErrorType: errorType,
		Message:       message,
		ID:            uuid.NewV4(),
		ErrorData:     errorData,
		sourceErr:     source,
		sourceStack:   debug.Stack(),
		frame:         xerrors.Caller(0),
	}
	return &packError
}

/*
Creates a new error that is immediately passed to a panic. Expected to be recovered
by middleware in the embedding service. Allows for errors to be generated from
anywhere inside a route handler without explicitly passing them up a chain of
nested function returns.
*/
func (errorType *PackErrorType) Panic(
	message string,
	errorData map[string]interface{},
	source error,
) {
	panic(errorType.New(message, errorData, source))
}

// Unique human-readable name of the error type for the API ecosystem.
func (errorType *PackErrorType) Name() string {
	return errorType.name
}

// Unique number to identify the error type in the API ecosystem.
func (errorType *PackErrorType) ApiCode() int {
	return errorType.apiCode
}

// HTTP code that should be returned when this error type is returned.
func (errorType *PackErrorType) HttpCode() int {
	return errorType.httpCode
}

// Returns a copy of the error type with the given http code replaced.
func (errorType *PackErrorType) WithHttpCode(newHttpCode int) *PackErrorType {
	return &PackErrorType{
		name:     errorType.name,
		apiCode:  errorType.apiCode,
		httpCode: newHttpCode,
	}
}

// Allows the error type definition itself to also be a valid error for things like
// testing error equality.
func (errorType *PackErrorType) Error() string {
	return errorType.name + " (" + strconv.Itoa(errorType.apiCode) + ")"
}

// PackError is a specific error instance of a PackErrorType.
type PackError struct {
	// The type of error we are returning.
	*PackErrorType

	// A message detailing what caused the error.
	Message string

	// An id for the error being returned.
	ID uuid.UUID

	// A string / any mapping of data related to the error.
	ErrorData map[string]interface{}

	// If this error was returned because of another error, the original error is
	// stored here.
	sourceErr error

	// The debug.Stack() from where this error was instantiated.
	sourceStack []byte

	// The xerrors.Frame from where this error was instantiated.
	frame xerrors.Frame
}

// Returns true if the underlying type of this error is the same as errorType. Some
// errors may have multiple http codes possible, so we can't just compare error type
// pointer equality directly.
func (packError *PackError) IsType(errorType *PackErrorType) bool {
	return packError.PackErrorType.Error() == errorType.Error()
}

// Error string to conform to builtin error interface.
func (packError *PackError) Error() string {
	return packError.PackErrorType.Error() + " - " + packError.Message
}

// Implements xerrors.Wrapper. The source error (if any) this error was generated
// from.
func (packError *PackError) Unwrap() error {
	return packError.sourceErr
}

// More verbose error message that includes a debug.Stack() and source error
// information. This is not part of Error(), Message, or ErrorData by default since
// it may contain sensitive information that is not desirable to return to the
// client.
func (packError *PackError) LogMessage() string {
	return fmt.Sprint(
		"\nMESSAGE: ",
		packError.Error(),
		"\nORIGINAL: ",
		packError.sourceErr,
		"\nPANIC STACK:\n",
		string(packError.sourceStack),
	)
}

// Writes error to an object which implements a Set(key string, value string)
// method like http.Request.Header or http.Response.Header.
func (packError *PackError) ToHeader(
	setter headerSetter, dataEngine encoding.ContentEngine,
) error {
	setter.Set("error-name", packError.name)
	setter.Set("error-code", strconv.Itoa(packError.apiCode))
	setter.Set("error-message", packError.Message)
	setter.Set("error-id", packError.ID.String())

	if packError.ErrorData != nil {
		dataBytes := bytes.Buffer{}
		err := dataEngine.Encode(mimetype.JSON, packError.ErrorData, &dataBytes)
		if err != nil {
			return err
		}
		setter.Set("error-data", dataBytes.String())
	}

	return nil
}
