/*
Conversion error model and the default boundary error definitions.

Every failure mode of the request boundary adapters has its own PackErrorType with
a stable name, api code, and http code, so callers can branch on the failure class
instead of string-matching messages.

This package defines two main objects for handling errors:

• PackErrorType defines an error type.

• PackError is an instance of an error which contains a PackErrorType.

Default PackErrorType Variables

Pointers to the boundary error definitions ship with this package: see
HeadersUnavailable, UnsupportedContentType, BodyUnavailable, InvalidBody, and
EncodeFailure.
*/
package packerrors
