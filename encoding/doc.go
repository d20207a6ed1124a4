// Arbitrarily encode and decode message body content.
/*
The encoding package holds the codec registry behind packtools' request boundary
adapters. The goal is a single interface specification for any given content type,
so the format a body is written in is a registration detail rather than something
handlers call format-specific methods for.

Specific objectives

1. The MessagePack boundary adapters stay codec-agnostic: they ask the engine for
"application/msgpack" and never import a serialization library directly.

2. Support for a mimetype should be added once to a shared library and gotten for
free by an entire ecosystem of services and clients.

3. Developers can extend the engine to new content types by registering their own
encoders and decoders.

The engine never guesses a body's format from its bytes. Classifying content is a
pure function of the declared Content-Type header (see the mimetype package), so an
unknown mimetype is an error here, never a trigger for sniffing.
*/
package encoding
