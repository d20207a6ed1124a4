package encoding

import (
	"io"

	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/packtools-go/mimetype"
)

// Type helpers
type encoderMapping map[mimetype.MimeType]Encoder
type decoderMapping map[mimetype.MimeType]Decoder

/*
ContentEngine details the contract for a content encoding engine. The goal of the
content engine is to allow a common decoding and encoding methodology for any
supported mimetype, so the boundary adapters and other consumers can ask for a
format by name instead of binding to a serialization library.
*/
type ContentEngine interface {
	// Registers an encoder for a given mimetype.
	SetEncoder(mimeType mimetype.MimeType, encoder Encoder)

	// Registers a decoder for a given mimetype.
	SetDecoder(mimeType mimetype.MimeType, decoder Decoder)

	// Returns true if the engine has a registered encoder for the mimetype.
	HandlesEncode(mimeType mimetype.MimeType) bool

	// Returns true if the engine has a registered decoder for the mimetype.
	HandlesDecode(mimeType mimetype.MimeType) bool

	// Returns true if the engine has a registered encoder AND decoder for the
	// mimetype.
	Handles(mimeType mimetype.MimeType) bool

	// The codec handle used by the default JSON encoder / decoder.
	JSONHandle() *codec.JsonHandle

	// Decode content from reader using the decoder registered for mimeType.
	// Decoded content is stored in contentReceiver.
	Decode(
		mimeType mimetype.MimeType,
		contentReceiver interface{},
		reader io.Reader,
	) error

	// Encode content to writer using the encoder registered for mimeType.
	Encode(
		mimeType mimetype.MimeType,
		content interface{},
		writer io.Writer,
	) error
}

/*
PackEngine is the default implementation of the ContentEngine interface.
Implementation is done through an interface so the engine can be extended through
type wrapping.

Instantiation

Use NewContentEngine() to create a new PackEngine.

Default Mimetypes

• application/msgpack (named-field encoding, see the msgpack Encoder)

• application/json

• application/bson

• application/yaml

• text/plain

Default JSON Extensions

PackEngine uses the codec library to encode/decode json
(https://godoc.org/github.com/ugorji/go/codec), which allows the definition of
extensions. PackEngine ships with the following types handled:

• UUIDs from "github.com/satori/go.uuid" are represented as their canonical string
form.

• Binary blob data is represented as a hex string. To signal that this conversion
should take place, use the named type BinData in the "packtypes" package of this
module.

Additional json extensions can be registered through AddJSONExtensions() by passing
a slice of JSONExtensionOpts objects.

No Type Sniffing

PackEngine never attempts to guess an unknown mimetype by trial-decoding the
payload. Decoding an unregistered or UNKNOWN mimetype is an error.

Panics

If an encoder or decoder panics during execution, that panic is caught and returned
as an error.
*/
type PackEngine struct {
	// MimeType:Encoder mapping
	encoders encoderMapping
	// MimeType:Decoder mapping
	decoders decoderMapping

	// JSON handle for the default JSON encoder.
	jsonHandle *codec.JsonHandle

	// Engine to pass to Encoder.Encode() and Decoder.Decode() methods.
	passedEngine ContentEngine
}

// Change the engine passed into Encoder.Encode() and Decoder.Decode(). Used when
// extending the engine through type wrapping.
func (engine *PackEngine) SetPassedEngine(newEngine ContentEngine) {
	engine.passedEngine = newEngine
}

// Register an encoder for a given mimeType.
func (engine *PackEngine) SetEncoder(
	mimeType mimetype.MimeType, encoder Encoder,
) {
	engine.encoders[mimeType] = encoder
}

// Register a decoder for a given mimeType.
func (engine *PackEngine) SetDecoder(
	mimeType mimetype.MimeType, decoder Decoder,
) {
	engine.decoders[mimeType] = decoder
}

// Whether the PackEngine has a registered encoder for mimeType.
func (engine *PackEngine) HandlesEncode(mimeType mimetype.MimeType) bool {
	_, ok := engine.encoders[mimeType]
	return ok
}

// Whether the PackEngine has a registered decoder for mimeType.
func (engine *PackEngine) HandlesDecode(mimeType mimetype.MimeType) bool {
	_, ok := engine.decoders[mimeType]
	return ok
}

// Whether the PackEngine has a registered decoder AND encoder for mimeType.
func (engine *PackEngine) Handles(mimeType mimetype.MimeType) bool {
	return engine.HandlesEncode(mimeType) && engine.HandlesDecode(mimeType)
}

// The codec handle used by the default JSON encoder / decoder.
func (engine *PackEngine) JSONHandle() *codec.JsonHandle {
	return engine.jsonHandle
}

// Select what engine to pass into the encoder / decoder in case we are extending
// the engine type.
func (engine *PackEngine) getEngine() (passEngine ContentEngine) {
	if engine.passedEngine != nil {
		passEngine = engine.passedEngine
	} else {
		passEngine = engine
	}

	return passEngine
}

// Uses an encoder while catching panics to return as errors.
func (engine *PackEngine) safeEncode(
	encoder Encoder, writer io.Writer, content interface{},
) (err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during encode: %+v", recovered)
		}
	}()

	err = encoder.Encode(engine.getEngine(), writer, content)
	return err
}

// Uses a decoder while catching panics to return as errors.
func (engine *PackEngine) safeDecode(
	decoder Decoder, reader io.Reader, contentReceiver interface{},
) (err error) {
	defer func() {
		recovered := recover()
		if recovered != nil {
			err = xerrors.Errorf("panic during decode: %+v", recovered)
		}
	}()

	err = decoder.Decode(engine.getEngine(), reader, contentReceiver)
	return err
}

/*
Decode mimeType content from reader into contentReceiver. Decoding is
all-or-nothing: on error the contents of contentReceiver are undefined and must be
discarded by the caller.
*/
func (engine *PackEngine) Decode(
	mimeType mimetype.MimeType,
	contentReceiver interface{},
	reader io.Reader,
) error {
	// Close the reader if it's a closer.
	if readCloser, ok := reader.(io.ReadCloser); ok {
		defer func() {
			_ = readCloser.Close()
		}()
	}

	decoder, ok := engine.decoders[mimeType]
	if !ok {
		return xerrors.New("no decoder for " + string(mimeType))
	}

	err := engine.safeDecode(decoder, reader, contentReceiver)
	if err != nil {
		return xerrors.Errorf("decode err: %w", err)
	}

	return nil
}

// Encode content as mimeType to writer.
func (engine *PackEngine) Encode(
	mimeType mimetype.MimeType,
	content interface{},
	writer io.Writer,
) error {
	encoder, ok := engine.encoders[mimeType]
	if !ok {
		return xerrors.New("no encoder for " + string(mimeType))
	}

	err := engine.safeEncode(encoder, writer, content)
	if err != nil {
		return xerrors.Errorf("encode err: %w", err)
	}

	return nil
}

// Adds JSON extensions to the engine's codec handle.
func (engine *PackEngine) AddJSONExtensions(
	extensions []*JSONExtensionOpts,
) error {
	for _, extOpts := range extensions {
		err := engine.jsonHandle.SetInterfaceExt(
			extOpts.ValueType, 1, extOpts.ExtInterface,
		)
		if err != nil {
			return xerrors.Errorf(
				"error adding json extension to content engine: %w", err,
			)
		}
	}
	return nil
}

// NewContentEngine creates a PackEngine with the default encoders and decoders
// registered.
func NewContentEngine() (ContentEngine, error) {
	engine := &PackEngine{
		encoders:   make(encoderMapping),
		decoders:   make(decoderMapping),
		jsonHandle: &codec.JsonHandle{},
	}

	// Add the default encoders.
	engine.SetEncoder(mimetype.MSGPACK, &msgpackEncoder{})
	engine.SetEncoder(mimetype.JSON, &jsonEncoder{})
	engine.SetEncoder(mimetype.BSON, &bsonEncoder{})
	engine.SetEncoder(mimetype.YAML, &yamlEncoder{})
	engine.SetEncoder(mimetype.TEXT, &textEncoder{})

	// Add the default decoders.
	engine.SetDecoder(mimetype.MSGPACK, &msgpackEncoder{})
	engine.SetDecoder(mimetype.JSON, &jsonEncoder{})
	engine.SetDecoder(mimetype.BSON, &bsonEncoder{})
	engine.SetDecoder(mimetype.YAML, &yamlEncoder{})
	engine.SetDecoder(mimetype.TEXT, &textEncoder{})

	// Add the default json extensions to the engine.
	if err := engine.AddJSONExtensions(defaultJSONExtensions); err != nil {
		return nil, xerrors.Errorf("error adding default json extensions: %w", err)
	}

	return ContentEngine(engine), nil
}
