package encoding

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Handles encoding to / decoding from application/msgpack.
//
// Structs go over the wire as maps keyed by field name rather than as positional
// arrays, trading a few bytes of payload for schema evolution and debuggability.
type msgpackEncoder struct{}

func (handler *msgpackEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	packEncoder := msgpack.NewEncoder(writer)
	packEncoder.UseArrayEncodedStructs(false)

	return packEncoder.Encode(content)
}

func (handler *msgpackEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	packDecoder := msgpack.NewDecoder(reader)

	return packDecoder.Decode(contentReceiver)
}
