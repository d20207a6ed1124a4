package encoding

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/xerrors"
)

// Handles encoding to / decoding from text/plain.
type textEncoder struct{}

func (handler *textEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	contentString := fmt.Sprint(content)
	_, err := io.WriteString(writer, contentString)

	return err
}

func (handler *textEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	buffer := new(bytes.Buffer)
	if _, err := buffer.ReadFrom(reader); err != nil {
		return err
	}

	switch receiver := contentReceiver.(type) {
	case *string:
		*receiver = buffer.String()
	case *[]byte:
		*receiver = buffer.Bytes()
	default:
		return xerrors.New(
			"content receiver must be a string or byte-slice pointer to receive" +
				" plain text",
		)
	}

	return nil
}
