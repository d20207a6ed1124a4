package encoding

import (
	"bytes"
	"io"

	"go.mongodb.org/mongo-driver/bson"
)

// Handles encoding to / decoding from application/bson. A payload is a single
// top-level document.
type bsonEncoder struct{}

func (handler *bsonEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	document, err := bson.Marshal(content)
	if err != nil {
		return err
	}

	_, err = writer.Write(document)
	return err
}

func (handler *bsonEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	contentBuffer := new(bytes.Buffer)
	if _, err := contentBuffer.ReadFrom(reader); err != nil {
		return err
	}

	return bson.Unmarshal(contentBuffer.Bytes(), contentReceiver)
}
