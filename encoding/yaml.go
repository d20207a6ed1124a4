package encoding

import (
	"io"

	"gopkg.in/yaml.v2"
)

// Handles encoding to / decoding from application/yaml.
type yamlEncoder struct{}

func (handler *yamlEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	encoder := yaml.NewEncoder(writer)
	if err := encoder.Encode(content); err != nil {
		return err
	}

	return encoder.Close()
}

func (handler *yamlEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	decoder := yaml.NewDecoder(reader)
	return decoder.Decode(contentReceiver)
}
