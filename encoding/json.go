package encoding

import (
	"encoding/hex"
	"io"
	"reflect"

	uuid "github.com/satori/go.uuid"
	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/packtools-go/packtypes"
)

// JSONExtensionOpts holds options for a json handle extension to add to the engine
// on setup.
type JSONExtensionOpts struct {
	ValueType    reflect.Type
	ExtInterface codec.InterfaceExt
}

// defaultJSONExtensions holds all the JSONExtensionOpts added to the json handle by
// NewContentEngine.
var defaultJSONExtensions = []*JSONExtensionOpts{
	{
		ValueType:    reflect.TypeOf(packtypes.BinData(nil)),
		ExtInterface: &jsonExtBinData{},
	},
	{
		ValueType:    reflect.TypeOf(uuid.UUID{}),
		ExtInterface: &jsonExtUUID{},
	},
}

// Represents packtypes.BinData as a hex string in json documents.
type jsonExtBinData struct{}

func (ext *jsonExtBinData) ConvertExt(value interface{}) interface{} {
	switch binValue := value.(type) {
	case packtypes.BinData:
		return hex.EncodeToString(binValue)
	case *packtypes.BinData:
		return hex.EncodeToString(*binValue)
	}

	panic(xerrors.New("value is not BinData"))
}

func (ext *jsonExtBinData) UpdateExt(dest interface{}, value interface{}) {
	hexString, ok := value.(string)
	if !ok {
		panic(xerrors.New("BinData fields must be decoded from a hex string"))
	}

	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		panic(xerrors.Errorf("error decoding hex for BinData: %w", err))
	}

	receiver := dest.(*packtypes.BinData)
	*receiver = decoded
}

// Represents satori UUIDs as their canonical string form in json documents.
type jsonExtUUID struct{}

func (ext *jsonExtUUID) ConvertExt(value interface{}) interface{} {
	switch uuidValue := value.(type) {
	case uuid.UUID:
		return uuidValue.String()
	case *uuid.UUID:
		return uuidValue.String()
	}

	panic(xerrors.New("value is not a UUID"))
}

func (ext *jsonExtUUID) UpdateExt(dest interface{}, value interface{}) {
	uuidString, ok := value.(string)
	if !ok {
		panic(xerrors.New("UUID fields must be decoded from a string"))
	}

	parsed, err := uuid.FromString(uuidString)
	if err != nil {
		panic(xerrors.Errorf("error parsing uuid: %w", err))
	}

	receiver := dest.(*uuid.UUID)
	*receiver = parsed
}

// Default JSON encoder for PackEngine.
type jsonEncoder struct{}

func (handler *jsonEncoder) Encode(
	engine ContentEngine, writer io.Writer, content interface{},
) error {
	encoder := codec.NewEncoder(writer, engine.JSONHandle())
	return encoder.Encode(content)
}

func (handler *jsonEncoder) Decode(
	engine ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	decoder := codec.NewDecoder(reader, engine.JSONHandle())
	return decoder.Decode(contentReceiver)
}
