package tests

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"bou.ke/monkey"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/illuscio-dev/packtools-go/encoding"
	"github.com/illuscio-dev/packtools-go/mimetype"
	"github.com/illuscio-dev/packtools-go/packtypes"
)

type Name struct {
	First string `msgpack:"first"`
	Last  string `msgpack:"last"`
}

type PanickyEncoder struct{}

func (encoder *PanickyEncoder) Encode(
	engine encoding.ContentEngine, writer io.Writer, content interface{},
) error {
	panic(xerrors.New("encode panicked"))
}

func (encoder *PanickyEncoder) Decode(
	engine encoding.ContentEngine, reader io.Reader, contentReceiver interface{},
) error {
	panic(xerrors.New("decode panicked"))
}

func createEngine(test *testing.T) encoding.ContentEngine {
	engine, err := encoding.NewContentEngine()
	if err != nil {
		test.Fatal(err)
	}
	return engine
}

func TestCreateEngineDefault(test *testing.T) {
	assert := assert.New(test)

	engine, err := encoding.NewContentEngine()

	assert.Nil(err)
	assert.NotNil(engine)

	assert.NotNil(engine.JSONHandle())

	// Test that all the defaults registered appropriately.
	assert.Equal(true, engine.Handles(mimetype.MSGPACK))
	assert.Equal(true, engine.Handles(mimetype.JSON))
	assert.Equal(true, engine.Handles(mimetype.BSON))
	assert.Equal(true, engine.Handles(mimetype.YAML))
	assert.Equal(true, engine.Handles(mimetype.TEXT))

	assert.Equal(false, engine.Handles(mimetype.MimeType("text/csv")))
}

// Generic function for round-tripping a basic name object for a given mimeType.
func RoundTripName(test *testing.T, mimeType mimetype.MimeType) *Name {
	engine := createEngine(test)

	testName := Name{
		First: "Harry",
		Last:  "Potter",
	}

	buffer := bytes.Buffer{}

	err := engine.Encode(mimeType, testName, &buffer)
	if err != nil {
		test.Error(err)
	}

	loaded := Name{}
	err = engine.Decode(mimeType, &loaded, &buffer)
	if err != nil {
		test.Error(err)
	}

	assert.Equal(test, testName, loaded)
	assert.Equal(test, "Harry", loaded.First)
	assert.Equal(test, "Potter", loaded.Last)

	return &loaded
}

func TestMsgPackBasicRoundTrip(test *testing.T) {
	RoundTripName(test, mimetype.MSGPACK)
}

func TestJsonBasicRoundTrip(test *testing.T) {
	RoundTripName(test, mimetype.JSON)
}

func TestBsonBasicRoundTrip(test *testing.T) {
	RoundTripName(test, mimetype.BSON)
}

func TestYamlBasicRoundTrip(test *testing.T) {
	RoundTripName(test, mimetype.YAML)
}

// Re-encoding a decoded value and decoding again must yield the same value.
func TestMsgPackRoundTripStability(test *testing.T) {
	engine := createEngine(test)

	first := RoundTripName(test, mimetype.MSGPACK)

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.MSGPACK, first, &buffer)
	if err != nil {
		test.Error(err)
	}

	second := Name{}
	err = engine.Decode(mimetype.MSGPACK, &second, &buffer)
	if err != nil {
		test.Error(err)
	}

	assert.Equal(test, *first, second)
}

// Struct values go over the msgpack wire as maps keyed by field name, never as
// positional arrays.
func TestMsgPackEncodesNamedFields(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	buffer := bytes.Buffer{}
	err := engine.Encode(
		mimetype.MSGPACK, Name{First: "Harry", Last: "Potter"}, &buffer,
	)
	assert.NoError(err)

	loaded := make(map[string]interface{})
	err = engine.Decode(mimetype.MSGPACK, &loaded, &buffer)
	assert.NoError(err)

	assert.Equal("Harry", loaded["first"])
	assert.Equal("Potter", loaded["last"])
}

func TestTextRoundTrip(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.TEXT, "some text content", &buffer)
	assert.NoError(err)

	var loadedString string
	err = engine.Decode(mimetype.TEXT, &loadedString, &buffer)
	assert.NoError(err)
	assert.Equal("some text content", loadedString)

	buffer.Reset()
	assert.NoError(engine.Encode(mimetype.TEXT, "raw bytes", &buffer))

	var loadedBytes []byte
	err = engine.Decode(mimetype.TEXT, &loadedBytes, &buffer)
	assert.NoError(err)
	assert.Equal([]byte("raw bytes"), loadedBytes)
}

func TestTextDecodeBadReceiver(test *testing.T) {
	engine := createEngine(test)

	receiver := 0
	err := engine.Decode(
		mimetype.TEXT, &receiver, strings.NewReader("some text"),
	)
	assert.Error(test, err)
}

func TestTextDecodeReaderError(test *testing.T) {
	engine := createEngine(test)

	mockReadFrom := func(buffer *bytes.Buffer, reader io.Reader) (int64, error) {
		return 0, xerrors.New("mock reader error")
	}

	defer monkey.UnpatchAll()
	monkey.PatchInstanceMethod(
		reflect.TypeOf(&bytes.Buffer{}),
		"ReadFrom",
		mockReadFrom,
	)

	var receiver string
	err := engine.Decode(
		mimetype.TEXT, &receiver, strings.NewReader("some text"),
	)
	assert.Error(test, err)
	assert.Contains(test, err.Error(), "mock reader error")
}

type BinReceiver struct {
	Data packtypes.BinData
}

func TestJsonBinDataRoundTrip(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	data := BinReceiver{Data: packtypes.BinData("some binary blob")}

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.JSON, data, &buffer)
	assert.NoError(err)

	// The blob needs to hit the wire as a hex string.
	assert.Contains(
		buffer.String(), "736f6d652062696e61727920626c6f62",
	)

	loaded := BinReceiver{}
	err = engine.Decode(mimetype.JSON, &loaded, &buffer)
	assert.NoError(err)
	assert.Equal(data.Data, loaded.Data)
}

type IDReceiver struct {
	ID uuid.UUID
}

func TestJsonUUIDRoundTrip(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	data := IDReceiver{ID: uuid.NewV4()}

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.JSON, data, &buffer)
	assert.NoError(err)
	assert.Contains(buffer.String(), data.ID.String())

	loaded := IDReceiver{}
	err = engine.Decode(mimetype.JSON, &loaded, &buffer)
	assert.NoError(err)
	assert.Equal(data.ID, loaded.ID)
}

func TestErrorNoEncoder(test *testing.T) {
	engine := createEngine(test)

	err := engine.Encode(
		mimetype.MimeType("text/csv"), "some content", &bytes.Buffer{},
	)
	assert.EqualError(test, err, "no encoder for text/csv")
}

func TestErrorNoDecoder(test *testing.T) {
	engine := createEngine(test)

	receiver := ""
	err := engine.Decode(
		mimetype.MimeType("text/csv"), &receiver, strings.NewReader("content"),
	)
	assert.EqualError(test, err, "no decoder for text/csv")
}

// Decoding an UNKNOWN mimetype must error rather than trigger any content
// sniffing: classification is the header's job, never the payload's.
func TestErrorUnknownMimeTypeNoSniffing(test *testing.T) {
	engine := createEngine(test)

	receiver := Name{}
	err := engine.Decode(
		mimetype.UNKNOWN, &receiver, strings.NewReader("{}"),
	)
	assert.EqualError(test, err, "no decoder for ")
}

func TestEncoderPanicsReturnedAsError(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	panicky := mimetype.MimeType("application/panic")
	engine.SetEncoder(panicky, &PanickyEncoder{})
	engine.SetDecoder(panicky, &PanickyEncoder{})

	err := engine.Encode(panicky, "content", &bytes.Buffer{})
	assert.Error(err)
	assert.Contains(err.Error(), "panic during encode")

	receiver := ""
	err = engine.Decode(panicky, &receiver, strings.NewReader("content"))
	assert.Error(err)
	assert.Contains(err.Error(), "panic during decode")
}

// ReadClosers handed to Decode get closed once the decode completes.
func TestDecodeClosesReadCloser(test *testing.T) {
	assert := assert.New(test)

	engine := createEngine(test)

	buffer := bytes.Buffer{}
	err := engine.Encode(mimetype.MSGPACK, Name{First: "Harry"}, &buffer)
	assert.NoError(err)

	readCloser := &closeTracker{Reader: &buffer}

	loaded := Name{}
	err = engine.Decode(mimetype.MSGPACK, &loaded, readCloser)
	assert.NoError(err)
	assert.True(readCloser.closed)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (tracker *closeTracker) Close() error {
	tracker.closed = true
	return nil
}
