package codec

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset selects how string payloads are encoded on the wire.
type Charset int

const (
	// CharsetWindows1252 is the legacy single-byte encoding.
	CharsetWindows1252 Charset = iota
	// CharsetUTF8 is used from format 11 onward.
	CharsetUTF8
)

func (c Charset) String() string {
	switch c {
	case CharsetWindows1252:
		return "windows-1252"
	case CharsetUTF8:
		return "utf-8"
	}
	return "unknown"
}

// MaxStringLength bounds the length prefix accepted by ReadString. Anything
// larger is almost certainly a misaligned read.
const MaxStringLength = 1 << 20

// Reader reads primitive fields from a save stream and tracks the offset
// of every field for diagnostics.
type Reader struct {
	r       io.Reader
	offset  int64
	charset Charset
	buf     [4]byte
}

// NewReader creates a reader using the legacy charset until SetCharset is called
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, charset: CharsetWindows1252}
}

// SetCharset changes the string encoding used by subsequent ReadString calls
func (r *Reader) SetCharset(c Charset) {
	r.charset = c
}

// Charset returns the active string encoding
func (r *Reader) Charset() Charset {
	return r.charset
}

// Offset returns the number of bytes consumed so far
func (r *Reader) Offset() int64 {
	return r.offset
}

func (r *Reader) fail(field string, start int64, value int64, err error) error {
	return &FieldError{Op: "read", Field: field, Offset: start, Value: value, Err: err}
}

func (r *Reader) readInt32(field string) (int32, int64, error) {
	start := r.offset
	n, err := io.ReadFull(r.r, r.buf[:])
	r.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, start, r.fail(field, start, 0, ErrShortRead)
		}
		return 0, start, r.fail(field, start, 0, err)
	}
	return int32(binary.LittleEndian.Uint32(r.buf[:])), start, nil
}

// ReadInt reads a 4-byte little-endian signed integer
func (r *Reader) ReadInt(field string) (int, error) {
	v, _, err := r.readInt32(field)
	return int(v), err
}

// ReadBool reads an integer-encoded flag. Only 0 and 1 are accepted.
func (r *Reader) ReadBool(field string) (bool, error) {
	v, start, err := r.readInt32(field)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, r.fail(field, start, int64(v), ErrInvalidBool)
}

// ReadSentinelInt reads an integer whose 32-bit extremes mean "not
// applicable". They are widened to math.MinInt and math.MaxInt.
func (r *Reader) ReadSentinelInt(field string) (int, error) {
	v, _, err := r.readInt32(field)
	if err != nil {
		return 0, err
	}
	switch v {
	case math.MinInt32:
		return math.MinInt, nil
	case math.MaxInt32:
		return math.MaxInt, nil
	}
	return int(v), nil
}

// ReadString reads a length-prefixed string in the active charset
func (r *Reader) ReadString(field string) (string, error) {
	length, start, err := r.readInt32(field)
	if err != nil {
		return "", err
	}
	if length < 0 || length > MaxStringLength {
		return "", r.fail(field, start, int64(length), ErrStringLength)
	}

	data := make([]byte, length)
	n, err := io.ReadFull(r.r, data)
	r.offset += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", r.fail(field, start, int64(length), ErrShortRead)
		}
		return "", r.fail(field, start, int64(length), err)
	}

	switch r.charset {
	case CharsetUTF8:
		if !utf8.Valid(data) {
			return "", r.fail(field, start, int64(length), ErrCharset)
		}
		return string(data), nil
	default:
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return "", r.fail(field, start, int64(length), ErrCharset)
		}
		return string(decoded), nil
	}
}

// ReadRemaining consumes everything left in the stream
func (r *Reader) ReadRemaining() ([]byte, error) {
	data, err := io.ReadAll(r.r)
	r.offset += int64(len(data))
	if err != nil {
		return data, r.fail("trailing bytes", r.offset, 0, err)
	}
	return data, nil
}
