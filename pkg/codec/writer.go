package codec

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Writer writes primitive fields to a save stream. Output is buffered;
// callers must Flush when done.
type Writer struct {
	w       *bufio.Writer
	offset  int64
	charset Charset
	buf     [4]byte
}

// NewWriter creates a buffered writer using the legacy charset until SetCharset is called
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), charset: CharsetWindows1252}
}

// SetCharset changes the string encoding used by subsequent WriteString calls
func (w *Writer) SetCharset(c Charset) {
	w.charset = c
}

// Offset returns the number of bytes written so far
func (w *Writer) Offset() int64 {
	return w.offset
}

// Flush writes any buffered data to the underlying writer
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) fail(field string, value int64, err error) error {
	return &FieldError{Op: "write", Field: field, Offset: w.offset, Value: value, Err: err}
}

func (w *Writer) writeInt32(field string, v int32) error {
	binary.LittleEndian.PutUint32(w.buf[:], uint32(v))
	n, err := w.w.Write(w.buf[:])
	if err != nil {
		return w.fail(field, int64(v), err)
	}
	w.offset += int64(n)
	return nil
}

// WriteInt writes a 4-byte little-endian signed integer
func (w *Writer) WriteInt(field string, v int) error {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return w.fail(field, int64(v), ErrIntOverflow)
	}
	return w.writeInt32(field, int32(v))
}

// WriteBool writes a flag as 0 or 1
func (w *Writer) WriteBool(field string, v bool) error {
	if v {
		return w.writeInt32(field, 1)
	}
	return w.writeInt32(field, 0)
}

// WriteSentinelInt narrows math.MinInt and math.MaxInt back to their 32-bit
// wire markers. Other values must fit in 32 bits.
func (w *Writer) WriteSentinelInt(field string, v int) error {
	switch v {
	case math.MinInt:
		return w.writeInt32(field, math.MinInt32)
	case math.MaxInt:
		return w.writeInt32(field, math.MaxInt32)
	}
	return w.WriteInt(field, v)
}

// WriteString writes a length-prefixed string in the active charset
func (w *Writer) WriteString(field string, s string) error {
	var data []byte
	switch w.charset {
	case CharsetUTF8:
		if !utf8.ValidString(s) {
			return w.fail(field, int64(len(s)), ErrCharset)
		}
		data = []byte(s)
	default:
		encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return w.fail(field, int64(len(s)), ErrCharset)
		}
		data = encoded
	}
	if len(data) > MaxStringLength {
		return w.fail(field, int64(len(data)), ErrStringLength)
	}

	if err := w.writeInt32(field, int32(len(data))); err != nil {
		return err
	}
	n, err := w.w.Write(data)
	w.offset += int64(n)
	if err != nil {
		return w.fail(field, int64(len(data)), err)
	}
	return nil
}
