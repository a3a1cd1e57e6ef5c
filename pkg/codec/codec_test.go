package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func le(values ...int32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return buf
}

func TestReader_ReadInt(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want int
	}{
		{name: "zero", data: le(0), want: 0},
		{name: "positive", data: le(300), want: 300},
		{name: "negative", data: le(-1), want: -1},
		{name: "min int32 passes through", data: le(math.MinInt32), want: math.MinInt32},
		{name: "max int32 passes through", data: le(math.MaxInt32), want: math.MaxInt32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.data))
			got, err := r.ReadInt("value")
			if err != nil {
				t.Fatalf("ReadInt failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("ReadInt mismatch: got %d, want %d", got, tc.want)
			}
			if r.Offset() != 4 {
				t.Errorf("Offset mismatch: got %d, want 4", r.Offset())
			}
		})
	}
}

func TestReader_ShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader(append(le(7), 0x01, 0x02)))
	if _, err := r.ReadInt("first"); err != nil {
		t.Fatalf("ReadInt failed: %v", err)
	}

	_, err := r.ReadInt("second")
	if !errors.Is(err, ErrShortRead) {
		t.Fatalf("Expected ErrShortRead, got %v", err)
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Expected *FieldError, got %T", err)
	}
	if fieldErr.Field != "second" || fieldErr.Offset != 4 {
		t.Errorf("Unexpected error context: field=%q offset=%d", fieldErr.Field, fieldErr.Offset)
	}
}

func TestReader_ReadBool(t *testing.T) {
	r := NewReader(bytes.NewReader(le(0, 1, 2)))

	v, err := r.ReadBool("a")
	if err != nil || v {
		t.Fatalf("Expected false, got %v (%v)", v, err)
	}
	v, err = r.ReadBool("b")
	if err != nil || !v {
		t.Fatalf("Expected true, got %v (%v)", v, err)
	}
	_, err = r.ReadBool("c")
	if !errors.Is(err, ErrInvalidBool) {
		t.Fatalf("Expected ErrInvalidBool, got %v", err)
	}
}

func TestSentinelRoundTrip(t *testing.T) {
	values := []int{math.MinInt, math.MaxInt, 0, -5, 123456, math.MinInt32 + 1, math.MaxInt32 - 1}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, v := range values {
		if err := w.WriteSentinelInt("v", v); err != nil {
			t.Fatalf("WriteSentinelInt(%d) failed: %v", v, err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes()[:8], le(math.MinInt32, math.MaxInt32)) {
		t.Errorf("Sentinels not narrowed to 32-bit markers: %v", buf.Bytes()[:8])
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, want := range values {
		got, err := r.ReadSentinelInt("v")
		if err != nil {
			t.Fatalf("ReadSentinelInt failed: %v", err)
		}
		if got != want {
			t.Errorf("Sentinel mismatch: got %d, want %d", got, want)
		}
	}
}

func TestWriter_IntOverflow(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})

	err := w.WriteInt("big", math.MaxInt32+1)
	if !errors.Is(err, ErrIntOverflow) {
		t.Fatalf("Expected ErrIntOverflow, got %v", err)
	}

	// Plain ints do not get sentinel narrowing.
	err = w.WriteInt("max", math.MaxInt)
	if !errors.Is(err, ErrIntOverflow) {
		t.Fatalf("Expected ErrIntOverflow for math.MaxInt, got %v", err)
	}

	if w.Offset() != 0 {
		t.Errorf("Failed writes must not advance offset, got %d", w.Offset())
	}
}

func TestStringRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		charset Charset
		value   string
		wireLen int
	}{
		{name: "empty legacy", charset: CharsetWindows1252, value: "", wireLen: 0},
		{name: "ascii legacy", charset: CharsetWindows1252, value: "The Kestrel", wireLen: 11},
		{name: "accented legacy is one byte per rune", charset: CharsetWindows1252, value: "Éclair", wireLen: 6},
		{name: "accented utf-8", charset: CharsetUTF8, value: "Éclair", wireLen: 7},
		{name: "cjk utf-8", charset: CharsetUTF8, value: "船", wireLen: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			w.SetCharset(tc.charset)
			if err := w.WriteString("name", tc.value); err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush failed: %v", err)
			}

			if got := int(binary.LittleEndian.Uint32(buf.Bytes())); got != tc.wireLen {
				t.Errorf("Length prefix mismatch: got %d, want %d", got, tc.wireLen)
			}

			r := NewReader(bytes.NewReader(buf.Bytes()))
			r.SetCharset(tc.charset)
			got, err := r.ReadString("name")
			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}
			if got != tc.value {
				t.Errorf("String mismatch: got %q, want %q", got, tc.value)
			}
			if r.Offset() != int64(4+tc.wireLen) {
				t.Errorf("Offset mismatch: got %d, want %d", r.Offset(), 4+tc.wireLen)
			}
		})
	}
}

func TestWriter_UnrepresentableLegacyString(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	err := w.WriteString("name", "船")
	if !errors.Is(err, ErrCharset) {
		t.Fatalf("Expected ErrCharset, got %v", err)
	}
}

func TestReader_BadStringLength(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want error
	}{
		{name: "negative length", data: le(-4), want: ErrStringLength},
		{name: "absurd length", data: le(MaxStringLength + 1), want: ErrStringLength},
		{name: "truncated payload", data: append(le(10), 'a', 'b'), want: ErrShortRead},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tc.data))
			_, err := r.ReadString("s")
			if !errors.Is(err, tc.want) {
				t.Fatalf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReader_ReadRemaining(t *testing.T) {
	r := NewReader(bytes.NewReader(append(le(1), 0xAA, 0xBB, 0xCC)))
	if _, err := r.ReadInt("x"); err != nil {
		t.Fatalf("ReadInt failed: %v", err)
	}

	rest, err := r.ReadRemaining()
	if err != nil {
		t.Fatalf("ReadRemaining failed: %v", err)
	}
	if !bytes.Equal(rest, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("Remaining mismatch: %v", rest)
	}
	if r.Offset() != 7 {
		t.Errorf("Offset mismatch: got %d, want 7", r.Offset())
	}
}
