//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzReader_Strings feeds arbitrary bytes through ReadString in both charsets
func FuzzReader_Strings(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{3, 0, 0, 0, 'a', 'b', 'c'})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, cs := range []Charset{CharsetWindows1252, CharsetUTF8} {
			r := NewReader(bytes.NewReader(data))
			r.SetCharset(cs)
			s, err := r.ReadString("s")
			if err != nil {
				continue
			}

			var buf bytes.Buffer
			w := NewWriter(&buf)
			w.SetCharset(cs)
			if err := w.WriteString("s", s); err != nil {
				t.Fatalf("WriteString failed for decoded string %q: %v", s, err)
			}
			if err := w.Flush(); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf.Bytes(), data[:r.Offset()]) {
				t.Errorf("String did not round-trip: %v != %v", buf.Bytes(), data[:r.Offset()])
			}
		}
	})
}
