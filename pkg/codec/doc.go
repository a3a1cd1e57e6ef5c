// Package codec provides the primitive field codec for saved-game files.
//
// Every higher-level record in a save file is built out of four primitive
// field kinds. This package reads and writes them and nothing else; it has no
// knowledge of which fields exist in which format.
//
// # Field Format
//
//	Int:      [Value(4)]               signed, little-endian
//	Bool:     [Value(4)]               0 or 1, anything else is rejected
//	String:   [Length(4)][Bytes]       Length counts encoded bytes
//	Sentinel: [Value(4)]               math.MinInt32 / math.MaxInt32 are markers
//
// Strings are Windows-1252 before format 11 and UTF-8 from format 11 onward.
// The active charset is switched with SetCharset once the format tag is known.
//
// # Sentinel Integers
//
// A few counters use the 32-bit extremes to mean "not applicable". On read
// they are widened to math.MinInt and math.MaxInt so they can never be
// confused with an ordinary value that happens to be large; on write they are
// narrowed back. Any other value outside the 32-bit range is refused by the
// Writer.
//
// # Usage
//
//	r := codec.NewReader(bytes.NewReader(data))
//	format, err := r.ReadInt("format")
//	if err != nil {
//	    return err
//	}
//	if format == 11 {
//	    r.SetCharset(codec.CharsetUTF8)
//	}
//	name, err := r.ReadString("ship name")
//
// # Error Handling
//
// Failures are returned as *FieldError, which records the operation, the
// field name and the stream offset where the field started. The underlying
// cause (ErrShortRead, ErrInvalidBool, ErrIntOverflow, ErrStringLength,
// ErrCharset or an I/O error) is available through errors.Is.
//
// There is no partial-value recovery: offsets are cumulative, so a field
// that cannot be read leaves the rest of the stream meaningless.
//
// # Thread Safety
//
// Reader and Writer are not safe for concurrent use. Independent streams may
// be processed concurrently with independent instances.
package codec
