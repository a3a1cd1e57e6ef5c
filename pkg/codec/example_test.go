package codec_test

import (
	"bytes"
	"fmt"
	"log"
	"math"

	"github.com/ssargent/ftlsave/pkg/codec"
)

// ExampleWriter_sentinels demonstrates how "not applicable" markers survive a round trip
func ExampleWriter_sentinels() {
	var buf bytes.Buffer
	w := codec.NewWriter(&buf)
	if err := w.WriteSentinelInt("cloak ticks", math.MinInt); err != nil {
		log.Fatal(err)
	}
	if err := w.WriteString("ship name", "Kestrel"); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	r := codec.NewReader(bytes.NewReader(buf.Bytes()))
	ticks, err := r.ReadSentinelInt("cloak ticks")
	if err != nil {
		log.Fatal(err)
	}
	name, err := r.ReadString("ship name")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ticks == math.MinInt, name, r.Offset())
	// Output: true Kestrel 15
}
