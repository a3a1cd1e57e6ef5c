package savegame

import (
	"fmt"
	"sort"

	"github.com/ssargent/ftlsave/pkg/codec"
)

// Format is the leading integer of a save file, identifying its layout
type Format int

// Recognised formats. The table is closed: any other tag is rejected.
const (
	FormatOriginal Format = 2  // 1.01 - 1.03.3
	Format7        Format = 7  // 1.5.4 - 1.5.10, Advanced Edition
	Format8        Format = 8  // 1.5.12
	Format9        Format = 9  // 1.5.13
	Format11       Format = 11 // 1.6.x
)

// traits is one row of the field-presence table
type traits struct {
	randomNative   bool // "random native" flag after the format tag
	dlcFlag        bool // DLC-enabled flag after the format tag
	hardDifficulty bool // difficulty 2 (HARD) is allowed
	advanced       bool // Advanced Edition fields: extra systems, encounter, environment, projectiles, pass 2
	doorHealth     bool // door health triple and counters, crew masteries
	crystals       bool // lockdown crystals and standalone drones
	chargeAnim     bool // weapon module charge animation
	latest         bool // encounter alpha field, PDS projectiles
	charset        codec.Charset
}

var formatTable = map[Format]traits{
	FormatOriginal: {charset: codec.CharsetWindows1252},
	Format7: {
		dlcFlag: true, hardDifficulty: true, advanced: true,
		charset: codec.CharsetWindows1252,
	},
	Format8: {
		dlcFlag: true, hardDifficulty: true, advanced: true, doorHealth: true, crystals: true,
		charset: codec.CharsetWindows1252,
	},
	Format9: {
		dlcFlag: true, hardDifficulty: true, advanced: true, doorHealth: true, crystals: true, chargeAnim: true,
		charset: codec.CharsetWindows1252,
	},
	Format11: {
		randomNative: true, dlcFlag: true, hardDifficulty: true, advanced: true, doorHealth: true, crystals: true,
		chargeAnim: true, latest: true,
		charset: codec.CharsetUTF8,
	},
}

// Formats returns every supported format tag in ascending order
func Formats() []Format {
	out := make([]Format, 0, len(formatTable))
	for f := range formatTable {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Valid reports whether the format tag is one of the recognised layouts
func (f Format) Valid() bool {
	_, ok := formatTable[f]
	return ok
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("unknown(%d)", int(f))
	}
	return fmt.Sprintf("format %d", int(f))
}

func (f Format) traits() traits { return formatTable[f] }

// HasRandomNative reports whether the file carries the random-native flag
func (f Format) HasRandomNative() bool { return f.traits().randomNative }

// HasDLCFlag reports whether the file carries the DLC-enabled flag
func (f Format) HasDLCFlag() bool { return f.traits().dlcFlag }

// AllowsHard reports whether difficulty HARD can be stored
func (f Format) AllowsHard() bool { return f.traits().hardDifficulty }

// IsAdvanced reports whether Advanced Edition fields are present
func (f Format) IsAdvanced() bool { return f.traits().advanced }

// HasDoorHealth reports whether doors carry health and crew carry masteries
func (f Format) HasDoorHealth() bool { return f.traits().doorHealth }

// HasCrystals reports whether lockdown crystals and standalone drones are present
func (f Format) HasCrystals() bool { return f.traits().crystals }

// HasChargeAnim reports whether weapon modules carry a charge animation
func (f Format) HasChargeAnim() bool { return f.traits().chargeAnim }

// IsLatest reports whether format-11-only fields are present
func (f Format) IsLatest() bool { return f.traits().latest }

// Charset returns the string encoding used by the format
func (f Format) Charset() codec.Charset { return f.traits().charset }

// SystemTypes returns the system kinds stored in this format, in wire order
func (f Format) SystemTypes() []SystemType { return systemOrder(f) }
