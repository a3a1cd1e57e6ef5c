package savegame

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

func init() {
	gob.Register(ClonebayInfo{})
	gob.Register(BatteryInfo{})
	gob.Register(ShieldsInfo{})
	gob.Register(CloakingInfo{})
	gob.Register(HackingInfo{})
	gob.Register(MindInfo{})
	gob.Register(ArtilleryInfo{})

	gob.Register(EmptyProjectileInfo{})
	gob.Register(IntegerProjectileInfo{})
	gob.Register(LaserProjectileInfo{})
	gob.Register(BombProjectileInfo{})
	gob.Register(BeamProjectileInfo{})
	gob.Register(PDSProjectileInfo{})

	gob.Register(EmptyDronePodInfo{})
	gob.Register(BoarderDronePodInfo{})
	gob.Register(HackingDronePodInfo{})
	gob.Register(ZigZagDronePodInfo{})
	gob.Register(ShieldDronePodInfo{})
}

// gob refuses structs without exported fields, so the empty variants encode
// themselves as zero bytes.

func (EmptyProjectileInfo) GobEncode() ([]byte, error) { return []byte{}, nil }
func (*EmptyProjectileInfo) GobDecode([]byte) error    { return nil }
func (EmptyDronePodInfo) GobEncode() ([]byte, error)   { return []byte{}, nil }
func (*EmptyDronePodInfo) GobDecode([]byte) error      { return nil }

func deepCopy[T any](src *T) (*T, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(src); err != nil {
		return nil, fmt.Errorf("clone: encode: %w", err)
	}
	dst := new(T)
	if err := gob.NewDecoder(&buf).Decode(dst); err != nil {
		return nil, fmt.Errorf("clone: decode: %w", err)
	}
	return dst, nil
}

// Clone returns a fully independent copy of the saved game. Empty
// collections come back as nil, which encodes identically.
func (s *SavedGameState) Clone() (*SavedGameState, error) {
	return deepCopy(s)
}

// Clone returns a fully independent copy of the ship
func (s *ShipState) Clone() (*ShipState, error) {
	return deepCopy(s)
}
