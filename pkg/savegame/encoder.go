package savegame

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/codec"
)

// EncodeOption configures Encode
type EncodeOption func(*encoder)

// WithLogger sets the logger used for encode warnings
func WithLogger(logger *slog.Logger) EncodeOption {
	return func(e *encoder) {
		e.logger = logger
	}
}

// Encode writes a complete saved game. Mystery bytes captured by Decode are
// not written back; a warning is logged when any are dropped.
func Encode(w io.Writer, state *SavedGameState, lookup blueprint.Lookup, opts ...EncodeOption) error {
	if state == nil {
		return &EncodeError{Path: "root", Field: "state", Err: fmt.Errorf("%w: nil state", ErrMissingRecord)}
	}
	e := &encoder{w: codec.NewWriter(w), lookup: lookup, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	e.writeSavedGame(state)
	if e.err != nil {
		return e.err
	}
	if err := e.w.Flush(); err != nil {
		return &EncodeError{Path: "root", Field: "flush", Offset: e.w.Offset(), Err: err}
	}

	if dropped := state.MysteryByteCount(); dropped > 0 {
		e.logger.Warn("mystery bytes not written",
			"format", int(state.Format),
			"blocks", len(state.MysteryBytes),
			"bytes", dropped,
		)
	}
	return nil
}

// MysteryByteCount returns the total size of the captured mystery bytes
func (s *SavedGameState) MysteryByteCount() int {
	n := 0
	for _, m := range s.MysteryBytes {
		n += m.Len()
	}
	return n
}

func (e *encoder) writeFormat(f Format) {
	if !f.Valid() {
		e.fail("format", int(f), fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f)))
		return
	}
	e.format = f
	e.w.SetCharset(f.Charset())
	e.int("format", int(f))
}

func (e *encoder) writeSavedGame(s *SavedGameState) {
	e.writeFormat(s.Format)
	if e.err != nil {
		return
	}

	if e.format.HasRandomNative() {
		e.bool("random native", s.RandomNative)
	}
	if e.format.HasDLCFlag() {
		e.bool("dlc enabled", s.DLCEnabled)
	}
	e.tag("difficulty", int(s.Difficulty), func(v int) bool {
		return difficultyValid(e.format, Difficulty(v))
	})

	e.int("total ships defeated", s.TotalShipsDefeated)
	e.int("total beacons explored", s.TotalBeaconsExplored)
	e.int("total scrap collected", s.TotalScrapCollected)
	e.int("total crew hired", s.TotalCrewHired)

	e.str("player ship name", s.PlayerShipName)
	e.str("player ship blueprint id", s.PlayerShipBlueprintID)
	e.int("sector number", s.SectorNumber)
	e.int("beta", s.UnknownBeta)

	e.writeStateVars(s.StateVars)

	e.writeShip("player ship", &s.PlayerShip)
	e.strings("cargo", s.Cargo)

	e.int("sector tree seed", s.SectorTreeSeed)
	e.int("sector layout seed", s.SectorLayoutSeed)
	e.int("rebel fleet offset", s.RebelFleetOffset)
	e.int("rebel fleet fudge", s.RebelFleetFudge)
	e.int("rebel pursuit mod", s.RebelPursuitMod)

	if e.format.IsAdvanced() {
		e.int("current beacon id", s.CurrentBeaconID)
		e.bool("waiting", s.Waiting)
		e.int("wait event seed", s.WaitEventSeed)
		e.str("epsilon", s.UnknownEpsilon)
		e.bool("sector hazards visible", s.SectorHazardsVisible)
		e.bool("rebel flagship visible", s.RebelFlagshipVisible)
		e.int("rebel flagship hop", s.RebelFlagshipHop)
		e.bool("rebel flagship moving", s.RebelFlagshipMoving)
		e.bool("rebel flagship retreating", s.RebelFlagshipRetreating)
		e.int("rebel flagship base turns", s.RebelFlagshipBaseTurns)
	} else {
		e.bool("sector hazards visible", s.SectorHazardsVisible)
		e.bool("rebel flagship visible", s.RebelFlagshipVisible)
		e.int("rebel flagship hop", s.RebelFlagshipHop)
		e.bool("rebel flagship moving", s.RebelFlagshipMoving)
	}

	e.writeBools("sector visitation", s.SectorVisitation)
	e.int("sector number zero based", s.SectorNumberZeroBased)
	e.bool("hidden crystal worlds", s.SectorIsHiddenCrystalWorlds)

	e.writeBeacons(s.Beacons)
	e.writeQuestEvents(s.QuestEvents)
	e.strings("distant quest event", s.DistantQuestEvents)

	if e.format.IsAdvanced() {
		e.writeAdvancedTail(s)
	} else {
		e.writeLegacyTail(s)
	}
}

func (e *encoder) writeLegacyTail(s *SavedGameState) {
	e.int("current beacon id", s.CurrentBeaconID)
	e.bool("ship nearby", s.NearbyShip != nil)
	if s.NearbyShip != nil {
		e.writeShip("nearby ship", s.NearbyShip)
	}
	e.writeRebelFlagship(s.RebelFlagship)
}

func (e *encoder) writeAdvancedTail(s *SavedGameState) {
	e.int("mu", s.UnknownMu)
	e.writeEncounter(s.Encounter)

	e.bool("ship nearby", s.NearbyShip != nil)
	if s.NearbyShip != nil {
		e.bool("rebel flagship nearby", s.RebelFlagshipNearby)
		e.writeShip("nearby ship", s.NearbyShip)
		e.writeNearbyShipAI(s.NearbyShipAI)
	}

	e.writeEnvironment(s.Environment)
	e.writeProjectiles("projectiles", s.Projectiles)

	e.writeExtendedShipInfo("player ship", &s.PlayerShip)
	if s.NearbyShip != nil {
		e.writeExtendedShipInfo("nearby ship", s.NearbyShip)
	}

	e.int("nu", s.UnknownNu)
	if s.NearbyShip != nil {
		e.int("xi", s.UnknownXi)
	}
	e.bool("autofire", s.Autofire)

	e.writeRebelFlagship(s.RebelFlagship)
}
