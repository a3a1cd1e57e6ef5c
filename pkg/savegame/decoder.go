package savegame

import (
	"fmt"
	"io"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/codec"
)

// Decode reads a complete saved game. Any failure aborts the decode and is
// returned as a *DecodeError; no partial state is returned.
func Decode(r io.Reader, lookup blueprint.Lookup) (*SavedGameState, error) {
	d := &decoder{r: codec.NewReader(r), lookup: lookup}
	state := d.readSavedGame()
	if d.err != nil {
		return nil, d.err
	}
	return state, nil
}

func (d *decoder) readFormat() Format {
	start := d.r.Offset()
	f := Format(d.int("format"))
	if d.err != nil {
		return f
	}
	if !f.Valid() {
		d.fail("format", start, int(f), fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f)))
		return f
	}
	d.format = f
	d.r.SetCharset(f.Charset())
	return f
}

func (d *decoder) readSavedGame() *SavedGameState {
	s := &SavedGameState{}
	s.Format = d.readFormat()
	if d.err != nil {
		return nil
	}

	if d.format.HasRandomNative() {
		s.RandomNative = d.bool("random native")
	}
	if d.format.HasDLCFlag() {
		s.DLCEnabled = d.bool("dlc enabled")
	}
	s.Difficulty = Difficulty(d.tag("difficulty", func(v int) bool {
		return difficultyValid(d.format, Difficulty(v))
	}))

	s.TotalShipsDefeated = d.int("total ships defeated")
	s.TotalBeaconsExplored = d.int("total beacons explored")
	s.TotalScrapCollected = d.int("total scrap collected")
	s.TotalCrewHired = d.int("total crew hired")

	s.PlayerShipName = d.str("player ship name")
	s.PlayerShipBlueprintID = d.str("player ship blueprint id")
	s.SectorNumber = d.int("sector number")
	s.UnknownBeta = d.int("beta")

	s.StateVars = d.readStateVars()

	s.PlayerShip = d.readShip("player ship")
	s.Cargo = d.strings("cargo")

	s.SectorTreeSeed = d.int("sector tree seed")
	s.SectorLayoutSeed = d.int("sector layout seed")
	s.RebelFleetOffset = d.int("rebel fleet offset")
	s.RebelFleetFudge = d.int("rebel fleet fudge")
	s.RebelPursuitMod = d.int("rebel pursuit mod")

	if d.format.IsAdvanced() {
		s.CurrentBeaconID = d.int("current beacon id")
		s.Waiting = d.bool("waiting")
		s.WaitEventSeed = d.int("wait event seed")
		s.UnknownEpsilon = d.str("epsilon")
		s.SectorHazardsVisible = d.bool("sector hazards visible")
		s.RebelFlagshipVisible = d.bool("rebel flagship visible")
		s.RebelFlagshipHop = d.int("rebel flagship hop")
		s.RebelFlagshipMoving = d.bool("rebel flagship moving")
		s.RebelFlagshipRetreating = d.bool("rebel flagship retreating")
		s.RebelFlagshipBaseTurns = d.int("rebel flagship base turns")
	} else {
		s.SectorHazardsVisible = d.bool("sector hazards visible")
		s.RebelFlagshipVisible = d.bool("rebel flagship visible")
		s.RebelFlagshipHop = d.int("rebel flagship hop")
		s.RebelFlagshipMoving = d.bool("rebel flagship moving")
	}

	s.SectorVisitation = d.readBools("sector visitation")
	s.SectorNumberZeroBased = d.int("sector number zero based")
	s.SectorIsHiddenCrystalWorlds = d.bool("hidden crystal worlds")

	s.Beacons = d.readBeacons()
	s.QuestEvents = d.readQuestEvents()
	s.DistantQuestEvents = d.strings("distant quest event")

	if d.err != nil {
		return nil
	}
	if d.format.IsAdvanced() {
		d.readAdvancedTail(s)
	} else {
		d.readLegacyTail(s)
	}
	if d.err != nil {
		return nil
	}

	s.MysteryBytes = d.readMysteryBytes()
	return s
}

func (d *decoder) readLegacyTail(s *SavedGameState) {
	s.CurrentBeaconID = d.int("current beacon id")
	if d.bool("ship nearby") {
		nearby := d.readShip("nearby ship")
		s.NearbyShip = &nearby
	}
	s.RebelFlagship = d.readRebelFlagship()
}

func (d *decoder) readAdvancedTail(s *SavedGameState) {
	s.UnknownMu = d.int("mu")
	s.Encounter = d.readEncounter()

	if d.bool("ship nearby") {
		s.RebelFlagshipNearby = d.bool("rebel flagship nearby")
		nearby := d.readShip("nearby ship")
		s.NearbyShip = &nearby
		s.NearbyShipAI = d.readNearbyShipAI()
	}

	s.Environment = d.readEnvironment()
	s.Projectiles = d.readProjectiles("projectiles")

	if d.err != nil {
		return
	}
	s.PlayerShip = d.readExtendedShipInfo("player ship", s.PlayerShip)
	if s.NearbyShip != nil {
		nearby := d.readExtendedShipInfo("nearby ship", *s.NearbyShip)
		s.NearbyShip = &nearby
	}

	s.UnknownNu = d.int("nu")
	if s.NearbyShip != nil {
		s.UnknownXi = d.int("xi")
	}
	s.Autofire = d.bool("autofire")

	s.RebelFlagship = d.readRebelFlagship()
}

// readMysteryBytes captures whatever the decoder could not interpret
func (d *decoder) readMysteryBytes() []MysteryBytes {
	offset := d.r.Offset()
	data, err := d.r.ReadRemaining()
	if err != nil {
		d.failRead(err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	return []MysteryBytes{{Offset: offset, Data: data}}
}

func difficultyValid(f Format, v Difficulty) bool {
	switch v {
	case DifficultyEasy, DifficultyNormal:
		return true
	case DifficultyHard:
		return f.AllowsHard()
	}
	return false
}
