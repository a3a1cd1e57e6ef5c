// Package savegametest provides a small blueprint catalog and matching saves
// for tests of packages built on savegame.
package savegametest

import (
	"bytes"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/savegame"
)

const (
	ShipID   = "SCOUT"
	LayoutID = "scout"
)

// Layout has two rooms joined by one door, with a second door to space
func Layout() *blueprint.ShipLayout {
	return &blueprint.ShipLayout{
		ID: LayoutID,
		Rooms: []blueprint.Room{
			{ID: 0, X: 0, Y: 0, SquaresH: 2, SquaresV: 1},
			{ID: 1, X: 2, Y: 0, SquaresH: 1, SquaresV: 1},
		},
		Doors: []blueprint.Door{
			{X: 0, Y: 1, Vertical: false, RoomA: 0, RoomB: blueprint.Vacuum},
			{X: 2, Y: 0, Vertical: true, RoomA: 0, RoomB: 1},
		},
	}
}

// Catalog resolves ShipID
func Catalog() *blueprint.Catalog {
	c := blueprint.NewCatalog()
	c.AddLayout(Layout())
	c.AddShip(&blueprint.ShipBlueprint{
		ID:       ShipID,
		LayoutID: LayoutID,
		SystemRooms: map[string][]int{
			"shields": {0},
			"engines": {1},
		},
	})
	return c
}

// Ship returns a player ship with shields and engines installed
func Ship(f savegame.Format) savegame.ShipState {
	var systems []savegame.SystemState
	for _, t := range f.SystemTypes() {
		s := savegame.NewSystemState(t)
		switch t {
		case savegame.SystemShields:
			s.Capacity, s.Power = 2, 2
		case savegame.SystemEngines:
			s.Capacity, s.Power = 2, 1
		}
		systems = append(systems, s)
	}

	layout := Layout()
	rooms := make([]savegame.RoomState, len(layout.Rooms))
	for i, r := range layout.Rooms {
		rooms[i] = savegame.RoomState{
			Oxygen:           100,
			Squares:          make([]savegame.SquareState, r.SquaresH*r.SquaresV),
			StationSquare:    -1,
			StationDirection: savegame.StationNone,
		}
	}
	doors := map[blueprint.DoorCoordinate]savegame.DoorState{}
	for _, d := range layout.Doors {
		doors[d.Coordinate()] = savegame.DoorState{}
	}

	s := savegame.ShipState{
		BlueprintID: ShipID,
		Name:        "Scout",
		GfxBaseName: "scout",
		LayoutID:    LayoutID,
		HullAmount:  30, FuelAmount: 12, DronePartsAmount: 2, MissilesAmount: 4, ScrapAmount: 50,
		Crew: []savegame.CrewState{
			{Name: "Ellen", Race: "human", Health: 100, PlayerControlled: true},
		},
		ReservePowerCapacity: 8,
		Systems:              systems,
		Rooms:                rooms,
		Doors:                doors,
	}
	if f.IsAdvanced() {
		s.ExtendedSystemInfo = []savegame.ExtendedSystemInfo{
			savegame.ShieldsInfo{ShieldLayers: 1},
		}
	}
	return s
}

// State returns a complete save of format f
func State(f savegame.Format) *savegame.SavedGameState {
	s := &savegame.SavedGameState{
		Format:                f,
		Difficulty:            savegame.DifficultyNormal,
		PlayerShipName:        "Scout",
		PlayerShipBlueprintID: ShipID,
		SectorNumber:          1,
		PlayerShip:            Ship(f),
		SectorVisitation:      []bool{true},
		Beacons:               []savegame.BeaconState{{Seen: true}, {}},
		RebelFlagship:         savegame.RebelFlagshipState{PendingStage: 1},
	}
	if f.IsAdvanced() {
		s.Encounter = &savegame.EncounterState{}
		s.Environment = &savegame.EnvironmentState{}
	}
	return s
}

// Bytes encodes State(f)
func Bytes(f savegame.Format) []byte {
	var buf bytes.Buffer
	if err := savegame.Encode(&buf, State(f), Catalog()); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// CatalogYAML is Catalog in the on-disk catalog format
const CatalogYAML = `ships:
  SCOUT:
    layout: scout
    systems:
      shields: [0]
      engines: [1]
layouts:
  scout:
    rooms:
      - {id: 0, x: 0, y: 0, w: 2, h: 1}
      - {id: 1, x: 2, y: 0, w: 1, h: 1}
    doors:
      - {x: 0, y: 1, vertical: false, room_a: 0, room_b: -1}
      - {x: 2, y: 0, vertical: true, room_a: 0, room_b: 1}
`
