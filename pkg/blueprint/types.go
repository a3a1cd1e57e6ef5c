// Package blueprint resolves ship, layout and drone identifiers to the static
// structural metadata the save codec needs: room geometry, door adjacency,
// per-system room counts and drone types.
package blueprint

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when an identifier cannot be resolved
var ErrNotFound = errors.New("blueprint not found")

// Vacuum is the room id a layout uses for the outside of the hull.
const Vacuum = -1

// Lookup is the read-only blueprint service consumed by the save codec
type Lookup interface {
	Ship(id string) (*ShipBlueprint, error)
	Layout(id string) (*ShipLayout, error)
	Drone(id string) (*DroneBlueprint, error)
}

// ShipBlueprint holds the parts of a ship blueprint that shape its save record
type ShipBlueprint struct {
	ID       string
	LayoutID string
	// SystemRooms maps a system id ("shields", "artillery", ...) to the
	// rooms it occupies. Most systems occupy at most one.
	SystemRooms map[string][]int
}

// SystemRoomCount returns how many rooms the given system occupies
func (b *ShipBlueprint) SystemRoomCount(systemID string) int {
	return len(b.SystemRooms[systemID])
}

// DroneBlueprint holds the type of a drone, which selects its pod record shape
type DroneBlueprint struct {
	ID   string
	Type string // BATTLE, REPAIR, BOARDER, HACKING, COMBAT, BEAM, DEFENSE, SHIELD, SHIP_REPAIR
}

// Room is one room of a ship layout, measured in squares
type Room struct {
	ID       int `yaml:"id"`
	X        int `yaml:"x"`
	Y        int `yaml:"y"`
	SquaresH int `yaml:"w"`
	SquaresV int `yaml:"h"`
}

// DoorCoordinate identifies a door by position and orientation
type DoorCoordinate struct {
	X        int
	Y        int
	Vertical bool
}

// Door is a door between two rooms, or between a room and Vacuum
type Door struct {
	X        int  `yaml:"x"`
	Y        int  `yaml:"y"`
	Vertical bool `yaml:"vertical"`
	RoomA    int  `yaml:"room_a"`
	RoomB    int  `yaml:"room_b"`
}

// Coordinate returns the key the door is stored under
func (d Door) Coordinate() DoorCoordinate {
	return DoorCoordinate{X: d.X, Y: d.Y, Vertical: d.Vertical}
}

// IsVacuumAdjacent reports whether either side of the door is outside the hull
func (d Door) IsVacuumAdjacent() bool {
	return d.RoomA == Vacuum || d.RoomB == Vacuum
}

// ShipLayout is the floor plan of a ship
type ShipLayout struct {
	ID         string
	OffsetX    int
	OffsetY    int
	Horizontal int
	Vertical   int
	Rooms      []Room // sorted by room id
	Doors      []Door // layout order
}

// RoomCount returns the number of rooms in the layout
func (l *ShipLayout) RoomCount() int {
	return len(l.Rooms)
}

// Room returns the room with the given id
func (l *ShipLayout) Room(id int) (Room, bool) {
	if id < 0 || id >= len(l.Rooms) || l.Rooms[id].ID != id {
		for _, r := range l.Rooms {
			if r.ID == id {
				return r, true
			}
		}
		return Room{}, false
	}
	return l.Rooms[id], true
}

// SerializedDoorOrder returns the doors in the order saved games store them:
// interior doors in layout order, followed by vacuum-adjacent doors in their
// original relative order.
func (l *ShipLayout) SerializedDoorOrder() []Door {
	out := make([]Door, 0, len(l.Doors))
	var vacuum []Door
	for _, d := range l.Doors {
		if d.IsVacuumAdjacent() {
			vacuum = append(vacuum, d)
			continue
		}
		out = append(out, d)
	}
	return append(out, vacuum...)
}

func sortRooms(rooms []Room) {
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
}
