package savegame

import (
	"fmt"

	"github.com/ssargent/ftlsave/pkg/blueprint"
)

// Oxygen bounds for a room
const (
	MinOxygen = 0
	MaxOxygen = 100
)

func (d *decoder) readRooms(layout *blueprint.ShipLayout) []RoomState {
	out := make([]RoomState, 0, layout.RoomCount())
	for _, room := range layout.Rooms {
		if d.err != nil {
			break
		}
		d.enter("rooms[%d]", room.ID)
		out = append(out, d.readRoom(room))
		d.leave()
	}
	return out
}

func (e *encoder) writeRooms(layout *blueprint.ShipLayout, rooms []RoomState) {
	if len(rooms) != layout.RoomCount() {
		e.fail("rooms", len(rooms), fmt.Errorf("%w: layout %s has %d rooms", ErrCountMismatch, layout.ID, layout.RoomCount()))
		return
	}
	for i, room := range layout.Rooms {
		e.enter("rooms[%d]", room.ID)
		e.writeRoom(room, rooms[i])
		e.leave()
	}
}

// readRoom reads the squares column by column and stores them row-major
func (d *decoder) readRoom(room blueprint.Room) RoomState {
	var r RoomState
	r.Oxygen = d.ranged("oxygen", MinOxygen, MaxOxygen)

	w, h := room.SquaresH, room.SquaresV
	r.Squares = make([]SquareState, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			r.Squares[y*w+x] = SquareState{
				FireHealth:             d.int("fire health"),
				IgnitionProgress:       d.int("ignition progress"),
				ExtinguishmentProgress: d.int("extinguishment progress"),
			}
		}
	}

	if d.format.IsAdvanced() {
		r.StationSquare = d.int("station square")
		r.StationDirection = StationDirection(d.tag("station direction", func(v int) bool {
			return StationDirection(v).valid()
		}))
	} else {
		r.StationSquare = -1
		r.StationDirection = StationNone
	}
	return r
}

func (e *encoder) writeRoom(room blueprint.Room, r RoomState) {
	e.ranged("oxygen", r.Oxygen, MinOxygen, MaxOxygen)

	w, h := room.SquaresH, room.SquaresV
	if len(r.Squares) != w*h {
		e.fail("squares", len(r.Squares), fmt.Errorf("%w: room %d has %d squares", ErrCountMismatch, room.ID, w*h))
		return
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sq := r.Squares[y*w+x]
			e.int("fire health", sq.FireHealth)
			e.int("ignition progress", sq.IgnitionProgress)
			e.int("extinguishment progress", sq.ExtinguishmentProgress)
		}
	}

	if e.format.IsAdvanced() {
		e.int("station square", r.StationSquare)
		e.tag("station direction", int(r.StationDirection), func(v int) bool {
			return StationDirection(v).valid()
		})
	}
}

func (d *decoder) readBreaches() []BreachState {
	n := d.count("breach count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]BreachState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, BreachState{
			X:      d.int("breach x"),
			Y:      d.int("breach y"),
			Health: d.int("breach health"),
		})
	}
	return out
}

func (e *encoder) writeBreaches(breaches []BreachState) {
	e.int("breach count", len(breaches))
	for _, b := range breaches {
		e.int("breach x", b.X)
		e.int("breach y", b.Y)
		e.int("breach health", b.Health)
	}
}

// readDoors reads one record per layout door in serialized order
func (d *decoder) readDoors(layout *blueprint.ShipLayout) map[blueprint.DoorCoordinate]DoorState {
	out := make(map[blueprint.DoorCoordinate]DoorState, len(layout.Doors))
	for i, door := range layout.SerializedDoorOrder() {
		if d.err != nil {
			break
		}
		d.enter("doors[%d]", i)
		out[door.Coordinate()] = d.readDoor()
		d.leave()
	}
	return out
}

func (e *encoder) writeDoors(layout *blueprint.ShipLayout, doors map[blueprint.DoorCoordinate]DoorState) {
	order := layout.SerializedDoorOrder()
	if len(doors) != len(order) {
		e.fail("doors", len(doors), fmt.Errorf("%w: layout %s has %d doors", ErrCountMismatch, layout.ID, len(order)))
		return
	}
	for i, door := range order {
		e.enter("doors[%d]", i)
		state, ok := doors[door.Coordinate()]
		if !ok {
			e.fail("door", 0, fmt.Errorf("%w: door at (%d,%d) vertical=%t", ErrMissingRecord, door.X, door.Y, door.Vertical))
			e.leave()
			return
		}
		e.writeDoor(state)
		e.leave()
	}
}

func (d *decoder) readDoor() DoorState {
	var s DoorState
	if d.format.HasDoorHealth() {
		s.CurrentMaxHealth = d.int("current max health")
		s.Health = d.int("health")
		s.NominalHealth = d.int("nominal health")
	}
	s.Open = d.bool("open")
	s.WalkingThrough = d.bool("walking through")
	if d.format.HasDoorHealth() {
		s.UnknownDelta = d.int("delta")
		s.UnknownEpsilon = d.int("epsilon")
	}
	return s
}

func (e *encoder) writeDoor(s DoorState) {
	if e.format.HasDoorHealth() {
		e.int("current max health", s.CurrentMaxHealth)
		e.int("health", s.Health)
		e.int("nominal health", s.NominalHealth)
	}
	e.bool("open", s.Open)
	e.bool("walking through", s.WalkingThrough)
	if e.format.HasDoorHealth() {
		e.int("delta", s.UnknownDelta)
		e.int("epsilon", s.UnknownEpsilon)
	}
}

func (d *decoder) readLockdownCrystals() []LockdownCrystal {
	n := d.count("lockdown crystal count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]LockdownCrystal, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("lockdown crystals[%d]", i)
		out = append(out, LockdownCrystal{
			CurrentPositionX: d.int("current x"),
			CurrentPositionY: d.int("current y"),
			Speed:            d.int("speed"),
			GoalPositionX:    d.int("goal x"),
			GoalPositionY:    d.int("goal y"),
			Arrived:          d.bool("arrived"),
			Done:             d.bool("done"),
			Lifetime:         d.int("lifetime"),
			SuperFreeze:      d.bool("super freeze"),
			LockingRoom:      d.int("locking room"),
			AnimDirection:    d.int("anim direction"),
			ShardProgress:    d.int("shard progress"),
		})
		d.leave()
	}
	return out
}

func (e *encoder) writeLockdownCrystals(crystals []LockdownCrystal) {
	e.int("lockdown crystal count", len(crystals))
	for i, c := range crystals {
		e.enter("lockdown crystals[%d]", i)
		e.int("current x", c.CurrentPositionX)
		e.int("current y", c.CurrentPositionY)
		e.int("speed", c.Speed)
		e.int("goal x", c.GoalPositionX)
		e.int("goal y", c.GoalPositionY)
		e.bool("arrived", c.Arrived)
		e.bool("done", c.Done)
		e.int("lifetime", c.Lifetime)
		e.bool("super freeze", c.SuperFreeze)
		e.int("locking room", c.LockingRoom)
		e.int("anim direction", c.AnimDirection)
		e.int("shard progress", c.ShardProgress)
		e.leave()
	}
}
