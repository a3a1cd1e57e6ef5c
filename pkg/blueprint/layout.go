package blueprint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLayout reads a ship layout in the game's plain-text format: a keyword
// on one line followed by its integer arguments, one per line.
//
//	ROOM         id x y w h
//	DOOR         x y roomA roomB vertical
//	X_OFFSET     n
//	Y_OFFSET     n
//	HORIZONTAL   n
//	VERTICAL     n
//	ELLIPSE      w h x y
func ParseLayout(id string, r io.Reader) (*ShipLayout, error) {
	argCounts := map[string]int{
		"X_OFFSET":   1,
		"Y_OFFSET":   1,
		"HORIZONTAL": 1,
		"VERTICAL":   1,
		"ELLIPSE":    4,
		"ROOM":       5,
		"DOOR":       5,
	}

	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout %s: %w", id, err)
	}

	layout := &ShipLayout{ID: id}
	for i := 0; i < len(tokens); {
		keyword := tokens[i]
		n, ok := argCounts[keyword]
		if !ok {
			return nil, fmt.Errorf("layout %s: unexpected token %q at line %d", id, keyword, i+1)
		}
		if i+n >= len(tokens) {
			return nil, fmt.Errorf("layout %s: %s needs %d arguments", id, keyword, n)
		}

		args := make([]int, n)
		for a := 0; a < n; a++ {
			v, err := strconv.Atoi(tokens[i+1+a])
			if err != nil {
				return nil, fmt.Errorf("layout %s: %s argument %d: %w", id, keyword, a+1, err)
			}
			args[a] = v
		}
		i += n + 1

		switch keyword {
		case "X_OFFSET":
			layout.OffsetX = args[0]
		case "Y_OFFSET":
			layout.OffsetY = args[0]
		case "HORIZONTAL":
			layout.Horizontal = args[0]
		case "VERTICAL":
			layout.Vertical = args[0]
		case "ELLIPSE":
			// Shield ellipse geometry does not affect the save format.
		case "ROOM":
			layout.Rooms = append(layout.Rooms, Room{ID: args[0], X: args[1], Y: args[2], SquaresH: args[3], SquaresV: args[4]})
		case "DOOR":
			layout.Doors = append(layout.Doors, Door{X: args[0], Y: args[1], RoomA: args[2], RoomB: args[3], Vertical: args[4] == 1})
		}
	}

	if err := validateLayout(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func validateLayout(layout *ShipLayout) error {
	sortRooms(layout.Rooms)
	for i, room := range layout.Rooms {
		if room.ID != i {
			return fmt.Errorf("layout %s: room ids must be contiguous from 0, found %d at position %d", layout.ID, room.ID, i)
		}
		if room.SquaresH <= 0 || room.SquaresV <= 0 {
			return fmt.Errorf("layout %s: room %d has invalid size %dx%d", layout.ID, room.ID, room.SquaresH, room.SquaresV)
		}
	}

	seen := make(map[DoorCoordinate]bool, len(layout.Doors))
	for _, d := range layout.Doors {
		if seen[d.Coordinate()] {
			return fmt.Errorf("layout %s: duplicate door at %d,%d", layout.ID, d.X, d.Y)
		}
		seen[d.Coordinate()] = true
		for _, id := range []int{d.RoomA, d.RoomB} {
			if id != Vacuum && (id < 0 || id >= len(layout.Rooms)) {
				return fmt.Errorf("layout %s: door at %d,%d references unknown room %d", layout.ID, d.X, d.Y, id)
			}
		}
	}
	return nil
}
