package savefile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ssargent/ftlsave/pkg/savegame"
)

// ErrUnknownField is returned by SetField for a name it does not recognise
var ErrUnknownField = errors.New("unknown field")

var editableFields = map[string]func(*savegame.ShipState) *int{
	"scrap":       func(s *savegame.ShipState) *int { return &s.ScrapAmount },
	"fuel":        func(s *savegame.ShipState) *int { return &s.FuelAmount },
	"missiles":    func(s *savegame.ShipState) *int { return &s.MissilesAmount },
	"drone-parts": func(s *savegame.ShipState) *int { return &s.DronePartsAmount },
	"hull":        func(s *savegame.ShipState) *int { return &s.HullAmount },
}

// EditableFields lists the names SetField accepts
func EditableFields() []string {
	names := make([]string, 0, len(editableFields))
	for name := range editableFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetField changes one of the player ship's resource counters and returns
// the previous value
func SetField(state *savegame.SavedGameState, name string, value int) (int, error) {
	field, ok := editableFields[name]
	if !ok {
		return 0, fmt.Errorf("%w %q (want one of %v)", ErrUnknownField, name, EditableFields())
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", name, value)
	}
	ptr := field(&state.PlayerShip)
	old := *ptr
	*ptr = value
	return old, nil
}
