package savegame

import (
	"fmt"

	"github.com/ssargent/ftlsave/pkg/blueprint"
)

// resolveShip finds the blueprint and floor plan a ship record depends on
func resolveShip(lookup blueprint.Lookup, blueprintID string) (*blueprint.ShipBlueprint, *blueprint.ShipLayout, error) {
	bp, err := lookup.Ship(blueprintID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ship %q: %w", ErrUnresolvedBlueprint, blueprintID, err)
	}
	layout, err := lookup.Layout(bp.LayoutID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: layout %q of ship %q: %w", ErrUnresolvedBlueprint, bp.LayoutID, blueprintID, err)
	}
	return bp, layout, nil
}

// readShip is the first ship pass. It stops before the records whose
// counts depend on the lists it establishes; readExtendedShipInfo reads
// those once the rest of the file up to that point is known.
func (d *decoder) readShip(field string) ShipState {
	d.enter(field)
	defer d.leave()

	var s ShipState
	start := d.r.Offset()
	s.BlueprintID = d.str("blueprint id")
	s.Name = d.str("name")
	s.GfxBaseName = d.str("gfx base name")
	if d.err != nil {
		return s
	}

	bp, layout, err := resolveShip(d.lookup, s.BlueprintID)
	if err != nil {
		d.fail("blueprint id", start, 0, err)
		return s
	}
	s.LayoutID = layout.ID

	n := d.count("starting crew count")
	for i := 0; i < n && d.err == nil; i++ {
		s.StartingCrew = append(s.StartingCrew, StartingCrewState{
			Race: d.str("starting crew race"),
			Name: d.str("starting crew name"),
		})
	}

	if d.format.IsAdvanced() {
		s.Hostile = d.bool("hostile")
		s.JumpChargeTicks = d.int("jump charge ticks")
		s.Jumping = d.bool("jumping")
		s.JumpAnimTicks = d.int("jump anim ticks")
	}

	s.HullAmount = d.int("hull")
	s.FuelAmount = d.int("fuel")
	s.DronePartsAmount = d.int("drone parts")
	s.MissilesAmount = d.int("missiles")
	s.ScrapAmount = d.int("scrap")

	s.Crew = d.readCrew("crew")

	s.ReservePowerCapacity = d.int("reserve power capacity")
	s.Systems = d.readSystems(bp)
	if d.err != nil {
		return s
	}

	if d.format.IsAdvanced() {
		s.ExtendedSystemInfo = d.readSystemInfo(&s)
	}

	s.Rooms = d.readRooms(layout)
	s.Breaches = d.readBreaches()
	s.Doors = d.readDoors(layout)

	if d.format.IsAdvanced() {
		s.CloakAnimTicks = d.int("cloak anim ticks")
	}
	if d.format.HasCrystals() {
		s.LockdownCrystals = d.readLockdownCrystals()
	}

	s.Weapons = d.readWeapons()
	s.Drones = d.readDrones()
	s.Augments = d.strings("augment")
	return s
}

func (e *encoder) writeShip(field string, s *ShipState) {
	e.enter(field)
	defer e.leave()

	e.str("blueprint id", s.BlueprintID)
	e.str("name", s.Name)
	e.str("gfx base name", s.GfxBaseName)
	if e.err != nil {
		return
	}

	bp, layout, err := resolveShip(e.lookup, s.BlueprintID)
	if err != nil {
		e.fail("blueprint id", 0, err)
		return
	}

	e.int("starting crew count", len(s.StartingCrew))
	for _, c := range s.StartingCrew {
		e.str("starting crew race", c.Race)
		e.str("starting crew name", c.Name)
	}

	if e.format.IsAdvanced() {
		e.bool("hostile", s.Hostile)
		e.int("jump charge ticks", s.JumpChargeTicks)
		e.bool("jumping", s.Jumping)
		e.int("jump anim ticks", s.JumpAnimTicks)
	}

	e.int("hull", s.HullAmount)
	e.int("fuel", s.FuelAmount)
	e.int("drone parts", s.DronePartsAmount)
	e.int("missiles", s.MissilesAmount)
	e.int("scrap", s.ScrapAmount)

	e.writeCrew("crew", s.Crew)

	e.int("reserve power capacity", s.ReservePowerCapacity)
	e.writeSystems(bp, s.Systems)

	if e.format.IsAdvanced() {
		e.writeSystemInfo(s)
	}

	e.writeRooms(layout, s.Rooms)
	e.writeBreaches(s.Breaches)
	e.writeDoors(layout, s.Doors)

	if e.format.IsAdvanced() {
		e.int("cloak anim ticks", s.CloakAnimTicks)
	}
	if e.format.HasCrystals() {
		e.writeLockdownCrystals(s.LockdownCrystals)
	}

	e.writeWeapons(s.Weapons)
	e.writeDrones(s.Drones)
	e.strings("augment", s.Augments)
}

// readExtendedShipInfo is the second ship pass. It takes the ship produced by
// readShip and returns a completed copy; the input is not modified.
func (d *decoder) readExtendedShipInfo(field string, ship ShipState) ShipState {
	d.enter(field)
	defer d.leave()

	out := ship
	out.Drones = append([]DroneState(nil), ship.Drones...)
	out.Weapons = append([]WeaponState(nil), ship.Weapons...)
	out.ExtendedSystemInfo = append([]ExtendedSystemInfo(nil), ship.ExtendedSystemInfo...)

	for i := range out.Drones {
		if d.err != nil {
			return out
		}
		d.enter("drones[%d]", i)
		out.Drones[i].ExtendedInfo = d.readExtendedDroneInfo(out.Drones[i].DroneID)
		d.leave()
	}

	if out.installed(SystemHacking) {
		out.ExtendedSystemInfo = append(out.ExtendedSystemInfo, d.readHackingInfo())
	}
	if out.installed(SystemMind) {
		out.ExtendedSystemInfo = append(out.ExtendedSystemInfo, d.readMindInfo())
	}

	start := d.r.Offset()
	n := d.count("weapon module count")
	if d.err == nil && n != len(out.Weapons) {
		d.fail("weapon module count", start, n, fmt.Errorf("%w: %d weapon modules for %d weapons", ErrCountMismatch, n, len(out.Weapons)))
	}
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("weapon modules[%d]", i)
		m := d.readWeaponModule()
		out.Weapons[i].Module = &m
		d.leave()
	}

	for i, sys := range out.SystemsOfType(SystemArtillery) {
		if sys.Capacity <= 0 || d.err != nil {
			continue
		}
		d.enter("artillery info[%d]", i)
		out.ExtendedSystemInfo = append(out.ExtendedSystemInfo, ArtilleryInfo{WeaponModule: d.readWeaponModule()})
		d.leave()
	}

	if d.format.HasCrystals() {
		out.StandaloneDrones = d.readStandaloneDrones()
	}
	return out
}

func (e *encoder) writeExtendedShipInfo(field string, s *ShipState) {
	e.enter(field)
	defer e.leave()

	for i, dr := range s.Drones {
		e.enter("drones[%d]", i)
		e.writeExtendedDroneInfo(dr.DroneID, dr.ExtendedInfo)
		e.leave()
	}

	if s.installed(SystemHacking) {
		info, _ := s.ExtendedInfo(SystemHacking)
		v, ok := info.(HackingInfo)
		if !ok {
			e.fail("hacking info", 0, fmt.Errorf("%w: hacking info", ErrMissingRecord))
			return
		}
		e.writeHackingInfo(v)
	}
	if s.installed(SystemMind) {
		info, _ := s.ExtendedInfo(SystemMind)
		v, ok := info.(MindInfo)
		if !ok {
			e.fail("mind info", 0, fmt.Errorf("%w: mind info", ErrMissingRecord))
			return
		}
		e.writeMindInfo(v)
	}

	e.int("weapon module count", len(s.Weapons))
	for i, w := range s.Weapons {
		e.enter("weapon modules[%d]", i)
		if w.Module == nil {
			e.fail("weapon module", 0, fmt.Errorf("%w: weapon %q has no module", ErrMissingRecord, w.WeaponID))
			e.leave()
			return
		}
		e.writeWeaponModule(*w.Module)
		e.leave()
	}

	var artillery []ArtilleryInfo
	for _, info := range s.ExtendedSystemInfo {
		if a, ok := info.(ArtilleryInfo); ok {
			artillery = append(artillery, a)
		}
	}
	next := 0
	for i, sys := range s.SystemsOfType(SystemArtillery) {
		if sys.Capacity <= 0 {
			continue
		}
		e.enter("artillery info[%d]", i)
		if next >= len(artillery) {
			e.fail("artillery info", i, fmt.Errorf("%w: artillery info", ErrMissingRecord))
			e.leave()
			return
		}
		e.writeWeaponModule(artillery[next].WeaponModule)
		next++
		e.leave()
	}

	if e.format.HasCrystals() {
		e.writeStandaloneDrones(s.StandaloneDrones)
	}
}
