package savegame

import "fmt"

func (d *decoder) readStateVars() []StateVar {
	n := d.count("state var count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]StateVar, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, StateVar{ID: d.str("state var id"), Value: d.int("state var value")})
	}
	return out
}

func (e *encoder) writeStateVars(vars []StateVar) {
	e.int("state var count", len(vars))
	for _, v := range vars {
		e.str("state var id", v.ID)
		e.int("state var value", v.Value)
	}
}

func (d *decoder) readBools(field string) []bool {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]bool, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, d.bool(field))
	}
	return out
}

func (e *encoder) writeBools(field string, vs []bool) {
	e.int(field+" count", len(vs))
	for _, v := range vs {
		e.bool(field, v)
	}
}

func (d *decoder) readBeacons() []BeaconState {
	n := d.count("beacon count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]BeaconState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("beacons[%d]", i)
		out = append(out, d.readBeacon())
		d.leave()
	}
	return out
}

func (e *encoder) writeBeacons(beacons []BeaconState) {
	e.int("beacon count", len(beacons))
	for i, b := range beacons {
		e.enter("beacons[%d]", i)
		e.writeBeacon(b)
		e.leave()
	}
}

func (d *decoder) readBeacon() BeaconState {
	var b BeaconState
	b.VisitCount = d.int("visit count")
	if b.VisitCount > 0 {
		b.BgStarscapeImage = d.str("bg starscape image")
		b.BgSpriteImage = d.str("bg sprite image")
		b.BgSpritePosX = d.int("bg sprite x")
		b.BgSpritePosY = d.int("bg sprite y")
		b.BgSpriteRotation = d.int("bg sprite rotation")
	}

	b.Seen = d.bool("seen")

	b.EnemyPresent = d.bool("enemy present")
	if b.EnemyPresent {
		b.ShipEventID = d.str("ship event id")
		b.AutoBlueprintID = d.str("auto blueprint id")
		b.ShipEventSeed = d.int("ship event seed")
	}

	b.FleetPresence = FleetPresence(d.tag("fleet presence", func(v int) bool {
		return FleetPresence(v).valid()
	}))
	b.UnderAttack = d.bool("under attack")

	if d.bool("store present") {
		store := d.readStore()
		b.Store = &store
	}
	return b
}

func (e *encoder) writeBeacon(b BeaconState) {
	e.int("visit count", b.VisitCount)
	if b.VisitCount > 0 {
		e.str("bg starscape image", b.BgStarscapeImage)
		e.str("bg sprite image", b.BgSpriteImage)
		e.int("bg sprite x", b.BgSpritePosX)
		e.int("bg sprite y", b.BgSpritePosY)
		e.int("bg sprite rotation", b.BgSpriteRotation)
	}

	e.bool("seen", b.Seen)

	e.bool("enemy present", b.EnemyPresent)
	if b.EnemyPresent {
		e.str("ship event id", b.ShipEventID)
		e.str("auto blueprint id", b.AutoBlueprintID)
		e.int("ship event seed", b.ShipEventSeed)
	}

	e.tag("fleet presence", int(b.FleetPresence), func(v int) bool {
		return FleetPresence(v).valid()
	})
	e.bool("under attack", b.UnderAttack)

	e.bool("store present", b.Store != nil)
	if b.Store != nil {
		e.writeStore(*b.Store)
	}
}

// Store shelf bounds
const (
	MinStoreShelves    = 1
	MaxStoreShelves    = 4
	legacyStoreShelves = 2
)

func (d *decoder) readStore() StoreState {
	d.enter("store")
	defer d.leave()

	var s StoreState
	shelves := legacyStoreShelves
	if d.format.IsAdvanced() {
		shelves = d.ranged("shelf count", MinStoreShelves, MaxStoreShelves)
	}
	for i := 0; i < shelves && d.err == nil; i++ {
		d.enter("shelves[%d]", i)
		s.Shelves = append(s.Shelves, d.readShelf())
		d.leave()
	}
	s.Fuel = d.int("fuel")
	s.Missiles = d.int("missiles")
	s.DroneParts = d.int("drone parts")
	return s
}

func (e *encoder) writeStore(s StoreState) {
	e.enter("store")
	defer e.leave()

	if e.format.IsAdvanced() {
		e.ranged("shelf count", len(s.Shelves), MinStoreShelves, MaxStoreShelves)
	} else if len(s.Shelves) != legacyStoreShelves {
		e.fail("shelf count", len(s.Shelves), fmt.Errorf("%w: %s stores hold exactly %d shelves", ErrCountMismatch, e.format, legacyStoreShelves))
		return
	}
	for i, shelf := range s.Shelves {
		e.enter("shelves[%d]", i)
		e.writeShelf(shelf)
		e.leave()
	}
	e.int("fuel", s.Fuel)
	e.int("missiles", s.Missiles)
	e.int("drone parts", s.DroneParts)
}

// readShelf reads the item type and three slots. A slot whose available
// marker is -1 holds no item and has no further fields; empty slots only
// ever follow filled ones.
func (d *decoder) readShelf() StoreShelf {
	var shelf StoreShelf
	shelf.ItemType = StoreItemType(d.tag("item type", func(v int) bool {
		return StoreItemType(v).valid()
	}))
	empty := false
	for i := 0; i < storeSlots && d.err == nil; i++ {
		start := d.r.Offset()
		available := d.int("available")
		if available == -1 {
			empty = true
			continue
		}
		if available < -1 || available > 1 || empty {
			d.fail("available", start, available, ErrOutOfRange)
			break
		}
		item := StoreItem{Available: available == 1, ItemID: d.str("item id")}
		if d.format.IsAdvanced() {
			item.ExtraData = d.int("extra data")
		}
		shelf.Items = append(shelf.Items, item)
	}
	return shelf
}

func (e *encoder) writeShelf(shelf StoreShelf) {
	e.tag("item type", int(shelf.ItemType), func(v int) bool {
		return StoreItemType(v).valid()
	})
	if len(shelf.Items) > storeSlots {
		e.fail("items", len(shelf.Items), fmt.Errorf("%w: a shelf holds at most %d items", ErrCountMismatch, storeSlots))
		return
	}
	for i := 0; i < storeSlots; i++ {
		if i >= len(shelf.Items) {
			e.int("available", -1)
			continue
		}
		item := shelf.Items[i]
		e.bool("available", item.Available)
		e.str("item id", item.ItemID)
		if e.format.IsAdvanced() {
			e.int("extra data", item.ExtraData)
		}
	}
}

func (d *decoder) readQuestEvents() []QuestEvent {
	n := d.count("quest event count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]QuestEvent, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, QuestEvent{EventID: d.str("quest event id"), BeaconID: d.int("quest beacon id")})
	}
	return out
}

func (e *encoder) writeQuestEvents(events []QuestEvent) {
	e.int("quest event count", len(events))
	for _, q := range events {
		e.str("quest event id", q.EventID)
		e.int("quest beacon id", q.BeaconID)
	}
}

func (d *decoder) readEncounter() *EncounterState {
	d.enter("encounter")
	defer d.leave()

	enc := &EncounterState{
		ShipEventSeed:    d.int("ship event seed"),
		SurrenderEventID: d.str("surrender event id"),
		EscapeEventID:    d.str("escape event id"),
		DestroyedEventID: d.str("destroyed event id"),
		DeadCrewEventID:  d.str("dead crew event id"),
		GotAwayEventID:   d.str("got away event id"),
		LastEventID:      d.str("last event id"),
	}
	if d.format.IsLatest() {
		enc.UnknownAlpha = d.int("alpha")
	}
	enc.Text = d.str("text")
	enc.AffectedCrewSeed = d.int("affected crew seed")
	enc.Choices = d.ints("choice")
	return enc
}

func (e *encoder) writeEncounter(enc *EncounterState) {
	e.enter("encounter")
	defer e.leave()

	if enc == nil {
		e.fail("encounter", 0, fmt.Errorf("%w: encounter", ErrMissingRecord))
		return
	}
	e.int("ship event seed", enc.ShipEventSeed)
	e.str("surrender event id", enc.SurrenderEventID)
	e.str("escape event id", enc.EscapeEventID)
	e.str("destroyed event id", enc.DestroyedEventID)
	e.str("dead crew event id", enc.DeadCrewEventID)
	e.str("got away event id", enc.GotAwayEventID)
	e.str("last event id", enc.LastEventID)
	if e.format.IsLatest() {
		e.int("alpha", enc.UnknownAlpha)
	}
	e.str("text", enc.Text)
	e.int("affected crew seed", enc.AffectedCrewSeed)
	e.ints("choice", enc.Choices)
}

func (d *decoder) readNearbyShipAI() *NearbyShipAIState {
	d.enter("nearby ship ai")
	defer d.leave()
	return &NearbyShipAIState{
		Surrendered:        d.bool("surrendered"),
		Escaping:           d.bool("escaping"),
		Destroyed:          d.bool("destroyed"),
		SurrenderThreshold: d.int("surrender threshold"),
		EscapeThreshold:    d.int("escape threshold"),
		EscapeTicks:        d.int("escape ticks"),
		StalemateTriggered: d.bool("stalemate triggered"),
		StalemateTicks:     d.int("stalemate ticks"),
		BoardingAttempts:   d.int("boarding attempts"),
		BoardersNeeded:     d.int("boarders needed"),
	}
}

func (e *encoder) writeNearbyShipAI(ai *NearbyShipAIState) {
	e.enter("nearby ship ai")
	defer e.leave()

	if ai == nil {
		e.fail("nearby ship ai", 0, fmt.Errorf("%w: nearby ship ai", ErrMissingRecord))
		return
	}
	e.bool("surrendered", ai.Surrendered)
	e.bool("escaping", ai.Escaping)
	e.bool("destroyed", ai.Destroyed)
	e.int("surrender threshold", ai.SurrenderThreshold)
	e.int("escape threshold", ai.EscapeThreshold)
	e.int("escape ticks", ai.EscapeTicks)
	e.bool("stalemate triggered", ai.StalemateTriggered)
	e.int("stalemate ticks", ai.StalemateTicks)
	e.int("boarding attempts", ai.BoardingAttempts)
	e.int("boarders needed", ai.BoardersNeeded)
}

func (d *decoder) readEnvironment() *EnvironmentState {
	d.enter("environment")
	defer d.leave()

	env := &EnvironmentState{
		RedGiantPresent: d.bool("red giant present"),
		PulsarPresent:   d.bool("pulsar present"),
		PDSPresent:      d.bool("pds present"),
		Vulnerability: HazardVulnerability(d.tag("vulnerable ships", func(v int) bool {
			return HazardVulnerability(v).valid()
		})),
	}
	if d.bool("asteroids present") {
		env.AsteroidField = &AsteroidFieldState{
			UnknownAlpha:   d.int("asteroid alpha"),
			StrayRockTicks: d.int("stray rock ticks"),
			UnknownGamma:   d.int("asteroid gamma"),
			BgDriftTicks:   d.int("bg drift ticks"),
			CurrentTarget:  d.int("current target"),
		}
	}
	env.SolarFlareFadeTicks = d.int("solar flare fade ticks")
	env.HavocTicks = d.int("havoc ticks")
	env.PDSTicks = d.int("pds ticks")
	return env
}

func (e *encoder) writeEnvironment(env *EnvironmentState) {
	e.enter("environment")
	defer e.leave()

	if env == nil {
		e.fail("environment", 0, fmt.Errorf("%w: environment", ErrMissingRecord))
		return
	}
	e.bool("red giant present", env.RedGiantPresent)
	e.bool("pulsar present", env.PulsarPresent)
	e.bool("pds present", env.PDSPresent)
	e.tag("vulnerable ships", int(env.Vulnerability), func(v int) bool {
		return HazardVulnerability(v).valid()
	})
	e.bool("asteroids present", env.AsteroidField != nil)
	if a := env.AsteroidField; a != nil {
		e.int("asteroid alpha", a.UnknownAlpha)
		e.int("stray rock ticks", a.StrayRockTicks)
		e.int("asteroid gamma", a.UnknownGamma)
		e.int("bg drift ticks", a.BgDriftTicks)
		e.int("current target", a.CurrentTarget)
	}
	e.int("solar flare fade ticks", env.SolarFlareFadeTicks)
	e.int("havoc ticks", env.HavocTicks)
	e.int("pds ticks", env.PDSTicks)
}

// Flagship stage bounds
const (
	MinFlagshipStage = 1
	MaxFlagshipStage = 3
)

func (d *decoder) readRebelFlagship() RebelFlagshipState {
	d.enter("rebel flagship")
	defer d.leave()

	var f RebelFlagshipState
	if d.format.IsAdvanced() {
		f.UnknownAlpha = d.int("alpha")
	}
	f.PendingStage = d.ranged("pending stage", MinFlagshipStage, MaxFlagshipStage)
	if d.format.IsAdvanced() {
		f.UnknownGamma = d.int("gamma")
		f.UnknownDelta = d.int("delta")
	}
	f.PreviousOccupancy = d.ints("occupancy")
	return f
}

func (e *encoder) writeRebelFlagship(f RebelFlagshipState) {
	e.enter("rebel flagship")
	defer e.leave()

	if e.format.IsAdvanced() {
		e.int("alpha", f.UnknownAlpha)
	}
	e.ranged("pending stage", f.PendingStage, MinFlagshipStage, MaxFlagshipStage)
	if e.format.IsAdvanced() {
		e.int("gamma", f.UnknownGamma)
		e.int("delta", f.UnknownDelta)
	}
	e.ints("occupancy", f.PreviousOccupancy)
}
