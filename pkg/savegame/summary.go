package savegame

// Summary is a flat view of the fields people usually look at in a save
type Summary struct {
	Format     int    `json:"format"`
	Difficulty string `json:"difficulty"`
	DLCEnabled bool   `json:"dlc_enabled"`

	ShipName      string `json:"ship_name"`
	ShipBlueprint string `json:"ship_blueprint"`
	Sector        int    `json:"sector"`

	Hull       int `json:"hull"`
	Fuel       int `json:"fuel"`
	Missiles   int `json:"missiles"`
	DroneParts int `json:"drone_parts"`
	Scrap      int `json:"scrap"`

	Crew     []string `json:"crew"`
	Systems  []string `json:"systems"`
	Weapons  []string `json:"weapons"`
	Drones   []string `json:"drones"`
	Augments []string `json:"augments"`
	Cargo    []string `json:"cargo"`

	Beacons       int    `json:"beacons"`
	NearbyShip    string `json:"nearby_ship,omitempty"`
	Projectiles   int    `json:"projectiles"`
	FlagshipStage int    `json:"flagship_stage"`
	MysteryBytes  int    `json:"mystery_bytes"`
}

// Summarize builds a Summary from a decoded save
func Summarize(s *SavedGameState) Summary {
	ship := &s.PlayerShip
	sum := Summary{
		Format:        int(s.Format),
		Difficulty:    s.Difficulty.String(),
		DLCEnabled:    s.DLCEnabled,
		ShipName:      ship.Name,
		ShipBlueprint: ship.BlueprintID,
		Sector:        s.SectorNumber,
		Hull:          ship.HullAmount,
		Fuel:          ship.FuelAmount,
		Missiles:      ship.MissilesAmount,
		DroneParts:    ship.DronePartsAmount,
		Scrap:         ship.ScrapAmount,
		Augments:      append([]string{}, ship.Augments...),
		Cargo:         append([]string{}, s.Cargo...),
		Beacons:       len(s.Beacons),
		Projectiles:   len(s.Projectiles),
		FlagshipStage: s.RebelFlagship.PendingStage,
		MysteryBytes:  s.MysteryByteCount(),
	}
	for _, c := range ship.Crew {
		sum.Crew = append(sum.Crew, c.Name+" ("+c.Race+")")
	}
	seen := map[SystemType]bool{}
	for _, sys := range ship.Systems {
		if sys.Capacity > 0 && !seen[sys.Type] {
			seen[sys.Type] = true
			sum.Systems = append(sum.Systems, sys.Type.ID())
		}
	}
	for _, w := range ship.Weapons {
		sum.Weapons = append(sum.Weapons, w.WeaponID)
	}
	for _, d := range ship.Drones {
		sum.Drones = append(sum.Drones, d.DroneID)
	}
	if s.NearbyShip != nil {
		sum.NearbyShip = s.NearbyShip.BlueprintID
	}
	return sum
}
