package savegame

// Difficulty of the campaign
type Difficulty int

const (
	DifficultyEasy   Difficulty = 0
	DifficultyNormal Difficulty = 1
	DifficultyHard   Difficulty = 2
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyNormal:
		return "NORMAL"
	case DifficultyHard:
		return "HARD"
	}
	return "UNKNOWN"
}

// SystemType identifies a ship system
type SystemType int

const (
	SystemShields SystemType = iota
	SystemEngines
	SystemOxygen
	SystemWeapons
	SystemDroneCtrl
	SystemMedbay
	SystemPilot
	SystemSensors
	SystemDoors
	SystemTeleporter
	SystemCloaking
	SystemArtillery
	SystemBattery
	SystemClonebay
	SystemMind
	SystemHacking
)

var systemIDs = map[SystemType]string{
	SystemShields:    "shields",
	SystemEngines:    "engines",
	SystemOxygen:     "oxygen",
	SystemWeapons:    "weapons",
	SystemDroneCtrl:  "drones",
	SystemMedbay:     "medbay",
	SystemPilot:      "pilot",
	SystemSensors:    "sensors",
	SystemDoors:      "doors",
	SystemTeleporter: "teleporter",
	SystemCloaking:   "cloaking",
	SystemArtillery:  "artillery",
	SystemBattery:    "battery",
	SystemClonebay:   "clonebay",
	SystemMind:       "mind",
	SystemHacking:    "hacking",
}

// ID returns the blueprint id of the system
func (s SystemType) ID() string {
	if id, ok := systemIDs[s]; ok {
		return id
	}
	return "unknown"
}

func (s SystemType) String() string { return s.ID() }

// systemOrder returns the canonical order systems are stored in
func systemOrder(f Format) []SystemType {
	order := []SystemType{
		SystemShields, SystemEngines, SystemOxygen, SystemWeapons, SystemDroneCtrl,
		SystemMedbay, SystemPilot, SystemSensors, SystemDoors, SystemTeleporter,
		SystemCloaking, SystemArtillery,
	}
	if f.IsAdvanced() {
		order = append(order, SystemBattery, SystemClonebay, SystemMind, SystemHacking)
	}
	return order
}

// StationDirection is the facing of a crew station within a room
type StationDirection int

const (
	StationDown  StationDirection = 0
	StationRight StationDirection = 1
	StationUp    StationDirection = 2
	StationLeft  StationDirection = 3
	StationNone  StationDirection = 4
)

func (d StationDirection) valid() bool { return d >= StationDown && d <= StationNone }

// FleetPresence records which fleets occupy a beacon
type FleetPresence int

const (
	FleetNone       FleetPresence = 0
	FleetRebel      FleetPresence = 1
	FleetFederation FleetPresence = 2
	FleetBoth       FleetPresence = 3
)

func (p FleetPresence) valid() bool { return p >= FleetNone && p <= FleetBoth }

// StoreItemType is the kind of item a store shelf holds
type StoreItemType int

const (
	StoreItemWeapon  StoreItemType = 0
	StoreItemDrone   StoreItemType = 1
	StoreItemAugment StoreItemType = 2
	StoreItemCrew    StoreItemType = 3
	StoreItemSystem  StoreItemType = 4
)

func (t StoreItemType) valid() bool { return t >= StoreItemWeapon && t <= StoreItemSystem }

// HazardVulnerability records which ships an environmental hazard affects
type HazardVulnerability int

const (
	HazardPlayerShip HazardVulnerability = 0
	HazardNearbyShip HazardVulnerability = 1
	HazardBothShips  HazardVulnerability = 2
)

func (v HazardVulnerability) valid() bool { return v >= HazardPlayerShip && v <= HazardBothShips }

// ProjectileType selects the extended info carried by a projectile
type ProjectileType int

const (
	ProjectileInvalid         ProjectileType = 0
	ProjectileLaserOrBurst    ProjectileType = 1
	ProjectileRockOrExplosion ProjectileType = 2
	ProjectileMissile         ProjectileType = 3
	ProjectileBomb            ProjectileType = 4
	ProjectileBeam            ProjectileType = 5
	ProjectilePDS             ProjectileType = 6
)

func (t ProjectileType) String() string {
	switch t {
	case ProjectileInvalid:
		return "INVALID"
	case ProjectileLaserOrBurst:
		return "LASER_OR_BURST"
	case ProjectileRockOrExplosion:
		return "ROCK_OR_EXPLOSION"
	case ProjectileMissile:
		return "MISSILE"
	case ProjectileBomb:
		return "BOMB"
	case ProjectileBeam:
		return "BEAM"
	case ProjectilePDS:
		return "PDS"
	}
	return "UNKNOWN"
}

// DroneType is the behaviour class of a drone blueprint
type DroneType string

const (
	DroneBattle     DroneType = "BATTLE"
	DroneRepair     DroneType = "REPAIR"
	DroneBoarder    DroneType = "BOARDER"
	DroneHacking    DroneType = "HACKING"
	DroneCombat     DroneType = "COMBAT"
	DroneBeam       DroneType = "BEAM"
	DroneDefense    DroneType = "DEFENSE"
	DroneShield     DroneType = "SHIELD"
	DroneShipRepair DroneType = "SHIP_REPAIR"
)

// DroneTypes lists every recognised drone type
var DroneTypes = []DroneType{
	DroneBattle, DroneRepair, DroneBoarder, DroneHacking, DroneCombat,
	DroneBeam, DroneDefense, DroneShield, DroneShipRepair,
}

func (t DroneType) valid() bool {
	for _, known := range DroneTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasPod reports whether drones of this type fly outside the ship. Internal
// drones (battle, repair) have no pod record.
func (t DroneType) HasPod() bool {
	return t != DroneBattle && t != DroneRepair
}

// CrystalRace is the crew race with lockdown fields
const CrystalRace = "crystal"
