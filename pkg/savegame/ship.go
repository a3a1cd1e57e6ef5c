package savegame

import "github.com/ssargent/ftlsave/pkg/blueprint"

// ShipState is a player or enemy ship
type ShipState struct {
	BlueprintID string
	Name        string
	GfxBaseName string
	LayoutID    string // resolved from the blueprint, not stored on the wire

	StartingCrew []StartingCrewState

	// Advanced Edition jump state
	Hostile         bool
	JumpChargeTicks int
	Jumping         bool
	JumpAnimTicks   int

	HullAmount       int
	FuelAmount       int
	DronePartsAmount int
	MissilesAmount   int
	ScrapAmount      int

	Crew []CrewState

	ReservePowerCapacity int
	// Systems holds every system in canonical order. Systems occupying
	// several rooms appear once per room.
	Systems []SystemState

	ExtendedSystemInfo []ExtendedSystemInfo

	Rooms    []RoomState // indexed by room id
	Breaches []BreachState
	Doors    map[blueprint.DoorCoordinate]DoorState

	CloakAnimTicks int // formats 7+

	LockdownCrystals []LockdownCrystal // formats 8+

	Weapons  []WeaponState
	Drones   []DroneState
	Augments []string

	StandaloneDrones []StandaloneDroneState // formats 8+
}

// System returns the first system of the given type
func (s *ShipState) System(t SystemType) (SystemState, bool) {
	for _, sys := range s.Systems {
		if sys.Type == t {
			return sys, true
		}
	}
	return SystemState{}, false
}

// SystemsOfType returns every record of the given type, one per room
func (s *ShipState) SystemsOfType(t SystemType) []SystemState {
	var out []SystemState
	for _, sys := range s.Systems {
		if sys.Type == t {
			out = append(out, sys)
		}
	}
	return out
}

func (s *ShipState) installed(t SystemType) bool {
	sys, ok := s.System(t)
	return ok && sys.Capacity > 0
}

// StartingCrewState is a member of the crew the ship launched with
type StartingCrewState struct {
	Race string
	Name string
}

// CrewState is a crew member or boarding drone body
type CrewState struct {
	Name               string
	Race               string
	EnemyBoardingDrone bool
	Health             int
	SpriteX            int
	SpriteY            int
	RoomID             int
	RoomSquare         int
	PlayerControlled   bool

	// Advanced Edition
	CloneReady      int
	DeathOrder      int
	SpriteTints     []int
	MindControlled  bool
	SavedRoomSquare int
	SavedRoomID     int

	PilotSkill           int
	EngineSkill          int
	ShieldSkill          int
	WeaponSkill          int
	RepairSkill          int
	CombatSkill          int
	Male                 bool
	Repairs              int
	CombatKills          int
	PilotedEvasions      int
	JumpsSurvived        int
	SkillMasteriesEarned int

	// Advanced Edition
	StunTicks           int
	HealthBoost         int
	ClonebayPriority    int
	DamageBoost         int
	UnknownLambda       int
	UniversalDeathCount int

	// formats 8+: pilot, engine, shield, weapon, repair, combat, low then high
	Masteries [12]bool

	UnknownNu    bool
	TeleportAnim AnimState
	UnknownPhi   bool

	// crystal crew only
	LockdownRechargeTicks     int
	LockdownRechargeTicksGoal int
	UnknownOmega              int
}

// SystemState is one installed (or absent) system
type SystemState struct {
	Type SystemType
	// Capacity 0 means not installed; nothing else is stored.
	Capacity          int
	Power             int
	DamagedBars       int
	IonizedBars       int
	DeionizationTicks int // sentinel
	RepairProgress    int
	DamageProgress    int

	// Advanced Edition
	BatteryPower             int
	HackLevel                int
	Hacked                   bool
	TemporaryCapacityCap     int
	TemporaryCapacityLoss    int
	TemporaryCapacityDivisor int
}

// Default values of the temporary capacity limiters
const (
	DefaultTemporaryCapacityCap     = 1000
	DefaultTemporaryCapacityDivisor = 1
)

// NewSystemState returns a system with neutral temporary limiters
func NewSystemState(t SystemType) SystemState {
	return SystemState{
		Type:                     t,
		TemporaryCapacityCap:     DefaultTemporaryCapacityCap,
		TemporaryCapacityDivisor: DefaultTemporaryCapacityDivisor,
	}
}

// UsableBars returns the power bars that can actually be used, after damage
// and the three temporary limiters are applied.
func (s SystemState) UsableBars() int {
	limited := s.Capacity
	if s.TemporaryCapacityCap < limited {
		limited = s.TemporaryCapacityCap
	}
	limited -= s.TemporaryCapacityLoss
	if s.TemporaryCapacityDivisor > 1 {
		limited /= s.TemporaryCapacityDivisor
	}

	bars := s.Capacity - s.DamagedBars
	if limited < bars {
		bars = limited
	}
	if bars < 0 {
		return 0
	}
	return bars
}

// RoomState is one room; squares are stored row-major at index v*H+h
type RoomState struct {
	Oxygen           int
	Squares          []SquareState
	StationSquare    int
	StationDirection StationDirection
}

// SquareState is one floor square
type SquareState struct {
	FireHealth             int
	IgnitionProgress       int
	ExtinguishmentProgress int
}

// BreachState is a hull breach at a ship-grid coordinate
type BreachState struct {
	X      int
	Y      int
	Health int
}

// DoorState is keyed by the door's layout coordinate
type DoorState struct {
	CurrentMaxHealth int
	Health           int
	NominalHealth    int
	Open             bool
	WalkingThrough   bool
	UnknownDelta     int
	UnknownEpsilon   int
}

// LockdownCrystal is a crystal wall sealing a room
type LockdownCrystal struct {
	CurrentPositionX int
	CurrentPositionY int
	Speed            int
	GoalPositionX    int
	GoalPositionY    int
	Arrived          bool
	Done             bool
	Lifetime         int
	SuperFreeze      bool
	LockingRoom      int
	AnimDirection    int
	ShardProgress    int
}

// WeaponState is a mounted weapon
type WeaponState struct {
	WeaponID      string
	Armed         bool
	CooldownTicks int // format 2 only; later formats use the weapon module

	// Module is filled in by the second ship pass
	Module *WeaponModuleState
}

// DroneState is a drone in the ship's drone system
type DroneState struct {
	DroneID          string
	Armed            bool
	PlayerControlled bool
	BodyX            int
	BodyY            int
	BodyRoomID       int
	BodyRoomSquare   int
	Health           int

	// ExtendedInfo is filled in by the second ship pass
	ExtendedInfo *ExtendedDroneInfo
}

// ExtendedDroneInfo is the second-pass record of a drone
type ExtendedDroneInfo struct {
	Deployed bool
	Armed    bool
	Pod      *DronePodState // nil for internal drones
}

// StandaloneDroneState is a drone not attached to any drone system
type StandaloneDroneState struct {
	DroneID        string
	Pod            *DronePodState
	UnknownGamma   int
	UnknownDelta   int
	UnknownEpsilon int
}

// WeaponModuleState is the runtime state of a weapon, or of an artillery system
type WeaponModuleState struct {
	CooldownTicks        int
	CooldownTicksGoal    int
	SubcooldownTicks     int
	SubcooldownTicksGoal int
	Boost                int
	Charge               int

	CurrentTargets  []ReticleCoordinate
	PreviousTargets []ReticleCoordinate

	Autofire          bool
	FireWhenReady     bool
	TargetID          int
	WeaponAnim        AnimState
	ProtractAnimTicks int
	Firing            bool
	UnknownPhi        bool

	// formats 9+
	AnimCharge int
	ChargeAnim AnimState

	LastProjectileID   int
	PendingProjectiles []ProjectileState
}

// ReticleCoordinate is a weapon target point
type ReticleCoordinate struct {
	X int
	Y int
}
