package savegame

// SavedGameState is the root of a decoded save file
type SavedGameState struct {
	Format       Format
	RandomNative bool // format 11 only
	DLCEnabled   bool // formats 7+
	Difficulty   Difficulty

	TotalShipsDefeated   int
	TotalBeaconsExplored int
	TotalScrapCollected  int
	TotalCrewHired       int

	PlayerShipName        string
	PlayerShipBlueprintID string
	SectorNumber          int // one-based
	UnknownBeta           int

	StateVars []StateVar

	PlayerShip ShipState
	Cargo      []string

	SectorTreeSeed   int
	SectorLayoutSeed int
	RebelFleetOffset int
	RebelFleetFudge  int
	RebelPursuitMod  int

	CurrentBeaconID int
	Waiting         bool
	WaitEventSeed   int
	UnknownEpsilon  string

	SectorHazardsVisible    bool
	RebelFlagshipVisible    bool
	RebelFlagshipHop        int
	RebelFlagshipMoving     bool
	RebelFlagshipRetreating bool
	RebelFlagshipBaseTurns  int

	SectorVisitation            []bool
	SectorNumberZeroBased       int
	SectorIsHiddenCrystalWorlds bool

	Beacons            []BeaconState
	QuestEvents        []QuestEvent
	DistantQuestEvents []string

	UnknownMu int
	Encounter *EncounterState // formats 7+

	RebelFlagshipNearby bool
	NearbyShip          *ShipState
	NearbyShipAI        *NearbyShipAIState

	Environment *EnvironmentState // formats 7+
	Projectiles []ProjectileState // formats 7+

	UnknownNu int
	UnknownXi int // stored only alongside a nearby ship
	Autofire  bool

	RebelFlagship RebelFlagshipState

	MysteryBytes []MysteryBytes
}

// StateVar is one named campaign counter
type StateVar struct {
	ID    string
	Value int
}

// QuestEvent places a quest event at a beacon
type QuestEvent struct {
	EventID  string
	BeaconID int
}

// MysteryBytes is a run of bytes the decoder could not interpret
type MysteryBytes struct {
	Offset int64
	Data   []byte
}

// Len returns the number of captured bytes
func (m MysteryBytes) Len() int { return len(m.Data) }

// BeaconState is one node of the sector map
type BeaconState struct {
	VisitCount int
	// Background fields are only stored once the beacon has been visited.
	BgStarscapeImage string
	BgSpriteImage    string
	BgSpritePosX     int
	BgSpritePosY     int
	BgSpriteRotation int

	Seen bool

	EnemyPresent    bool
	ShipEventID     string
	AutoBlueprintID string
	ShipEventSeed   int

	FleetPresence FleetPresence
	UnderAttack   bool

	Store *StoreState
}

// StoreState is the inventory of a store beacon
type StoreState struct {
	Shelves    []StoreShelf
	Fuel       int
	Missiles   int
	DroneParts int
}

// StoreShelf holds up to three items of one type
type StoreShelf struct {
	ItemType StoreItemType
	Items    []StoreItem
}

// StoreItem is one slot on a shelf
type StoreItem struct {
	Available bool
	ItemID    string
	ExtraData int // formats 7+
}

// storeSlots is the number of item slots on every shelf
const storeSlots = 3

// EncounterState tracks the event in progress at the current beacon
type EncounterState struct {
	ShipEventSeed    int
	SurrenderEventID string
	EscapeEventID    string
	DestroyedEventID string
	DeadCrewEventID  string
	GotAwayEventID   string
	LastEventID      string
	UnknownAlpha     int // format 11
	Text             string
	AffectedCrewSeed int
	Choices          []int
}

// NearbyShipAIState is the behaviour state of a hostile ship
type NearbyShipAIState struct {
	Surrendered        bool
	Escaping           bool
	Destroyed          bool
	SurrenderThreshold int
	EscapeThreshold    int
	EscapeTicks        int
	StalemateTriggered bool
	StalemateTicks     int
	BoardingAttempts   int
	BoardersNeeded     int
}

// EnvironmentState holds sector hazards
type EnvironmentState struct {
	RedGiantPresent bool
	PulsarPresent   bool
	PDSPresent      bool
	Vulnerability   HazardVulnerability

	AsteroidField *AsteroidFieldState

	SolarFlareFadeTicks int
	HavocTicks          int
	PDSTicks            int
}

// AsteroidFieldState is present when the beacon has an asteroid field
type AsteroidFieldState struct {
	UnknownAlpha   int
	StrayRockTicks int
	UnknownGamma   int
	BgDriftTicks   int
	CurrentTarget  int
}

// RebelFlagshipState tracks which flagship stage comes next and how many
// crew were last seen in each of its rooms
type RebelFlagshipState struct {
	UnknownAlpha int // formats 7+
	PendingStage int
	UnknownGamma int // formats 7+
	UnknownDelta int // formats 7+
	// PreviousOccupancy is indexed by flagship room id.
	PreviousOccupancy []int
}
