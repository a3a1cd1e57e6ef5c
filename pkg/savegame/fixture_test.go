package savegame

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssargent/ftlsave/pkg/blueprint"
	"github.com/ssargent/ftlsave/pkg/codec"
)

const (
	testShipID   = "TEST_SHIP"
	testLayoutID = "test_layout"
)

// testLayout has two interior doors and two doors open to space, with the
// vacuum doors interleaved so reordering is observable.
func testLayout() *blueprint.ShipLayout {
	return &blueprint.ShipLayout{
		ID: testLayoutID,
		Rooms: []blueprint.Room{
			{ID: 0, X: 0, Y: 0, SquaresH: 2, SquaresV: 2},
			{ID: 1, X: 2, Y: 0, SquaresH: 2, SquaresV: 1},
			{ID: 2, X: 4, Y: 0, SquaresH: 1, SquaresV: 2},
			{ID: 3, X: 5, Y: 0, SquaresH: 1, SquaresV: 1},
		},
		Doors: []blueprint.Door{
			{X: 2, Y: 0, Vertical: true, RoomA: 0, RoomB: 1},
			{X: 1, Y: 2, Vertical: false, RoomA: 0, RoomB: blueprint.Vacuum},
			{X: 4, Y: 0, Vertical: true, RoomA: 1, RoomB: 2},
			{X: 6, Y: 0, Vertical: true, RoomA: blueprint.Vacuum, RoomB: 3},
		},
	}
}

func testCatalog() *blueprint.Catalog {
	c := blueprint.NewCatalog()
	c.AddLayout(testLayout())
	c.AddShip(&blueprint.ShipBlueprint{
		ID:       testShipID,
		LayoutID: testLayoutID,
		SystemRooms: map[string][]int{
			"shields":   {0},
			"engines":   {1},
			"weapons":   {2},
			"drones":    {3},
			"artillery": {1, 3},
			"cloaking":  {2},
			"battery":   {0},
			"clonebay":  {1},
			"mind":      {0},
			"hacking":   {3},
		},
	})
	for _, t := range DroneTypes {
		c.AddDrone(&blueprint.DroneBlueprint{ID: "DRONE_" + string(t), Type: string(t)})
	}
	c.AddDrone(&blueprint.DroneBlueprint{ID: "DRONE_BOGUS", Type: "BOGUS"})
	return c
}

func testAnim(seed int) AnimState {
	return AnimState{Playing: true, CurrentFrame: seed, ProgressTicks: seed * 2, Scale: 1000, X: seed, Y: -seed}
}

func testProjectile(f Format, t ProjectileType) ProjectileState {
	if t == ProjectileInvalid {
		return ProjectileState{Type: ProjectileInvalid}
	}
	p := ProjectileState{
		Type:             t,
		CurrentPositionX: 100, CurrentPositionY: 200,
		PreviousPositionX: 90, PreviousPositionY: 190,
		Speed: 60, GoalPositionX: 300, GoalPositionY: 400,
		Heading: 45, OwnerID: 1, SelfID: 7,
		Damage: DamageState{
			HullDamage: 1, ShieldPiercing: 1, FireChance: 3, BreachChance: 2,
			IonDamage: 0, SystemDamage: 1, PersonnelDamage: 15, HullBuster: true,
			OwnerID: 1, SelfID: 7, CrystalShard: true, StunChance: 10, StunAmount: 2,
		},
		Lifespan: 1000, DestinationSpace: 1, CurrentSpace: 0, TargetID: 2,
		DeathAnimID: "explosion_small", FlightAnimID: "laser_light",
		DeathAnim: testAnim(1), FlightAnim: testAnim(2),
		VelocityX: 5, VelocityY: -5,
		HitSolidSound: "hitHull", HitShieldSound: "hitShield", MissSound: "miss",
		EntryAngle:  math.MinInt,
		UnknownType: 3,
	}
	switch t {
	case ProjectileLaserOrBurst:
		p.ExtendedInfo = LaserProjectileInfo{UnknownAlpha: 1, Spin: 30}
	case ProjectileRockOrExplosion, ProjectileMissile:
		p.ExtendedInfo = EmptyProjectileInfo{}
	case ProjectileBomb:
		p.ExtendedInfo = BombProjectileInfo{FuseTicks: 500, Arrived: true}
	case ProjectileBeam:
		p.ExtendedInfo = BeamProjectileInfo{EmissionEndX: 10, SwathLength: 55, EmissionAngle: 90, FromDronePod: true}
	case ProjectilePDS:
		p.ExtendedInfo = PDSProjectileInfo{UnknownAlpha: 4, UnknownZeta: testAnim(3)}
	}
	return p
}

func testPod(t DroneType) *DronePodState {
	p := &DronePodState{
		MourningTicks: 3, CurrentSpace: 1, DestinationSpace: 1,
		CurrentPositionX: 10, CurrentPositionY: 20,
		PreviousPositionX: math.MinInt, PreviousPositionY: math.MinInt,
		GoalPositionX: math.MaxInt, GoalPositionY: math.MaxInt,
		NextTargetX: 1, NextTargetY: 2,
		BuildupTicks: 4, OrbitAngle: 180, TurretAngle: 90,
		HopsToLive: math.MaxInt,
		DeathAnim:  testAnim(4),
	}
	switch t {
	case DroneBoarder:
		p.ExtendedInfo = BoarderDronePodInfo{BodyHealth: 150, BodyRoomID: 2, BodyRoomSquare: 1}
	case DroneHacking:
		p.ExtendedInfo = HackingDronePodInfo{AttachPositionX: 3, AttachPositionY: 4, LandingAnim: testAnim(5), ExtensionAnim: testAnim(6)}
	case DroneCombat, DroneBeam, DroneShipRepair:
		p.ExtendedInfo = ZigZagDronePodInfo{LastWaypointX: 5, LastWaypointY: 6, TransitTicks: math.MinInt, ExhaustAngle: math.MaxInt, UnknownEpsilon: 12}
	case DroneShield:
		p.ExtendedInfo = ShieldDronePodInfo{UnknownAlpha: 9}
	case DroneDefense:
		p.ExtendedInfo = EmptyDronePodInfo{}
	}
	return p
}

func testModule(f Format) *WeaponModuleState {
	m := &WeaponModuleState{
		CooldownTicks: 100, CooldownTicksGoal: 11000,
		Boost: 1, Charge: 2,
		CurrentTargets:     []ReticleCoordinate{{X: 1, Y: 2}},
		PreviousTargets:    []ReticleCoordinate{{X: 3, Y: 4}, {X: 5, Y: 6}},
		Autofire:           true,
		TargetID:           1,
		WeaponAnim:         testAnim(7),
		LastProjectileID:   12,
		PendingProjectiles: []ProjectileState{testProjectile(f, ProjectileLaserOrBurst)},
	}
	if f.HasChargeAnim() {
		m.AnimCharge = 2
		m.ChargeAnim = testAnim(8)
	}
	return m
}

func testRooms(f Format) []RoomState {
	layout := testLayout()
	rooms := make([]RoomState, len(layout.Rooms))
	for i, r := range layout.Rooms {
		squares := make([]SquareState, r.SquaresH*r.SquaresV)
		for j := range squares {
			squares[j] = SquareState{FireHealth: i*10 + j, IgnitionProgress: j, ExtinguishmentProgress: -1}
		}
		rooms[i] = RoomState{Oxygen: 100 - i*10, Squares: squares, StationSquare: -1, StationDirection: StationNone}
		if f.IsAdvanced() && i == 0 {
			rooms[i].StationSquare = 1
			rooms[i].StationDirection = StationUp
		}
	}
	return rooms
}

func testDoors() map[blueprint.DoorCoordinate]DoorState {
	doors := map[blueprint.DoorCoordinate]DoorState{}
	for i, d := range testLayout().Doors {
		doors[d.Coordinate()] = DoorState{CurrentMaxHealth: i, Health: i, NominalHealth: i, Open: i%2 == 0}
	}
	return doors
}

func testSystems(f Format) []SystemState {
	installed := map[SystemType]int{
		SystemShields: 4, SystemEngines: 3, SystemWeapons: 4, SystemDroneCtrl: 2,
		SystemArtillery: 1, SystemCloaking: 1, SystemBattery: 2, SystemClonebay: 1,
		SystemMind: 1, SystemHacking: 2,
	}
	bp, _ := testCatalog().Ship(testShipID)
	var out []SystemState
	for _, t := range systemOrder(f) {
		n := bp.SystemRoomCount(t.ID())
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			s := NewSystemState(t)
			if c, ok := installed[t]; ok {
				s.Capacity = c
				s.Power = 1
				s.DamagedBars = 1
				s.DeionizationTicks = math.MinInt
				if t == SystemWeapons {
					s.DeionizationTicks = math.MaxInt
				}
				if f.IsAdvanced() {
					s.HackLevel = 1
				}
			}
			out = append(out, s)
		}
	}
	return out
}

func testShip(f Format, hostile bool) ShipState {
	s := ShipState{
		BlueprintID:  testShipID,
		Name:         "Résumé",
		GfxBaseName:  "kestral",
		LayoutID:     testLayoutID,
		StartingCrew: []StartingCrewState{{Race: "human", Name: "Ellen"}},
		Hostile:      hostile && f.IsAdvanced(),
		HullAmount:   30, FuelAmount: 16, DronePartsAmount: 8, MissilesAmount: 8, ScrapAmount: 120,
		Crew: []CrewState{
			{Name: "Ellen", Race: "human", Health: 100, RoomID: 0, RoomSquare: 1, PlayerControlled: true, PilotSkill: 2, Male: false},
			{Name: "Shard", Race: CrystalRace, Health: 120, RoomID: 2, CombatKills: 3, Male: true},
		},
		ReservePowerCapacity: 8,
		Systems:              testSystems(f),
		Rooms:                testRooms(f),
		Breaches:             []BreachState{{X: 1, Y: 1, Health: 50}},
		Doors:                testDoors(),
		Weapons: []WeaponState{
			{WeaponID: "LASER_BURST_3", Armed: true},
			{WeaponID: "MISSILES_2"},
		},
		Drones: []DroneState{
			{DroneID: "DRONE_COMBAT", Armed: true, PlayerControlled: true, Health: 1},
			{DroneID: "DRONE_BATTLE", BodyRoomID: 1, Health: 150},
			{DroneID: "DRONE_BOARDER", BodyRoomID: -1, Health: 150},
		},
		Augments: []string{"SCRAP_COLLECTOR", "AUTO_COOLDOWN"},
	}
	if f.IsAdvanced() {
		s.JumpChargeTicks = 500
		s.Crew[0].SpriteTints = []int{1, 2}
		s.Crew[1].LockdownRechargeTicks = 30
		s.CloakAnimTicks = 2
		s.ExtendedSystemInfo = []ExtendedSystemInfo{
			ClonebayInfo{BuildTicks: 1, BuildTicksGoal: 12000, DoomTicks: 0},
			BatteryInfo{Active: true, UsedBattery: 2, DischargeTicks: 1000},
			ShieldsInfo{ShieldLayers: 2, EnergyShieldMax: 0, ShieldRechargeTicks: 50, ShieldDropAnimOn: true},
			CloakingInfo{CloakTicksGoal: 5000, CloakTicks: math.MinInt},
			HackingInfo{TargetSystem: -1, DronePod: testPod(DroneHacking)},
			MindInfo{MindControlTicksGoal: 14000, MindControlTicks: 20},
			ArtilleryInfo{WeaponModule: *testModule(f)},
			ArtilleryInfo{WeaponModule: WeaponModuleState{CooldownTicks: 5}},
		}
		for i := range s.Weapons {
			s.Weapons[i].Module = testModule(f)
		}
		for i, d := range s.Drones {
			info := &ExtendedDroneInfo{Deployed: i == 0, Armed: i == 0}
			t := DroneType(d.DroneID[len("DRONE_"):])
			if t.HasPod() {
				info.Pod = testPod(t)
			}
			s.Drones[i].ExtendedInfo = info
		}
	} else {
		s.Weapons[0].CooldownTicks = 250
	}
	if f.HasCrystals() {
		s.LockdownCrystals = []LockdownCrystal{{CurrentPositionX: 1, GoalPositionX: 2, Arrived: true, LockingRoom: 3}}
		s.StandaloneDrones = []StandaloneDroneState{{DroneID: "DRONE_DEFENSE", Pod: testPod(DroneDefense), UnknownGamma: 1}}
	}
	return s
}

func testBeacons(f Format) []BeaconState {
	shelves := 3
	if !f.IsAdvanced() {
		shelves = legacyStoreShelves
	}
	store := &StoreState{Fuel: 5, Missiles: 3, DroneParts: 2}
	for i := 0; i < shelves; i++ {
		shelf := StoreShelf{
			ItemType: StoreItemType(i),
			Items: []StoreItem{
				{Available: true, ItemID: "ITEM_A"},
				{Available: false, ItemID: "ITEM_B"},
			},
		}
		if f.IsAdvanced() {
			shelf.Items[0].ExtraData = 7
		}
		store.Shelves = append(store.Shelves, shelf)
	}
	return []BeaconState{
		{},
		{
			VisitCount: 2, BgStarscapeImage: "BG_BLUE", BgSpriteImage: "PLANET_1",
			BgSpritePosX: 10, BgSpritePosY: 20, BgSpriteRotation: 90, Seen: true,
			EnemyPresent: true, ShipEventID: "PIRATE", AutoBlueprintID: "PIRATE_AUTO", ShipEventSeed: 42,
			FleetPresence: FleetRebel,
			Store:         store,
		},
		{Seen: true, FleetPresence: FleetBoth, UnderAttack: true},
	}
}

// testState builds a complete save of the given format with no nearby ship
func testState(f Format) *SavedGameState {
	s := &SavedGameState{
		Format:     f,
		Difficulty: DifficultyNormal,

		TotalShipsDefeated: 5, TotalBeaconsExplored: 20, TotalScrapCollected: 300, TotalCrewHired: 2,

		PlayerShipName:        "Résumé",
		PlayerShipBlueprintID: testShipID,
		SectorNumber:          2,

		StateVars:  []StateVar{{ID: "env_danger", Value: 1}, {ID: "fired_shot", Value: 12}},
		PlayerShip: testShip(f, false),
		Cargo:      []string{"BOMB_1"},

		SectorTreeSeed: 1234, SectorLayoutSeed: 5678, RebelFleetOffset: -300, RebelFleetFudge: 50, RebelPursuitMod: 1,

		SectorHazardsVisible: true, RebelFlagshipHop: 1,

		SectorVisitation:      []bool{true, false, true},
		SectorNumberZeroBased: 1,

		Beacons:            testBeacons(f),
		QuestEvents:        []QuestEvent{{EventID: "QUEST_A", BeaconID: 3}},
		DistantQuestEvents: []string{"QUEST_B"},

		RebelFlagship: RebelFlagshipState{PendingStage: 1, PreviousOccupancy: []int{0, 1, 2}},
	}
	if f.HasDLCFlag() {
		s.DLCEnabled = true
	}
	if f.HasRandomNative() {
		s.RandomNative = true
	}
	if f.IsAdvanced() {
		s.Difficulty = DifficultyHard
		s.CurrentBeaconID = 1
		s.WaitEventSeed = 99
		s.UnknownEpsilon = "eps"
		s.RebelFlagshipBaseTurns = 2
		s.Encounter = &EncounterState{
			ShipEventSeed: 42, SurrenderEventID: "SURRENDER", LastEventID: "LAST",
			Text: "A ship approaches.", AffectedCrewSeed: -1, Choices: []int{0, 1},
		}
		if f.IsLatest() {
			s.Encounter.UnknownAlpha = 3
		}
		s.Environment = &EnvironmentState{
			PulsarPresent: true, Vulnerability: HazardBothShips,
			AsteroidField: &AsteroidFieldState{StrayRockTicks: 10, CurrentTarget: 1},
			HavocTicks:    4,
		}
		types := []ProjectileType{ProjectileLaserOrBurst, ProjectileInvalid, ProjectileRockOrExplosion,
			ProjectileMissile, ProjectileBomb, ProjectileBeam}
		if f.IsLatest() {
			types = append(types, ProjectilePDS)
		}
		for _, t := range types {
			s.Projectiles = append(s.Projectiles, testProjectile(f, t))
		}
		s.Autofire = true
		s.RebelFlagship.UnknownAlpha = 1
		s.RebelFlagship.UnknownDelta = 4
	}
	return s
}

// withNearbyShip adds an encounter with a hostile ship
func withNearbyShip(s *SavedGameState) *SavedGameState {
	nearby := testShip(s.Format, true)
	nearby.Name = "Rebel Fighter"
	s.NearbyShip = &nearby
	if s.Format.IsAdvanced() {
		s.RebelFlagshipNearby = true
		s.NearbyShipAI = &NearbyShipAIState{SurrenderThreshold: 5, EscapeThreshold: -1, BoardersNeeded: 2}
		s.UnknownXi = 17
	}
	return s
}

func encodeState(t *testing.T, s *SavedGameState) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s, testCatalog()))
	return buf.Bytes()
}

func decodeBytes(t *testing.T, data []byte) *SavedGameState {
	t.Helper()
	s, err := Decode(bytes.NewReader(data), testCatalog())
	require.NoError(t, err)
	return s
}

// wire builds a raw field stream for hand-made inputs
type wire struct {
	buf bytes.Buffer
}

func (w *wire) ints(vs ...int) *wire {
	cw := codec.NewWriter(&w.buf)
	for _, v := range vs {
		_ = cw.WriteInt("test", v)
	}
	_ = cw.Flush()
	return w
}

func (w *wire) str(s string) *wire {
	cw := codec.NewWriter(&w.buf)
	_ = cw.WriteString("test", s)
	_ = cw.Flush()
	return w
}

func (w *wire) decoder(f Format) *decoder {
	r := codec.NewReader(bytes.NewReader(w.buf.Bytes()))
	r.SetCharset(f.Charset())
	return &decoder{r: r, format: f, lookup: testCatalog()}
}

func newTestEncoder(f Format, buf *bytes.Buffer) *encoder {
	w := codec.NewWriter(buf)
	w.SetCharset(f.Charset())
	return &encoder{w: w, format: f, lookup: testCatalog(), logger: slog.Default()}
}
