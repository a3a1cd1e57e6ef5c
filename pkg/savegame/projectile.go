package savegame

// ProjectileState is a projectile in flight
type ProjectileState struct {
	Type ProjectileType
	// Nothing below is stored when Type is ProjectileInvalid.

	CurrentPositionX  int
	CurrentPositionY  int
	PreviousPositionX int
	PreviousPositionY int
	Speed             int
	GoalPositionX     int
	GoalPositionY     int
	Heading           int
	OwnerID           int
	SelfID            int

	Damage DamageState

	Lifespan         int
	DestinationSpace int
	CurrentSpace     int
	TargetID         int
	Dead             bool

	DeathAnimID  string
	FlightAnimID string
	DeathAnim    AnimState
	FlightAnim   AnimState

	VelocityX int
	VelocityY int
	Missed    bool
	HitTarget bool

	HitSolidSound  string
	HitShieldSound string
	MissSound      string

	EntryAngle   int // sentinel
	StartedDying bool
	PassedTarget bool

	UnknownType     int
	BroadcastTarget bool

	ExtendedInfo ExtendedProjectileInfo
}

// DamageState is the payload a projectile or beam delivers
type DamageState struct {
	HullDamage      int
	ShieldPiercing  int
	FireChance      int
	BreachChance    int
	IonDamage       int
	SystemDamage    int
	PersonnelDamage int
	HullBuster      bool
	OwnerID         int
	SelfID          int
	Lockdown        bool
	CrystalShard    bool
	StunChance      int
	StunAmount      int
}

// AnimState is the playback position of a sprite animation
type AnimState struct {
	Playing       bool
	Looping       bool
	CurrentFrame  int
	ProgressTicks int
	Scale         int
	X             int
	Y             int
}

// DronePodState is the in-flight body of a drone outside the ship
type DronePodState struct {
	MourningTicks    int
	CurrentSpace     int
	DestinationSpace int

	// sentinels
	CurrentPositionX  int
	CurrentPositionY  int
	PreviousPositionX int
	PreviousPositionY int
	GoalPositionX     int
	GoalPositionY     int
	UnknownEpsilon    int
	UnknownZeta       int
	NextTargetX       int
	NextTargetY       int
	UnknownIota       int
	UnknownKappa      int

	BuildupTicks    int
	StationaryTicks int
	CooldownTicks   int
	OrbitAngle      int
	TurretAngle     int
	UnknownXi       int
	HopsToLive      int // sentinel
	UnknownPi       int
	UnknownRho      int
	OverloadTicks   int
	UnknownTau      int
	UnknownUpsilon  int
	DeltaPositionX  int
	DeltaPositionY  int
	DeathAnim       AnimState

	ExtendedInfo ExtendedDronePodInfo
}
