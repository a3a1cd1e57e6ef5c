package savegame

// ExtendedSystemInfo is implemented by the per-system records that follow the
// base system list. The set of implementations is closed.
type ExtendedSystemInfo interface {
	systemType() SystemType
}

// ClonebayInfo is present when a clonebay is installed
type ClonebayInfo struct {
	BuildTicks     int
	BuildTicksGoal int
	DoomTicks      int
}

// BatteryInfo is present when a backup battery is installed
type BatteryInfo struct {
	Active         bool
	UsedBattery    int
	DischargeTicks int
}

// ShieldsInfo is always present in Advanced Edition formats
type ShieldsInfo struct {
	ShieldLayers        int
	EnergyShieldLayers  int
	EnergyShieldMax     int
	ShieldRechargeTicks int

	ShieldDropAnimOn      bool
	ShieldDropAnimTicks   int
	ShieldRaiseAnimOn     bool
	ShieldRaiseAnimTicks  int
	EnergyShieldAnimOn    bool
	EnergyShieldAnimTicks int

	UnknownLambda int
	UnknownMu     int
}

// CloakingInfo is present when a cloaking system is installed
type CloakingInfo struct {
	UnknownAlpha   int
	UnknownBeta    int
	CloakTicksGoal int
	CloakTicks     int // sentinel
}

// HackingInfo is present when a hacking system is installed
type HackingInfo struct {
	TargetSystem        int
	UnknownBeta         int
	DronePodVisible     bool
	UnknownDelta        int
	DisruptionTicks     int
	DisruptionTicksGoal int
	Disrupting          bool
	DronePod            *DronePodState
}

// MindInfo is present when a mind control system is installed
type MindInfo struct {
	MindControlTicksGoal int
	MindControlTicks     int
}

// ArtilleryInfo is one per installed artillery room
type ArtilleryInfo struct {
	WeaponModule WeaponModuleState
}

func (ClonebayInfo) systemType() SystemType  { return SystemClonebay }
func (BatteryInfo) systemType() SystemType   { return SystemBattery }
func (ShieldsInfo) systemType() SystemType   { return SystemShields }
func (CloakingInfo) systemType() SystemType  { return SystemCloaking }
func (HackingInfo) systemType() SystemType   { return SystemHacking }
func (MindInfo) systemType() SystemType      { return SystemMind }
func (ArtilleryInfo) systemType() SystemType { return SystemArtillery }

// ExtendedInfo returns the first extended record of the given system type
func (s *ShipState) ExtendedInfo(t SystemType) (ExtendedSystemInfo, bool) {
	for _, info := range s.ExtendedSystemInfo {
		if info.systemType() == t {
			return info, true
		}
	}
	return nil, false
}

// ExtendedProjectileInfo is the type-specific tail of a projectile
type ExtendedProjectileInfo interface {
	isProjectileInfo()
}

// EmptyProjectileInfo carries no fields (rocks, explosions, missiles)
type EmptyProjectileInfo struct{}

// IntegerProjectileInfo is a raw run of ints. It can be encoded but the
// decoder never produces it.
type IntegerProjectileInfo struct {
	Values []int
}

// LaserProjectileInfo covers lasers and burst weapons
type LaserProjectileInfo struct {
	UnknownAlpha int
	Spin         int
}

// BombProjectileInfo covers bombs
type BombProjectileInfo struct {
	UnknownAlpha int
	FuseTicks    int
	UnknownGamma int
	UnknownDelta int
	Arrived      bool
}

// BeamProjectileInfo covers beam weapons
type BeamProjectileInfo struct {
	EmissionEndX    int
	EmissionEndY    int
	StrafeSourceX   int
	StrafeSourceY   int
	StrafeEndX      int
	StrafeEndY      int
	UnknownBetaX    int
	UnknownBetaY    int
	SwathEndX       int
	SwathEndY       int
	SwathStartX     int
	SwathStartY     int
	UnknownGamma    int
	SwathLength     int
	UnknownDelta    int
	UnknownEpsilonX int
	UnknownEpsilonY int
	UnknownZeta     int
	UnknownEta      int
	EmissionAngle   int
	UnknownIota     bool
	UnknownKappa    bool
	FromDronePod    bool
	UnknownMu       bool
	UnknownNu       bool
}

// PDSProjectileInfo covers anti-ship defence fire (format 11)
type PDSProjectileInfo struct {
	UnknownAlpha   int
	UnknownBeta    int
	UnknownGamma   int
	UnknownDelta   int
	UnknownEpsilon int
	UnknownZeta    AnimState
}

func (EmptyProjectileInfo) isProjectileInfo()   {}
func (IntegerProjectileInfo) isProjectileInfo() {}
func (LaserProjectileInfo) isProjectileInfo()   {}
func (BombProjectileInfo) isProjectileInfo()    {}
func (BeamProjectileInfo) isProjectileInfo()    {}
func (PDSProjectileInfo) isProjectileInfo()     {}

// ExtendedDronePodInfo is the drone-type-specific tail of a drone pod
type ExtendedDronePodInfo interface {
	isDronePodInfo()
}

// EmptyDronePodInfo is used by defence drones
type EmptyDronePodInfo struct{}

// BoarderDronePodInfo tracks a boarding drone's body
type BoarderDronePodInfo struct {
	UnknownAlpha   int
	UnknownBeta    int
	UnknownGamma   int
	UnknownDelta   int
	BodyHealth     int
	BodyX          int
	BodyY          int
	BodyRoomID     int
	BodyRoomSquare int
}

// HackingDronePodInfo tracks a hacking drone's attachment
type HackingDronePodInfo struct {
	AttachPositionX int
	AttachPositionY int
	UnknownGamma    int
	UnknownDelta    int
	LandingAnim     AnimState
	ExtensionAnim   AnimState
}

// ZigZagDronePodInfo is shared by combat, beam and ship repair drones
type ZigZagDronePodInfo struct {
	LastWaypointX  int
	LastWaypointY  int
	TransitTicks   int // sentinel
	ExhaustAngle   int // sentinel
	UnknownEpsilon int // sentinel
}

// ShieldDronePodInfo is used by shield drones
type ShieldDronePodInfo struct {
	UnknownAlpha int
}

func (EmptyDronePodInfo) isDronePodInfo()   {}
func (BoarderDronePodInfo) isDronePodInfo() {}
func (HackingDronePodInfo) isDronePodInfo() {}
func (ZigZagDronePodInfo) isDronePodInfo()  {}
func (ShieldDronePodInfo) isDronePodInfo()  {}
