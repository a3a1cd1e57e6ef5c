package savegame

func (d *decoder) readDronePod(t DroneType) DronePodState {
	d.enter("drone pod")
	defer d.leave()

	var p DronePodState
	p.MourningTicks = d.int("mourning ticks")
	p.CurrentSpace = d.int("current space")
	p.DestinationSpace = d.int("destination space")

	p.CurrentPositionX = d.sentinel("current x")
	p.CurrentPositionY = d.sentinel("current y")
	p.PreviousPositionX = d.sentinel("previous x")
	p.PreviousPositionY = d.sentinel("previous y")
	p.GoalPositionX = d.sentinel("goal x")
	p.GoalPositionY = d.sentinel("goal y")
	p.UnknownEpsilon = d.sentinel("epsilon")
	p.UnknownZeta = d.sentinel("zeta")
	p.NextTargetX = d.sentinel("next target x")
	p.NextTargetY = d.sentinel("next target y")
	p.UnknownIota = d.sentinel("iota")
	p.UnknownKappa = d.sentinel("kappa")

	p.BuildupTicks = d.int("buildup ticks")
	p.StationaryTicks = d.int("stationary ticks")
	p.CooldownTicks = d.int("cooldown ticks")
	p.OrbitAngle = d.int("orbit angle")
	p.TurretAngle = d.int("turret angle")
	p.UnknownXi = d.int("xi")
	p.HopsToLive = d.sentinel("hops to live")
	p.UnknownPi = d.int("pi")
	p.UnknownRho = d.int("rho")
	p.OverloadTicks = d.int("overload ticks")
	p.UnknownTau = d.int("tau")
	p.UnknownUpsilon = d.int("upsilon")
	p.DeltaPositionX = d.int("delta x")
	p.DeltaPositionY = d.int("delta y")
	p.DeathAnim = d.readAnim("death anim")

	p.ExtendedInfo = d.readDronePodInfo(t)
	return p
}

func (e *encoder) writeDronePod(t DroneType, p DronePodState) {
	e.enter("drone pod")
	defer e.leave()

	e.int("mourning ticks", p.MourningTicks)
	e.int("current space", p.CurrentSpace)
	e.int("destination space", p.DestinationSpace)

	e.sentinel("current x", p.CurrentPositionX)
	e.sentinel("current y", p.CurrentPositionY)
	e.sentinel("previous x", p.PreviousPositionX)
	e.sentinel("previous y", p.PreviousPositionY)
	e.sentinel("goal x", p.GoalPositionX)
	e.sentinel("goal y", p.GoalPositionY)
	e.sentinel("epsilon", p.UnknownEpsilon)
	e.sentinel("zeta", p.UnknownZeta)
	e.sentinel("next target x", p.NextTargetX)
	e.sentinel("next target y", p.NextTargetY)
	e.sentinel("iota", p.UnknownIota)
	e.sentinel("kappa", p.UnknownKappa)

	e.int("buildup ticks", p.BuildupTicks)
	e.int("stationary ticks", p.StationaryTicks)
	e.int("cooldown ticks", p.CooldownTicks)
	e.int("orbit angle", p.OrbitAngle)
	e.int("turret angle", p.TurretAngle)
	e.int("xi", p.UnknownXi)
	e.sentinel("hops to live", p.HopsToLive)
	e.int("pi", p.UnknownPi)
	e.int("rho", p.UnknownRho)
	e.int("overload ticks", p.OverloadTicks)
	e.int("tau", p.UnknownTau)
	e.int("upsilon", p.UnknownUpsilon)
	e.int("delta x", p.DeltaPositionX)
	e.int("delta y", p.DeltaPositionY)
	e.writeAnim("death anim", p.DeathAnim)

	e.writeDronePodInfo(t, p.ExtendedInfo)
}

func (d *decoder) readBoarderPodInfo() BoarderDronePodInfo {
	return BoarderDronePodInfo{
		UnknownAlpha:   d.int("alpha"),
		UnknownBeta:    d.int("beta"),
		UnknownGamma:   d.int("gamma"),
		UnknownDelta:   d.int("delta"),
		BodyHealth:     d.int("body health"),
		BodyX:          d.int("body x"),
		BodyY:          d.int("body y"),
		BodyRoomID:     d.int("body room id"),
		BodyRoomSquare: d.int("body room square"),
	}
}

func (e *encoder) writeBoarderPodInfo(info BoarderDronePodInfo) {
	e.int("alpha", info.UnknownAlpha)
	e.int("beta", info.UnknownBeta)
	e.int("gamma", info.UnknownGamma)
	e.int("delta", info.UnknownDelta)
	e.int("body health", info.BodyHealth)
	e.int("body x", info.BodyX)
	e.int("body y", info.BodyY)
	e.int("body room id", info.BodyRoomID)
	e.int("body room square", info.BodyRoomSquare)
}

func (d *decoder) readHackingPodInfo() HackingDronePodInfo {
	return HackingDronePodInfo{
		AttachPositionX: d.int("attach x"),
		AttachPositionY: d.int("attach y"),
		UnknownGamma:    d.int("gamma"),
		UnknownDelta:    d.int("delta"),
		LandingAnim:     d.readAnim("landing anim"),
		ExtensionAnim:   d.readAnim("extension anim"),
	}
}

func (e *encoder) writeHackingPodInfo(info HackingDronePodInfo) {
	e.int("attach x", info.AttachPositionX)
	e.int("attach y", info.AttachPositionY)
	e.int("gamma", info.UnknownGamma)
	e.int("delta", info.UnknownDelta)
	e.writeAnim("landing anim", info.LandingAnim)
	e.writeAnim("extension anim", info.ExtensionAnim)
}

func (d *decoder) readZigZagPodInfo() ZigZagDronePodInfo {
	return ZigZagDronePodInfo{
		LastWaypointX:  d.int("last waypoint x"),
		LastWaypointY:  d.int("last waypoint y"),
		TransitTicks:   d.sentinel("transit ticks"),
		ExhaustAngle:   d.sentinel("exhaust angle"),
		UnknownEpsilon: d.sentinel("epsilon"),
	}
}

func (e *encoder) writeZigZagPodInfo(info ZigZagDronePodInfo) {
	e.int("last waypoint x", info.LastWaypointX)
	e.int("last waypoint y", info.LastWaypointY)
	e.sentinel("transit ticks", info.TransitTicks)
	e.sentinel("exhaust angle", info.ExhaustAngle)
	e.sentinel("epsilon", info.UnknownEpsilon)
}
