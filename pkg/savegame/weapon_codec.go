package savegame

import "fmt"

func (d *decoder) readWeapons() []WeaponState {
	n := d.count("weapon count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]WeaponState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("weapons[%d]", i)
		w := WeaponState{
			WeaponID: d.str("weapon id"),
			Armed:    d.bool("armed"),
		}
		if !d.format.IsAdvanced() {
			w.CooldownTicks = d.int("cooldown ticks")
		}
		out = append(out, w)
		d.leave()
	}
	return out
}

func (e *encoder) writeWeapons(weapons []WeaponState) {
	e.int("weapon count", len(weapons))
	for i, w := range weapons {
		e.enter("weapons[%d]", i)
		e.str("weapon id", w.WeaponID)
		e.bool("armed", w.Armed)
		if !e.format.IsAdvanced() {
			e.int("cooldown ticks", w.CooldownTicks)
		}
		e.leave()
	}
}

func (d *decoder) readDrones() []DroneState {
	n := d.count("drone count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]DroneState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("drones[%d]", i)
		out = append(out, DroneState{
			DroneID:          d.str("drone id"),
			Armed:            d.bool("armed"),
			PlayerControlled: d.bool("player controlled"),
			BodyX:            d.int("body x"),
			BodyY:            d.int("body y"),
			BodyRoomID:       d.int("body room id"),
			BodyRoomSquare:   d.int("body room square"),
			Health:           d.int("health"),
		})
		d.leave()
	}
	return out
}

func (e *encoder) writeDrones(drones []DroneState) {
	e.int("drone count", len(drones))
	for i, dr := range drones {
		e.enter("drones[%d]", i)
		e.str("drone id", dr.DroneID)
		e.bool("armed", dr.Armed)
		e.bool("player controlled", dr.PlayerControlled)
		e.int("body x", dr.BodyX)
		e.int("body y", dr.BodyY)
		e.int("body room id", dr.BodyRoomID)
		e.int("body room square", dr.BodyRoomSquare)
		e.int("health", dr.Health)
		e.leave()
	}
}

func (d *decoder) readExtendedDroneInfo(droneID string) *ExtendedDroneInfo {
	info := &ExtendedDroneInfo{
		Deployed: d.bool("deployed"),
		Armed:    d.bool("armed"),
	}
	t := d.droneType(droneID)
	if d.err != nil || !t.HasPod() {
		return info
	}
	pod := d.readDronePod(t)
	info.Pod = &pod
	return info
}

func (e *encoder) writeExtendedDroneInfo(droneID string, info *ExtendedDroneInfo) {
	if info == nil {
		e.fail("extended drone info", 0, fmt.Errorf("%w: drone %q", ErrMissingRecord, droneID))
		return
	}
	e.bool("deployed", info.Deployed)
	e.bool("armed", info.Armed)
	t := e.droneType(droneID)
	if e.err != nil || !t.HasPod() {
		return
	}
	if info.Pod == nil {
		e.fail("drone pod", 0, fmt.Errorf("%w: %s drone %q has no pod", ErrMissingRecord, t, droneID))
		return
	}
	e.writeDronePod(t, *info.Pod)
}

func (d *decoder) readReticles(field string) []ReticleCoordinate {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]ReticleCoordinate, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		out = append(out, ReticleCoordinate{X: d.int(field + " x"), Y: d.int(field + " y")})
	}
	return out
}

func (e *encoder) writeReticles(field string, rs []ReticleCoordinate) {
	e.int(field+" count", len(rs))
	for _, r := range rs {
		e.int(field+" x", r.X)
		e.int(field+" y", r.Y)
	}
}

func (d *decoder) readWeaponModule() WeaponModuleState {
	var m WeaponModuleState
	m.CooldownTicks = d.int("cooldown ticks")
	m.CooldownTicksGoal = d.int("cooldown ticks goal")
	m.SubcooldownTicks = d.int("subcooldown ticks")
	m.SubcooldownTicksGoal = d.int("subcooldown ticks goal")
	m.Boost = d.int("boost")
	m.Charge = d.int("charge")

	m.CurrentTargets = d.readReticles("current target")
	m.PreviousTargets = d.readReticles("previous target")

	m.Autofire = d.bool("autofire")
	m.FireWhenReady = d.bool("fire when ready")
	m.TargetID = d.int("target id")
	m.WeaponAnim = d.readAnim("weapon anim")
	m.ProtractAnimTicks = d.int("protract anim ticks")
	m.Firing = d.bool("firing")
	m.UnknownPhi = d.bool("phi")

	if d.format.HasChargeAnim() {
		m.AnimCharge = d.int("anim charge")
		m.ChargeAnim = d.readAnim("charge anim")
	}

	m.LastProjectileID = d.int("last projectile id")
	m.PendingProjectiles = d.readProjectiles("pending projectiles")
	return m
}

func (e *encoder) writeWeaponModule(m WeaponModuleState) {
	e.int("cooldown ticks", m.CooldownTicks)
	e.int("cooldown ticks goal", m.CooldownTicksGoal)
	e.int("subcooldown ticks", m.SubcooldownTicks)
	e.int("subcooldown ticks goal", m.SubcooldownTicksGoal)
	e.int("boost", m.Boost)
	e.int("charge", m.Charge)

	e.writeReticles("current target", m.CurrentTargets)
	e.writeReticles("previous target", m.PreviousTargets)

	e.bool("autofire", m.Autofire)
	e.bool("fire when ready", m.FireWhenReady)
	e.int("target id", m.TargetID)
	e.writeAnim("weapon anim", m.WeaponAnim)
	e.int("protract anim ticks", m.ProtractAnimTicks)
	e.bool("firing", m.Firing)
	e.bool("phi", m.UnknownPhi)

	if e.format.HasChargeAnim() {
		e.int("anim charge", m.AnimCharge)
		e.writeAnim("charge anim", m.ChargeAnim)
	}

	e.int("last projectile id", m.LastProjectileID)
	e.writeProjectiles("pending projectiles", m.PendingProjectiles)
}

func (d *decoder) readStandaloneDrones() []StandaloneDroneState {
	n := d.count("standalone drone count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]StandaloneDroneState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("standalone drones[%d]", i)
		s := StandaloneDroneState{DroneID: d.str("drone id")}
		t := d.droneType(s.DroneID)
		if d.err == nil {
			pod := d.readDronePod(t)
			s.Pod = &pod
		}
		s.UnknownGamma = d.int("gamma")
		s.UnknownDelta = d.int("delta")
		s.UnknownEpsilon = d.int("epsilon")
		out = append(out, s)
		d.leave()
	}
	return out
}

func (e *encoder) writeStandaloneDrones(drones []StandaloneDroneState) {
	e.int("standalone drone count", len(drones))
	for i, s := range drones {
		e.enter("standalone drones[%d]", i)
		e.str("drone id", s.DroneID)
		t := e.droneType(s.DroneID)
		if s.Pod == nil {
			e.fail("drone pod", 0, fmt.Errorf("%w: standalone drone %q has no pod", ErrMissingRecord, s.DroneID))
		} else {
			e.writeDronePod(t, *s.Pod)
		}
		e.int("gamma", s.UnknownGamma)
		e.int("delta", s.UnknownDelta)
		e.int("epsilon", s.UnknownEpsilon)
		e.leave()
	}
}
