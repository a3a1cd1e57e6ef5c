package savegame

import "fmt"

// projectileTypeValid reports whether a projectile type tag may appear in the format
func projectileTypeValid(f Format, t ProjectileType) bool {
	switch t {
	case ProjectileInvalid, ProjectileLaserOrBurst, ProjectileRockOrExplosion,
		ProjectileMissile, ProjectileBomb, ProjectileBeam:
		return true
	case ProjectilePDS:
		return f.IsLatest()
	}
	return false
}

// readProjectileInfo selects the extended record shape by projectile type
func (d *decoder) readProjectileInfo(t ProjectileType) ExtendedProjectileInfo {
	d.enter("extended info")
	defer d.leave()
	switch t {
	case ProjectileLaserOrBurst:
		return d.readLaserInfo()
	case ProjectileRockOrExplosion, ProjectileMissile:
		return EmptyProjectileInfo{}
	case ProjectileBomb:
		return d.readBombInfo()
	case ProjectileBeam:
		return d.readBeamInfo()
	case ProjectilePDS:
		return d.readPDSInfo()
	}
	d.fail("projectile type", d.r.Offset(), int(t), ErrUnknownTag)
	return nil
}

// writeProjectileInfo writes the extended record. The record shape must match
// what the decoder expects for the type tag, except that raw integer records
// are written as-is.
func (e *encoder) writeProjectileInfo(t ProjectileType, info ExtendedProjectileInfo) {
	e.enter("extended info")
	defer e.leave()

	if raw, ok := info.(IntegerProjectileInfo); ok {
		for _, v := range raw.Values {
			e.int("raw", v)
		}
		return
	}

	var ok bool
	switch t {
	case ProjectileLaserOrBurst:
		var v LaserProjectileInfo
		if v, ok = info.(LaserProjectileInfo); ok {
			e.writeLaserInfo(v)
		}
	case ProjectileRockOrExplosion, ProjectileMissile:
		_, ok = info.(EmptyProjectileInfo)
		ok = ok || info == nil
	case ProjectileBomb:
		var v BombProjectileInfo
		if v, ok = info.(BombProjectileInfo); ok {
			e.writeBombInfo(v)
		}
	case ProjectileBeam:
		var v BeamProjectileInfo
		if v, ok = info.(BeamProjectileInfo); ok {
			e.writeBeamInfo(v)
		}
	case ProjectilePDS:
		var v PDSProjectileInfo
		if v, ok = info.(PDSProjectileInfo); ok {
			e.writePDSInfo(v)
		}
	default:
		e.fail("projectile type", int(t), ErrUnknownTag)
		return
	}
	if !ok {
		e.fail("extended info", int(t), fmt.Errorf("%w: %T does not match projectile type %s", ErrUnknownTag, info, t))
	}
}

// readDronePodInfo selects the extended pod record shape by drone type
func (d *decoder) readDronePodInfo(t DroneType) ExtendedDronePodInfo {
	d.enter("extended info")
	defer d.leave()
	switch t {
	case DroneBoarder:
		return d.readBoarderPodInfo()
	case DroneHacking:
		return d.readHackingPodInfo()
	case DroneCombat, DroneBeam, DroneShipRepair:
		return d.readZigZagPodInfo()
	case DroneShield:
		return ShieldDronePodInfo{UnknownAlpha: d.int("alpha")}
	case DroneDefense:
		return EmptyDronePodInfo{}
	}
	d.fail("drone type "+string(t), d.r.Offset(), 0, ErrUnknownTag)
	return nil
}

func (e *encoder) writeDronePodInfo(t DroneType, info ExtendedDronePodInfo) {
	e.enter("extended info")
	defer e.leave()

	var ok bool
	switch t {
	case DroneBoarder:
		var v BoarderDronePodInfo
		if v, ok = info.(BoarderDronePodInfo); ok {
			e.writeBoarderPodInfo(v)
		}
	case DroneHacking:
		var v HackingDronePodInfo
		if v, ok = info.(HackingDronePodInfo); ok {
			e.writeHackingPodInfo(v)
		}
	case DroneCombat, DroneBeam, DroneShipRepair:
		var v ZigZagDronePodInfo
		if v, ok = info.(ZigZagDronePodInfo); ok {
			e.writeZigZagPodInfo(v)
		}
	case DroneShield:
		var v ShieldDronePodInfo
		if v, ok = info.(ShieldDronePodInfo); ok {
			e.int("alpha", v.UnknownAlpha)
		}
	case DroneDefense:
		_, ok = info.(EmptyDronePodInfo)
		ok = ok || info == nil
	default:
		e.fail("drone type "+string(t), 0, ErrUnknownTag)
		return
	}
	if !ok {
		e.fail("extended info", 0, fmt.Errorf("%w: %T does not match drone type %s", ErrUnknownTag, info, t))
	}
}

// readSystemInfo reads the pass-1 extended records in their fixed order:
// clonebay, battery, shields, cloaking. Hacking, mind and artillery records
// come later, in the second ship pass.
func (d *decoder) readSystemInfo(ship *ShipState) []ExtendedSystemInfo {
	var out []ExtendedSystemInfo
	for _, t := range passOneSystemInfo {
		if t != SystemShields && !ship.installed(t) {
			continue
		}
		d.enter("%s info", t.ID())
		switch t {
		case SystemClonebay:
			out = append(out, d.readClonebayInfo())
		case SystemBattery:
			out = append(out, d.readBatteryInfo())
		case SystemShields:
			out = append(out, d.readShieldsInfo())
		case SystemCloaking:
			out = append(out, d.readCloakingInfo())
		}
		d.leave()
	}
	return out
}

func (e *encoder) writeSystemInfo(ship *ShipState) {
	for _, t := range passOneSystemInfo {
		if t != SystemShields && !ship.installed(t) {
			continue
		}
		e.enter("%s info", t.ID())
		info, ok := ship.ExtendedInfo(t)
		if !ok {
			e.fail("extended info", int(t), fmt.Errorf("%w: %s info", ErrMissingRecord, t.ID()))
			e.leave()
			return
		}
		switch v := info.(type) {
		case ClonebayInfo:
			e.writeClonebayInfo(v)
		case BatteryInfo:
			e.writeBatteryInfo(v)
		case ShieldsInfo:
			e.writeShieldsInfo(v)
		case CloakingInfo:
			e.writeCloakingInfo(v)
		}
		e.leave()
	}
}

var passOneSystemInfo = []SystemType{SystemClonebay, SystemBattery, SystemShields, SystemCloaking}
