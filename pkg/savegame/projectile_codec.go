package savegame

func (d *decoder) readAnim(field string) AnimState {
	d.enter(field)
	defer d.leave()
	return AnimState{
		Playing:       d.bool("playing"),
		Looping:       d.bool("looping"),
		CurrentFrame:  d.int("current frame"),
		ProgressTicks: d.int("progress ticks"),
		Scale:         d.int("scale"),
		X:             d.int("x"),
		Y:             d.int("y"),
	}
}

func (e *encoder) writeAnim(field string, a AnimState) {
	e.enter(field)
	defer e.leave()
	e.bool("playing", a.Playing)
	e.bool("looping", a.Looping)
	e.int("current frame", a.CurrentFrame)
	e.int("progress ticks", a.ProgressTicks)
	e.int("scale", a.Scale)
	e.int("x", a.X)
	e.int("y", a.Y)
}

func (d *decoder) readProjectiles(field string) []ProjectileState {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]ProjectileState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("%s[%d]", field, i)
		out = append(out, d.readProjectile())
		d.leave()
	}
	return out
}

func (e *encoder) writeProjectiles(field string, ps []ProjectileState) {
	e.int(field+" count", len(ps))
	for i, p := range ps {
		e.enter("%s[%d]", field, i)
		e.writeProjectile(p)
		e.leave()
	}
}

func (d *decoder) readProjectile() ProjectileState {
	var p ProjectileState
	p.Type = ProjectileType(d.tag("projectile type", func(v int) bool {
		return projectileTypeValid(d.format, ProjectileType(v))
	}))
	if d.err != nil || p.Type == ProjectileInvalid {
		return p
	}

	p.CurrentPositionX = d.int("current x")
	p.CurrentPositionY = d.int("current y")
	p.PreviousPositionX = d.int("previous x")
	p.PreviousPositionY = d.int("previous y")
	p.Speed = d.int("speed")
	p.GoalPositionX = d.int("goal x")
	p.GoalPositionY = d.int("goal y")
	p.Heading = d.int("heading")
	p.OwnerID = d.int("owner id")
	p.SelfID = d.int("self id")

	p.Damage = d.readDamage()

	p.Lifespan = d.int("lifespan")
	p.DestinationSpace = d.int("destination space")
	p.CurrentSpace = d.int("current space")
	p.TargetID = d.int("target id")
	p.Dead = d.bool("dead")

	p.DeathAnimID = d.str("death anim id")
	p.FlightAnimID = d.str("flight anim id")
	p.DeathAnim = d.readAnim("death anim")
	p.FlightAnim = d.readAnim("flight anim")

	p.VelocityX = d.int("velocity x")
	p.VelocityY = d.int("velocity y")
	p.Missed = d.bool("missed")
	p.HitTarget = d.bool("hit target")

	p.HitSolidSound = d.str("hit solid sound")
	p.HitShieldSound = d.str("hit shield sound")
	p.MissSound = d.str("miss sound")

	p.EntryAngle = d.sentinel("entry angle")
	p.StartedDying = d.bool("started dying")
	p.PassedTarget = d.bool("passed target")

	p.UnknownType = d.int("type")
	p.BroadcastTarget = d.bool("broadcast target")

	p.ExtendedInfo = d.readProjectileInfo(p.Type)
	return p
}

func (e *encoder) writeProjectile(p ProjectileState) {
	e.tag("projectile type", int(p.Type), func(v int) bool {
		return projectileTypeValid(e.format, ProjectileType(v))
	})
	if p.Type == ProjectileInvalid {
		return
	}

	e.int("current x", p.CurrentPositionX)
	e.int("current y", p.CurrentPositionY)
	e.int("previous x", p.PreviousPositionX)
	e.int("previous y", p.PreviousPositionY)
	e.int("speed", p.Speed)
	e.int("goal x", p.GoalPositionX)
	e.int("goal y", p.GoalPositionY)
	e.int("heading", p.Heading)
	e.int("owner id", p.OwnerID)
	e.int("self id", p.SelfID)

	e.writeDamage(p.Damage)

	e.int("lifespan", p.Lifespan)
	e.int("destination space", p.DestinationSpace)
	e.int("current space", p.CurrentSpace)
	e.int("target id", p.TargetID)
	e.bool("dead", p.Dead)

	e.str("death anim id", p.DeathAnimID)
	e.str("flight anim id", p.FlightAnimID)
	e.writeAnim("death anim", p.DeathAnim)
	e.writeAnim("flight anim", p.FlightAnim)

	e.int("velocity x", p.VelocityX)
	e.int("velocity y", p.VelocityY)
	e.bool("missed", p.Missed)
	e.bool("hit target", p.HitTarget)

	e.str("hit solid sound", p.HitSolidSound)
	e.str("hit shield sound", p.HitShieldSound)
	e.str("miss sound", p.MissSound)

	e.sentinel("entry angle", p.EntryAngle)
	e.bool("started dying", p.StartedDying)
	e.bool("passed target", p.PassedTarget)

	e.int("type", p.UnknownType)
	e.bool("broadcast target", p.BroadcastTarget)

	e.writeProjectileInfo(p.Type, p.ExtendedInfo)
}

func (d *decoder) readDamage() DamageState {
	d.enter("damage")
	defer d.leave()
	return DamageState{
		HullDamage:      d.int("hull damage"),
		ShieldPiercing:  d.int("shield piercing"),
		FireChance:      d.int("fire chance"),
		BreachChance:    d.int("breach chance"),
		IonDamage:       d.int("ion damage"),
		SystemDamage:    d.int("system damage"),
		PersonnelDamage: d.int("personnel damage"),
		HullBuster:      d.bool("hull buster"),
		OwnerID:         d.int("owner id"),
		SelfID:          d.int("self id"),
		Lockdown:        d.bool("lockdown"),
		CrystalShard:    d.bool("crystal shard"),
		StunChance:      d.int("stun chance"),
		StunAmount:      d.int("stun amount"),
	}
}

func (e *encoder) writeDamage(dmg DamageState) {
	e.enter("damage")
	defer e.leave()
	e.int("hull damage", dmg.HullDamage)
	e.int("shield piercing", dmg.ShieldPiercing)
	e.int("fire chance", dmg.FireChance)
	e.int("breach chance", dmg.BreachChance)
	e.int("ion damage", dmg.IonDamage)
	e.int("system damage", dmg.SystemDamage)
	e.int("personnel damage", dmg.PersonnelDamage)
	e.bool("hull buster", dmg.HullBuster)
	e.int("owner id", dmg.OwnerID)
	e.int("self id", dmg.SelfID)
	e.bool("lockdown", dmg.Lockdown)
	e.bool("crystal shard", dmg.CrystalShard)
	e.int("stun chance", dmg.StunChance)
	e.int("stun amount", dmg.StunAmount)
}

func (d *decoder) readLaserInfo() LaserProjectileInfo {
	return LaserProjectileInfo{
		UnknownAlpha: d.int("alpha"),
		Spin:         d.int("spin"),
	}
}

func (e *encoder) writeLaserInfo(info LaserProjectileInfo) {
	e.int("alpha", info.UnknownAlpha)
	e.int("spin", info.Spin)
}

func (d *decoder) readBombInfo() BombProjectileInfo {
	return BombProjectileInfo{
		UnknownAlpha: d.int("alpha"),
		FuseTicks:    d.int("fuse ticks"),
		UnknownGamma: d.int("gamma"),
		UnknownDelta: d.int("delta"),
		Arrived:      d.bool("arrived"),
	}
}

func (e *encoder) writeBombInfo(info BombProjectileInfo) {
	e.int("alpha", info.UnknownAlpha)
	e.int("fuse ticks", info.FuseTicks)
	e.int("gamma", info.UnknownGamma)
	e.int("delta", info.UnknownDelta)
	e.bool("arrived", info.Arrived)
}

func (d *decoder) readBeamInfo() BeamProjectileInfo {
	return BeamProjectileInfo{
		EmissionEndX:    d.int("emission end x"),
		EmissionEndY:    d.int("emission end y"),
		StrafeSourceX:   d.int("strafe source x"),
		StrafeSourceY:   d.int("strafe source y"),
		StrafeEndX:      d.int("strafe end x"),
		StrafeEndY:      d.int("strafe end y"),
		UnknownBetaX:    d.int("beta x"),
		UnknownBetaY:    d.int("beta y"),
		SwathEndX:       d.int("swath end x"),
		SwathEndY:       d.int("swath end y"),
		SwathStartX:     d.int("swath start x"),
		SwathStartY:     d.int("swath start y"),
		UnknownGamma:    d.int("gamma"),
		SwathLength:     d.int("swath length"),
		UnknownDelta:    d.int("delta"),
		UnknownEpsilonX: d.int("epsilon x"),
		UnknownEpsilonY: d.int("epsilon y"),
		UnknownZeta:     d.int("zeta"),
		UnknownEta:      d.int("eta"),
		EmissionAngle:   d.int("emission angle"),
		UnknownIota:     d.bool("iota"),
		UnknownKappa:    d.bool("kappa"),
		FromDronePod:    d.bool("from drone pod"),
		UnknownMu:       d.bool("mu"),
		UnknownNu:       d.bool("nu"),
	}
}

func (e *encoder) writeBeamInfo(info BeamProjectileInfo) {
	e.int("emission end x", info.EmissionEndX)
	e.int("emission end y", info.EmissionEndY)
	e.int("strafe source x", info.StrafeSourceX)
	e.int("strafe source y", info.StrafeSourceY)
	e.int("strafe end x", info.StrafeEndX)
	e.int("strafe end y", info.StrafeEndY)
	e.int("beta x", info.UnknownBetaX)
	e.int("beta y", info.UnknownBetaY)
	e.int("swath end x", info.SwathEndX)
	e.int("swath end y", info.SwathEndY)
	e.int("swath start x", info.SwathStartX)
	e.int("swath start y", info.SwathStartY)
	e.int("gamma", info.UnknownGamma)
	e.int("swath length", info.SwathLength)
	e.int("delta", info.UnknownDelta)
	e.int("epsilon x", info.UnknownEpsilonX)
	e.int("epsilon y", info.UnknownEpsilonY)
	e.int("zeta", info.UnknownZeta)
	e.int("eta", info.UnknownEta)
	e.int("emission angle", info.EmissionAngle)
	e.bool("iota", info.UnknownIota)
	e.bool("kappa", info.UnknownKappa)
	e.bool("from drone pod", info.FromDronePod)
	e.bool("mu", info.UnknownMu)
	e.bool("nu", info.UnknownNu)
}

func (d *decoder) readPDSInfo() PDSProjectileInfo {
	return PDSProjectileInfo{
		UnknownAlpha:   d.int("alpha"),
		UnknownBeta:    d.int("beta"),
		UnknownGamma:   d.int("gamma"),
		UnknownDelta:   d.int("delta"),
		UnknownEpsilon: d.int("epsilon"),
		UnknownZeta:    d.readAnim("zeta anim"),
	}
}

func (e *encoder) writePDSInfo(info PDSProjectileInfo) {
	e.int("alpha", info.UnknownAlpha)
	e.int("beta", info.UnknownBeta)
	e.int("gamma", info.UnknownGamma)
	e.int("delta", info.UnknownDelta)
	e.int("epsilon", info.UnknownEpsilon)
	e.writeAnim("zeta anim", info.UnknownZeta)
}
