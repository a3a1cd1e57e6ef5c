package savegame

func (d *decoder) readCrew(field string) []CrewState {
	n := d.count(field + " count")
	if d.err != nil || n == 0 {
		return nil
	}
	out := make([]CrewState, 0, n)
	for i := 0; i < n && d.err == nil; i++ {
		d.enter("%s[%d]", field, i)
		out = append(out, d.readCrewMember())
		d.leave()
	}
	return out
}

func (e *encoder) writeCrew(field string, crew []CrewState) {
	e.int(field+" count", len(crew))
	for i, c := range crew {
		e.enter("%s[%d]", field, i)
		e.writeCrewMember(c)
		e.leave()
	}
}

func (d *decoder) readCrewMember() CrewState {
	var c CrewState
	c.Name = d.str("name")
	c.Race = d.str("race")
	c.EnemyBoardingDrone = d.bool("enemy boarding drone")
	c.Health = d.int("health")
	c.SpriteX = d.int("sprite x")
	c.SpriteY = d.int("sprite y")
	c.RoomID = d.int("room id")
	c.RoomSquare = d.int("room square")
	c.PlayerControlled = d.bool("player controlled")

	if d.format.IsAdvanced() {
		c.CloneReady = d.int("clone ready")
		c.DeathOrder = d.int("death order")
		c.SpriteTints = d.ints("sprite tint")
		c.MindControlled = d.bool("mind controlled")
		c.SavedRoomSquare = d.int("saved room square")
		c.SavedRoomID = d.int("saved room id")
	}

	c.PilotSkill = d.int("pilot skill")
	c.EngineSkill = d.int("engine skill")
	c.ShieldSkill = d.int("shield skill")
	c.WeaponSkill = d.int("weapon skill")
	c.RepairSkill = d.int("repair skill")
	c.CombatSkill = d.int("combat skill")
	c.Male = d.bool("male")
	c.Repairs = d.int("repairs")
	c.CombatKills = d.int("combat kills")
	c.PilotedEvasions = d.int("piloted evasions")
	c.JumpsSurvived = d.int("jumps survived")
	c.SkillMasteriesEarned = d.int("skill masteries earned")

	if !d.format.IsAdvanced() {
		return c
	}
	c.StunTicks = d.int("stun ticks")
	c.HealthBoost = d.int("health boost")
	c.ClonebayPriority = d.int("clonebay priority")
	c.DamageBoost = d.int("damage boost")
	c.UnknownLambda = d.int("lambda")
	c.UniversalDeathCount = d.int("universal death count")

	if d.format.HasDoorHealth() {
		for i := range c.Masteries {
			c.Masteries[i] = d.bool("mastery")
		}
	}

	c.UnknownNu = d.bool("nu")
	c.TeleportAnim = d.readAnim("teleport anim")
	c.UnknownPhi = d.bool("phi")

	if c.Race == CrystalRace {
		c.LockdownRechargeTicks = d.int("lockdown recharge ticks")
		c.LockdownRechargeTicksGoal = d.int("lockdown recharge ticks goal")
		c.UnknownOmega = d.int("omega")
	}
	return c
}

func (e *encoder) writeCrewMember(c CrewState) {
	e.str("name", c.Name)
	e.str("race", c.Race)
	e.bool("enemy boarding drone", c.EnemyBoardingDrone)
	e.int("health", c.Health)
	e.int("sprite x", c.SpriteX)
	e.int("sprite y", c.SpriteY)
	e.int("room id", c.RoomID)
	e.int("room square", c.RoomSquare)
	e.bool("player controlled", c.PlayerControlled)

	if e.format.IsAdvanced() {
		e.int("clone ready", c.CloneReady)
		e.int("death order", c.DeathOrder)
		e.ints("sprite tint", c.SpriteTints)
		e.bool("mind controlled", c.MindControlled)
		e.int("saved room square", c.SavedRoomSquare)
		e.int("saved room id", c.SavedRoomID)
	}

	e.int("pilot skill", c.PilotSkill)
	e.int("engine skill", c.EngineSkill)
	e.int("shield skill", c.ShieldSkill)
	e.int("weapon skill", c.WeaponSkill)
	e.int("repair skill", c.RepairSkill)
	e.int("combat skill", c.CombatSkill)
	e.bool("male", c.Male)
	e.int("repairs", c.Repairs)
	e.int("combat kills", c.CombatKills)
	e.int("piloted evasions", c.PilotedEvasions)
	e.int("jumps survived", c.JumpsSurvived)
	e.int("skill masteries earned", c.SkillMasteriesEarned)

	if !e.format.IsAdvanced() {
		return
	}
	e.int("stun ticks", c.StunTicks)
	e.int("health boost", c.HealthBoost)
	e.int("clonebay priority", c.ClonebayPriority)
	e.int("damage boost", c.DamageBoost)
	e.int("lambda", c.UnknownLambda)
	e.int("universal death count", c.UniversalDeathCount)

	if e.format.HasDoorHealth() {
		for _, m := range c.Masteries {
			e.bool("mastery", m)
		}
	}

	e.bool("nu", c.UnknownNu)
	e.writeAnim("teleport anim", c.TeleportAnim)
	e.bool("phi", c.UnknownPhi)

	if c.Race == CrystalRace {
		e.int("lockdown recharge ticks", c.LockdownRechargeTicks)
		e.int("lockdown recharge ticks goal", c.LockdownRechargeTicksGoal)
		e.int("omega", c.UnknownOmega)
	}
}
