package savegame

import "fmt"

// readSystems reads every system in canonical order. A system occupying
// several rooms is stored once per room.
func (d *decoder) readSystems(bp systemRooms) []SystemState {
	var out []SystemState
	for _, t := range systemOrder(d.format) {
		n := bp.SystemRoomCount(t.ID())
		if n < 1 {
			n = 1
		}
		for i := 0; i < n && d.err == nil; i++ {
			d.enter("systems.%s[%d]", t.ID(), i)
			out = append(out, d.readSystem(t))
			d.leave()
		}
	}
	return out
}

func (e *encoder) writeSystems(bp systemRooms, systems []SystemState) {
	next := 0
	for _, t := range systemOrder(e.format) {
		n := bp.SystemRoomCount(t.ID())
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			e.enter("systems.%s[%d]", t.ID(), i)
			if next >= len(systems) || systems[next].Type != t {
				e.fail("system", int(t), fmt.Errorf("%w: %s record %d", ErrMissingRecord, t.ID(), i))
				e.leave()
				return
			}
			e.writeSystem(systems[next])
			e.leave()
			next++
		}
	}
	if e.err == nil && next != len(systems) {
		e.fail("systems", len(systems), fmt.Errorf("%w: %d systems for %d slots", ErrCountMismatch, len(systems), next))
	}
}

// systemRooms is the part of a ship blueprint the system list depends on
type systemRooms interface {
	SystemRoomCount(systemID string) int
}

func (d *decoder) readSystem(t SystemType) SystemState {
	s := NewSystemState(t)
	s.Capacity = d.int("capacity")
	if s.Capacity <= 0 {
		return s
	}
	s.Power = d.int("power")
	s.DamagedBars = d.int("damaged bars")
	s.IonizedBars = d.int("ionized bars")
	s.DeionizationTicks = d.sentinel("deionization ticks")
	s.RepairProgress = d.int("repair progress")
	s.DamageProgress = d.int("damage progress")
	if d.format.IsAdvanced() {
		s.BatteryPower = d.int("battery power")
		s.HackLevel = d.int("hack level")
		s.Hacked = d.bool("hacked")
		s.TemporaryCapacityCap = d.int("temporary capacity cap")
		s.TemporaryCapacityLoss = d.int("temporary capacity loss")
		s.TemporaryCapacityDivisor = d.int("temporary capacity divisor")
	}
	return s
}

func (e *encoder) writeSystem(s SystemState) {
	e.int("capacity", s.Capacity)
	if s.Capacity <= 0 {
		return
	}
	e.int("power", s.Power)
	e.int("damaged bars", s.DamagedBars)
	e.int("ionized bars", s.IonizedBars)
	e.sentinel("deionization ticks", s.DeionizationTicks)
	e.int("repair progress", s.RepairProgress)
	e.int("damage progress", s.DamageProgress)
	if e.format.IsAdvanced() {
		e.int("battery power", s.BatteryPower)
		e.int("hack level", s.HackLevel)
		e.bool("hacked", s.Hacked)
		e.int("temporary capacity cap", s.TemporaryCapacityCap)
		e.int("temporary capacity loss", s.TemporaryCapacityLoss)
		e.int("temporary capacity divisor", s.TemporaryCapacityDivisor)
	}
}

func (d *decoder) readClonebayInfo() ClonebayInfo {
	return ClonebayInfo{
		BuildTicks:     d.int("build ticks"),
		BuildTicksGoal: d.int("build ticks goal"),
		DoomTicks:      d.int("doom ticks"),
	}
}

func (e *encoder) writeClonebayInfo(info ClonebayInfo) {
	e.int("build ticks", info.BuildTicks)
	e.int("build ticks goal", info.BuildTicksGoal)
	e.int("doom ticks", info.DoomTicks)
}

func (d *decoder) readBatteryInfo() BatteryInfo {
	return BatteryInfo{
		Active:         d.bool("active"),
		UsedBattery:    d.int("used battery"),
		DischargeTicks: d.int("discharge ticks"),
	}
}

func (e *encoder) writeBatteryInfo(info BatteryInfo) {
	e.bool("active", info.Active)
	e.int("used battery", info.UsedBattery)
	e.int("discharge ticks", info.DischargeTicks)
}

func (d *decoder) readShieldsInfo() ShieldsInfo {
	return ShieldsInfo{
		ShieldLayers:          d.int("shield layers"),
		EnergyShieldLayers:    d.int("energy shield layers"),
		EnergyShieldMax:       d.int("energy shield max"),
		ShieldRechargeTicks:   d.int("shield recharge ticks"),
		ShieldDropAnimOn:      d.bool("shield drop anim on"),
		ShieldDropAnimTicks:   d.int("shield drop anim ticks"),
		ShieldRaiseAnimOn:     d.bool("shield raise anim on"),
		ShieldRaiseAnimTicks:  d.int("shield raise anim ticks"),
		EnergyShieldAnimOn:    d.bool("energy shield anim on"),
		EnergyShieldAnimTicks: d.int("energy shield anim ticks"),
		UnknownLambda:         d.int("lambda"),
		UnknownMu:             d.int("mu"),
	}
}

func (e *encoder) writeShieldsInfo(info ShieldsInfo) {
	e.int("shield layers", info.ShieldLayers)
	e.int("energy shield layers", info.EnergyShieldLayers)
	e.int("energy shield max", info.EnergyShieldMax)
	e.int("shield recharge ticks", info.ShieldRechargeTicks)
	e.bool("shield drop anim on", info.ShieldDropAnimOn)
	e.int("shield drop anim ticks", info.ShieldDropAnimTicks)
	e.bool("shield raise anim on", info.ShieldRaiseAnimOn)
	e.int("shield raise anim ticks", info.ShieldRaiseAnimTicks)
	e.bool("energy shield anim on", info.EnergyShieldAnimOn)
	e.int("energy shield anim ticks", info.EnergyShieldAnimTicks)
	e.int("lambda", info.UnknownLambda)
	e.int("mu", info.UnknownMu)
}

func (d *decoder) readCloakingInfo() CloakingInfo {
	return CloakingInfo{
		UnknownAlpha:   d.int("alpha"),
		UnknownBeta:    d.int("beta"),
		CloakTicksGoal: d.int("cloak ticks goal"),
		CloakTicks:     d.sentinel("cloak ticks"),
	}
}

func (e *encoder) writeCloakingInfo(info CloakingInfo) {
	e.int("alpha", info.UnknownAlpha)
	e.int("beta", info.UnknownBeta)
	e.int("cloak ticks goal", info.CloakTicksGoal)
	e.sentinel("cloak ticks", info.CloakTicks)
}

func (d *decoder) readHackingInfo() HackingInfo {
	d.enter("hacking info")
	defer d.leave()
	info := HackingInfo{
		TargetSystem:        d.int("target system"),
		UnknownBeta:         d.int("beta"),
		DronePodVisible:     d.bool("drone pod visible"),
		UnknownDelta:        d.int("delta"),
		DisruptionTicks:     d.int("disruption ticks"),
		DisruptionTicksGoal: d.int("disruption ticks goal"),
		Disrupting:          d.bool("disrupting"),
	}
	pod := d.readDronePod(DroneHacking)
	info.DronePod = &pod
	return info
}

func (e *encoder) writeHackingInfo(info HackingInfo) {
	e.enter("hacking info")
	defer e.leave()
	e.int("target system", info.TargetSystem)
	e.int("beta", info.UnknownBeta)
	e.bool("drone pod visible", info.DronePodVisible)
	e.int("delta", info.UnknownDelta)
	e.int("disruption ticks", info.DisruptionTicks)
	e.int("disruption ticks goal", info.DisruptionTicksGoal)
	e.bool("disrupting", info.Disrupting)
	if info.DronePod == nil {
		e.fail("drone pod", 0, fmt.Errorf("%w: hacking drone pod", ErrMissingRecord))
		return
	}
	e.writeDronePod(DroneHacking, *info.DronePod)
}

func (d *decoder) readMindInfo() MindInfo {
	d.enter("mind info")
	defer d.leave()
	return MindInfo{
		MindControlTicksGoal: d.int("mind control ticks goal"),
		MindControlTicks:     d.int("mind control ticks"),
	}
}

func (e *encoder) writeMindInfo(info MindInfo) {
	e.enter("mind info")
	defer e.leave()
	e.int("mind control ticks goal", info.MindControlTicksGoal)
	e.int("mind control ticks", info.MindControlTicks)
}
