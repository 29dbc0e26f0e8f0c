package game

import "context"

// Tick advances the world by one discrete step and reports whether the
// world is now crashed. Once crashed it mutates nothing further and keeps
// returning true until a reset.
//
// Phase order is fixed: counter, spawn, update, random event, helper,
// cleanup, lifecycle, crash check. The whole tick runs under the world
// lock; no partial-tick state is ever visible.
func (w *World) Tick(_ context.Context) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.crashed {
		return true
	}

	w.state.tick++

	w.spawnPhaseLocked()
	w.updatePhaseLocked()
	w.runRandomEventLocked()
	w.helperPhaseLocked()
	w.cleanupPhaseLocked()
	w.advanceLifecycleLocked()
	w.crashCheckLocked()

	return w.state.crashed
}

func (w *World) spawnPhaseLocked() {
	resourcePct, daemonPct := spawnThresholds(w.state.stage)

	if w.rng.Percent() < resourcePct {
		if msg := w.spawnBuffetResourceLocked(); msg != "" {
			w.broadcastAllLocked("%s", msg)
		}
	}
	if w.rng.Percent() < daemonPct {
		if msg := w.spawnDaemonLocked(); msg != "" {
			w.broadcastAllLocked("%s", msg)
		}
	}
}

func (w *World) updatePhaseLocked() {
	st := &w.state

	hungerGain := 1
	if st.helper.flags.Has(HelperSchedBlessing) {
		hungerGain = 0
	}
	st.adjustHunger(hungerGain)

	if st.hunger >= 8 {
		st.adjustStability(-3)
	}
	if st.hunger >= 6 {
		st.adjustMood(-1)
	}
	if st.junkLoad > 0 {
		st.adjustStability(-min(st.junkLoad, 5))
	}
	if st.trust >= 7 && st.stability < stabilityMax {
		st.adjustStability(1)
	}
	st.recomputeMonster()

	if st.monster == MoodOverfed && w.rng.Percent() < 35 {
		if w.addObject(RoomBuffet, ItemJunkData, w.rng.Between(2, 4)) != nil {
			st.adjustJunk(2)
			w.broadcastAllLocked("[MONSTER] The Monster sneezes junk into /tmp!")
		}
	}
	if st.monster == MoodContent && st.mood >= 3 && w.rng.Percent() < 30 {
		st.adjustStability(2)
		w.broadcastAllLocked("[PROC] The Monster forks a helper daemon to tidy things up.")
	}
}

func (w *World) helperPhaseLocked() {
	st := &w.state
	st.helper.survivedTicks++

	if !st.helper.flags.Has(HelperMemorySprite) && st.helper.survivedTicks >= memorySpriteTicks {
		st.helper.flags |= HelperMemorySprite
		w.broadcastAllLocked("[HELPER] Memory Sprite joins you, whisking junk away!")
	}

	if st.monster == MoodContent || st.monster == MoodSleeping {
		st.helper.happyStreak = min(st.helper.happyStreak+1, happyStreakCap)
	} else {
		st.helper.happyStreak = 0
	}
	if !st.helper.flags.Has(HelperSchedBlessing) && st.helper.happyStreak >= schedBlessingGoal {
		st.helper.flags |= HelperSchedBlessing
		w.broadcastAllLocked("[HELPER] Scheduler Blessing granted: hunger gain slowed!")
	}

	if !st.helper.flags.Has(HelperIoPixie) && st.helper.rescueCounter >= ioPixieRescueGoal {
		st.helper.flags |= HelperIoPixie
		w.broadcastAllLocked("[HELPER] IO Pixie flits in to rescue strays!")
	}

	if st.helper.flags.Has(HelperMemorySprite) && st.junkLoad > 0 {
		before := st.junkLoad
		st.adjustJunk(-1)
		if st.junkLoad < before {
			w.broadcastAllLocked("[HELPER] Memory Sprite sweeps away lingering junk.")
		}
	}

	if st.helper.flags.Has(HelperIoPixie) {
		for i := range w.objects[RoomFields] {
			o := &w.objects[RoomFields][i]
			if o.Type != ItemBabyDaemon {
				continue
			}
			o.clear()
			st.daemonLost = false
			st.adjustTrust(1)
			st.adjustStability(1)
			w.broadcastAllLocked("[HELPER] IO Pixie swoops a daemon back to safety!")
			break
		}
	}

	st.recomputeMonster()
}

func (w *World) cleanupPhaseLocked() {
	for room := RoomId(0); room < RoomCount; room++ {
		w.decayObjects(room)
	}
}

// advanceLifecycleLocked walks the stage rules in ascending order and stops
// at the first unmet one, so ordered gating is preserved exactly.
func (w *World) advanceLifecycleLocked() {
	for i := range stageRules {
		rule := &stageRules[i]
		if rule.stage <= w.state.stage {
			continue
		}
		if w.state.tick < rule.minTick {
			break
		}
		if w.state.stability < rule.minStability {
			break
		}

		w.state.stage = rule.stage
		w.broadcastAllLocked("[LIFECYCLE] Stage advanced to %s!", rule.stage)
		if names := unlockedAt(rule.stage); names != "" {
			w.broadcastAllLocked("[TIP] Commands unlocked at %s: %s", rule.stage, names)
		}
		w.broadcastAllLocked("[TIP] Commands available: %s", AvailableCommands(w.state.stage))
		w.announceGoalLocked()
	}
}

func (w *World) crashCheckLocked() {
	st := &w.state

	var reason string
	switch {
	case st.stability <= 0:
		reason = "stability exhausted"
	case st.mood <= -moodMax:
		reason = "Monster mood meltdown"
	case st.trust <= 0:
		reason = "trust drained"
	case st.hunger >= hungerMax:
		reason = "Monster hunger overflow"
	case st.junkLoad >= junkCrashThreshold:
		reason = "junk backpressure"
	default:
		return
	}

	if st.crashed {
		return
	}
	st.crashed = true
	w.broadcastAllLocked(
		"[CRASH] Kernel Caretakers collapse: %s after %d ticks. stability=%d hunger=%d mood=%d trust=%d junk=%d",
		reason, st.tick, st.stability, st.hunger, st.mood, st.trust, st.junkLoad)
	w.broadcastAllLocked("[CRASH] Friendly Monster dumps core. Thanks for playing!")
}
