package game

import "fmt"

// gameEvent is one entry of the weighted random event table. run mutates the
// world under the already-held world lock and returns the broadcast line,
// or "" for a silent outcome.
type gameEvent struct {
	name     string
	weight   int
	minStage Stage
	run      func(w *World) string
}

var gameEvents = []gameEvent{
	{"Resource mutation", 20, StageGrowing, eventResourceMutation},
	{"Mood swing", 20, StageHatchling, eventMoodSwing},
	{"Lost process", 15, StageMature, eventLostProcess},
	{"Glitch storm", 15, StageElder, eventGlitchStorm},
	{"Lucky sync", 20, StageHatchling, eventLuckySync},
}

// runRandomEventLocked makes a single weight-proportional pick among events
// whose minimum stage has been reached: cumulative sum, uniform draw in
// [0, total), linear scan.
func (w *World) runRandomEventLocked() {
	stage := w.state.stage

	total := 0
	for i := range gameEvents {
		if stage < gameEvents[i].minStage {
			continue
		}
		total += gameEvents[i].weight
	}
	if total == 0 {
		return
	}

	pick := w.rng.Intn(total)
	accum := 0
	for i := range gameEvents {
		ev := &gameEvents[i]
		if stage < ev.minStage {
			continue
		}
		accum += ev.weight
		if pick < accum {
			if msg := ev.run(w); msg != "" {
				w.broadcastAllLocked("%s", msg)
			}
			return
		}
	}
}

// eventResourceMutation corrupts the first feed-class object in the buffet.
func eventResourceMutation(w *World) string {
	for i := range w.objects[RoomBuffet] {
		o := &w.objects[RoomBuffet][i]
		if !o.Type.IsFeed() {
			continue
		}
		o.Type = ItemJunkData
		o.Flags |= FlagMutated
		w.state.adjustJunk(2)
		return fmt.Sprintf("[EVENT] A %s mutates into junk data!", ItemJunkData)
	}
	return ""
}

func eventMoodSwing(w *World) string {
	delta := 2
	if w.rng.Percent() >= 50 {
		delta = -2
	}
	w.state.adjustMood(delta)
	if delta > 0 {
		return fmt.Sprintf("[EVENT] Monster gets lonely then delighted when you wave. mood %+d", delta)
	}
	return fmt.Sprintf("[EVENT] Monster frets over idle cycles. mood %+d", delta)
}

func eventLostProcess(w *World) string {
	return w.spawnDaemonLocked()
}

func eventGlitchStorm(w *World) string {
	spawned := 0
	for attempts := 2; attempts > 0 && w.firstFreeObjectSlot(RoomBuffet) >= 0; attempts-- {
		if w.addObject(RoomBuffet, ItemJunkData, w.rng.Between(2, 4)) == nil {
			break
		}
		spawned++
	}
	if spawned == 0 {
		return ""
	}
	w.state.adjustJunk(spawned * 2)
	return fmt.Sprintf("[EVENT] Glitch storm sprays %d junk piles across /tmp!", spawned)
}

func eventLuckySync(w *World) string {
	w.state.adjustHunger(-1)
	w.state.adjustStability(2)
	if msg := w.spawnBuffetResourceLocked(); msg != "" {
		return msg
	}
	return "[EVENT] Lucky sync! Hunger eases and resources sparkle."
}
