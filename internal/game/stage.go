package game

// Stage is the monster's lifecycle stage. Stages only ever advance within
// an epoch; reset returns to hatchling.
type Stage int

const (
	StageHatchling Stage = iota
	StageGrowing
	StageMature
	StageElder
	StageRetired
)

func (s Stage) String() string {
	switch s {
	case StageHatchling:
		return "Hatchling"
	case StageGrowing:
		return "Growing"
	case StageMature:
		return "Mature"
	case StageElder:
		return "Elder"
	case StageRetired:
		return "Retired"
	default:
		return "Unknown"
	}
}

// stageRule is one advancement gate: the stage is reached once the tick
// counter and stability both meet the rule. Rules are ordered ascending and
// checked in order, so a failed rule blocks every later one.
type stageRule struct {
	stage        Stage
	minTick      uint32
	minStability int
}

var stageRules = []stageRule{
	{StageGrowing, 120, 40},
	{StageMature, 280, 55},
	{StageElder, 480, 65},
	{StageRetired, 720, 75},
}

// nextStageRule returns the rule for the stage after the given one, or nil
// at retirement.
func nextStageRule(stage Stage) *stageRule {
	for i := range stageRules {
		if stageRules[i].stage > stage {
			return &stageRules[i]
		}
	}
	return nil
}

// spawnThresholds returns the per-tick resource and daemon spawn chances,
// in percent, for a stage. Spawning accelerates as the monster matures.
func spawnThresholds(stage Stage) (resourcePct, daemonPct int) {
	switch stage {
	case StageHatchling:
		return 40, 10
	case StageGrowing:
		return 55, 15
	case StageMature:
		return 65, 25
	case StageElder:
		return 70, 30
	default:
		return 75, 35
	}
}
