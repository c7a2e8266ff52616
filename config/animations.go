package config

// AnimationDef describes one frame sequence on disk: Count images named
// <Dir>/0.png through <Dir>/<Count-1>.png, advanced every FrameRate ticks.
type AnimationDef struct {
	Dir       string  `yaml:"dir"`
	Count     int     `yaml:"count"`
	FrameRate float64 `yaml:"frame_rate"`
}

// AnimationConfig holds the character's four sequences.
type AnimationConfig struct {
	Idle  AnimationDef `yaml:"idle"`
	Run   AnimationDef `yaml:"run"`
	Jump  AnimationDef `yaml:"jump"`
	Punch AnimationDef `yaml:"punch"`
}

// Def returns the definition for state.
func (a *AnimationConfig) Def(state StateID) AnimationDef {
	switch state {
	case Running:
		return a.Run
	case Jump:
		return a.Jump
	case Punch:
		return a.Punch
	}
	return a.Idle
}

// SameFrames reports whether both configs point at the same images.
func (a AnimationConfig) SameFrames(b AnimationConfig) bool {
	for _, s := range States {
		da, db := a.Def(s), b.Def(s)
		if da.Dir != db.Dir || da.Count != db.Count {
			return false
		}
	}
	return true
}

func defaultAnimations() AnimationConfig {
	return AnimationConfig{
		Idle:  AnimationDef{Dir: "assets/Character/idle", Count: 21, FrameRate: 3},
		Run:   AnimationDef{Dir: "assets/Character/run", Count: 36, FrameRate: 2},
		Jump:  AnimationDef{Dir: "assets/Character/jump", Count: 33, FrameRate: 0.5}, // fractional: advances every tick
		Punch: AnimationDef{Dir: "assets/Character/punch", Count: 10, FrameRate: 3},
	}
}

func (a *AnimationConfig) set(state StateID, def AnimationDef) {
	switch state {
	case Running:
		a.Run = def
	case Jump:
		a.Jump = def
	case Punch:
		a.Punch = def
	default:
		a.Idle = def
	}
}
