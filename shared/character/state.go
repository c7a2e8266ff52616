package character

// State is the single mutable character. Only the Controller changes the
// motion; renderers read it.
type State struct {
	X           float64
	Y           float64
	VelocityY   float64
	FacingRight bool

	// FrameCounter counts stepper ticks since creation.
	FrameCounter uint64

	motion Motion
	// runHeld is set while a direction intent is down; it decides whether a
	// finished jump or punch falls back to Run or Idle.
	runHeld bool
	// jumpSuspended marks a jump paused underneath a punch.
	jumpSuspended bool
	frames        [MotionCount]int
}

// NewState returns an idle character facing right at (x, y).
func NewState(x, y float64) *State {
	return &State{
		X:           x,
		Y:           y,
		FacingRight: true,
		motion:      Idle,
	}
}

// Motion is the active state. It decides both the frame sequence that is drawn
// and the branch the stepper runs: Punch > Jump > Run > Idle.
func (s *State) Motion() Motion { return s.motion }

func (s *State) Idle() bool { return s.motion == Idle }

func (s *State) Punching() bool { return s.motion == Punch }

// Jumping reports an unfinished jump, including one suspended by a punch.
func (s *State) Jumping() bool { return s.motion == Jump || s.jumpSuspended }

// Running reports a held direction intent.
func (s *State) Running() bool { return s.runHeld }

// FrameIndex returns the current frame index of m.
func (s *State) FrameIndex(m Motion) int { return s.frames[m] }

// settle picks the resting motion once a transient one has finished.
func (s *State) settle() {
	switch {
	case s.jumpSuspended:
		s.jumpSuspended = false
		s.motion = Jump
	case s.runHeld:
		s.motion = Run
	default:
		s.motion = Idle
	}
}
