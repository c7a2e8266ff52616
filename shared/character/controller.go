package character

import "math"

// Key is a platform-neutral key symbol.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyJump
	KeyPunch
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyPunch:
		return "punch"
	}
	return "other"
}

// Controller turns key symbols into intents and advances a State by one tick
// at a time.
type Controller struct {
	Catalog  *Catalog
	Settings Settings
	Canvas   *Canvas
}

func NewController(catalog *Catalog, settings Settings, canvas *Canvas) *Controller {
	return &Controller{
		Catalog:  catalog,
		Settings: settings,
		Canvas:   canvas,
	}
}

// KeyDown applies a key-down symbol immediately. Unknown keys are ignored.
func (c *Controller) KeyDown(s *State, k Key) {
	switch k {
	case KeyRight:
		s.FacingRight = true
		c.startRun(s)
		c.MoveRight(s)
	case KeyLeft:
		s.FacingRight = false
		c.startRun(s)
		c.MoveLeft(s)
	case KeyJump:
		c.StartJump(s)
	case KeyPunch:
		c.StartPunch(s)
	}
}

// KeyUp applies a key-up symbol. Jump and punch end on their own.
func (c *Controller) KeyUp(s *State, k Key) {
	switch k {
	case KeyLeft, KeyRight:
		s.runHeld = false
		if s.motion == Run {
			s.motion = Idle
		}
	}
}

func (c *Controller) startRun(s *State) {
	s.runHeld = true
	if s.motion == Idle {
		s.motion = Run
	}
}

// MoveRight shifts the sprite one step right unless it already touches the
// right edge. The result never passes the edge.
func (c *Controller) MoveRight(s *State) {
	limit := c.Canvas.Width - c.Settings.SpriteWidth
	if s.X+c.Settings.SpriteWidth >= c.Canvas.Width {
		return
	}
	s.X = math.Min(s.X+c.Settings.MoveStep, limit)
}

// MoveLeft shifts the sprite one step left unless it is at the left edge.
func (c *Controller) MoveLeft(s *State) {
	if s.X <= 0 {
		return
	}
	s.X = math.Max(s.X-c.Settings.MoveStep, 0)
}

// StartJump launches a jump. It is a no-op while a jump is unfinished.
func (c *Controller) StartJump(s *State) {
	if s.Jumping() {
		return
	}
	s.VelocityY = c.Settings.JumpPower
	s.frames[Jump] = 0
	if s.motion == Punch {
		s.jumpSuspended = true
		return
	}
	s.motion = Jump
}

// StartPunch starts a punch. It is a no-op while a punch is playing. A jump in
// progress is suspended until the punch ends.
func (c *Controller) StartPunch(s *State) {
	if s.motion == Punch {
		return
	}
	if s.motion == Jump {
		s.jumpSuspended = true
	}
	s.motion = Punch
	s.frames[Punch] = 0
}

// Step advances the active motion by one tick, then bumps the frame counter.
func (c *Controller) Step(s *State) {
	switch s.motion {
	case Punch:
		c.stepPunch(s)
	case Jump:
		c.stepJump(s)
	case Run:
		c.stepLoop(s, Run)
	default:
		c.stepLoop(s, Idle)
	}
	s.FrameCounter++
}

// due is the frame-rate gate. The rate is compared as declared, so a rate of
// 0.5 passes on every integer tick.
func (c *Controller) due(s *State, m Motion) bool {
	return math.Mod(float64(s.FrameCounter), c.Settings.FrameRates[m]) == 0
}

func (c *Controller) stepLoop(s *State, m Motion) {
	if c.due(s, m) {
		s.frames[m] = (s.frames[m] + 1) % c.Catalog.Len(m)
	}
}

func (c *Controller) stepPunch(s *State) {
	if !c.due(s, Punch) {
		return
	}
	s.frames[Punch]++
	if s.frames[Punch] >= c.Catalog.Len(Punch) {
		s.frames[Punch] = 0
		s.settle()
	}
}

func (c *Controller) stepJump(s *State) {
	if c.due(s, Jump) && s.frames[Jump] < c.Catalog.Len(Jump)-1 {
		s.frames[Jump]++
	}

	s.Y += s.VelocityY
	s.VelocityY += c.Settings.Gravity

	if ground := c.Canvas.GroundY(); s.Y >= ground {
		s.Y = ground
		s.VelocityY = 0
		s.settle()
	}
}
