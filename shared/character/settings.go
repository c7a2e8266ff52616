package character

// FrameRates holds, per motion, how many ticks pass between frame advances.
// Rates may be fractional; a rate below one advances on every tick.
type FrameRates [MotionCount]float64

// Settings are the tunables shared by the input translator and the stepper.
type Settings struct {
	SpriteWidth  float64
	SpriteHeight float64
	MoveStep     float64 // pixels per move intent
	JumpPower    float64 // initial vertical velocity, negative is up
	Gravity      float64 // added to the vertical velocity every airborne tick
	FrameRates   FrameRates
}

// DefaultSettings mirrors the stock character art at quarter scale.
func DefaultSettings() Settings {
	return Settings{
		SpriteWidth:  796 * 0.25,
		SpriteHeight: 719 * 0.25,
		MoveStep:     10,
		JumpPower:    -10,
		Gravity:      0.8,
		FrameRates: FrameRates{
			Idle:  3,
			Run:   2,
			Jump:  0.5,
			Punch: 3,
		},
	}
}

// Canvas is the drawable extent. Y grows downward from the top edge.
type Canvas struct {
	Width        float64
	Height       float64
	GroundOffset float64
}

// GroundY is the resting Y of the sprite's top edge.
func (c *Canvas) GroundY() float64 {
	return c.Height - c.GroundOffset
}

// Resize changes the extents only; character state is left alone.
func (c *Canvas) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}
