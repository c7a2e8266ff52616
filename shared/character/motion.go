// Package character holds the sprite's motion state machine. It must have zero
// dependencies on ebiten or any graphics library so it can be driven headless.
package character

// Motion identifies which animation sequence and physics rule apply.
type Motion int

const (
	Idle Motion = iota
	Run
	Jump
	Punch

	MotionCount // Must be last - used for array sizing
)

var motionNames = [MotionCount]string{
	Idle:  "idle",
	Run:   "run",
	Jump:  "jump",
	Punch: "punch",
}

func (m Motion) String() string {
	if m < 0 || m >= MotionCount {
		return "unknown"
	}
	return motionNames[m]
}

// Motions lists every motion in declaration order.
func Motions() []Motion {
	return []Motion{Idle, Run, Jump, Punch}
}
