package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// File is the on-disk shape of the tunable configuration. Every field is
// optional; missing keys keep the value of the base it is decoded onto.
type File struct {
	Window    Config          `yaml:"window"`
	Character CharacterConfig `yaml:"character"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Animation AnimationConfig `yaml:"animation"`
	Repeat    RepeatConfig    `yaml:"key_repeat"`
	Loop      LoopConfig      `yaml:"loop"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Current snapshots the globals.
func Current() File {
	return File{
		Window:    *C,
		Character: Character,
		Physics:   Physics,
		Animation: Animation,
		Repeat:    Input.Repeat,
		Loop:      Loop,
		Debug:     Debug,
	}
}

// Apply replaces the globals with f.
func Apply(f File) {
	window := f.Window
	C = &window
	Character = f.Character
	Physics = f.Physics
	Animation = f.Animation
	Input.Repeat = f.Repeat
	Loop = f.Loop
	Debug = f.Debug
}

// Decode overlays a YAML document on base. Unknown keys are rejected.
func Decode(data []byte, base File) (File, error) {
	out := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config: decode: %w", err)
	}
	return out, nil
}

// Validate reports every out-of-range value in f.
func Validate(f File) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		bad("window size %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Character.FrameWidth <= 0 || f.Character.FrameHeight <= 0 {
		bad("character frame size %dx%d", f.Character.FrameWidth, f.Character.FrameHeight)
	}
	if f.Character.Scale <= 0 {
		bad("character scale %v", f.Character.Scale)
	}
	if f.Character.MoveStep <= 0 {
		bad("character move_step %v", f.Character.MoveStep)
	}
	if f.Character.StartX < 0 {
		bad("character start_x %v", f.Character.StartX)
	}
	if f.Physics.Gravity <= 0 {
		bad("physics gravity %v", f.Physics.Gravity)
	}
	if f.Physics.JumpPower >= 0 {
		bad("physics jump_power %v must be negative", f.Physics.JumpPower)
	}
	for _, s := range States {
		def := f.Animation.Def(s)
		if def.Count <= 0 {
			bad("animation %s count %d", s, def.Count)
		}
		if def.Dir == "" {
			bad("animation %s dir is empty", s)
		}
		if def.FrameRate <= 0 {
			bad("animation %s frame_rate %v", s, def.FrameRate)
		}
	}
	if f.Repeat.Delay < 0 || f.Repeat.Interval <= 0 {
		bad("key_repeat delay %v interval %v", f.Repeat.Delay, f.Repeat.Interval)
	}
	if f.Loop.TargetHz <= 0 {
		bad("loop target_hz %v", f.Loop.TargetHz)
	}
	if f.Loop.ResizeQuiet < 0 {
		bad("loop resize_quiet %v", f.Loop.ResizeQuiet)
	}
	return errors.Join(errs...)
}

// ReadFile decodes and validates path on top of the current globals without
// applying it.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Decode(data, Current())
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := Validate(f); err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// LoadFile reads path and applies it to the globals.
func LoadFile(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}
	Apply(f)
	return nil
}

// KeepFixed returns next with the values that cannot change while running
// (window, sprite art and frame sequences) taken from current. It reports
// whether next tried to change any of them.
func KeepFixed(next, current File) (File, bool) {
	changed := next.Window != current.Window ||
		next.Character.FrameWidth != current.Character.FrameWidth ||
		next.Character.FrameHeight != current.Character.FrameHeight ||
		next.Character.Scale != current.Character.Scale ||
		next.Character.GroundOffset != current.Character.GroundOffset ||
		!next.Animation.SameFrames(current.Animation)

	next.Window = current.Window
	next.Character.FrameWidth = current.Character.FrameWidth
	next.Character.FrameHeight = current.Character.FrameHeight
	next.Character.Scale = current.Character.Scale
	next.Character.GroundOffset = current.Character.GroundOffset
	for _, s := range States {
		fixed := current.Animation.Def(s)
		def := next.Animation.Def(s)
		def.Dir, def.Count = fixed.Dir, fixed.Count
		next.Animation.set(s, def)
	}
	return next, changed
}
