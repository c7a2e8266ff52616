package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	saved := Current()
	t.Cleanup(func() { Apply(saved) })
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Validate(Current()); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestCharacterSettingsFromDefaults(t *testing.T) {
	s := CharacterSettings()
	if s.SpriteWidth != 199 || s.SpriteHeight != 179.75 {
		t.Fatalf("expected 199x179.75 sprite, got %vx%v", s.SpriteWidth, s.SpriteHeight)
	}
	if s.JumpPower != -10 || s.Gravity != 0.8 || s.MoveStep != 10 {
		t.Fatalf("unexpected physics %+v", s)
	}
	want := map[StateID]float64{Idle: 3, Running: 2, Jump: 0.5, Punch: 3}
	for state, rate := range want {
		if s.FrameRates[state] != rate {
			t.Fatalf("%s: expected frame rate %v, got %v", state, rate, s.FrameRates[state])
		}
	}
}

func TestDecode(t *testing.T) {
	base := Current()
	cases := []struct {
		name    string
		doc     string
		wantErr bool
		check   func(t *testing.T, f File)
	}{
		{
			name: "empty_document_keeps_base",
			doc:  "",
			check: func(t *testing.T, f File) {
				if f != base {
					t.Fatalf("expected base unchanged")
				}
			},
		},
		{
			name: "partial_override",
			doc: `
physics:
  gravity: 1.2
animation:
  jump:
    frame_rate: 2
loop:
  resize_quiet: 150ms
key_repeat:
  delay: 250ms
`,
			check: func(t *testing.T, f File) {
				if f.Physics.Gravity != 1.2 {
					t.Fatalf("gravity not applied: %v", f.Physics.Gravity)
				}
				if f.Physics.JumpPower != base.Physics.JumpPower {
					t.Fatalf("jump_power should keep base value, got %v", f.Physics.JumpPower)
				}
				if f.Animation.Jump.FrameRate != 2 || f.Animation.Jump.Count != 33 {
					t.Fatalf("jump override wrong: %+v", f.Animation.Jump)
				}
				if f.Loop.ResizeQuiet != 150*time.Millisecond {
					t.Fatalf("resize_quiet not parsed: %v", f.Loop.ResizeQuiet)
				}
				if f.Repeat.Delay != 250*time.Millisecond || f.Repeat.Interval != base.Repeat.Interval {
					t.Fatalf("key_repeat not parsed: %+v", f.Repeat)
				}
			},
		},
		{
			name:    "unknown_key",
			doc:     "physics:\n  gravitee: 1\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			doc:     "physics: [",
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Decode([]byte(tc.doc), base)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tc.check(t, f)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *File)
	}{
		{"zero_frame_rate", func(f *File) { f.Animation.Run.FrameRate = 0 }},
		{"empty_sequence", func(f *File) { f.Animation.Punch.Count = 0 }},
		{"missing_dir", func(f *File) { f.Animation.Idle.Dir = "" }},
		{"upward_gravity", func(f *File) { f.Physics.Gravity = -1 }},
		{"downward_jump", func(f *File) { f.Physics.JumpPower = 5 }},
		{"zero_scale", func(f *File) { f.Character.Scale = 0 }},
		{"zero_step", func(f *File) { f.Character.MoveStep = 0 }},
		{"zero_cadence", func(f *File) { f.Loop.TargetHz = 0 }},
		{"zero_repeat_interval", func(f *File) { f.Repeat.Interval = 0 }},
		{"zero_window", func(f *File) { f.Window.Width = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Current()
			tc.mutate(&f)
			if err := Validate(f); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFileAppliesGlobals(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "keyframe.yaml")
	doc := "character:\n  move_step: 25\ndebug:\n  overlay: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Character.MoveStep != 25 || !Debug.Overlay {
		t.Fatalf("globals not applied: step=%v overlay=%v", Character.MoveStep, Debug.Overlay)
	}
}

func TestLoadFileRejectsInvalidWithoutApplying(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "keyframe.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	before := Current()
	if err := LoadFile(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if Current() != before {
		t.Fatalf("invalid file must not change globals")
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestKeepFixed(t *testing.T) {
	current := Current()

	next := current
	next.Physics.Gravity = 2
	next.Animation.Run.FrameRate = 4
	got, changed := KeepFixed(next, current)
	if changed {
		t.Fatalf("tunable-only change reported as fixed change")
	}
	if got.Physics.Gravity != 2 || got.Animation.Run.FrameRate != 4 {
		t.Fatalf("tunables dropped: %+v", got)
	}

	next = current
	next.Animation.Run.Count = 5
	next.Animation.Run.FrameRate = 4
	next.Character.Scale = 1
	got, changed = KeepFixed(next, current)
	if !changed {
		t.Fatalf("expected fixed change to be reported")
	}
	if got.Animation.Run.Count != current.Animation.Run.Count || got.Character.Scale != current.Character.Scale {
		t.Fatalf("fixed values not restored: %+v", got)
	}
	if got.Animation.Run.FrameRate != 4 {
		t.Fatalf("frame rate should still reload, got %v", got.Animation.Run.FrameRate)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keyframe.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  overlay: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("debug:\n  overlay: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Fatalf("expected event for %s, got %s", want, got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for config write")
	}
}
