package animations

import (
	"errors"
	"testing"

	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
)

func TestFrames(t *testing.T) {
	refs := Frames(cfg.AnimationDef{Dir: "assets/Character/punch/", Count: 3})
	want := []character.FrameRef{
		"assets/Character/punch/0.png",
		"assets/Character/punch/1.png",
		"assets/Character/punch/2.png",
	}
	if len(refs) != len(want) {
		t.Fatalf("expected %d refs, got %d", len(want), len(refs))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Fatalf("ref %d: expected %q, got %q", i, want[i], refs[i])
		}
	}
}

func TestNewCatalogFromDefaults(t *testing.T) {
	c, err := NewCatalog(cfg.Animation)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	lengths := map[character.Motion]int{
		character.Idle:  21,
		character.Punch: 10,
		character.Jump:  33,
		character.Run:   36,
	}
	for m, n := range lengths {
		if c.Len(m) != n {
			t.Fatalf("%s: expected %d frames, got %d", m, n, c.Len(m))
		}
	}
	if got := c.Frame(character.Run, 35); got != "assets/Character/run/35.png" {
		t.Fatalf("unexpected last run frame %q", got)
	}
	if len(c.Refs()) != 100 {
		t.Fatalf("expected 100 refs, got %d", len(c.Refs()))
	}
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	a := cfg.Animation
	a.Jump.Count = 0
	if _, err := NewCatalog(a); !errors.Is(err, character.ErrEmptySequence) {
		t.Fatalf("expected ErrEmptySequence, got %v", err)
	}
}
