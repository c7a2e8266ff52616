package assets

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/keyframe/shared/character"
)

func TestLoadImageErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/Character/idle/0.png": {Data: []byte("not a png")},
	}
	tests := []struct {
		name     string
		path     string
		notFound bool
	}{
		{"missing", "assets/Character/idle/1.png", true},
		{"undecodable", "assets/Character/idle/0.png", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewAnimationLoader(fsys)
			_, err := l.LoadImage(tt.path)
			if err == nil {
				t.Fatalf("LoadImage(%q) succeeded", tt.path)
			}
			if got := errors.Is(err, fs.ErrNotExist); got != tt.notFound {
				t.Errorf("errors.Is(err, fs.ErrNotExist) = %v, want %v (err %v)", got, tt.notFound, err)
			}
			// The failure is remembered.
			_, again := l.LoadImage(tt.path)
			if again != err {
				t.Errorf("second LoadImage returned %v, want cached %v", again, err)
			}
			if _, ok := l.Resolve(character.FrameRef(tt.path)); ok {
				t.Error("Resolve reported a failed frame as ready")
			}
		})
	}
}

func TestPreloadReportsEveryFailure(t *testing.T) {
	l := NewAnimationLoader(fstest.MapFS{})
	refs := []character.FrameRef{"a/0.png", "a/1.png", "b/0.png"}

	ready, err := l.Preload(refs)
	if ready != 0 {
		t.Errorf("ready = %d, want 0", ready)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected a joined error, got %T", err)
	}
	if n := len(joined.Unwrap()); n != len(refs) {
		t.Errorf("got %d errors, want %d", n, len(refs))
	}
	if l.Ready() != 0 {
		t.Errorf("Ready() = %d, want 0", l.Ready())
	}
	if first := firstError(err); !errors.Is(first, fs.ErrNotExist) {
		t.Errorf("firstError = %v", first)
	}
}
