package assets

import (
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/automoto/keyframe/shared/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// AnimationLoader decodes sprite frames from a file system and caches them by
// path. It is the image provider for the character renderer.
type AnimationLoader struct {
	fsys    fs.FS
	cache   map[string]*ebiten.Image
	missing map[string]error
}

func NewAnimationLoader(fsys fs.FS) *AnimationLoader {
	return &AnimationLoader{
		fsys:    fsys,
		cache:   make(map[string]*ebiten.Image),
		missing: make(map[string]error),
	}
}

// LoadImage returns the cached image for path, decoding it on first use. A
// path that failed once keeps failing without touching the file system again.
func (l *AnimationLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	if err, ok := l.missing[path]; ok {
		return nil, err
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, l.fail(path, fmt.Errorf("assets: open %s: %w", path, err))
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, l.fail(path, fmt.Errorf("assets: decode %s: %w", path, err))
	}

	l.cache[path] = img
	return img, nil
}

func (l *AnimationLoader) fail(path string, err error) error {
	l.missing[path] = err
	return err
}

// Resolve looks up an already loaded frame. It never reads the file system so
// it is safe to call from the render pass.
func (l *AnimationLoader) Resolve(ref character.FrameRef) (*ebiten.Image, bool) {
	img, ok := l.cache[string(ref)]
	return img, ok
}

// Ready counts the frames decoded so far.
func (l *AnimationLoader) Ready() int {
	return len(l.cache)
}

// Preload decodes every ref up front so the first render of each state does
// not stall. It reports how many frames are ready and every failure.
func (l *AnimationLoader) Preload(refs []character.FrameRef) (int, error) {
	var errs []error
	ready := 0
	for _, ref := range refs {
		if _, err := l.LoadImage(string(ref)); err != nil {
			errs = append(errs, err)
			continue
		}
		ready++
	}
	return ready, errors.Join(errs...)
}

// PreloadCatalog preloads c and logs a summary. Missing frames are not fatal;
// the renderer skips ticks whose frame is not ready.
func (l *AnimationLoader) PreloadCatalog(c *character.Catalog) {
	refs := c.Refs()
	ready, err := l.Preload(refs)
	if err != nil {
		log.Printf("Warning: assets: %d of %d frames unavailable, first error: %v",
			len(refs)-ready, len(refs), firstError(err))
		return
	}
	log.Printf("assets: preloaded %d frames", ready)
}

func firstError(err error) error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return err
}
