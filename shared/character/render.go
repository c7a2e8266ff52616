package character

// Provider resolves a frame to a drawable image. Resolve must not block; it
// reports false while the image is not ready.
type Provider[I any] interface {
	Resolve(ref FrameRef) (I, bool)
}

// Sink is the drawing surface.
type Sink[I any] interface {
	Clear(width, height float64)
	Blit(img I, x, y, w, h float64, mirrored bool)
}

// Renderer draws the frame selected by a State onto a Sink.
type Renderer[I any] struct {
	Catalog *Catalog
	Images  Provider[I]
	Sink    Sink[I]
	Canvas  *Canvas
	Width   float64
	Height  float64
}

// CurrentFrame returns the frame of the active motion.
func CurrentFrame(c *Catalog, s *State) FrameRef {
	m := s.Motion()
	return c.Frame(m, s.FrameIndex(m))
}

// Draw clears the canvas and blits the current frame, mirrored when the
// character faces left. A frame that is not ready leaves the previous picture
// in place and Draw reports false.
func (r *Renderer[I]) Draw(s *State) bool {
	img, ok := r.Images.Resolve(CurrentFrame(r.Catalog, s))
	if !ok {
		return false
	}
	r.Sink.Clear(r.Canvas.Width, r.Canvas.Height)
	r.Sink.Blit(img, s.X, s.Y, r.Width, r.Height, !s.FacingRight)
	return true
}
