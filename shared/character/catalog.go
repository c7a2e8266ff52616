package character

import (
	"errors"
	"fmt"
)

// FrameRef is an opaque identifier for one sprite image.
type FrameRef string

var ErrEmptySequence = errors.New("empty frame sequence")

// Catalog maps each Motion to its ordered frames. It is immutable once built.
type Catalog struct {
	seqs [MotionCount][]FrameRef
}

// NewCatalog copies seqs into a Catalog. Every motion needs at least one frame.
func NewCatalog(seqs map[Motion][]FrameRef) (*Catalog, error) {
	c := &Catalog{}
	for _, m := range Motions() {
		frames := seqs[m]
		if len(frames) == 0 {
			return nil, fmt.Errorf("character: %s: %w", m, ErrEmptySequence)
		}
		c.seqs[m] = append([]FrameRef(nil), frames...)
	}
	return c, nil
}

// Len returns the number of frames for m.
func (c *Catalog) Len(m Motion) int {
	return len(c.seqs[m])
}

// Frame returns frame i of m. i must be in range.
func (c *Catalog) Frame(m Motion, i int) FrameRef {
	return c.seqs[m][i]
}

// Refs returns every frame of every motion, motions in declaration order.
func (c *Catalog) Refs() []FrameRef {
	var refs []FrameRef
	for _, m := range Motions() {
		refs = append(refs, c.seqs[m]...)
	}
	return refs
}
