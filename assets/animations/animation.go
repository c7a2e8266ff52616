package animations

import (
	"fmt"
	"path"

	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
)

// Frames expands a definition into its frame paths: <Dir>/0.png up to
// <Dir>/<Count-1>.png.
func Frames(def cfg.AnimationDef) []character.FrameRef {
	refs := make([]character.FrameRef, 0, def.Count)
	for i := 0; i < def.Count; i++ {
		refs = append(refs, character.FrameRef(path.Join(def.Dir, fmt.Sprintf("%d.png", i))))
	}
	return refs
}

// NewCatalog builds the character catalog from the animation config.
func NewCatalog(a cfg.AnimationConfig) (*character.Catalog, error) {
	seqs := make(map[character.Motion][]character.FrameRef, len(cfg.States))
	for _, state := range cfg.States {
		seqs[state] = Frames(a.Def(state))
	}
	c, err := character.NewCatalog(seqs)
	if err != nil {
		return nil, fmt.Errorf("animations: %w", err)
	}
	return c, nil
}
