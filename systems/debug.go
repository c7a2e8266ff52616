package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/fonts"
	"github.com/automoto/keyframe/shared/character"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugFace text.Face
	groundClr = color.RGBA{0, 255, 255, 255}
	boxClr    = color.RGBA{255, 0, 0, 255}
)

// DrawDebug draws the sprite box, the ground line and a state readout on top
// of the presented canvas.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	entry, ok := components.Character.First(ecs.World)
	if !ok {
		return
	}
	state := components.Character.Get(entry)
	anim := components.Animation.Get(entry)
	l := GetOrCreateLoop(ecs)

	if canvasEntry, ok := components.Canvas.First(ecs.World); ok {
		bounds := components.Canvas.Get(canvasEntry).Bounds
		vector.DrawFilledRect(screen, 0, float32(bounds.GroundY()), float32(bounds.Width), 1, groundClr, false)
	}

	x, y := float32(state.X), float32(state.Y)
	w, h := float32(anim.Renderer.Width), float32(anim.Renderer.Height)
	vector.DrawFilledRect(screen, x, y, w, 1, boxClr, false)     // Top
	vector.DrawFilledRect(screen, x, y+h-1, w, 1, boxClr, false) // Bottom
	vector.DrawFilledRect(screen, x, y, 1, h, boxClr, false)     // Left
	vector.DrawFilledRect(screen, x+w-1, y, 1, h, boxClr, false) // Right

	face := getDebugFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, DebugText(state, anim, l), face, op)
}

// DebugText formats the overlay readout.
func DebugText(s *character.State, anim *components.AnimationData, l *components.LoopData) string {
	catalog := anim.Controller.Catalog
	var b strings.Builder
	fmt.Fprintf(&b, "motion: %s  run held: %t  jumping: %t\n", s.Motion(), s.Running(), s.Jumping())
	fmt.Fprintf(&b, "x: %.1f  y: %.1f  vy: %.2f  facing right: %t\n", s.X, s.Y, s.VelocityY, s.FacingRight)
	for _, m := range character.Motions() {
		fmt.Fprintf(&b, "%s %d/%d  ", m, s.FrameIndex(m), catalog.Len(m))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "counter: %d  passes: %d  drawn: %t  frames ready: %d/%d",
		s.FrameCounter, l.Scheduler.Passes(), l.Drawn, anim.Loader.Ready(), len(catalog.Refs()))
	return b.String()
}

func getDebugFace() text.Face {
	if debugFace != nil {
		return debugFace
	}
	if !fonts.Loaded(fonts.Debug) {
		return nil
	}
	debugFace = text.NewGoXFace(fonts.Debug.Get())
	return debugFace
}
