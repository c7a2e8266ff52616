package scenes

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/keyframe/assets"
	"github.com/automoto/keyframe/assets/animations"
	"github.com/automoto/keyframe/components"
	cfg "github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/shared/character"
	"github.com/automoto/keyframe/systems"
	factory2 "github.com/automoto/keyframe/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options controls where the scene finds its art and config.
type Options struct {
	// Root is the directory frame paths are resolved against.
	Root string
	// ConfigPath is the YAML file loaded at startup, if any.
	ConfigPath string
	// Watch reloads ConfigPath when it changes.
	Watch bool
}

type CharacterScene struct {
	ecs     *ecs.ECS
	opts    Options
	catalog *character.Catalog
	fsys    fs.FS
	once    sync.Once
	// last outside size from Layout, used to size the first canvas
	width, height int
}

// NewCharacterScene creates the single-sprite scene. The catalog is built
// from the current config and is fixed for the scene's lifetime.
func NewCharacterScene(opts Options) (*CharacterScene, error) {
	catalog, err := animations.NewCatalog(cfg.Animation)
	if err != nil {
		return nil, err
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	return &CharacterScene{
		opts:    opts,
		catalog: catalog,
		fsys:    os.DirFS(root),
		width:   cfg.C.Width,
		height:  cfg.C.Height,
	}, nil
}

func (cs *CharacterScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()
}

func (cs *CharacterScene) Draw(screen *ebiten.Image) {
	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

// Layout forwards the window's outside size to the viewport system.
func (cs *CharacterScene) Layout(width, height int) {
	cs.width, cs.height = width, height
	if cs.ecs == nil {
		return
	}
	systems.SetWindowSize(cs.ecs, width, height)
}

// Close stops the frame loop and the config watcher. Later calls do nothing.
func (cs *CharacterScene) Close() {
	if cs.ecs == nil {
		return
	}
	if entry, ok := components.Loop.First(cs.ecs.World); ok {
		scheduler := components.Loop.Get(entry).Scheduler
		if scheduler.Stopped() {
			return
		}
		scheduler.Stop()
	}
	if entry, ok := components.Reload.First(cs.ecs.World); ok {
		if w := components.Reload.Get(entry).Watcher; w != nil {
			if err := w.Close(); err != nil {
				log.Printf("Warning: config: close watcher: %v", err)
			}
		}
	}
}

func (cs *CharacterScene) configure() {
	loader := assets.NewAnimationLoader(cs.fsys)
	// Decode every frame up front so the first pass of each motion doesn't stall
	loader.PreloadCatalog(cs.catalog)

	ecs := ecs.NewECS(donburi.NewWorld())

	// Config changes land between ticks, never inside one
	ecs.AddSystem(systems.UpdateReload)
	ecs.AddSystem(systems.UpdateViewport)
	// Must run BEFORE UpdateCharacter
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCharacter)

	ecs.AddRenderer(components.Default, systems.DrawCanvas)
	ecs.AddRenderer(components.Default, systems.DrawDebug)

	cs.ecs = ecs

	canvas := components.Canvas.Get(factory2.CreateCanvas(cs.ecs, cs.width, cs.height))
	factory2.CreateCharacter(cs.ecs, cs.catalog, loader, canvas, &systems.CanvasSink{Canvas: canvas})
	systems.GetOrCreateLoop(cs.ecs)

	if cs.opts.Watch && cs.opts.ConfigPath != "" {
		cs.watch()
	}
}

func (cs *CharacterScene) watch() {
	w, err := cfg.NewWatcher(cs.opts.ConfigPath)
	if err != nil {
		log.Printf("Warning: config: hot reload disabled: %v", err)
		return
	}
	entry := cs.ecs.World.Entry(cs.ecs.World.Create(components.Reload))
	components.Reload.SetValue(entry, components.ReloadData{Path: cs.opts.ConfigPath, Watcher: w})
	log.Printf("config: watching %s", cs.opts.ConfigPath)
}
