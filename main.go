package main

import (
	"flag"
	"log"

	"github.com/automoto/keyframe/config"
	"github.com/automoto/keyframe/fonts"
	"github.com/automoto/keyframe/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.Options) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: debug overlay text disabled: %v", err)
	}
	scene, err := scenes.NewCharacterScene(opts)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen equal to the window so the canvas can
// follow resizes pixel for pixel.
func (g *Game) Layout(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return config.C.Width, config.C.Height
	}
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	configPath := flag.String("config", "", "YAML config file to load")
	root := flag.String("root", ".", "directory animation frame paths are resolved against")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	debug := flag.Bool("debug", false, "draw the state overlay")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Update once per displayed frame; the scheduler decides which frames step
	ebiten.SetTPS(ebiten.SyncWithFPS)

	game, err := NewGame(scenes.Options{Root: *root, ConfigPath: *configPath, Watch: *watch})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	defer game.scene.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
