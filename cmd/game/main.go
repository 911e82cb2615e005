package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/gamekit/internal/application/director"
	"github.com/younwookim/gamekit/internal/application/game"
	"github.com/younwookim/gamekit/internal/application/scene/playing"
	"github.com/younwookim/gamekit/internal/application/scene/splash"
	"github.com/younwookim/gamekit/internal/infrastructure/assets"
	"github.com/younwookim/gamekit/internal/infrastructure/config"
)

func main() {
	configPath := flag.String("config", "configs", "path to config directory")
	assetPath := flag.String("assets", "", "override asset root from config")
	flag.Parse()

	cfg, err := config.NewLoader(*configPath).LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	root := cfg.Assets.Root
	if *assetPath != "" {
		root = *assetPath
	}
	rootFS := os.DirFS(root)

	// The asset root is fixed for the process lifetime: one scan at
	// startup, then everything resolves against the manifest.
	manifest, err := assets.Scan(rootFS)
	if err != nil {
		log.Fatalf("Failed to scan asset root %s: %v", root, err)
	}
	log.Printf("Scanned %d assets under %s", len(manifest.All()), root)

	registry := assets.NewRegistry()
	loader := assets.NewLoader(assets.NewFSFetcher(rootFS), registry, cfg.Assets.SampleRate)
	audioCtx := audio.NewContext(cfg.Assets.SampleRate)

	g := game.New(cfg.Window.Width, cfg.Window.Height)
	d := director.New(loader, g)
	g.SetDirector(d)

	sp, err := splash.New(cfg.Splash, manifest, registry)
	if err != nil {
		log.Fatalf("Failed to create splash scene: %v", err)
	}
	pl, err := playing.New(cfg.Playing, manifest, registry, audioCtx)
	if err != nil {
		log.Fatalf("Failed to create play scene: %v", err)
	}

	// Scene transitions block on preload, so they run beside the game
	// loop: splash first, then the play scene once the splash reports
	// itself finished. A failed transition leaves the previous scene
	// up; there is no automatic retry.
	go func() {
		if err := d.Switch(sp); err != nil {
			log.Printf("Splash transition failed: %v", err)
			return
		}
		<-sp.Finish()
		if err := d.Switch(pl); err != nil {
			log.Printf("Play transition failed: %v", err)
		}
	}()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
