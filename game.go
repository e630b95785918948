package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/prefabs"
	"github.com/milk9111/spritewalk/render"
	"github.com/milk9111/spritewalk/sprite"
)

type Game struct {
	player   *render.Player
	clock    render.Clock
	watcher  *prefabs.Watcher
	reloader *prefabs.Reloader
}

func NewGame(spec *prefabs.WalkerSpec, sheet *ebiten.Image) *Game {
	g := &Game{
		player: render.NewSheetPlayer(sheet, sprite.FrameSize, sprite.FrameSize, sprite.FrameCount, spec.PlayerSettings()),
		clock:  render.NewWallClock(),
	}

	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
			g.reloader = prefabs.NewReloader(w, func(s *prefabs.WalkerSpec) {
				g.player.Apply(s.PlayerSettings())
				log.Printf("prefabs: reloaded %s", prefabs.WalkerFile)
			})
		}
	}

	return g
}

func (g *Game) Update() error {
	g.reloadPrefabs()
	g.player.Step(g.clock)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.player.Draw(ebitenSurface{screen: screen})
}

// Layout keeps the logical screen equal to the window so the player
// re-centers when the window is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	if _, err := g.reloader.Check(); err != nil {
		log.Print(err)
	}
}
