package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritewalk/prefabs"
	"github.com/milk9111/spritewalk/render"
	"github.com/milk9111/spritewalk/sprite"
)

func main() {
	spec, err := prefabs.LoadWalkerSpec()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := sprite.Generate(sprite.SheetPath); err != nil {
		log.Fatalf("failed to generate sprite sheet: %v", err)
	}

	img, err := render.LoadImage(sprite.SheetPath)
	if err != nil {
		log.Fatalf("failed to load sprite sheet: %v", err)
	}
	sheet := ebiten.NewImageFromImage(img)

	if spec.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)

	game := NewGame(spec, sheet)
	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
