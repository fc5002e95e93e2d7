package main

import (
	"log"

	"github.com/Garsondee/Portal-Snake/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g, err := game.New()
	if err != nil {
		log.Fatal(err)
	}
	cfg := g.Session().Config()
	ebiten.SetWindowTitle("Snake Game")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
