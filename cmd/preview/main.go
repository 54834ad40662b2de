// Desktop preview of the site's hero animation.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dmadera0/Portfolio-v2/internal/hero"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func main() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Portfolio Hero Preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(hero.NewGame(windowWidth, windowHeight)); err != nil {
		log.Fatal(err)
	}
}
