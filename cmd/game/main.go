package main

import (
	"log"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/Garsondee/night-shift/internal/office"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.LoadConfigFromEnv()

	audio := office.NewSoundManager()
	if err := audio.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		audio = nil
	} else {
		defer audio.Cleanup()
	}

	host, err := office.New(cfg, night.DefaultOptions(), audio)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Night Shift")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetTPS(night.TicksPerSecond)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
