package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Garsondee/night-shift/internal/game"
	"github.com/Garsondee/night-shift/internal/night"
	"github.com/Garsondee/night-shift/internal/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := game.ParseConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	t, err := terminal.New(screen, cfg, night.DefaultOptions())
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = t.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
