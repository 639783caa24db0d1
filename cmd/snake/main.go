package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
	"github.com/trytobebee/gridsnake/pkg/input"
	"github.com/trytobebee/gridsnake/pkg/renderer"
)

func main() {
	settings := config.Default()
	flag.Uint64Var(&settings.Seed, "seed", settings.Seed, "random seed for food placement")
	flag.Float64Var(&settings.Scale, "scale", settings.Scale, "seconds of real time per game tick")
	flag.BoolVar(&settings.AutoPlay, "autoplay", false, "start with the autopilot steering")
	flag.BoolVar(&settings.Record, "record", false, "write a step trace to "+config.RecordDir)
	inclusive := flag.Bool("inclusive-food-bound", false, "draw food indices from [0, free] so the top value places no food")
	flag.Parse()
	defer glog.Flush()

	settings.Scale = config.ClampScale(settings.Scale)
	if *inclusive {
		settings.FoodBound = config.FoodBoundInclusive
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, settings); err != nil {
		glog.Errorf("snake: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, settings config.Settings) error {
	glog.Infof("starting: seed=%d scale=%.3f food-bound=%s autoplay=%v",
		settings.Seed, settings.Scale, settings.FoodBound, settings.AutoPlay)

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return err
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	g := game.NewGame(settings, rand.New(rand.NewSource(settings.Seed)))

	if settings.Record {
		rec, err := game.NewRecorder(config.RecordDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				glog.Errorf("close trace: %v", err)
			}
		}()
		g.SetRecorder(rec)
	}

	inputChan := inputHandler.GetInputChan()

	// Frame loop ticker
	ticker := time.NewTicker(config.BaseTick)
	defer ticker.Stop()
	last := time.Now()

	if err := render.Render(g.Frame(), g.Stats()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	for {
		redraw := false

		select {
		case <-ctx.Done():
			return nil

		case inputEvent, ok := <-inputChan:
			if !ok {
				return fmt.Errorf("keyboard input closed")
			}
			switch {
			case input.IsQuit(inputEvent):
				fmt.Println("\n  Thanks for playing! 👋")
				logSummary(g)
				return nil
			case input.IsRestart(inputEvent):
				g.Reset()
				redraw = true
			case input.IsPause(inputEvent):
				g.TogglePause()
				redraw = true
			case input.IsAutoPlay(inputEvent):
				g.ToggleAutoPlay()
			default:
				if h, isValid := input.ParseHeading(inputEvent); isValid {
					if !g.SetHeading(h) {
						glog.V(2).Infof("heading %s ignored, pending %s", h, g.Pending())
					}
				}
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			redraw = g.Advance(dt)
		}

		if redraw {
			if err := render.Render(g.Frame(), g.Stats()); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
	}
}

func logSummary(g *game.Game) {
	s := g.Stats()
	glog.Infof("session over: steps=%d resets=%d eaten=%d longest=%d",
		s.Steps, s.Resets, s.FoodEaten, s.LongestTail+1)
}
