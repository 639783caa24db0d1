package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang/glog"

	"github.com/trytobebee/gridsnake/pkg/config"
	"github.com/trytobebee/gridsnake/pkg/game"
	"github.com/trytobebee/gridsnake/pkg/renderer"
)

func main() {
	file := flag.String("file", "", "trace to replay (default: newest in "+config.RecordDir+")")
	fps := flag.Int("fps", config.ReplayFPS, "steps shown per second")
	flag.Parse()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *file, *fps); err != nil {
		glog.Errorf("replay: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, path string, fps int) error {
	if path == "" {
		newest, err := newestTrace(config.RecordDir)
		if err != nil {
			return err
		}
		path = newest
	}
	if fps <= 0 {
		fps = config.ReplayFPS
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	records, err := game.ReadTrace(f)
	if err != nil {
		return err
	}
	glog.Infof("replaying %d steps from %s", len(records), path)

	render := renderer.NewTerminalRenderer(os.Stdout)
	render.HideCursor()
	defer render.ShowCursor()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var stats game.Stats
	for _, rec := range records {
		stats.Steps = rec.Step
		if rec.Collision != game.NoCollision {
			stats.Resets++
		}
		s := rec.State()
		stats.Length = s.Length()
		if n := s.Tail.Len(); n > stats.LongestTail {
			stats.LongestTail = n
		}
		render.Title = fmt.Sprintf("📼 REPLAY %s  step %d", shortID(rec.SessionID), rec.Step)
		if err := render.Render(game.FrameOf(s, false), stats); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// newestTrace finds the most recently modified trace in dir
func newestTrace(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "trace_*.jsonl"))
	if err != nil {
		return "", fmt.Errorf("list traces: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no traces found in %s", dir)
	}

	modTime := func(p string) time.Time {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}
		}
		return info.ModTime()
	}
	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).After(modTime(matches[j]))
	})
	return matches[0], nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
