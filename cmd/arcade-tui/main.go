package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"themeshooter/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	mute := flag.Bool("mute", false, "disable sound effects")
	logPath := flag.String("log", "", "append transition logs to this file (the terminal is in use)")
	flag.Parse()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	config.Muted = config.Muted || *mute

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sfx, err := newSounds(config.Muted)
	if err != nil {
		// Non-fatal, game can run without sound
		log.Warn().Err(err).Msg("audio initialization failed")
	}
	defer sfx.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, screen, config, sfx)
}

// setupLog keeps log output off the terminal the game draws on
func setupLog(path string) error {
	if path == "" {
		log.Logger = zerolog.Nop()
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// run owns the game state; the poll goroutine only forwards terminal events
func run(ctx context.Context, screen tcell.Screen, config game.Config, sfx *sounds) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cols, rows := screen.Size()
	bounds := BoundsFor(cols, rows)
	state := game.NewState(config, bounds, nil)
	input := newTerminalInput()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(config.TicksPerSecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if k, ok := keyFor(ev); ok {
					input.press(k)
				}
			case *tcell.EventResize:
				screen.Sync()
				cols, rows = screen.Size()
				bounds = BoundsFor(cols, rows)
			}

		case <-ticker.C:
			game.Step(state, input.Poll(bounds), bounds)
			game.LogTransitions(log.Logger, state, state.Events)
			sfx.play(state.Events)
			draw(screen, Rasterize(game.BuildFrame(state, bounds), cols, rows))
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// draw copies the canvas to the screen
func draw(screen tcell.Screen, c *Canvas) {
	for y := 0; y < c.Rows; y++ {
		for x := 0; x < c.Cols; x++ {
			cell := c.Cells[y*c.Cols+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(cell.FG.R), int32(cell.FG.G), int32(cell.FG.B))).
				Background(tcell.NewRGBColor(int32(cell.BG.R), int32(cell.BG.G), int32(cell.BG.B)))
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
