package arcade

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"themeshooter/game"
)

// Game adapts the simulation to ebiten.Game. It owns the platform glue
// (input polling, sounds, drawing) and hands everything else to game.Step.
type Game struct {
	config   game.Config
	state    *game.State
	input    *PlayerInput
	renderer *Renderer
	sounds   *SoundBank

	// bounds is the live canvas size reported by the last Layout call
	bounds game.Bounds

	// TPS drop detection
	profiler        *game.Profiler
	lastTPSDrop     time.Time
	tpsDropCooldown time.Duration
	startTime       time.Time
}

// NewGame creates a new game instance
func NewGame(config game.Config) *Game {
	bounds := game.Bounds{W: float64(config.ScreenWidth), H: float64(config.ScreenHeight)}

	profiler, err := game.NewProfiler("profiles", log.Logger)
	if err != nil {
		log.Warn().Err(err).Msg("profiling disabled")
	}

	return &Game{
		config:          config,
		state:           game.NewState(config, bounds, nil),
		input:           NewPlayerInput(config.JoystickRadius),
		renderer:        NewRenderer(),
		sounds:          NewSoundBank(config.Muted),
		bounds:          bounds,
		profiler:        profiler,
		tpsDropCooldown: 10 * time.Second,
		startTime:       time.Now(),
	}
}

// Update advances the simulation by one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowHitboxes = !debugState.ShowHitboxes
		debugState.ShowStats = debugState.ShowHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sounds.ToggleMute()
	}

	g.checkTPS()

	in := g.input.Poll(g.bounds)
	game.Step(g.state, in, g.bounds)

	game.LogTransitions(log.Logger, g.state, g.state.Events)
	g.sounds.Play(g.state.Events)
	return nil
}

// checkTPS warns and samples a CPU profile when the tick rate sags
func (g *Game) checkTPS() {
	tps := ebiten.ActualTPS()
	target := float64(g.config.TicksPerSecond)
	if tps <= 0 || tps >= target*0.9 {
		return
	}
	// Ignore the warm-up period after launch
	if time.Since(g.startTime) < 3*time.Second || time.Since(g.lastTPSDrop) < g.tpsDropCooldown {
		return
	}
	g.lastTPSDrop = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Warn().
		Float64("tps", tps).
		Int("target", g.config.TicksPerSecond).
		Int("enemies", len(g.state.Enemies)).
		Int("particles", len(g.state.Particles)).
		Uint32("num_gc", m.NumGC).
		Uint64("heap_kb", m.HeapAlloc/1024).
		Msg("TPS drop")

	if g.profiler == nil {
		return
	}
	reason := fmt.Sprintf("tps%.0f-enemies%d", tps, len(g.state.Enemies))
	if err := g.profiler.Sample(reason, 5*time.Second); err != nil {
		log.Error().Err(err).Msg("failed to capture profile")
	}
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, game.BuildFrame(g.state, g.bounds), g.input.Stick())
}

// Layout follows the window size so the playfield always fills the canvas
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.bounds = game.Bounds{W: float64(outsideWidth), H: float64(outsideHeight)}
	}
	return outsideWidth, outsideHeight
}
