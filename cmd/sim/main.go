package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"themeshooter/game"
)

// summary accumulates the run statistics printed at the end
type summary struct {
	ticks         int
	kills         int
	bossesKilled  int
	levelsCleared int
	gameOvers     int
	shotsFired    int
}

func (s *summary) add(st *game.State) {
	s.kills += st.CountEvents(game.EvtEnemyKilled)
	s.bossesKilled += st.CountEvents(game.EvtBossDefeated)
	s.levelsCleared += st.CountEvents(game.EvtLevelAdvanced)
	s.gameOvers += st.CountEvents(game.EvtGameOver)
	s.shotsFired += st.CountEvents(game.EvtShotFired)
}

func main() {
	ticks := flag.Int("ticks", 36000, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed, overrides the config file (0 picks one from the clock)")
	configPath := flag.String("config", "", "path to a YAML tuning file")
	profileDir := flag.String("profile", "", "write a CPU profile and trace into this directory")
	quiet := flag.Bool("quiet", false, "do not log phase transitions")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	config, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	config.Seed = resolveSeed(config.Seed, *seed, seedSet)
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	bounds := game.Bounds{W: float64(config.ScreenWidth), H: float64(config.ScreenHeight)}
	state := game.NewState(config, bounds, rand.New(rand.NewSource(config.Seed)))
	pilot := game.NewAutopilot(state)

	var sum summary
	run := func() {
		for i := 0; i < *ticks; i++ {
			game.Step(state, pilot.Poll(bounds), bounds)
			sum.ticks++
			sum.add(state)
			if !*quiet {
				game.LogTransitions(log.Logger, state, state.Events)
			}
		}
	}

	log.Info().
		Int("ticks", *ticks).
		Int64("seed", config.Seed).
		Int("width", config.ScreenWidth).
		Int("height", config.ScreenHeight).
		Msg("simulating")
	start := time.Now()
	if *profileDir != "" {
		profiler, err := game.NewProfiler(*profileDir, log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create profiler")
		}
		if _, err := profiler.Profile("sim", run); err != nil {
			log.Fatal().Err(err).Msg("profiling failed")
		}
	} else {
		run()
	}
	elapsed := time.Since(start)

	log.Info().
		Dur("elapsed", elapsed.Round(time.Millisecond)).
		Float64("ticks_per_sec", float64(sum.ticks)/elapsed.Seconds()).
		Msg("done")
	log.Info().
		Int("score", state.Score).
		Str("theme", state.Level().Name).
		Stringer("phase", state.Phase).
		Float64("health", state.Player.Health).
		Float64("max_health", state.Player.MaxHealth).
		Msg("final state")
	log.Info().
		Int("kills", sum.kills).
		Int("bosses", sum.bossesKilled).
		Int("levels_cleared", sum.levelsCleared).
		Int("game_overs", sum.gameOvers).
		Int("shots", sum.shotsFired).
		Msg("totals")
}

// resolveSeed picks the run seed: an explicit -seed wins, then a seed from the
// config file, then the flag default
func resolveSeed(configSeed, flagSeed int64, flagSet bool) int64 {
	if flagSet || configSeed == 0 {
		return flagSeed
	}
	return configSeed
}
