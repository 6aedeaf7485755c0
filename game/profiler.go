package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrProfilerBusy is returned when a capture is already running or on cooldown
var ErrProfilerBusy = errors.New("profiler busy")

// Profiler writes CPU profiles and execution traces for slow ticks and
// headless runs
type Profiler struct {
	mu          sync.Mutex
	isProfiling bool
	lastCapture time.Time
	cooldown    time.Duration
	dir         string
	log         zerolog.Logger
}

// NewProfiler creates the output directory and returns a profiler writing into it
func NewProfiler(dir string, log zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Profiler{
		cooldown: 10 * time.Second,
		dir:      dir,
		log:      log,
	}, nil
}

// Profile records a CPU profile and trace around run and returns the base
// path of the written files
func (p *Profiler) Profile(reason string, run func()) (string, error) {
	if !p.begin(false) {
		return "", ErrProfilerBusy
	}
	defer p.end()

	base := p.baseName(reason)
	cpu, err := os.Create(base + ".cpu.prof")
	if err != nil {
		return "", fmt.Errorf("create cpu profile: %w", err)
	}
	defer cpu.Close()
	tr, err := os.Create(base + ".trace")
	if err != nil {
		return "", fmt.Errorf("create trace: %w", err)
	}
	defer tr.Close()

	if err := pprof.StartCPUProfile(cpu); err != nil {
		return "", fmt.Errorf("start cpu profile: %w", err)
	}
	if err := trace.Start(tr); err != nil {
		pprof.StopCPUProfile()
		return "", fmt.Errorf("start trace: %w", err)
	}

	run()

	trace.Stop()
	pprof.StopCPUProfile()
	p.summarize(base)
	return base, nil
}

// Sample captures d worth of CPU profile in the background. Calls within the
// cooldown window are rejected.
func (p *Profiler) Sample(reason string, d time.Duration) error {
	if !p.begin(true) {
		return ErrProfilerBusy
	}
	base := p.baseName(reason)

	go func() {
		defer p.end()
		f, err := os.Create(base + ".cpu.prof")
		if err != nil {
			p.log.Error().Err(err).Msg("profiler: create cpu profile")
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			p.log.Error().Err(err).Msg("profiler: start cpu profile")
			return
		}
		time.Sleep(d)
		pprof.StopCPUProfile()
		p.summarize(base)
	}()
	return nil
}

// IsProfiling returns whether a capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) begin(respectCooldown bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isProfiling {
		return false
	}
	if respectCooldown && time.Since(p.lastCapture) < p.cooldown {
		return false
	}
	p.isProfiling = true
	p.lastCapture = time.Now()
	return true
}

func (p *Profiler) end() {
	p.mu.Lock()
	p.isProfiling = false
	p.mu.Unlock()
}

func (p *Profiler) baseName(reason string) string {
	timestamp := time.Now().Format("20060102-150405")
	return filepath.Join(p.dir, fmt.Sprintf("%s-%s", reason, timestamp))
}

// summarize logs where the profile went and the heap at capture time
func (p *Profiler) summarize(base string) {
	path := base + ".cpu.prof"
	info, err := os.Stat(path)
	if err != nil {
		p.log.Error().Err(err).Str("path", path).Msg("profiler: stat profile")
		return
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info().
		Str("path", path).
		Float64("size_kb", float64(info.Size())/1024).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Uint64("heap_objects", m.HeapObjects).
		Msgf("profile saved; view with: go tool pprof -http=:8080 %s", path)
}
