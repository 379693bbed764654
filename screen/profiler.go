package screen

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"sharpshots/game"
)

var (
	// ErrCooldown is returned when a capture was taken too recently
	ErrCooldown = errors.New("profile capture on cooldown")

	// ErrBusy is returned while a capture is still running
	ErrBusy = errors.New("profile capture already running")
)

// Drop describes the frame rate sag that triggered a capture
type Drop struct {
	FPS         float64
	Entities    int
	Projectiles int
	Phases      game.PhaseTimes
}

func (d Drop) label() string {
	slowest, _ := d.Phases.Slowest()
	return fmt.Sprintf("fps%.0f-%s", d.FPS, slowest)
}

// Profiler averages the handler's phase breakdown over a window of frames
// and, when the frame rate drops, writes that breakdown next to a CPU
// profile and an execution trace
type Profiler struct {
	mu     sync.Mutex
	window game.PhaseTimes
	frames int

	busy     bool
	last     time.Time
	cooldown time.Duration
	length   time.Duration
	dir      string
}

// NewProfiler writes captures under dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		cooldown: 10 * time.Second,
		length:   5 * time.Second,
		dir:      dir,
	}
}

// Observe adds one update's phase timings to the current window
func (p *Profiler) Observe(ph game.PhaseTimes) {
	p.mu.Lock()
	p.window = p.window.Add(ph)
	p.frames++
	p.mu.Unlock()
}

// Flush returns the per-frame average of the current window and starts a new one
func (p *Profiler) Flush() game.PhaseTimes {
	p.mu.Lock()
	defer p.mu.Unlock()
	avg := p.window.Average(p.frames)
	p.window, p.frames = game.PhaseTimes{}, 0
	return avg
}

// Busy reports whether a capture is in progress
func (p *Profiler) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// Capture records d and starts a background CPU profile and trace
func (p *Profiler) Capture(d Drop) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.busy:
		return ErrBusy
	case time.Since(p.last) < p.cooldown:
		return ErrCooldown
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	base := filepath.Join(p.dir, fmt.Sprintf("drop-%s-%s", time.Now().Format("20060102-150405"), d.label()))
	if err := writeReport(base+".phases.txt", d); err != nil {
		return err
	}
	p.busy = true
	p.last = time.Now()

	go func() {
		if err := p.record(base); err != nil {
			log.Printf("profile %s: %v", base, err)
		}
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()
	return nil
}

// record runs the CPU profile and the trace over the same span
func (p *Profiler) record(base string) error {
	cpu, err := os.Create(base + ".cpu.prof")
	if err != nil {
		return err
	}
	defer cpu.Close()
	tr, err := os.Create(base + ".trace")
	if err != nil {
		return err
	}
	defer tr.Close()

	if err := pprof.StartCPUProfile(cpu); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	if err := trace.Start(tr); err != nil {
		pprof.StopCPUProfile()
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.length)
	trace.Stop()
	pprof.StopCPUProfile()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s saved; heap=%d KB objects=%d gc=%d", base, m.HeapAlloc/1024, m.HeapObjects, m.NumGC)
	return nil
}

func writeReport(path string, d Drop) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "fps %.1f\nentities %d\nprojectiles %d\nupdate %s\n%s\n",
		d.FPS, d.Entities, d.Projectiles, d.Phases.Total(), d.Phases)
	return err
}
