// Package screen runs a session in an ebiten window.
package screen

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sharpshots/game"
)

// fpsFloor is the rate below which a profile capture is attempted
const fpsFloor = 45

// Game adapts a session to ebiten.Game
type Game struct {
	session *game.Session
	canvas  *Canvas
	config  game.Config

	// FPS tracking
	fps       float64
	fpsFrames int
	fpsSince  time.Time
	started   time.Time
	profiler  *Profiler
	quit      bool
}

// New wraps session; profiler may be nil to disable drop captures
func New(session *game.Session, profiler *Profiler) *Game {
	config := session.Context().Config
	now := time.Now()
	return &Game{
		session:  session,
		config:   config,
		canvas:   NewCanvas(config.PixelsPerUnit(), config.ScreenHeight),
		fps:      float64(config.TicksPerSecond),
		fpsSince: now,
		started:  now,
		profiler: profiler,
	}
}

// Update advances the session one tick
func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.trackFPS()

	if g.session.Over() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			g.session.Restart()
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.quit = true
		}
		return nil
	}
	if err := g.session.Step(); err != nil && !errors.Is(err, game.ErrGameOver) {
		return err
	}
	if g.profiler != nil {
		g.profiler.Observe(g.session.Handler().Phases())
	}
	return nil
}

// trackFPS refreshes the rate every half second and captures a profile
// when it sags after the first few seconds
func (g *Game) trackFPS() {
	g.fpsFrames++
	elapsed := time.Since(g.fpsSince)
	if elapsed < 500*time.Millisecond {
		return
	}
	g.fps = float64(g.fpsFrames) / elapsed.Seconds()
	g.fpsFrames = 0
	g.fpsSince = time.Now()

	if g.profiler == nil {
		return
	}
	phases := g.profiler.Flush()
	if g.fps >= fpsFloor || time.Since(g.started) < 3*time.Second {
		return
	}
	h := g.session.Handler()
	drop := Drop{FPS: g.fps, Entities: len(h.Entities()), Projectiles: len(h.Projectiles()), Phases: phases}
	if err := g.profiler.Capture(drop); err == nil {
		slowest, d := phases.Slowest()
		log.Printf("fps drop detected (%.0f fps, %s took %s of %s), capturing profile", g.fps, slowest, d, phases.Total())
	}
}

// Draw renders the field and the HUD
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(game.BackgroundColor)
	g.canvas.Target(dst)
	g.session.Background().Draw(g.canvas)
	g.session.Handler().Draw(g.canvas, g.session.Scroll())
	g.session.Handler().DrawStatus(g.canvas)
	drawIndicators(dst, g.canvas, g.session)
	drawHUD(dst, g.session, g.fps)
}

// Layout keeps the logical screen at the configured size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
