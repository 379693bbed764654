package termview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sharpshots/game"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)

// Viewer runs a session in a terminal
type Viewer struct {
	screen  tcell.Screen
	session *game.Session
	keys    *Keys
	canvas  *Canvas
}

// NewViewer draws session onto screen. keys may be nil when the session
// is driven by another input provider.
func NewViewer(screen tcell.Screen, session *game.Session, keys *Keys) *Viewer {
	return &Viewer{
		screen:  screen,
		session: session,
		keys:    keys,
		canvas:  NewCanvas(screen, session.Context().Config.Scale),
	}
}

// Run ticks and redraws until ctx ends, the user quits, or the game is
// over and the user declines a restart.
func (v *Viewer) Run(ctx context.Context) error {
	tick := time.Duration(v.session.Context().Config.FrameMillis() * float64(time.Millisecond))
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}

		case <-ticker.C:
			if v.session.Over() {
				v.Draw()
				continue
			}
			if err := v.session.Step(); err != nil && !errors.Is(err, game.ErrGameOver) {
				return err
			}
			v.Draw()
		}
	}
}

// handle processes one terminal event and reports whether to keep running
func (v *Viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if v.session.Over() && ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'y', 'Y':
				v.session.Restart()
			case 'n', 'N', 'q':
				return false
			}
			return true
		}
		if v.keys != nil {
			v.keys.Press(ev.Key(), ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw renders one frame and the status line
func (v *Viewer) Draw() {
	v.screen.Clear()
	v.session.Background().Draw(v.canvas)
	h := v.session.Handler()
	h.Draw(v.canvas, v.session.Scroll())
	h.DrawStatus(v.canvas)

	w, _ := v.screen.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, 0, ' ', nil, hudStyle)
	}
	v.canvas.Text(0, 0, StatusLine(v.session), hudStyle)
	v.screen.Show()
}

// StatusLine summarizes the player's state in one row
func StatusLine(s *game.Session) string {
	p := s.Handler().Player()
	pilot := game.PilotOf(p)
	if pilot == nil {
		return ""
	}
	if s.Over() {
		return fmt.Sprintf(" GAME OVER  score %.0f  play again? (y/n)", pilot.Score)
	}
	ammo := fmt.Sprintf("%d/%d", pilot.Ammo, pilot.AmmoStat)
	if pilot.Reloading() {
		ammo = "reloading"
	}
	return fmt.Sprintf(" SCORE %.0f  LIVES %d  HP %.0f/%.0f  AMMO %s  HOMING %.0f%%",
		pilot.Score, pilot.Lives, p.HP, p.HPStat, ammo, p.HomeChance*100)
}
