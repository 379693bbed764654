package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"sharpshots/game"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawHUD prints the player's stats in the top left corner and the game
// over prompt in the middle of the screen
func drawHUD(dst *ebiten.Image, s *game.Session, fps float64) {
	p := s.Handler().Player()
	pilot := game.PilotOf(p)
	if pilot == nil {
		return
	}

	ammo := fmt.Sprintf("%d/%d", pilot.Ammo, pilot.AmmoStat)
	if pilot.Reloading() {
		ammo = "reloading"
	}
	lines := []string{
		fmt.Sprintf("SCORE  %.0f", pilot.Score),
		fmt.Sprintf("LIVES  %d", pilot.Lives),
		fmt.Sprintf("HP     %.0f/%.0f", p.HP, p.HPStat),
		fmt.Sprintf("AMMO   %s", ammo),
		fmt.Sprintf("HOMING %.0f%%", p.HomeChance*100),
		fmt.Sprintf("FPS    %.0f", fps),
	}
	for i, l := range lines {
		printAt(dst, l, 10, 10+float64(i)*16, color.White)
	}

	if s.Over() {
		w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
		msg := fmt.Sprintf("GAME OVER  score %.0f  play again? (Y/N)", pilot.Score)
		printAt(dst, msg, float64(w)/2-float64(len(msg))*3.5, float64(h)/2, color.RGBA{255, 80, 80, 255})
	}
}

func printAt(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}
