package game

import (
	"image/color"
	"math"

	"sharpshots/geom"
)

// status bar layout, as fractions of the playfield side
const (
	statusMargin = 0.03
	hpBarHeight  = 0.02
	reloadHeight = 0.01
	barSlant     = 0.01
	ammoDrop     = 0.05
	reloadDrop   = 0.03
)

// HPGlow tints the health bar. It fades from the player's glow at full
// health to MidHPGlow, and past half health on toward LowHPGlow.
func HPGlow(hp, hpStat float64) color.NRGBA {
	if hpStat <= 0 {
		return LowHPGlow
	}
	rate := (hpStat - hp) / hpStat
	if hp > hpStat*0.5 {
		return Lerp(GetTagConfig(TagPlayer).Glow, MidHPGlow, rate)
	}
	return Lerp(MidHPGlow, LowHPGlow, rate)
}

// slantedBar returns a right-aligned bar whose top edge reaches barSlant
// further left than its bottom edge, anchored at its top-right corner
func slantedBar(x, y, width, height, scale float64) []geom.Point {
	return []geom.Point{
		{X: x, Y: y - height},
		{X: x, Y: y},
		{X: x - width - scale*barSlant, Y: y},
		{X: x - width, Y: y - height},
	}
}

// healthBar returns the bar frame and the filled part for frac of full health
func healthBar(x, y, scale, frac float64) (frame, fill []geom.Point) {
	full := scale / 2
	frame = slantedBar(x, y, full, scale*hpBarHeight, scale)
	fill = offset(slantedBar(x, y, full*frac, scale*hpBarHeight, scale), AccentOffset.Neg())
	return frame, fill
}

// reloadBar returns the frame and the remaining part of a reload that has
// left of its duration to go
func reloadBar(x, y, scale float64, ammoStat int, left float64) (frame, rest []geom.Point) {
	full := ProjectileSize * 2 * float64(ammoStat-1)
	frame = slantedBar(x, y, full, scale*reloadHeight, scale)
	rest = offset(slantedBar(x, y, full*left, scale*reloadHeight, scale), AccentOffset.Neg())
	return frame, rest
}

// DrawStatus draws the player's health bar, ammo pips and reload progress
// in the top right corner of the camera
func (h *EntityHandler) DrawStatus(cv Canvas) {
	p := h.player
	pilot := PilotOf(p)
	if pilot == nil {
		return
	}
	scale := h.ctx.Config.Scale
	x := scale * (1 - statusMargin)
	y := scale * (1 - statusMargin)

	frac := 0.0
	if p.HPStat > 0 {
		frac = math.Max(0, math.Min(1, p.HP/p.HPStat))
	}
	frame, fill := healthBar(x, y, scale, frac)
	cv.StrokePolygon(frame, AccentColor)
	glowPolygon(cv, fill, HPGlow(p.HP, p.HPStat), 1)
	cv.StrokePolygon(fill, PrimaryColor)

	y -= scale * ammoDrop
	pip := ProjectileSize / 2
	bx := x
	for i := 0; i < pilot.Ammo; i++ {
		cv.StrokeCircle(geom.Point{X: bx, Y: y}.Sub(AccentOffset), pip, AccentColor)
		cv.StrokeCircle(geom.Point{X: bx, Y: y}, pip, PrimaryColor)
		bx -= ProjectileSize * 2
	}

	if pilot.Reloading() {
		frame, rest := reloadBar(x, y-scale*reloadDrop, scale, pilot.AmmoStat, pilot.ReloadLeft(p))
		cv.StrokePolygon(frame, AccentColor)
		cv.StrokePolygon(rest, PrimaryColor)
	}
}
