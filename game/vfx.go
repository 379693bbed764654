package game

import (
	"image/color"
	"math"

	"sharpshots/geom"
)

var exhaustColors = []color.NRGBA{
	{255, 50, 50, 40},
	{255, 69, 0, 40},
	{255, 191, 0, 40},
	{255, 168, 18, 40},
}

var exhaustFade = color.NRGBA{0, 0, 0, 40}

// Effect is a cosmetic particle. Effects never touch the simulation.
type Effect interface {
	Update(dt float64)
	Dead() bool
	Draw(cv Canvas, scroll geom.Vec)
}

// Glow is a drifting, shrinking circle that can fade toward a second color
type Glow struct {
	Pos    geom.Point
	Vel    geom.Vec
	Radius float64
	Color  color.NRGBA

	lerpTo   *color.NRGBA
	lerpRate float64
	deadRad  float64
}

// Update drifts and shrinks the glow
func (g *Glow) Update(dt float64) {
	g.Pos = g.Pos.Add(g.Vel)
	g.Radius -= g.Radius * 0.075 * dt
	if g.lerpTo != nil {
		g.Color = Lerp(g.Color, *g.lerpTo, dt/g.lerpRate)
	}
}

// Dead reports whether the glow has shrunk away
func (g *Glow) Dead() bool {
	return g.Radius < g.deadRad
}

// Draw renders an outline ring with a soft halo
func (g *Glow) Draw(cv Canvas, scroll geom.Vec) {
	c := g.Pos.Sub(scroll)
	cv.StrokeCircle(c, g.Radius, PrimaryColor)
	glowCircle(cv, c, g.Radius*3, g.Color, 1)
}

// Spark is a decelerating streak
type Spark struct {
	Pos geom.Point
	Vel geom.Vec

	deadLen float64
}

// Update moves the spark and bleeds off a tenth of its speed per unit dt
func (s *Spark) Update(dt float64) {
	s.Pos = s.Pos.Add(s.Vel)
	s.Vel = s.Vel.Grow(-s.Vel.Norm() * 0.1 * dt)
}

// Dead reports whether the spark has slowed to nothing
func (s *Spark) Dead() bool {
	return s.Vel.Norm() <= s.deadLen
}

// Draw renders a diamond stretched along the velocity
func (s *Spark) Draw(cv Canvas, scroll geom.Vec) {
	mag := s.Vel.Norm()
	if mag == 0 {
		return
	}
	dir := s.Vel.Scale(1 / mag)
	side := dir.Perp()
	p := s.Pos.Sub(scroll)
	cv.StrokePolygon([]geom.Point{
		p.Add(dir.Scale(mag)),
		p.Add(side.Scale(mag * 0.25)),
		p.Add(dir.Scale(-mag * 1.5)),
		p.Add(side.Scale(-mag * 0.25)),
	}, PrimaryColor)
}

// Pulse is a pair of rings racing outward to the same radius
type Pulse struct {
	Pos    geom.Point
	Inner  float64
	Outer  float64
	MaxR   float64
	Color  *color.NRGBA
	deadAt float64
}

// Update grows both rings; the outer one moves faster
func (p *Pulse) Update(dt float64) {
	p.Outer += (p.MaxR - p.Outer) * 0.5 * dt
	p.Outer = math.Min(p.Outer, p.MaxR)
	p.Inner += (p.MaxR - p.Inner) * 0.4 * dt
}

// Dead reports whether the rings have merged
func (p *Pulse) Dead() bool {
	return p.Outer-p.Inner <= p.deadAt
}

// Draw renders both rings
func (p *Pulse) Draw(cv Canvas, scroll geom.Vec) {
	c := p.Pos.Sub(scroll)
	cv.StrokeCircle(c, p.Inner, PrimaryColor)
	cv.StrokeCircle(c, p.Outer, PrimaryColor)
	if p.Color != nil {
		glowCircle(cv, c, p.Outer, *p.Color, 1)
	}
}

// Lerp interpolates every channel of a toward b by t, clamped to [0,255]
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	ch := func(x, y uint8) uint8 {
		v := float64(x) + (float64(y)-float64(x))*t
		return uint8(math.Max(0, math.Min(255, math.Trunc(v))))
	}
	return color.NRGBA{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: ch(a.A, b.A),
	}
}

// VFX owns every live effect
type VFX struct {
	rng     Rand
	effects []Effect

	exhaustRad float64
	sparkDead  float64
	sparkMax   float64
	pulseDead  float64
}

// NewVFX creates an empty effect list sized for a playfield of scale units
func NewVFX(rng Rand, scale float64) *VFX {
	return &VFX{
		rng:        rng,
		exhaustRad: scale * 0.005,
		sparkDead:  scale * 0.002,
		sparkMax:   scale * 0.05,
		pulseDead:  scale * 0.005,
	}
}

// Len returns the number of live effects
func (v *VFX) Len() int {
	return len(v.effects)
}

// Effects returns the live effects
func (v *VFX) Effects() []Effect {
	return v.effects
}

// Clear drops every effect
func (v *VFX) Clear() {
	v.effects = v.effects[:0]
}

// Add appends effects
func (v *VFX) Add(effects ...Effect) {
	v.effects = append(v.effects, effects...)
}

// AddGlow adds a plain glow particle
func (v *VFX) AddGlow(p geom.Point, vel geom.Vec, radius float64, clr color.NRGBA) {
	v.Add(&Glow{Pos: p, Vel: vel, Radius: radius, Color: clr, deadRad: v.exhaustRad * 0.3})
}

// AddExhaust emits a fading engine glow behind a ship moving at vel
func (v *VFX) AddExhaust(p geom.Point, vel geom.Vec) {
	clr := exhaustColors[v.rng.Intn(len(exhaustColors))]
	back := vel.Neg()
	p = p.Add(back)
	back = back.Scale(v.rng.Uniform(0.25, 0.5)).Rotate(v.rng.Uniform(-22.5, 22.5))
	radius := v.rng.Uniform(v.exhaustRad/2, v.exhaustRad)

	fade := exhaustFade
	v.Add(&Glow{
		Pos:      p,
		Vel:      back,
		Radius:   radius,
		Color:    clr,
		lerpTo:   &fade,
		lerpRate: 5,
		deadRad:  v.exhaustRad * 0.3,
	})
}

// AddSparks emits n sparks around vel within angleRange degrees
func (v *VFX) AddSparks(n int, p geom.Point, vel geom.Vec, angleRange float64) {
	for i := 0; i < n; i++ {
		sv := vel.Rotate(v.rng.Float64()*angleRange - angleRange/2)
		sv = sv.Scale(v.rng.Uniform(0.5, 2)).Clamp(v.sparkMax)
		v.Add(&Spark{Pos: p, Vel: sv, deadLen: v.sparkDead})
	}
}

// AddPulse adds an expanding double ring, optionally glowing
func (v *VFX) AddPulse(p geom.Point, radius float64, glow *color.NRGBA) {
	v.Add(&Pulse{Pos: p, MaxR: radius, Outer: radius / 2, Color: glow, deadAt: v.pulseDead})
}

// GenExplosion adds a burst of sparks and a pulse of the given size
func (v *VFX) GenExplosion(p geom.Point, size float64) {
	burst := geom.Vec{X: size}.Clamp(1.5)
	v.AddSparks(v.rng.IntRange(5, 8), p, burst, 360)
	v.AddPulse(p, size, nil)
}

// GenBuffParticles occasionally sheds a glow for each buff e carries
func (v *VFX) GenBuffParticles(e *Entity) {
	if len(e.Buffs) == 0 {
		return
	}
	chance := BaseBuffParticleChance / float64(len(e.Buffs))
	for _, b := range e.Buffs {
		if v.rng.Float64() >= chance {
			continue
		}
		mag := v.rng.Float64() - 0.5
		vel := geom.FromAngle(mag, v.rng.Uniform(0, 360))
		size := v.rng.Uniform(0.5, 1)
		clr := GetTagConfig(b.Tag).Glow
		v.AddGlow(e.Center(), vel, size, clr)
	}
}

// Update advances every effect and drops the dead ones
func (v *VFX) Update(dt float64) {
	live := v.effects[:0]
	for _, e := range v.effects {
		e.Update(dt)
		if !e.Dead() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(v.effects); i++ {
		v.effects[i] = nil
	}
	v.effects = live
}

// Draw renders every effect
func (v *VFX) Draw(cv Canvas, scroll geom.Vec) {
	for _, e := range v.effects {
		e.Draw(cv, scroll)
	}
}
