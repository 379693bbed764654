package game

import (
	"image/color"

	"sharpshots/geom"
)

// BuffKind selects a pickup's effect
type BuffKind int

const (
	BuffHoming BuffKind = iota
	BuffDamage
	BuffHealth
	BuffSpeed
	BuffReload
)

const buffIncrScale = 40.0

// buffSpec describes one pickup kind
type buffSpec struct {
	Freq  int
	Sides int
	Value float64
	Tag   Tag
}

var buffSpecs = [...]buffSpec{
	BuffHoming: {Freq: 1, Sides: 4, Value: 4, Tag: TagHomingDrop},
	BuffDamage: {Freq: 3, Sides: 7, Value: 3, Tag: TagDamageDrop},
	BuffHealth: {Freq: 5, Sides: 6, Value: 1, Tag: TagHealthDrop},
	BuffSpeed:  {Freq: 5, Sides: 5, Value: 1, Tag: TagSpeedDrop},
	BuffReload: {Freq: 4, Sides: 3, Value: 1, Tag: TagReloadDrop},
}

var buffFreqs = func() []int {
	f := make([]int, len(buffSpecs))
	for i, s := range buffSpecs {
		f[i] = s.Freq
	}
	return f
}()

// Pickup is a stat modifier applied to whatever collects it
type Pickup struct {
	Kind  BuffKind
	Value float64
}

// String names the buff kind
func (k BuffKind) String() string {
	switch k {
	case BuffHoming:
		return "homing"
	case BuffDamage:
		return "damage"
	case BuffHealth:
		return "health"
	case BuffSpeed:
		return "speed"
	case BuffReload:
		return "reload"
	default:
		return "unknown"
	}
}

// GenBuff creates a random pickup at c weighted by kind frequency
func GenBuff(c geom.Point, rng Rand) *Entity {
	return NewBuff(BuffKind(rng.Discrete(buffFreqs)), c)
}

// NewBuff creates a pickup of kind centered at c
func NewBuff(kind BuffKind, c geom.Point) *Entity {
	spec := buffSpecs[kind]
	shape := must(geom.GenShape(spec.Sides, DropSize))
	shape.Recenter(c)

	e := NewEntity(KindBuff, spec.Tag, shape, geom.Vec{})
	e.Behavior = &Pickup{Kind: kind, Value: spec.Value}
	return e
}

// PickupOf returns the Pickup behind e, or nil
func PickupOf(e *Entity) *Pickup {
	p, _ := e.Behavior.(*Pickup)
	return p
}

// Glow returns the pickup's highlight color
func (p *Pickup) Glow() color.NRGBA {
	return GetTagConfig(buffSpecs[p.Kind].Tag).Glow
}

// Update drifts the pickup
func (p *Pickup) Update(e *Entity, _ *WorldContext, dt float64) error {
	e.Integrate(dt)
	return nil
}

// Apply mutates the receiver's stats once
func (p *Pickup) Apply(e *Entity) {
	switch p.Kind {
	case BuffHoming:
		if e.HomeChance < Tolerance {
			e.HomeChance = 0.1
		} else {
			e.HomeChance += (1 - e.HomeChance) * 0.1
		}
	case BuffDamage:
		e.Dmg += e.Dmg / buffIncrScale
	case BuffHealth:
		e.HP += (e.HPStat - e.HP) / 5
		e.HPStat += buffIncrScale / e.HPStat
	case BuffSpeed:
		e.MaxSpeed += 0.05
	case BuffReload:
		if e.Kind == KindAsteroid {
			return
		}
		e.ReloadTime *= 0.9
		if e.Timers != nil && e.Timers.Has(KeyReload) {
			mustOK(e.Timers.ChangeDuration(KeyReload, e.ReloadTime))
		}
	}
}
