package game

import (
	"math"

	"sharpshots/geom"
)

const (
	// MaxVertices bounds the outline of a generated asteroid
	MaxVertices = 15

	// ParentSizeThreshold is the area an asteroid must exceed to fragment
	ParentSizeThreshold = 35.0

	// SpawnAngle is the spread of child headings around the parent's, in degrees
	SpawnAngle = 45.0

	// MinSpawnRadius is the smallest child radius fragmentation produces
	MinSpawnRadius = 1.5

	// MaxChildren caps the fan-out of one fragmentation
	MaxChildren = 4

	childBudget = 0.8
	childCap    = 0.6
)

// Rock is the asteroid behavior
type Rock struct {
	// Radius is the generation radius, which bounds the child budget
	Radius float64

	shattered bool
}

// RockOf returns the Rock behind e, or nil
func RockOf(e *Entity) *Rock {
	r, _ := e.Behavior.(*Rock)
	return r
}

// NewAsteroid wraps an outline as an asteroid with hp three times its area
func NewAsteroid(ctx *WorldContext, shape *geom.Polygon, vel geom.Vec, radius float64) *Entity {
	e := NewEntity(KindAsteroid, TagAsteroid, shape, vel)
	e.HP = 3 * shape.Area()
	e.HPStat = e.HP
	e.Points = 0.1 * shape.Area()
	e.DropChance = ctx.Config.AsteroidDropChance
	e.Behavior = &Rock{Radius: radius}
	e.GenBuffs(1, ctx)
	return e
}

// GenAsteroid creates a jagged asteroid centered near (x, y). The first
// vertex sits at full radius; the rest sit between half and full radius.
func GenAsteroid(ctx *WorldContext, x, y float64, vel geom.Vec, rad float64) *Entity {
	rng := ctx.Rand
	n := rng.IntRange(6, MaxVertices+1)

	pts := make([]geom.Point, n)
	pts[0] = geom.Point{X: x + rad, Y: y}
	step := 360.0 / float64(n)
	for i := 1; i < n; i++ {
		dist := rng.Uniform(rad/2, rad)
		pts[i] = geom.Point{X: x, Y: y}.Add(geom.FromAngle(dist, step*float64(i)))
	}

	shape := geom.MustPolygon(pts)
	shape.Rotate(rng.Uniform(0, 360))
	return NewAsteroid(ctx, shape, vel, rad)
}

// GenRandomAsteroid spawns an asteroid just outside the camera, drifting inward
func GenRandomAsteroid(ctx *WorldContext, camera geom.Rect) *Entity {
	rng := ctx.Rand
	scale := ctx.Config.Scale
	rad := rng.Uniform(scale*0.03, scale*0.06)

	c := camera.Center()
	edge := rng.Uniform(0, 360)
	reach := camera.Width()/2*math.Sqrt2 + rad
	pos := c.Add(geom.FromAngle(reach, edge))

	inward := geom.Between(pos, c).Normalize()
	vel := inward.Rotate(rng.Uniform(-30, 30)).Scale(rng.Uniform(0.1, 0.5))
	return GenAsteroid(ctx, pos.X, pos.Y, vel, rad)
}

// CanSpawn reports whether the asteroid is big enough to fragment
func CanSpawn(e *Entity) bool {
	return e.Area() > ParentSizeThreshold
}

// genSpawnAngle draws a heading offset in [-SpawnAngle/2, SpawnAngle/2)
func genSpawnAngle(rng Rand) float64 {
	return rng.Uniform(-SpawnAngle/2, SpawnAngle/2)
}

// GenChildren fragments a dead asteroid. Each child radius is at most
// 0.6 of the parent and their sum is at most 0.8 of it, so every chain
// of fragmentations ends. A parent fragments at most once.
func GenChildren(parent *Entity, ctx *WorldContext) []*Entity {
	rock := RockOf(parent)
	if rock == nil || rock.shattered || !CanSpawn(parent) {
		return nil
	}
	rock.shattered = true

	rng := ctx.Rand
	budget := rock.Radius * childBudget
	limit := rock.Radius * childCap
	base := 0.0
	if parent.Vel.IsNonZero() {
		base = parent.Vel.RotAngle()
	}
	fan := 360.0 / MaxChildren

	var children []*Entity
	for i := 0; i < MaxChildren && budget >= MinSpawnRadius; i++ {
		hi := math.Min(budget, limit)
		if hi < MinSpawnRadius {
			break
		}
		r := rng.Uniform(MinSpawnRadius, hi)
		budget -= r

		turn := genSpawnAngle(rng) + fan*float64(i)
		vel := parent.Vel.Rotate(turn).Scale(rng.Uniform(0.75, 1.25))
		at := parent.Center().Add(geom.FromAngle(rock.Radius*0.5, base+turn))

		children = append(children, GenAsteroid(ctx, at.X, at.Y, vel, r))
	}

	separateSiblings(children)
	return children
}

// separateSiblings pushes overlapping fragments apart, half the MTV each
func separateSiblings(children []*Entity) {
	for i := 0; i < len(children)-1; i++ {
		for j := i + 1; j < len(children); j++ {
			a, b := children[i], children[j]
			mtv := a.overlap(b)
			if mtv.IsNonZero() {
				a.Translate(mtv.Scale(0.5))
				b.Translate(mtv.Scale(-0.5))
			}
		}
	}
}

// ChildRadius returns the total radius handed to children
func ChildRadius(children []*Entity) float64 {
	total := 0.0
	for _, c := range children {
		if r := RockOf(c); r != nil {
			total += r.Radius
		}
	}
	return total
}

// Update drifts and spins the asteroid
func (r *Rock) Update(e *Entity, _ *WorldContext, dt float64) error {
	e.Integrate(dt)
	return nil
}
