package game

import (
	"image/color"

	"sharpshots/geom"
)

const (
	// Tolerance is the hp below which an entity counts as dead
	Tolerance = 1.0e-5

	// PlayerSize is the circumradius of the player triangle
	PlayerSize = 3.0

	// EnemySize is the circumradius of the enemy pentagon
	EnemySize = 3.0

	// DropSize is the circumradius of a buff pickup
	DropSize = 2.0

	// PlayerExplosionDamage is dealt to everything near a respawning player
	PlayerExplosionDamage = 100.0

	// BaseBuffParticleChance is split between an entity's buffs each frame
	BaseBuffParticleChance = 0.1

	// MinPickupArea is the smallest body that can collect or push a pickup
	MinPickupArea = 10.0
)

// Timer keys
const (
	KeyRespawn = "respawn"
	KeyInvuln  = "invuln"
	KeyShoot   = "shoot"
	KeyReload  = "reload"
	KeyExhaust = "exhaust"
)

var (
	// BackgroundColor fills the screen each frame
	BackgroundColor = color.RGBA{20, 20, 20, 255}

	// PrimaryColor outlines foreground shapes
	PrimaryColor = color.RGBA{150, 150, 150, 255}

	// AccentColor draws the offset shadow under shapes
	AccentColor = color.RGBA{50, 50, 50, 255}

	// AccentOffset is the shadow displacement in world units
	AccentOffset = geom.Vec{X: 0.75, Y: 0.75}

	// MidHPGlow and LowHPGlow tint the health bar at half and no health
	MidHPGlow = color.NRGBA{255, 223, 0, 40}
	LowHPGlow = color.NRGBA{255, 0, 0, 40}
)
