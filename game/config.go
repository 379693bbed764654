package game

// Config holds game configuration constants
type Config struct {
	// Scale is the side length of the visible playfield in world units
	Scale float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond int

	// TimeDivisor converts elapsed milliseconds into simulation dt units
	TimeDivisor float64

	// Seed seeds the shared random source (0 picks one from the clock)
	Seed int64

	// AsteroidSpawnChance is the per-tick probability of spawning an asteroid
	AsteroidSpawnChance float64

	// EnemySpawnChance is the per-tick probability of spawning an enemy
	EnemySpawnChance float64

	// MaxEnemies caps the number of live enemies
	MaxEnemies int

	// AsteroidDropChance is the chance an asteroid carries a buff
	AsteroidDropChance float64

	// EnemyDropChance is the chance an enemy carries a buff
	EnemyDropChance float64

	// CameraLag is the fraction of the distance to the player the camera closes each tick
	CameraLag float64

	// PlayerName is recorded next to the final score
	PlayerName string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Scale:               100,
		ScreenWidth:         800,
		ScreenHeight:        800,
		TicksPerSecond:      60,
		TimeDivisor:         60,
		AsteroidSpawnChance: 0.05,
		EnemySpawnChance:    0.004,
		MaxEnemies:          4,
		AsteroidDropChance:  0.15,
		EnemyDropChance:     0.5,
		CameraLag:           0.08,
		PlayerName:          "pilot",
	}
}

// FrameMillis returns the wall time covered by one tick
func (c Config) FrameMillis() float64 {
	return 1000 / float64(c.TicksPerSecond)
}

// DeltaTime returns the simulation dt for one tick
func (c Config) DeltaTime() float64 {
	return c.FrameMillis() / c.TimeDivisor
}

// PixelsPerUnit returns how many screen pixels one world unit covers
func (c Config) PixelsPerUnit() float64 {
	side := c.ScreenWidth
	if c.ScreenHeight < side {
		side = c.ScreenHeight
	}
	return float64(side) / c.Scale
}
