package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sharpshots/game"
)

// KeyboardInput reads the player's intents from the keyboard. Arrows or
// WASD steer, space fires, R reloads.
type KeyboardInput struct{}

// Poll samples the keys held this frame
func (KeyboardInput) Poll(game.View) game.Intents {
	return game.Intents{
		Thrust:    pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		TurnLeft:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		TurnRight: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Shoot:     pressed(ebiten.KeySpace),
		Reload:    pressed(ebiten.KeyR),
	}
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
