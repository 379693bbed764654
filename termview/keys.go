package termview

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"sharpshots/game"
)

// holdFrames is how long one key press keeps its intent alive. Terminals
// report presses and repeats but never releases.
const holdFrames = 8

// Keys turns terminal key presses into intents. Arrows or WASD steer,
// space fires, r reloads.
type Keys struct {
	mu   sync.Mutex
	held map[string]int
}

// NewKeys creates an idle key map
func NewKeys() *Keys {
	return &Keys{held: make(map[string]int)}
}

// Press records a key press
func (k *Keys) Press(key tcell.Key, r rune) {
	action := ""
	switch key {
	case tcell.KeyUp:
		action = "thrust"
	case tcell.KeyLeft:
		action = "left"
	case tcell.KeyRight:
		action = "right"
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			action = "thrust"
		case 'a', 'A':
			action = "left"
		case 'd', 'D':
			action = "right"
		case ' ':
			action = "shoot"
		case 'r', 'R':
			action = "reload"
		}
	}
	if action == "" {
		return
	}
	k.mu.Lock()
	k.held[action] = holdFrames
	k.mu.Unlock()
}

// Poll returns the held intents and ages them by one frame
func (k *Keys) Poll(game.View) game.Intents {
	k.mu.Lock()
	defer k.mu.Unlock()
	in := game.Intents{
		Thrust:    k.held["thrust"] > 0,
		TurnLeft:  k.held["left"] > 0,
		TurnRight: k.held["right"] > 0,
		Shoot:     k.held["shoot"] > 0,
		Reload:    k.held["reload"] > 0,
	}
	for a, n := range k.held {
		if n <= 1 {
			delete(k.held, a)
			continue
		}
		k.held[a] = n - 1
	}
	return in
}
