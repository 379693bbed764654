package game

// Intents are the player's requested actions for one frame
type Intents struct {
	Thrust    bool
	TurnLeft  bool
	TurnRight bool
	Shoot     bool
	Reload    bool
}

// InputProvider yields the player's intents once per frame. The handler
// hands it a read-only view so computer pilots can see the field;
// device-backed providers ignore it.
type InputProvider interface {
	Poll(view View) Intents
}

// View is the part of the handler an input provider may inspect
type View interface {
	Player() *Entity
	Entities() []*Entity
	Projectiles() []*Entity
}

// NoInput never requests anything
type NoInput struct{}

// Poll returns empty intents
func (NoInput) Poll(View) Intents {
	return Intents{}
}

// ScriptedInput replays a fixed sequence of intents, then idles
type ScriptedInput struct {
	Frames []Intents
	next   int
}

// Poll returns the next scripted frame
func (s *ScriptedInput) Poll(View) Intents {
	if s.next >= len(s.Frames) {
		return Intents{}
	}
	in := s.Frames[s.next]
	s.next++
	return in
}

// InputFunc adapts a function to InputProvider
type InputFunc func(view View) Intents

// Poll calls f
func (f InputFunc) Poll(view View) Intents {
	return f(view)
}
