package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"sharpshots/geom"
)

// EntityState is one entity as seen by a replay or spectator
type EntityState struct {
	ID       string       `msgpack:"id"`
	Kind     string       `msgpack:"k"`
	Tag      string       `msgpack:"t"`
	X        float64      `msgpack:"x"`
	Y        float64      `msgpack:"y"`
	Rotation float64      `msgpack:"r"`
	Radius   float64      `msgpack:"rad,omitempty"`
	Verts    []PointState `msgpack:"v,omitempty"`
	HP       float64      `msgpack:"hp"`
}

// PointState is a vertex in world units
type PointState struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// PlayerState holds the player's scoreboard values
type PlayerState struct {
	Score      float64 `msgpack:"score"`
	Lives      int     `msgpack:"lives"`
	HP         float64 `msgpack:"hp"`
	HPStat     float64 `msgpack:"hps"`
	Ammo       int     `msgpack:"ammo"`
	Reloading  bool    `msgpack:"rl"`
	HomeChance float64 `msgpack:"hc"`
	Dead       bool    `msgpack:"dead"`
}

// Snapshot is the full visible state after one frame
type Snapshot struct {
	Frame    int           `msgpack:"f"`
	Elapsed  float64       `msgpack:"ms"`
	ScrollX  float64       `msgpack:"sx"`
	ScrollY  float64       `msgpack:"sy"`
	Player   PlayerState   `msgpack:"p"`
	Entities []EntityState `msgpack:"e"`
}

func stateOf(e *Entity) EntityState {
	c := e.Center()
	st := EntityState{
		ID:       e.ID.String(),
		Kind:     e.Kind.String(),
		Tag:      e.Tag.String(),
		X:        c.X,
		Y:        c.Y,
		Rotation: e.Rotation,
		HP:       e.HP,
	}
	if e.Hit != nil {
		st.Radius = e.Hit.Radius
	}
	if e.Shape != nil {
		for _, v := range e.Shape.Poly.Vertices() {
			st.Verts = append(st.Verts, PointState{X: v.X, Y: v.Y})
		}
	}
	return st
}

// Snapshot captures every live entity and projectile
func (h *EntityHandler) Snapshot(scroll geom.Vec) Snapshot {
	s := Snapshot{
		Frame:    h.ctx.Frame,
		Elapsed:  h.ctx.Now(),
		ScrollX:  scroll.X,
		ScrollY:  scroll.Y,
		Entities: make([]EntityState, 0, len(h.entities)+len(h.projectiles)),
	}
	if p := h.player; p != nil {
		s.Player = PlayerState{HP: p.HP, HPStat: p.HPStat, HomeChance: p.HomeChance, Dead: p.IsDead()}
		if pilot := PilotOf(p); pilot != nil {
			s.Player.Score = pilot.Score
			s.Player.Lives = pilot.Lives
			s.Player.Ammo = pilot.Ammo
			s.Player.Reloading = pilot.Reloading()
		}
	}
	for _, list := range [][]*Entity{h.entities, h.projectiles} {
		for _, e := range list {
			if e.IsDead() {
				continue
			}
			s.Entities = append(s.Entities, stateOf(e))
		}
	}
	return s
}

// Encode returns the msgpack form of s
func (s Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(&s)
}

// DecodeSnapshot parses a msgpack snapshot
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Recorder appends snapshots to a stream as consecutive msgpack values
type Recorder struct {
	w     *bufio.Writer
	enc   *msgpack.Encoder
	count int
}

// NewRecorder writes snapshots to w
func NewRecorder(w io.Writer) *Recorder {
	bw := bufio.NewWriter(w)
	return &Recorder{w: bw, enc: msgpack.NewEncoder(bw)}
}

// Record appends one snapshot
func (r *Recorder) Record(s Snapshot) error {
	if err := r.enc.Encode(&s); err != nil {
		return fmt.Errorf("record frame %d: %w", s.Frame, err)
	}
	r.count++
	return nil
}

// Count returns how many snapshots were recorded
func (r *Recorder) Count() int {
	return r.count
}

// Flush writes buffered snapshots through
func (r *Recorder) Flush() error {
	return r.w.Flush()
}

// ReadSnapshots reads every snapshot from a recorded stream
func ReadSnapshots(r io.Reader) ([]Snapshot, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(r))
	var out []Snapshot
	for {
		var s Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("read snapshot %d: %w", len(out), err)
		}
		out = append(out, s)
	}
}
