package sim

// State is the full mutable simulation state: the live ball collection
// plus every global counter and flag. It is exclusively owned by the
// Sim during a tick; History only ever holds deep copies of it.
type State struct {
	Balls             []*Ball
	NextID            int // Strictly greater than every id ever issued
	Elapsed           float64
	Score             int
	Escaped           int // Balls that left through the gap
	Variant           Variant
	CollisionsEnabled bool
	RNG               RNG
}

// NewState creates an empty state seeded for deterministic spawning.
func NewState(variant Variant, collisions bool, seed int64) *State {
	return &State{
		Balls:             make([]*Ball, 0, 32),
		NextID:            1,
		Variant:           variant,
		CollisionsEnabled: collisions,
		RNG:               NewRNG(seed),
	}
}

// Clone returns a deep copy of the state. Every ball is cloned; no
// pointer is shared with the receiver.
func (st *State) Clone() *State {
	c := *st
	c.Balls = make([]*Ball, len(st.Balls))
	for i, b := range st.Balls {
		c.Balls[i] = b.Clone()
	}
	return &c
}

// LiveCount returns the number of balls not marked dead.
func (st *State) LiveCount() int {
	n := 0
	for _, b := range st.Balls {
		if b.Alive {
			n++
		}
	}
	return n
}

// prune removes dead balls from the collection, preserving the order of
// the survivors. Data bags of removed balls are cleared so nothing keeps
// them alive. Called exactly once per tick, after all per-ball work.
func (st *State) prune() {
	kept := st.Balls[:0]
	for _, b := range st.Balls {
		if b.Alive {
			kept = append(kept, b)
			continue
		}
		clear(b.Data)
	}
	// Drop trailing pointers so removed balls can be collected.
	for i := len(kept); i < len(st.Balls); i++ {
		st.Balls[i] = nil
	}
	st.Balls = kept
}
