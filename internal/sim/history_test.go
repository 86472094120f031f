package sim

import (
	"errors"
	"testing"
)

func sampleState(seed int64, n int) *State {
	st := NewState(VariantArcade, true, seed)
	for i := range n {
		st.Balls = append(st.Balls, &Ball{
			ID:     st.NextID,
			X:      float64(i) * 3,
			Y:      float64(i) * -2,
			VX:     float64(i),
			VY:     1.5,
			Radius: 6,
			Color:  "#5fafff",
			Alive:  true,
			Data:   map[string]any{"tag": i},
		})
		st.NextID++
	}
	return st
}

func statesEqual(a, b *State) bool {
	if a.NextID != b.NextID || a.Elapsed != b.Elapsed || a.Score != b.Score ||
		a.Escaped != b.Escaped || a.Variant != b.Variant ||
		a.CollisionsEnabled != b.CollisionsEnabled || a.RNG != b.RNG ||
		len(a.Balls) != len(b.Balls) {
		return false
	}
	for i := range a.Balls {
		x, y := a.Balls[i], b.Balls[i]
		if x.ID != y.ID || x.X != y.X || x.Y != y.Y || x.VX != y.VX ||
			x.VY != y.VY || x.Radius != y.Radius || x.Color != y.Color ||
			x.Alive != y.Alive || len(x.Data) != len(y.Data) {
			return false
		}
	}
	return true
}

func TestHistoryRoundTrip(t *testing.T) {
	h := NewHistory(10)
	st := sampleState(7, 4)
	st.Score = 12
	st.Elapsed = 3.25

	h.Save(5, st)

	// Mutate the original after saving; the snapshot must not alias it.
	st.Balls[0].X = 999
	st.Score = 0

	got, err := h.Restore(5)
	if err != nil {
		t.Fatalf("Restore(5) failed: %v", err)
	}
	if got.Score != 12 || got.Elapsed != 3.25 {
		t.Errorf("restored counters wrong: score=%d elapsed=%v", got.Score, got.Elapsed)
	}
	if got.Balls[0].X == 999 {
		t.Error("snapshot aliased live state")
	}

	// Restoring twice yields independent copies.
	again, err := h.Restore(5)
	if err != nil {
		t.Fatalf("second Restore(5) failed: %v", err)
	}
	again.Balls[0].X = -1
	if got.Balls[0].X == -1 {
		t.Error("restored states share ball storage")
	}
}

func TestHistoryMissIsError(t *testing.T) {
	h := NewHistory(10)
	h.Save(3, sampleState(1, 1))

	if _, err := h.Restore(4); !errors.Is(err, ErrFrameNotFound) {
		t.Errorf("Restore of unsaved frame should return ErrFrameNotFound, got %v", err)
	}
}

func TestHistoryOverwriteSameFrame(t *testing.T) {
	h := NewHistory(10)

	first := sampleState(1, 1)
	first.Score = 1
	h.Save(5, first)

	second := sampleState(1, 1)
	second.Score = 2
	h.Save(5, second)

	got, err := h.Restore(5)
	if err != nil {
		t.Fatalf("Restore(5) failed: %v", err)
	}
	if got.Score != 2 {
		t.Errorf("overwrite should win: want score 2, got %d", got.Score)
	}
}

func TestHistoryEviction(t *testing.T) {
	const capacity = 5
	h := NewHistory(capacity)

	for f := 0; f <= 9; f++ {
		st := sampleState(1, 1)
		st.Score = f
		h.Save(f, st)
	}

	// Frames below maxFrame-capacity+1 = 5 are evicted.
	if _, err := h.Restore(0); err == nil {
		t.Error("Restore(0) should fail after eviction")
	}
	if _, err := h.Restore(4); err == nil {
		t.Error("Restore(4) should fail after eviction")
	}
	got, err := h.Restore(9)
	if err != nil {
		t.Fatalf("Restore(9) should succeed: %v", err)
	}
	if got.Score != 9 {
		t.Errorf("restored wrong frame: score %d", got.Score)
	}
	if _, err := h.Restore(5); err != nil {
		t.Errorf("Restore(5) should succeed at the window edge: %v", err)
	}

	stats := h.Stats()
	if stats.Total != capacity || stats.MinFrame != 5 || stats.MaxFrame != 9 {
		t.Errorf("stats = %+v, want total=%d min=5 max=9", stats, capacity)
	}
}

func TestHistoryClosest(t *testing.T) {
	h := NewHistory(100)
	for _, f := range []int{10, 20, 30} {
		h.Save(f, sampleState(1, 1))
	}

	cases := []struct {
		request int
		want    int
	}{
		{0, 10},
		{12, 10},
		{19, 20},
		{25, 20}, // tie between 20 and 30 prefers the lower frame
		{26, 30},
		{99, 30},
	}
	for _, tc := range cases {
		got, ok := h.Closest(tc.request)
		if !ok || got != tc.want {
			t.Errorf("Closest(%d) = %d (ok=%v), want %d", tc.request, got, ok, tc.want)
		}
	}

	empty := NewHistory(10)
	if _, ok := empty.Closest(5); ok {
		t.Error("Closest on empty history should report not found")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(10)
	h.Save(1, sampleState(1, 1))
	h.Save(2, sampleState(1, 1))

	h.Clear()

	if _, err := h.Restore(1); err == nil {
		t.Error("Restore should fail after Clear")
	}
	stats := h.Stats()
	if stats.Total != 0 || stats.MaxFrame != -1 {
		t.Errorf("stats after Clear = %+v, want empty", stats)
	}

	// The store is usable again from frame zero.
	h.Save(0, sampleState(1, 1))
	if _, err := h.Restore(0); err != nil {
		t.Errorf("Save/Restore after Clear failed: %v", err)
	}
}

func TestStateCloneIsDeep(t *testing.T) {
	st := sampleState(3, 2)
	c := st.Clone()

	c.Balls[0].X = 123
	c.Balls[1].Data["tag"] = "changed"
	c.Score = 99

	if st.Balls[0].X == 123 {
		t.Error("clone shares ball storage")
	}
	if st.Balls[1].Data["tag"] == "changed" {
		t.Error("clone shares data bags")
	}
	if st.Score == 99 {
		t.Error("clone shares counters")
	}
	if !statesEqual(st, sampleState(3, 2)) {
		t.Error("original mutated by cloning")
	}
}
