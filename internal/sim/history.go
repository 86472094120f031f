package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrFrameNotFound is returned when a restore targets a frame that was
// never saved or has been evicted.
var ErrFrameNotFound = errors.New("frame not found")

// Snapshot is a deep copy of simulation state captured at the instant
// before a frame's tick was applied. Taken is diagnostic only and plays
// no part in restore correctness.
type Snapshot struct {
	Frame int
	State *State
	Taken time.Time
}

// HistoryStats summarizes the stored frame window.
type HistoryStats struct {
	Total    int // Snapshots currently held
	MinFrame int // Oldest restorable frame
	MaxFrame int // Newest saved frame, -1 when empty
}

// History is a bounded, frame-keyed store of snapshots. It is an
// index-addressed ring: slot = frame % capacity with a monotonic base
// window, so eviction of old frames is O(1) instead of a map scan.
// History exclusively owns its snapshots; Save deep-copies in and
// Restore deep-copies out.
type History struct {
	capacity int
	slots    []*Snapshot
	minFrame int // Lower edge of the restorable window
	maxFrame int // -1 when empty
}

// NewHistory creates a history bounded to the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		capacity: capacity,
		slots:    make([]*Snapshot, capacity),
		maxFrame: -1,
	}
}

// Capacity returns the maximum number of frames retained.
func (h *History) Capacity() int { return h.capacity }

// Save stores a deep copy of st keyed by frame, overwriting any
// existing snapshot for the same frame. Saving advances the retention
// window: frames older than maxFrame-capacity+1 become unrestorable.
func (h *History) Save(frame int, st *State) {
	if frame < 0 || (h.maxFrame >= 0 && frame < h.minFrame) {
		return
	}
	h.slots[frame%h.capacity] = &Snapshot{
		Frame: frame,
		State: st.Clone(),
		Taken: time.Now(),
	}
	if frame > h.maxFrame {
		h.maxFrame = frame
	}
	if low := h.maxFrame - h.capacity + 1; low > h.minFrame {
		h.minFrame = low
	}
}

// Restore returns a fresh deep copy of the state stored for exactly the
// requested frame. A miss is an error; History never substitutes a
// different frame on its own.
func (h *History) Restore(frame int) (*State, error) {
	snap := h.lookup(frame)
	if snap == nil {
		return nil, fmt.Errorf("history: restore frame %d: %w", frame, ErrFrameNotFound)
	}
	return snap.State.Clone(), nil
}

// Contains reports whether an exact snapshot exists for the frame.
func (h *History) Contains(frame int) bool {
	return h.lookup(frame) != nil
}

func (h *History) lookup(frame int) *Snapshot {
	if h.maxFrame < 0 || frame < h.minFrame || frame > h.maxFrame {
		return nil
	}
	snap := h.slots[frame%h.capacity]
	if snap == nil || snap.Frame != frame {
		return nil
	}
	return snap
}

// Closest returns the stored frame with minimum absolute distance to
// the requested frame, preferring the lower frame on ties. It exists so
// callers can make frame substitution an explicit, observable decision.
func (h *History) Closest(frame int) (int, bool) {
	best := -1
	bestDist := 0
	for _, snap := range h.slots {
		if snap == nil || h.lookup(snap.Frame) == nil {
			continue
		}
		dist := snap.Frame - frame
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist || (dist == bestDist && snap.Frame < best) {
			best = snap.Frame
			bestDist = dist
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Stats reports how many snapshots are held and the restorable window.
func (h *History) Stats() HistoryStats {
	total := 0
	for _, snap := range h.slots {
		if snap != nil && h.lookup(snap.Frame) != nil {
			total++
		}
	}
	return HistoryStats{
		Total:    total,
		MinFrame: h.minFrame,
		MaxFrame: h.maxFrame,
	}
}

// Clear empties the store and resets frame bookkeeping.
func (h *History) Clear() {
	for i := range h.slots {
		h.slots[i] = nil
	}
	h.minFrame = 0
	h.maxFrame = -1
}
