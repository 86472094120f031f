package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

// EventKind identifies one of the five simulation events a rule set can
// hook. The set is closed; there is no dynamic event registration.
type EventKind int

const (
	EventTick EventKind = iota // Start of every physics tick
	EventWallHit               // Ball bounced off the boundary
	EventBallCollision         // Resolved ball-ball contact
	EventSpawn                 // Ball created (spawn or duplicate)
	EventExit                  // Ball escaped through the gap
)

// String returns the event's registration name.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "onTick"
	case EventWallHit:
		return "onWallHit"
	case EventBallCollision:
		return "onBallCollision"
	case EventSpawn:
		return "onSpawn"
	case EventExit:
		return "onExit"
	default:
		return "unknown"
	}
}

// Handler signatures for the three event shapes.
type (
	TickHandler func(env *Env, dt float64)
	BallHandler func(env *Env, b *BallHandle)
	PairHandler func(env *Env, a, b *BallHandle)
)

// Script holds the user-registered event handlers. At most one handler
// per event kind; registering again replaces the prior handler.
// Handlers run synchronously inside the tick that triggered them. A
// panicking handler is recovered, logged, and the tick continues.
type Script struct {
	logger *log.Logger

	tick          TickHandler
	wallHit       BallHandler
	ballCollision PairHandler
	spawn         BallHandler
	exit          BallHandler
}

// NewScript creates an empty script host. A nil logger silences fault
// reporting.
func NewScript(logger *log.Logger) *Script {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Script{logger: logger}
}

// OnTick registers the start-of-tick handler, replacing any prior one.
func (s *Script) OnTick(h TickHandler) { s.tick = h }

// OnWallHit registers the wall-bounce handler, replacing any prior one.
func (s *Script) OnWallHit(h BallHandler) { s.wallHit = h }

// OnBallCollision registers the ball-contact handler, replacing any prior one.
func (s *Script) OnBallCollision(h PairHandler) { s.ballCollision = h }

// OnSpawn registers the ball-creation handler, replacing any prior one.
func (s *Script) OnSpawn(h BallHandler) { s.spawn = h }

// OnExit registers the gap-passage handler, replacing any prior one.
func (s *Script) OnExit(h BallHandler) { s.exit = h }

// Reset removes all registered handlers.
func (s *Script) Reset() {
	s.tick = nil
	s.wallHit = nil
	s.ballCollision = nil
	s.spawn = nil
	s.exit = nil
}

// invoke runs fn, containing any panic to this one handler invocation.
// The simulation never aborts a tick because a rule misbehaved.
func (s *Script) invoke(kind EventKind, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("rule handler panicked", "event", kind, "panic", r)
		}
	}()
	fn()
}

func (s *Script) emitTick(env *Env, dt float64) {
	if s.tick == nil {
		return
	}
	s.invoke(EventTick, func() { s.tick(env, dt) })
}

func (s *Script) emitWallHit(env *Env, b *BallHandle) {
	if s.wallHit == nil {
		return
	}
	s.invoke(EventWallHit, func() { s.wallHit(env, b) })
}

func (s *Script) emitBallCollision(env *Env, a, b *BallHandle) {
	if s.ballCollision == nil {
		return
	}
	s.invoke(EventBallCollision, func() { s.ballCollision(env, a, b) })
}

func (s *Script) emitSpawn(env *Env, b *BallHandle) {
	if s.spawn == nil {
		return
	}
	s.invoke(EventSpawn, func() { s.spawn(env, b) })
}

func (s *Script) emitExit(env *Env, b *BallHandle) {
	if s.exit == nil {
		return
	}
	s.invoke(EventExit, func() { s.exit(env, b) })
}
