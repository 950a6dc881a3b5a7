package game

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/aegean/internal/clock"
	"github.com/samdwyer/aegean/internal/telemetry"
)

// Observer is called with a fresh snapshot after every dispatch.
type Observer func(State)

// Session is the single writer for one game. Dispatch is safe to call from
// any goroutine; actions are applied one at a time in arrival order.
type Session struct {
	id     uuid.UUID
	engine *Engine
	clock  clock.Scheduler
	log    zerolog.Logger
	tracer trace.Tracer

	mu        sync.Mutex
	state     State
	observers []Observer
}

// NewSession opens a lobby driven by engine. Timed transitions are
// completed through clk.
func NewSession(engine *Engine, clk clock.Scheduler, logger zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:     id,
		engine: engine,
		clock:  clk,
		log:    logger.With().Str("session", id.String()).Logger(),
		tracer: telemetry.Tracer("game"),
		state:  engine.Initial(),
	}
}

// ID returns the session identifier stamped on logs and spans.
func (s *Session) ID() string {
	return s.id.String()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to receive a snapshot after every dispatch.
func (s *Session) Subscribe(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Dispatch applies a and, if it started a timed transition, arranges for
// the matching CompleteTimed to be dispatched when the delay elapses.
func (s *Session) Dispatch(ctx context.Context, a Action) Decision {
	ctx, span := s.tracer.Start(ctx, "game.action")
	defer span.End()

	s.mu.Lock()
	before := s.state
	after, d := s.engine.Reduce(before, a)
	s.state = after
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("action", a.Name()),
		attribute.String("phase.before", before.Phase.String()),
		attribute.String("phase.after", after.Phase.String()),
		attribute.Bool("accepted", d.Accepted),
	)

	if d.Rejection != nil {
		span.SetAttributes(attribute.String("rejection.code", d.Rejection.Code))
		s.log.Debug().
			Str("action", a.Name()).
			Str("phase", before.Phase.String()).
			Str("code", d.Rejection.Code).
			Msg(d.Rejection.Message)
	} else {
		s.log.Debug().
			Str("action", a.Name()).
			Str("phase", after.Phase.String()).
			Int("turn", after.TurnIndex).
			Msg("action applied")
	}

	s.recordTransitions(span, before, after)

	if d.Scheduled != nil {
		s.scheduleCompletion(ctx, *d.Scheduled)
	}

	snapshot := after.Clone()
	for _, fn := range observers {
		fn(snapshot)
	}
	return d
}

// recordTransitions logs and traces day rollovers and the end of the game.
func (s *Session) recordTransitions(span trace.Span, before, after State) {
	if after.Day != before.Day && after.Phase != PhaseLobby {
		span.AddEvent("day.rollover", trace.WithAttributes(
			attribute.Int("day", after.Day),
			attribute.String("weather", after.Weather.String()),
		))
		s.log.Info().
			Int("day", after.Day).
			Str("weather", after.Weather.String()).
			Msg("new day")
	}

	if !before.Over() && after.Over() && after.Result != nil {
		span.AddEvent("game.over", trace.WithAttributes(
			attribute.String("reason", after.Result.Reason.String()),
			attribute.String("winner", after.Result.WinnerID),
		))
		s.log.Info().
			Str("reason", after.Result.Reason.String()).
			Str("winner", after.Result.WinnerID).
			Str("bankrupt", after.Result.BankruptID).
			Int("day", after.Day).
			Msg("game over")
	}
}

// scheduleCompletion delivers CompleteTimed once the pending delay elapses.
// The completion keeps the trace of the action that started it but not its
// cancellation: a started transition always finishes.
func (s *Session) scheduleCompletion(ctx context.Context, p Pending) {
	ctx = context.WithoutCancel(ctx)
	s.log.Debug().
		Str("timer", p.Kind.String()).
		Uint64("seq", p.Seq).
		Dur("delay", p.Duration).
		Time("deadline", p.Deadline()).
		Msg("timer scheduled")

	s.clock.AfterFunc(p.Duration, func() {
		d := s.Dispatch(ctx, CompleteTimed{Seq: p.Seq})
		if d.Rejection != nil && d.Rejection.Code != CodeGameOver {
			s.log.Warn().
				Uint64("seq", p.Seq).
				Str("code", d.Rejection.Code).
				Msg("timer completion rejected")
		}
	})
}
