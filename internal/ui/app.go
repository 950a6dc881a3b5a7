package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/aegean/internal/game"
	"github.com/samdwyer/aegean/internal/telemetry"
)

// frameInterval paces redraws while a timed transition is running so the
// progress bar moves between input events.
const frameInterval = 100 * time.Millisecond

// App runs the interactive loop: it renders snapshots of a session and
// dispatches the actions bound to key presses.
type App struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	keys     *Keymap
	log      zerolog.Logger
}

// NewApp wires a session to a screen.
func NewApp(screen *Screen, session *game.Session, keys *Keymap, logger zerolog.Logger) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		keys:     keys,
		log:      logger.With().Str("session", session.ID()).Logger(),
	}
}

// Run blocks until the player quits, the screen closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("ui").Start(ctx, "ui.run")
	snap := a.session.Snapshot()
	span.SetAttributes(
		attribute.String("session.id", a.session.ID()),
		attribute.Int("players", len(snap.Players)),
		attribute.Int("board.nodes", len(snap.Nodes)),
	)
	span.End()

	// Timer completions arrive on other goroutines; wake the event loop so
	// the new state is drawn.
	a.session.Subscribe(func(game.State) { a.screen.Interrupt() })

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.animate(ctx)

	for {
		s := a.session.Snapshot()
		a.renderer.Render(s, a.keys.Help(s))

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if quit(ev) {
				a.log.Info().Str("phase", s.Phase.String()).Msg("player quit")
				return nil
			}
			action, ok := a.keys.ActionFor(s, ev)
			if !ok {
				continue
			}
			if d := a.session.Dispatch(ctx, action); d.Rejection != nil {
				a.log.Debug().Str("action", action.Name()).Str("code", d.Rejection.Code).Msg("key rejected")
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// animate interrupts the event loop on every frame while a timer is
// pending, and once more when ctx is done so Run can return.
func (a *App) animate(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.screen.Interrupt()
			return
		case <-ticker.C:
			if a.session.Snapshot().Pending != nil {
				a.screen.Interrupt()
			}
		}
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
