package timer

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/manav03panchal/mindful/internal/model"
)

// Runner drives a Machine interactively in the terminal. It owns the 1 Hz
// tick source and the keyboard listener; the machine itself stays passive.
type Runner struct {
	machine *Machine
	display *Display
	tick    time.Duration

	pauseCh   chan struct{}
	finishCh  chan struct{}
	discardCh chan struct{}
}

// NewRunner creates a runner for the given machine.
func NewRunner(machine *Machine, display *Display, tick time.Duration) *Runner {
	if tick <= 0 {
		tick = time.Second
	}
	return &Runner{
		machine:   machine,
		display:   display,
		tick:      tick,
		pauseCh:   make(chan struct{}, 1),
		finishCh:  make(chan struct{}, 1),
		discardCh: make(chan struct{}, 1),
	}
}

// TogglePause requests a pause or resume.
func (r *Runner) TogglePause() {
	select {
	case r.pauseCh <- struct{}{}:
	default:
	}
}

// Finish requests a commit of the session.
func (r *Runner) Finish() {
	select {
	case r.finishCh <- struct{}{}:
	default:
	}
}

// Discard requests abandoning the session.
func (r *Runner) Discard() {
	select {
	case r.discardCh <- struct{}{}:
	default:
	}
}

// Run starts the countdown and blocks until the session is committed or
// discarded. It returns the emitted session record, or nil when discarded.
func (r *Runner) Run(ctx context.Context) (*model.Session, error) {
	if err := r.machine.Start(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Set up raw terminal mode for keyboard input
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err == nil {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
		go r.listenKeyboard(ctx)
	}

	// Handle OS signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	r.render()

	for {
		select {
		case <-ctx.Done():
			_ = r.machine.Discard()
			return nil, nil

		case <-sigCh:
			_ = r.machine.Discard()
			return nil, nil

		case <-r.discardCh:
			_ = r.machine.Discard()
			return nil, nil

		case <-r.finishCh:
			session, err := r.machine.Finish()
			if err != nil {
				// Finish before start or after discard; keep waiting.
				continue
			}
			r.renderSaved(session)
			return session, nil

		case <-r.pauseCh:
			switch r.machine.State() {
			case StateRunning:
				_ = r.machine.Pause()
			case StatePaused:
				_ = r.machine.Resume()
			}
			r.render()

		case <-ticker.C:
			// The machine rejects ticks outside Running, so a pause or
			// discard that races this tick cannot mutate the countdown.
			if r.machine.State() != StateRunning {
				continue
			}
			if err := r.machine.Tick(); err != nil {
				continue
			}
			if r.machine.State() == StateNaturallyFinished {
				r.renderNaturalFinish()
				continue
			}
			r.render()
		}
	}
}

// render updates the countdown display.
func (r *Runner) render() {
	if r.display == nil {
		return
	}
	r.display.MoveCursorHome()
	r.display.ClearScreen()
	os.Stdout.WriteString(r.display.RenderTimer(r.machine))
}

// renderNaturalFinish shows the commit-or-discard prompt.
func (r *Runner) renderNaturalFinish() {
	if r.display == nil {
		return
	}
	r.display.MoveCursorHome()
	r.display.ClearScreen()
	os.Stdout.WriteString(r.display.RenderNaturalFinish(r.machine.Config()))
}

// renderSaved shows the saved-session confirmation.
func (r *Runner) renderSaved(session *model.Session) {
	if r.display == nil {
		return
	}
	r.display.ClearScreen()
	os.Stdout.WriteString(r.display.RenderSaved(session) + "\n")
}

// listenKeyboard listens for keyboard input.
func (r *Runner) listenKeyboard(ctx context.Context) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			// Non-blocking read
			os.Stdin.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
			n, err := os.Stdin.Read(buf)
			if err != nil || n == 0 {
				continue
			}

			switch buf[0] {
			case ' ': // Space - pause/resume
				r.TogglePause()
			case 'f', 'F': // F - finish and save
				r.Finish()
			case 'd', 'D', 'q', 'Q', 3: // D, Q or Ctrl+C - discard
				r.Discard()
			}
		}
	}
}
