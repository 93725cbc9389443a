// Package timer implements the guided session timer for Mindful.
//
// The state machine owns no goroutine and no clock: an external runner drives
// it through Tick at one call per second, which keeps every transition
// testable without real time. All transitions are mutex-guarded so a
// concurrent host cannot interleave mutations.
package timer

import (
	"sync"
	"time"

	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/logging"
	"github.com/manav03panchal/mindful/internal/model"
)

// State represents the timer state.
type State int

const (
	// StateIdle is the initial state; configuration is only mutable here.
	StateIdle State = iota
	// StateRunning counts down one second per Tick.
	StateRunning
	// StatePaused holds the countdown until Resume.
	StatePaused
	// StateNaturallyFinished is reached when the countdown hits zero.
	StateNaturallyFinished
	// StateUserFinished is terminal; a session record has been emitted.
	StateUserFinished
	// StateDiscarded is terminal; no record was emitted.
	StateDiscarded
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateNaturallyFinished:
		return "naturally-finished"
	case StateUserFinished:
		return "user-finished"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// MinRecordedSeconds is the floor applied to finished sessions: anything
// shorter is recorded as one minute.
const MinRecordedSeconds = 60

// Phase reports which part of the countdown is active.
type Phase int

const (
	PhaseWarmup Phase = iota
	PhaseMeditation
)

// Config holds the timer configuration, mutable only while idle.
type Config struct {
	Hours         int
	Minutes       int
	WarmupSeconds int
	Type          model.SessionType
}

// TotalSeconds returns the total countdown duration including warm-up.
func (c Config) TotalSeconds() int {
	return c.Hours*3600 + c.Minutes*60 + c.WarmupSeconds
}

// mainSeconds returns the duration of the meditation phase alone.
func (c Config) mainSeconds() int {
	return c.Hours*3600 + c.Minutes*60
}

// FeedbackEvent identifies a transition the host may react to with a cue.
type FeedbackEvent int

const (
	FeedbackStart FeedbackEvent = iota
	FeedbackPause
	FeedbackResume
	FeedbackFinish
	FeedbackNaturalFinish
)

// Feedback is an optional side-effect hook invoked on transitions.
// A nil hook never affects state-machine correctness.
type Feedback func(FeedbackEvent)

// Machine is the finite-state machine for one in-progress session.
type Machine struct {
	mu        sync.Mutex
	cfg       Config
	state     State
	remaining int
	startedAt time.Time
	feedback  Feedback
	now       func() time.Time
}

// NewMachine creates an idle machine with the given configuration.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		cfg:   cfg,
		state: StateIdle,
		now:   time.Now,
	}
}

// SetFeedback sets the transition feedback hook.
func (m *Machine) SetFeedback(fb Feedback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = fb
}

// SetClock overrides the machine's clock, for tests.
func (m *Machine) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Config returns the current configuration.
func (m *Machine) Config() Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// Configure replaces the configuration. Valid only while idle.
func (m *Machine) Configure(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateIdle {
		return m.invalid("configure")
	}
	m.cfg = cfg
	return nil
}

// Remaining returns the remaining seconds of the countdown.
func (m *Machine) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remaining
}

// StartedAt returns the session start timestamp, zero until started.
func (m *Machine) StartedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startedAt
}

// Progress returns (total-remaining)/total clamped to [0,1].
func (m *Machine) Progress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := m.cfg.TotalSeconds()
	if total <= 0 {
		return 0
	}
	progress := float64(total-m.remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// CurrentPhase reports warm-up while the countdown is still inside the
// leading warm-up seconds, meditation otherwise.
func (m *Machine) CurrentPhase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg.WarmupSeconds > 0 && m.remaining > m.cfg.mainSeconds() {
		return PhaseWarmup
	}
	return PhaseMeditation
}

// Start begins the countdown. Valid only from idle with a positive duration.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateIdle {
		return m.invalid("start")
	}
	if m.cfg.TotalSeconds() <= 0 {
		return errors.NewConfigurationInvalid()
	}

	m.startedAt = m.now()
	m.remaining = m.cfg.TotalSeconds()
	m.state = StateRunning
	m.emit(FeedbackStart)
	return nil
}

// Tick decrements the countdown by one second. Valid only while running.
// When the countdown reaches zero the machine enters NaturallyFinished.
func (m *Machine) Tick() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateRunning {
		return m.invalid("tick")
	}

	m.remaining--
	if m.remaining <= 0 {
		m.remaining = 0
		m.state = StateNaturallyFinished
		m.emit(FeedbackNaturalFinish)
	}
	return nil
}

// Pause halts the countdown. Valid only while running.
func (m *Machine) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateRunning {
		return m.invalid("pause")
	}
	m.state = StatePaused
	m.emit(FeedbackPause)
	return nil
}

// Resume continues the countdown. Valid only while paused.
func (m *Machine) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StatePaused {
		return m.invalid("resume")
	}
	m.state = StateRunning
	m.emit(FeedbackResume)
	return nil
}

// Finish commits the session. Valid from running, paused, or naturally
// finished; the last is the explicit commit path after the countdown ended.
// Elapsed time is clamped to a one-minute floor.
func (m *Machine) Finish() (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case StateRunning, StatePaused, StateNaturallyFinished:
	default:
		return nil, m.invalid("finish")
	}

	elapsed := m.cfg.TotalSeconds() - m.remaining
	if elapsed < MinRecordedSeconds {
		elapsed = MinRecordedSeconds
	}

	session := model.NewSession(m.startedAt, elapsed, m.cfg.Type)
	session.StartTime = m.startedAt
	session.EndTime = m.now()

	m.state = StateUserFinished
	m.emit(FeedbackFinish)
	return session, nil
}

// Discard abandons the session without a record. Valid from running, paused,
// or naturally finished.
func (m *Machine) Discard() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case StateRunning, StatePaused, StateNaturallyFinished:
	default:
		return m.invalid("discard")
	}
	m.state = StateDiscarded
	return nil
}

// ContinueAfterCompletion resets the machine to idle with its configuration
// preserved, signalling the caller to navigate away. Valid only after a
// committed finish.
func (m *Machine) ContinueAfterCompletion() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateUserFinished {
		return m.invalid("continue")
	}
	m.state = StateIdle
	m.startedAt = time.Time{}
	m.remaining = 0
	return nil
}

// invalid builds an InvalidTransitionError for the current state and logs it.
// Callers hold the mutex.
func (m *Machine) invalid(transition string) error {
	err := errors.NewInvalidTransition(m.state.String(), transition)
	logging.Error("invalid timer transition",
		logging.KeyState, m.state.String(),
		logging.KeyOperation, transition)
	return err
}

// emit invokes the feedback hook if set. Callers hold the mutex.
func (m *Machine) emit(event FeedbackEvent) {
	if m.feedback != nil {
		m.feedback(event)
	}
}
