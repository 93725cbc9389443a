package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/mindful/internal/errors"
	"github.com/manav03panchal/mindful/internal/model"
)

func newTestMachine(cfg Config) *Machine {
	m := NewMachine(cfg)
	m.SetClock(func() time.Time { return time.Date(2026, 8, 12, 7, 0, 0, 0, time.Local) })
	return m
}

// tick advances the machine n seconds, failing the test on any tick error.
func tick(t *testing.T, m *Machine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, m.Tick())
	}
}

// =============================================================================
// Config Tests
// =============================================================================

func TestConfigTotalSeconds(t *testing.T) {
	cfg := Config{Hours: 1, Minutes: 30, WarmupSeconds: 15}
	assert.Equal(t, 5415, cfg.TotalSeconds())

	assert.Equal(t, 0, Config{}.TotalSeconds())
}

// =============================================================================
// Start Tests
// =============================================================================

func TestStartFromIdle(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})

	require.NoError(t, m.Start())
	assert.Equal(t, StateRunning, m.State())
	assert.Equal(t, 600, m.Remaining())
	assert.False(t, m.StartedAt().IsZero())
}

func TestStartWithZeroDuration(t *testing.T) {
	m := newTestMachine(Config{})

	err := m.Start()
	require.Error(t, err)

	var ue *errors.UserError
	assert.True(t, errors.As(err, &ue), "zero duration is a configuration error")
	assert.Equal(t, StateIdle, m.State(), "failed start leaves the machine idle")
}

func TestStartTwice(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())

	err := m.Start()
	assert.True(t, errors.IsInvalidTransition(err))
}

func TestConfigureOnlyWhileIdle(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Configure(Config{Minutes: 20}))
	assert.Equal(t, 20, m.Config().Minutes)

	require.NoError(t, m.Start())
	err := m.Configure(Config{Minutes: 5})
	assert.True(t, errors.IsInvalidTransition(err))
}

// =============================================================================
// Countdown Tests
// =============================================================================

func TestCountdownToNaturalFinish(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())

	tick(t, m, 599)
	assert.Equal(t, StateRunning, m.State())
	assert.Equal(t, 1, m.Remaining())

	require.NoError(t, m.Tick())
	assert.Equal(t, StateNaturallyFinished, m.State())
	assert.Equal(t, 0, m.Remaining())

	// No further ticks once finished
	err := m.Tick()
	assert.True(t, errors.IsInvalidTransition(err))
	assert.Equal(t, 0, m.Remaining())
}

func TestPauseFreezesCountdown(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())
	tick(t, m, 30)

	require.NoError(t, m.Pause())
	assert.Equal(t, StatePaused, m.State())

	// Ticks while paused are rejected and do not mutate the countdown
	err := m.Tick()
	assert.True(t, errors.IsInvalidTransition(err))
	assert.Equal(t, 570, m.Remaining())

	require.NoError(t, m.Resume())
	tick(t, m, 10)
	assert.Equal(t, 560, m.Remaining())
}

func TestPauseResumeInvalidStates(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})

	assert.True(t, errors.IsInvalidTransition(m.Pause()), "pause before start")
	assert.True(t, errors.IsInvalidTransition(m.Resume()), "resume while idle")

	require.NoError(t, m.Start())
	assert.True(t, errors.IsInvalidTransition(m.Resume()), "resume while running")
}

func TestProgress(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	assert.Equal(t, 0.0, m.Progress(), "no progress before start")

	require.NoError(t, m.Start())
	tick(t, m, 300)
	assert.InDelta(t, 0.5, m.Progress(), 0.001)

	tick(t, m, 300)
	assert.Equal(t, 1.0, m.Progress())
}

func TestWarmupPhase(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10, WarmupSeconds: 30})
	require.NoError(t, m.Start())

	assert.Equal(t, PhaseWarmup, m.CurrentPhase())
	tick(t, m, 29)
	assert.Equal(t, PhaseWarmup, m.CurrentPhase())
	tick(t, m, 1)
	assert.Equal(t, PhaseMeditation, m.CurrentPhase())
}

func TestNoWarmupStartsInMeditation(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())
	assert.Equal(t, PhaseMeditation, m.CurrentPhase())
}

// =============================================================================
// Finish Tests
// =============================================================================

func TestFinishEarlyAppliesMinimumDuration(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())
	tick(t, m, 30)

	session, err := m.Finish()
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, MinRecordedSeconds, session.DurationSeconds, "30s elapsed records as one minute")
	assert.Equal(t, StateUserFinished, m.State())
	assert.Equal(t, model.SessionType(""), session.Type)
}

func TestFinishRecordsElapsed(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10, Type: model.TypeBreathing})
	require.NoError(t, m.Start())
	tick(t, m, 300)

	session, err := m.Finish()
	require.NoError(t, err)
	assert.Equal(t, 300, session.DurationSeconds)
	assert.Equal(t, model.TypeBreathing, session.Type)
	assert.True(t, session.Completed)
	assert.Equal(t, m.StartedAt(), session.StartTime)
	assert.False(t, session.EndTime.IsZero())
}

func TestFinishFromPaused(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())
	tick(t, m, 120)
	require.NoError(t, m.Pause())

	session, err := m.Finish()
	require.NoError(t, err)
	assert.Equal(t, 120, session.DurationSeconds)
}

func TestFinishAfterNaturalFinish(t *testing.T) {
	m := newTestMachine(Config{Minutes: 1})
	require.NoError(t, m.Start())
	tick(t, m, 60)
	require.Equal(t, StateNaturallyFinished, m.State())

	session, err := m.Finish()
	require.NoError(t, err)
	assert.Equal(t, 60, session.DurationSeconds)
	assert.Equal(t, StateUserFinished, m.State())
}

func TestFinishInvalidStates(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})

	_, err := m.Finish()
	assert.True(t, errors.IsInvalidTransition(err), "finish before start")

	require.NoError(t, m.Start())
	_, err = m.Finish()
	require.NoError(t, err)

	_, err = m.Finish()
	assert.True(t, errors.IsInvalidTransition(err), "finish twice")
}

// =============================================================================
// Discard Tests
// =============================================================================

func TestDiscard(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	require.NoError(t, m.Start())
	tick(t, m, 30)

	require.NoError(t, m.Discard())
	assert.Equal(t, StateDiscarded, m.State())

	assert.True(t, errors.IsInvalidTransition(m.Tick()))
	_, err := m.Finish()
	assert.True(t, errors.IsInvalidTransition(err))
}

func TestDiscardAfterNaturalFinish(t *testing.T) {
	m := newTestMachine(Config{Minutes: 1})
	require.NoError(t, m.Start())
	tick(t, m, 60)

	require.NoError(t, m.Discard())
	assert.Equal(t, StateDiscarded, m.State())
}

// =============================================================================
// Continue Tests
// =============================================================================

func TestContinueAfterCompletion(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10, Type: model.TypeFocus})
	require.NoError(t, m.Start())
	tick(t, m, 90)
	_, err := m.Finish()
	require.NoError(t, err)

	require.NoError(t, m.ContinueAfterCompletion())
	assert.Equal(t, StateIdle, m.State())
	assert.Equal(t, model.TypeFocus, m.Config().Type, "configuration survives the reset")
	assert.True(t, m.StartedAt().IsZero())

	// Machine is reusable
	require.NoError(t, m.Start())
	assert.Equal(t, StateRunning, m.State())
}

func TestContinueOnlyAfterFinish(t *testing.T) {
	m := newTestMachine(Config{Minutes: 10})
	assert.True(t, errors.IsInvalidTransition(m.ContinueAfterCompletion()))

	require.NoError(t, m.Start())
	require.NoError(t, m.Discard())
	assert.True(t, errors.IsInvalidTransition(m.ContinueAfterCompletion()))
}

// =============================================================================
// Feedback Tests
// =============================================================================

func TestFeedbackEvents(t *testing.T) {
	m := newTestMachine(Config{Minutes: 1})

	var events []FeedbackEvent
	m.SetFeedback(func(e FeedbackEvent) { events = append(events, e) })

	require.NoError(t, m.Start())
	require.NoError(t, m.Pause())
	require.NoError(t, m.Resume())
	tick(t, m, 60)
	_, err := m.Finish()
	require.NoError(t, err)

	assert.Equal(t, []FeedbackEvent{
		FeedbackStart,
		FeedbackPause,
		FeedbackResume,
		FeedbackNaturalFinish,
		FeedbackFinish,
	}, events)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "naturally-finished", StateNaturallyFinished.String())
	assert.Equal(t, "user-finished", StateUserFinished.String())
	assert.Equal(t, "discarded", StateDiscarded.String())
}
