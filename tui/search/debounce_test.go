package search

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(t *testing.T, cmd tea.Cmd) TickMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(TickMsg)
	require.True(t, ok, "expected TickMsg")
	return msg
}

func TestDebouncer_FiresAfterPause(t *testing.T) {
	d := New(time.Millisecond)
	d, cmd := d.Keystroke("golang")
	assert.Equal(t, Debouncing, d.Phase())

	d, term, ok := d.Elapsed(tick(t, cmd))
	require.True(t, ok)
	assert.Equal(t, "golang", term)
	assert.Equal(t, InFlight, d.Phase())
}

func TestDebouncer_OnlyLatestKeystrokeFires(t *testing.T) {
	d := New(time.Millisecond)
	d, first := d.Keystroke("g")
	d, second := d.Keystroke("go")
	d, third := d.Keystroke("gol")

	var fired []string
	for _, cmd := range []tea.Cmd{first, second, third} {
		var term string
		var ok bool
		d, term, ok = d.Elapsed(tick(t, cmd))
		if ok {
			fired = append(fired, term)
		}
	}
	assert.Equal(t, []string{"gol"}, fired)
}

func TestDebouncer_TickFiresOnce(t *testing.T) {
	d := New(time.Millisecond)
	d, cmd := d.Keystroke("rust")
	msg := tick(t, cmd)

	d, _, ok := d.Elapsed(msg)
	require.True(t, ok)
	_, _, ok = d.Elapsed(msg)
	assert.False(t, ok, "a consumed tick must not fire again")
}

func TestDebouncer_CancelSuppressesTick(t *testing.T) {
	d := New(time.Millisecond)
	d, cmd := d.Keystroke("news")

	d, cancelled := d.Cancel()
	assert.True(t, cancelled)
	assert.Equal(t, Idle, d.Phase())

	_, _, ok := d.Elapsed(tick(t, cmd))
	assert.False(t, ok)

	_, cancelled = d.Cancel()
	assert.False(t, cancelled, "nothing pending")
}

func TestDebouncer_SubmitSupersedesPendingTick(t *testing.T) {
	d := New(time.Millisecond)
	d, cmd := d.Keystroke("gam")
	d, term := d.Submit("  gaming ")
	assert.Equal(t, "gaming", term)
	assert.Equal(t, InFlight, d.Phase())

	_, _, ok := d.Elapsed(tick(t, cmd))
	assert.False(t, ok)
}

func TestDebouncer_IgnoresOtherDebouncersTicks(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)
	a, cmd := a.Keystroke("one")
	b, _ = b.Keystroke("one")
	msg := tick(t, cmd)

	_, _, ok := b.Elapsed(msg)
	assert.False(t, ok)
	_, term, ok := a.Elapsed(msg)
	assert.True(t, ok)
	assert.Equal(t, "one", term)
}

func TestDebouncer_DoneMatchesActiveTerm(t *testing.T) {
	d := New(time.Millisecond)
	d, _ = d.Submit("older")
	d, _ = d.Submit("newer")

	d = d.Done("older")
	assert.Equal(t, InFlight, d.Phase(), "an older answer does not end the current search")

	d = d.Done(" newer ")
	assert.Equal(t, Idle, d.Phase())
}

func TestDebouncer_ClearForgetsTerm(t *testing.T) {
	d := New(time.Millisecond)
	d, cmd := d.Keystroke("science")
	d = d.Clear()

	assert.Equal(t, Idle, d.Phase())
	assert.Empty(t, d.Pending())
	assert.Empty(t, d.Active())
	_, _, ok := d.Elapsed(tick(t, cmd))
	assert.False(t, ok)
}

func TestNew_NegativeDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), New(-time.Second).Delay())
	assert.Equal(t, "in-flight", InFlight.String())
}

func TestDebouncer_ReturnsTheTermJustStarted(t *testing.T) {
	d := New(time.Millisecond)
	d, term := d.Submit("rust")
	assert.Equal(t, "rust", term)
	d, term = d.Submit("golang")
	assert.Equal(t, "golang", term)
	assert.Equal(t, "golang", d.Active())

	d, cmd := d.Keystroke("redd")
	d, term, ok := d.Elapsed(tick(t, cmd))
	require.True(t, ok)
	assert.Equal(t, "redd", term)
	assert.Equal(t, "redd", d.Active())
}
