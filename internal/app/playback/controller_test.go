package playback

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa030/soundwave/internal/domain/track"
)

var (
	trackA = track.Track{ID: "a", Title: "A", Artist: "Artist A", Duration: 180}
	trackB = track.Track{ID: "b", Title: "B", Artist: "Artist B", Duration: 200}
	trackC = track.Track{ID: "c", Title: "C", Artist: "Artist C", Duration: 150}

	catalog = []track.Track{trackA, trackB, trackC}
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c := NewController(Config{EventBuffer: 4096})
	t.Cleanup(c.Close)
	return c
}

func queueIDs(s Snapshot) []string {
	ids := make([]string, len(s.Queue))
	for i, qt := range s.Queue {
		ids[i] = qt.ID
	}
	return ids
}

func currentID(s Snapshot) string {
	if s.Current == nil {
		return ""
	}
	return s.Current.ID
}

func drainEvents(c *Controller) []Event {
	var events []Event
	for {
		select {
		case e, ok := <-c.Events():
			if !ok {
				return events
			}
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(t)

	s := c.Snapshot()
	assert.Equal(t, StateIdle, s.State)
	assert.Nil(t, s.Current)
	assert.False(t, s.Playing)
	assert.Equal(t, 0, s.Elapsed)
	assert.Empty(t, s.Queue)
	assert.False(t, s.Shuffle)
	assert.Equal(t, RepeatNone, s.Repeat)
	assert.Equal(t, 80, s.Volume)
	assert.False(t, s.Muted)
	assert.False(t, s.Liked)
}

func TestController_PlayFillsQueueFromContext(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.Play(trackA, catalog))

	s := c.Snapshot()
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, "a", currentID(s))
	assert.True(t, s.Playing)
	assert.Equal(t, 0, s.Elapsed)
	assert.Equal(t, []string{"b", "c"}, queueIDs(s))
}

func TestController_PlayKeepsNonEmptyQueue(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.Play(trackC, catalog))

	s := c.Snapshot()
	assert.Equal(t, "c", currentID(s))
	assert.Equal(t, []string{"b", "c"}, queueIDs(s))
}

func TestController_PlayLastTrackLeavesQueueEmpty(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.Play(trackC, catalog))

	s := c.Snapshot()
	assert.Equal(t, "c", currentID(s))
	assert.Empty(t, s.Queue)
}

func TestController_PlayFromCarriesContextName(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.PlayFrom("home", trackA, catalog))
	require.NoError(t, c.TogglePlayPause())
	require.NoError(t, c.PlayFrom("artist:Artist B", trackB, []track.Track{trackB}))

	events := drainEvents(c)
	require.Len(t, events, 3)
	assert.Equal(t, "home", events[0].Snapshot.Context)
	assert.Equal(t, "home", events[1].Snapshot.Context)
	assert.Equal(t, "artist:Artist B", events[2].Snapshot.Context)
	assert.Equal(t, "b", currentID(events[2].Snapshot))

	// Advancing stays in the context list it was played from.
	require.NoError(t, c.AdvanceNext())
	assert.Equal(t, "artist:Artist B", c.Snapshot().Context)

	require.NoError(t, c.Play(trackA, catalog))
	assert.Empty(t, c.Snapshot().Context)
}

func TestController_PlayUnknownTrack(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))
	before := c.Snapshot()

	unknown := track.Track{ID: "zzz", Title: "Z", Artist: "Z", Duration: 10}
	err := c.Play(unknown, catalog)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, before, c.Snapshot())
}

func TestController_PlayEmptyContext(t *testing.T) {
	c := newTestController(t)

	err := c.Play(trackA, nil)

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, StateIdle, c.GetState())
}

func TestController_ScenarioQueueThenWrap(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.Play(trackA, catalog))

	require.NoError(t, c.AdvanceNext())
	s := c.Snapshot()
	assert.Equal(t, "b", currentID(s))
	assert.Equal(t, []string{"c"}, queueIDs(s))
	assert.Equal(t, 0, s.Elapsed)

	require.NoError(t, c.AdvanceNext())
	s = c.Snapshot()
	assert.Equal(t, "c", currentID(s))
	assert.Empty(t, s.Queue)
	assert.Equal(t, 0, s.Elapsed)

	require.NoError(t, c.AdvanceNext())
	s = c.Snapshot()
	assert.Equal(t, "a", currentID(s))
	assert.True(t, s.Playing)
	assert.Equal(t, 0, s.Elapsed)
}

func TestController_AdvanceNextCyclesThroughContext(t *testing.T) {
	for start := range catalog {
		c := newTestController(t)
		require.NoError(t, c.Play(catalog[start], catalog))

		// Empty the queue so every advance uses the cyclic rule.
		for len(c.Snapshot().Queue) > 0 {
			require.NoError(t, c.RemoveFromQueue(0))
		}

		seen := map[string]int{currentID(c.Snapshot()): 1}
		for i := 1; i < len(catalog); i++ {
			require.NoError(t, c.AdvanceNext())
			seen[currentID(c.Snapshot())]++
			// Play semantics refill the queue; keep it empty.
			for len(c.Snapshot().Queue) > 0 {
				require.NoError(t, c.RemoveFromQueue(0))
			}
		}

		assert.Len(t, seen, len(catalog), "start=%d", start)
		for id, count := range seen {
			assert.Equal(t, 1, count, "track %s visited more than once", id)
		}

		require.NoError(t, c.AdvanceNext())
		assert.Equal(t, catalog[start].ID, currentID(c.Snapshot()), "cycle should repeat")
	}
}

func TestController_AdvanceNextThenPreviousReturns(t *testing.T) {
	for _, start := range catalog {
		c := newTestController(t)
		require.NoError(t, c.Play(start, catalog))
		for len(c.Snapshot().Queue) > 0 {
			require.NoError(t, c.RemoveFromQueue(0))
		}

		require.NoError(t, c.AdvanceNext())
		require.NoError(t, c.AdvancePrevious())

		assert.Equal(t, start.ID, currentID(c.Snapshot()))
	}
}

func TestController_AdvancePreviousWraps(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))

	require.NoError(t, c.AdvancePrevious())

	s := c.Snapshot()
	assert.Equal(t, "c", currentID(s))
	assert.True(t, s.Playing)
	// Queue was non-empty, so it is untouched.
	assert.Equal(t, []string{"b", "c"}, queueIDs(s))
}

func TestController_SingleTrackContext(t *testing.T) {
	c := newTestController(t)
	single := []track.Track{trackB}
	require.NoError(t, c.Play(trackB, single))

	require.NoError(t, c.AdvanceNext())
	assert.Equal(t, "b", currentID(c.Snapshot()))

	require.NoError(t, c.AdvancePrevious())
	assert.Equal(t, "b", currentID(c.Snapshot()))
}

func TestController_AdvanceWithoutContext(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.AdvanceNext())
	assert.Equal(t, StateIdle, c.GetState())

	err := c.AdvancePrevious()
	assert.True(t, errors.Is(err, ErrPreconditionViolated))
	assert.Equal(t, StateIdle, c.GetState())
}

func TestController_TogglePlayPause(t *testing.T) {
	c := newTestController(t)

	err := c.TogglePlayPause()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPreconditionViolated))
	assert.True(t, errors.Is(err, ErrNoTrack))

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.TogglePlayPause())
	assert.Equal(t, StatePaused, c.GetState())

	require.NoError(t, c.TogglePlayPause())
	assert.Equal(t, StatePlaying, c.GetState())
}

func TestController_TickAdvancesAfterDuration(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))
	drainEvents(c)

	for i := 0; i < trackA.Duration-1; i++ {
		c.Tick()
	}
	s := c.Snapshot()
	assert.Equal(t, "a", currentID(s))
	assert.Equal(t, trackA.Duration-1, s.Elapsed)

	c.Tick()
	s = c.Snapshot()
	assert.Equal(t, "b", currentID(s))
	assert.Equal(t, 0, s.Elapsed)

	var ended, started int
	for _, e := range drainEvents(c) {
		switch e.Type {
		case EventTrackEnded:
			ended++
			assert.Equal(t, trackA.Duration, e.Snapshot.Elapsed)
		case EventTrackStarted:
			started++
		}
	}
	assert.Equal(t, 1, ended)
	assert.Equal(t, 1, started)
}

func TestController_ScenarioTickThroughEmptyQueue(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackC, catalog))
	require.NoError(t, c.Play(trackB, catalog)) // queue is empty, so refilled with [C]
	require.NoError(t, c.RemoveFromQueue(0))

	for i := 0; i < 200; i++ {
		c.Tick()
	}

	s := c.Snapshot()
	assert.Equal(t, "c", currentID(s))
	assert.Equal(t, 0, s.Elapsed)
	assert.True(t, s.Playing)
}

func TestController_TickSuspended(t *testing.T) {
	c := newTestController(t)

	// Idle
	c.Tick()
	assert.Equal(t, 0, c.Snapshot().Elapsed)

	require.NoError(t, c.Play(trackA, catalog))
	c.Tick()
	assert.Equal(t, 1, c.Snapshot().Elapsed)

	// Paused
	require.NoError(t, c.TogglePlayPause())
	c.Tick()
	assert.Equal(t, 1, c.Snapshot().Elapsed)
	require.NoError(t, c.TogglePlayPause())

	// Seeking
	require.NoError(t, c.BeginSeek())
	c.Tick()
	assert.Equal(t, 1, c.Snapshot().Elapsed)
	require.NoError(t, c.EndSeek())
	c.Tick()
	assert.Equal(t, 2, c.Snapshot().Elapsed)
}

func TestController_ZeroDurationTrack(t *testing.T) {
	c := newTestController(t)
	blank := track.Track{ID: "blank", Title: "Blank", Artist: "Nobody", Duration: 0}
	ctx := []track.Track{blank, trackA}
	require.NoError(t, c.Play(blank, ctx))

	c.Tick()

	s := c.Snapshot()
	assert.Equal(t, "a", currentID(s))
	assert.Equal(t, 0, s.Elapsed)
}

func TestController_Seek(t *testing.T) {
	c := newTestController(t)

	err := c.Seek(10)
	assert.True(t, errors.Is(err, ErrPreconditionViolated))

	require.NoError(t, c.Play(trackA, catalog))

	for _, target := range []int{0, 42, trackA.Duration} {
		require.NoError(t, c.Seek(target))
		first := c.Snapshot()
		assert.Equal(t, target, first.Elapsed)

		require.NoError(t, c.Seek(target))
		assert.Equal(t, first, c.Snapshot(), "seek must be idempotent")
	}
}

func TestController_SeekOutOfRange(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.Seek(30))

	for _, target := range []int{-1, trackA.Duration + 1} {
		err := c.Seek(target)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, 30, c.Snapshot().Elapsed)
	}
}

func TestController_SeekGuard(t *testing.T) {
	c := newTestController(t)

	assert.True(t, errors.Is(c.BeginSeek(), ErrNoTrack))
	assert.NoError(t, c.EndSeek())

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.BeginSeek())
	assert.True(t, c.Snapshot().Seeking)

	require.NoError(t, c.Seek(100))
	require.NoError(t, c.EndSeek())

	s := c.Snapshot()
	assert.False(t, s.Seeking)
	assert.Equal(t, 100, s.Elapsed)
}

func TestController_TrackChangeClearsSeeking(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.BeginSeek())

	require.NoError(t, c.AdvanceNext())

	assert.False(t, c.Snapshot().Seeking)
}

func TestController_RemoveFromQueue(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))

	require.NoError(t, c.RemoveFromQueue(1))
	s := c.Snapshot()
	assert.Equal(t, []string{"b"}, queueIDs(s))
	assert.Equal(t, "a", currentID(s))

	require.NoError(t, c.RemoveFromQueue(0))
	s = c.Snapshot()
	assert.Empty(t, s.Queue)
	assert.Equal(t, "a", currentID(s))
}

func TestController_RemoveFromQueueOutOfRange(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))

	for _, idx := range []int{-1, 2, 10} {
		err := c.RemoveFromQueue(idx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
	assert.Len(t, c.Snapshot().Queue, 2)
}

func TestController_ModesAreStoredOnly(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))

	require.NoError(t, c.SetShuffle(true))
	require.NoError(t, c.SetRepeat(RepeatOne))

	s := c.Snapshot()
	assert.True(t, s.Shuffle)
	assert.Equal(t, RepeatOne, s.Repeat)

	// Selection is unaffected.
	require.NoError(t, c.AdvanceNext())
	assert.Equal(t, "b", currentID(c.Snapshot()))

	err := c.SetRepeat(RepeatMode(9))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, RepeatOne, c.Snapshot().Repeat)
}

func TestController_CycleRepeat(t *testing.T) {
	c := newTestController(t)

	expected := []RepeatMode{RepeatAll, RepeatOne, RepeatNone, RepeatAll}
	for _, want := range expected {
		got, err := c.CycleRepeat()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestController_SnapshotIsACopy(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.Play(trackA, catalog))

	s := c.Snapshot()
	s.Queue[0] = trackC
	s.Current.Title = "mutated"

	fresh := c.Snapshot()
	assert.Equal(t, "b", fresh.Queue[0].ID)
	assert.Equal(t, "A", fresh.Current.Title)
}

func TestController_Events(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.TogglePlayPause())
	require.NoError(t, c.RemoveFromQueue(0))
	require.NoError(t, c.SetShuffle(true))

	events := drainEvents(c)
	require.Len(t, events, 4)
	assert.Equal(t, EventTrackStarted, events[0].Type)
	assert.Equal(t, "a", currentID(events[0].Snapshot))
	assert.Equal(t, EventStateChanged, events[1].Type)
	assert.Equal(t, StatePaused, events[1].Snapshot.State)
	assert.Equal(t, EventQueueChanged, events[2].Type)
	assert.Equal(t, EventModeChanged, events[3].Type)
}

func TestController_EventsDroppedWhenFull(t *testing.T) {
	c := NewController(Config{EventBuffer: 1})
	defer c.Close()

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.Seek(5)) // dropped, must not block

	events := drainEvents(c)
	require.Len(t, events, 1)
	assert.Equal(t, EventTrackStarted, events[0].Type)
}

func TestController_Close(t *testing.T) {
	c := NewController(Config{TickInterval: time.Millisecond})
	require.NoError(t, c.Play(trackA, catalog))

	c.Close()
	c.Close() // idempotent

	assert.True(t, errors.Is(c.Play(trackB, catalog), ErrClosed))
	assert.True(t, errors.Is(c.TogglePlayPause(), ErrPreconditionViolated))
	assert.Equal(t, "a", currentID(c.Snapshot()))

	// Event channel is closed after buffered events are drained.
	for range c.Events() {
	}
}

func TestController_TimerTicks(t *testing.T) {
	c := NewController(Config{TickInterval: 5 * time.Millisecond, EventBuffer: 4096})
	defer c.Close()

	short := []track.Track{
		{ID: "s1", Title: "S1", Artist: "X", Duration: 3},
		{ID: "s2", Title: "S2", Artist: "X", Duration: 3},
	}
	require.NoError(t, c.Play(short[0], short))

	assert.Eventually(t, func() bool {
		return currentID(c.Snapshot()) == "s2"
	}, 2*time.Second, 5*time.Millisecond, "timer should auto-advance")
}

func TestController_TimerStopsOnPause(t *testing.T) {
	c := NewController(Config{TickInterval: 5 * time.Millisecond, EventBuffer: 4096})
	defer c.Close()

	require.NoError(t, c.Play(trackA, catalog))
	assert.Eventually(t, func() bool {
		return c.Snapshot().Elapsed > 0
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, c.TogglePlayPause())
	paused := c.Snapshot().Elapsed
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, paused, c.Snapshot().Elapsed)

	require.NoError(t, c.BeginSeek())
	require.NoError(t, c.TogglePlayPause())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, paused, c.Snapshot().Elapsed, "seeking must suspend the timer")
}

func TestParseRepeatMode(t *testing.T) {
	tests := []struct {
		input    string
		expected RepeatMode
		wantErr  bool
	}{
		{"none", RepeatNone, false},
		{"", RepeatNone, false},
		{"ALL", RepeatAll, false},
		{"one", RepeatOne, false},
		{"forever", RepeatNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRepeatMode(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "one", RepeatOne.String())
	assert.Equal(t, "track_started", EventTrackStarted.String())
	assert.Equal(t, "progress", EventProgress.String())
}

func TestController_Volume(t *testing.T) {
	c := newTestController(t)

	require.NoError(t, c.ToggleMute())
	s := c.Snapshot()
	assert.True(t, s.Muted)
	assert.Equal(t, 80, s.Volume, "muting keeps the stored level")

	require.NoError(t, c.SetVolume(35))
	s = c.Snapshot()
	assert.Equal(t, 35, s.Volume)
	assert.False(t, s.Muted, "changing the volume unmutes")

	for _, level := range []int{-1, 101} {
		err := c.SetVolume(level)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "level %d", level)
	}
	assert.Equal(t, 35, c.Snapshot().Volume)

	require.NoError(t, c.SetVolume(0))
	require.NoError(t, c.SetVolume(100))

	events := drainEvents(c)
	require.Len(t, events, 4)
	for _, e := range events {
		assert.Equal(t, EventModeChanged, e.Type)
	}
}

func TestController_ToggleLike(t *testing.T) {
	c := newTestController(t)

	assert.True(t, errors.Is(c.ToggleLike(), ErrNoTrack))

	require.NoError(t, c.Play(trackA, catalog))
	require.NoError(t, c.ToggleLike())
	assert.True(t, c.Snapshot().Liked)

	// The flag belongs to the track, not the player.
	require.NoError(t, c.AdvanceNext())
	assert.False(t, c.Snapshot().Liked)
	require.NoError(t, c.AdvancePrevious())
	assert.True(t, c.Snapshot().Liked)

	require.NoError(t, c.ToggleLike())
	assert.False(t, c.Snapshot().Liked)
}

func TestController_OutputFlagsAfterClose(t *testing.T) {
	c := NewController(Config{})
	c.Close()

	assert.True(t, errors.Is(c.SetVolume(50), ErrClosed))
	assert.True(t, errors.Is(c.ToggleMute(), ErrClosed))
	assert.True(t, errors.Is(c.ToggleLike(), ErrClosed))
}
