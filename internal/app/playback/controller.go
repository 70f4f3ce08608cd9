package playback

import (
	"sync"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/domain/track"
)

const (
	defaultEventBuffer = 64
	defaultVolume      = 80
	maxVolume          = 100
)

// Config holds controller configuration.
type Config struct {
	TickInterval time.Duration // Interval of the playback tick timer; 0 disables the timer
	EventBuffer  int           // Capacity of the event channel
}

// Controller is the sole owner of the playback state. All transitions go
// through its methods; observers read Snapshots or consume Events.
type Controller struct {
	mu sync.Mutex

	// Playback state
	current *track.Track
	playing bool
	elapsed int  // seconds into the current track
	seeking bool // set while the listener drags the progress bar

	// Queue management
	queue       []track.Track // Tracks waiting to be played, front first
	context     []track.Track // Last-known context list, used for cyclic next/previous
	contextName string        // Name the context list was played from

	// Modes (stored and published, never consulted when advancing)
	shuffle bool
	repeat  RepeatMode

	// Output and per-track flags, stored and published only
	volume int
	muted  bool
	liked  map[string]bool

	// Timer
	tickerCancel func()
	tickerGen    uint64

	config  Config
	eventCh chan Event
	closed  bool
}

// NewController creates a new playback controller in the idle state.
func NewController(config Config) *Controller {
	if config.EventBuffer <= 0 {
		config.EventBuffer = defaultEventBuffer
	}
	return &Controller{
		queue:   make([]track.Track, 0),
		repeat:  RepeatNone,
		volume:  defaultVolume,
		liked:   make(map[string]bool),
		config:  config,
		eventCh: make(chan Event, config.EventBuffer),
	}
}

// Events returns the event channel. It is closed by Close.
func (c *Controller) Events() <-chan Event {
	return c.eventCh
}

// Play makes t the current track and starts playback from zero. t must be
// an element of contextList. When the queue is empty it is filled with every
// track that follows t in contextList.
func (c *Controller) Play(t track.Track, contextList []track.Track) error {
	return c.PlayFrom("", t, contextList)
}

// PlayFrom is Play for a named context list. The name is carried in every
// snapshot taken until the next play.
func (c *Controller) PlayFrom(contextName string, t track.Track, contextList []track.Track) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	idx := track.IndexOf(contextList, t.ID)
	if idx < 0 {
		return invalidArgument("track %q is not in the context list", t.ID)
	}

	c.context = append([]track.Track(nil), contextList...)
	c.contextName = contextName
	c.playLocked(idx)
	return nil
}

// TogglePlayPause flips between playing and paused.
func (c *Controller) TogglePlayPause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.current == nil {
		return ErrNoTrack
	}

	c.playing = !c.playing
	c.syncTickerLocked()

	zlog.Debug().Msgf("playback: state changed: state=%s track=%s", c.stateLocked(), c.current.ID)
	c.sendEventLocked(EventStateChanged)
	return nil
}

// AdvanceNext plays the front of the queue, or the cyclic successor of the
// current track in the context list when the queue is empty. It does nothing
// when there is no context to advance in.
func (c *Controller) AdvanceNext() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.advanceNextLocked()
	return nil
}

// AdvancePrevious plays the cyclic predecessor of the current track in the
// context list.
func (c *Controller) AdvancePrevious() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.current == nil {
		return ErrNoTrack
	}

	n := len(c.context)
	if n == 0 {
		return nil
	}
	idx := track.IndexOf(c.context, c.current.ID)
	if idx < 0 {
		idx = 0
	}
	c.playLocked((idx - 1 + n) % n)
	return nil
}

// Tick advances elapsed time by one second. It is a no-op unless a track is
// playing and no seek is in progress. Reaching the track duration advances
// to the next track.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked()
}

// BeginSeek suspends ticking while the listener drags the progress bar.
func (c *Controller) BeginSeek() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.current == nil {
		return ErrNoTrack
	}
	if c.seeking {
		return nil
	}

	c.seeking = true
	c.syncTickerLocked()
	c.sendEventLocked(EventModeChanged)
	return nil
}

// Seek sets the elapsed time of the current track.
func (c *Controller) Seek(target int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.current == nil {
		return ErrNoTrack
	}
	if target < 0 || target > c.current.Duration {
		return invalidArgument("seek target %d out of range [0, %d]", target, c.current.Duration)
	}

	c.elapsed = target
	c.sendEventLocked(EventProgress)
	return nil
}

// EndSeek clears the seeking guard and resumes ticking if playing.
func (c *Controller) EndSeek() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if !c.seeking {
		return nil
	}

	c.seeking = false
	c.syncTickerLocked()
	c.sendEventLocked(EventModeChanged)
	return nil
}

// RemoveFromQueue removes the queue entry at index.
func (c *Controller) RemoveFromQueue(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if index < 0 || index >= len(c.queue) {
		return invalidArgument("queue index %d out of range [0, %d)", index, len(c.queue))
	}

	removed := c.queue[index]
	queue := make([]track.Track, 0, len(c.queue)-1)
	queue = append(queue, c.queue[:index]...)
	c.queue = append(queue, c.queue[index+1:]...)

	zlog.Debug().Msgf("playback: removed from queue: index=%d track=%s remaining=%d", index, removed.ID, len(c.queue))
	c.sendEventLocked(EventQueueChanged)
	return nil
}

// SetShuffle stores the shuffle flag.
func (c *Controller) SetShuffle(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.shuffle = enabled
	c.sendEventLocked(EventModeChanged)
	return nil
}

// SetRepeat stores the repeat mode.
func (c *Controller) SetRepeat(mode RepeatMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if mode < RepeatNone || mode > RepeatOne {
		return invalidArgument("unknown repeat mode %d", int(mode))
	}
	c.repeat = mode
	c.sendEventLocked(EventModeChanged)
	return nil
}

// CycleRepeat moves to the next repeat mode (none, all, one) and returns it.
func (c *Controller) CycleRepeat() (RepeatMode, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.repeat, ErrClosed
	}
	c.repeat = c.repeat.Next()
	c.sendEventLocked(EventModeChanged)
	return c.repeat, nil
}

// SetVolume stores the volume level (0-100). Changing the volume unmutes.
func (c *Controller) SetVolume(level int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if level < 0 || level > maxVolume {
		return invalidArgument("volume %d out of range [0, %d]", level, maxVolume)
	}
	c.volume = level
	c.muted = false
	c.sendEventLocked(EventModeChanged)
	return nil
}

// ToggleMute flips the mute flag. The stored volume is kept.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.muted = !c.muted
	c.sendEventLocked(EventModeChanged)
	return nil
}

// ToggleLike flips the like flag of the current track.
func (c *Controller) ToggleLike() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.current == nil {
		return ErrNoTrack
	}

	id := c.current.ID
	if c.liked[id] {
		delete(c.liked, id)
	} else {
		c.liked[id] = true
	}
	zlog.Debug().Msgf("playback: like toggled: track=%s liked=%t", id, c.liked[id])
	c.sendEventLocked(EventModeChanged)
	return nil
}

// Snapshot returns a copy of the current playback state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// GetState returns the current playback state.
func (c *Controller) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Context returns a copy of the last-known context list.
func (c *Controller) Context() []track.Track {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]track.Track, len(c.context))
	copy(result, c.context)
	return result
}

// Close stops the tick timer and closes the event channel. State stays
// readable; further mutations fail with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopTickerLocked()
	c.closed = true
	close(c.eventCh)
}

// playLocked makes context[idx] current.
// Must be called with lock held.
func (c *Controller) playLocked(idx int) {
	next := c.context[idx]
	c.current = &next
	c.playing = true
	c.elapsed = 0
	c.seeking = false

	if len(c.queue) == 0 {
		c.queue = append(make([]track.Track, 0, len(c.context)-idx-1), c.context[idx+1:]...)
	}

	c.restartTickerLocked()

	zlog.Debug().Msgf("playback: track started: track=%s title=%s duration=%ds queue=%d",
		next.ID, next.Title, next.Duration, len(c.queue))
	c.sendEventLocked(EventTrackStarted)
}

// advanceNextLocked implements AdvanceNext.
// Must be called with lock held.
func (c *Controller) advanceNextLocked() {
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = append(make([]track.Track, 0, len(c.queue)-1), c.queue[1:]...)

		c.current = &next
		c.playing = true
		c.elapsed = 0
		c.seeking = false
		c.restartTickerLocked()

		zlog.Debug().Msgf("playback: track started from queue: track=%s title=%s queue=%d",
			next.ID, next.Title, len(c.queue))
		c.sendEventLocked(EventTrackStarted)
		return
	}

	n := len(c.context)
	if n == 0 || c.current == nil {
		return
	}
	idx := track.IndexOf(c.context, c.current.ID)
	c.playLocked((idx + 1) % n)
}

// tickLocked implements Tick.
// Must be called with lock held.
func (c *Controller) tickLocked() {
	if c.closed || c.current == nil || !c.playing || c.seeking {
		return
	}

	c.elapsed++
	if c.elapsed < c.current.Duration {
		c.sendEventLocked(EventProgress)
		return
	}

	c.elapsed = c.current.Duration
	zlog.Debug().Msgf("playback: track ended: track=%s duration=%ds", c.current.ID, c.current.Duration)
	c.sendEventLocked(EventTrackEnded)

	c.advanceNextLocked()
	c.elapsed = 0
}

func (c *Controller) stateLocked() State {
	switch {
	case c.current == nil:
		return StateIdle
	case c.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		State:   c.stateLocked(),
		Playing: c.playing,
		Queue:   make([]track.Track, len(c.queue)),
		Shuffle: c.shuffle,
		Repeat:  c.repeat,
		Elapsed: c.elapsed,
		Seeking: c.seeking,
		Context: c.contextName,
		Volume:  c.volume,
		Muted:   c.muted,
	}
	copy(s.Queue, c.queue)
	if c.current != nil {
		cur := *c.current
		s.Current = &cur
		s.Liked = c.liked[cur.ID]
	}
	return s
}

// sendEventLocked sends an event without blocking.
// Must be called with lock held.
func (c *Controller) sendEventLocked(t EventType) {
	if c.closed {
		return
	}
	select {
	case c.eventCh <- Event{Type: t, Snapshot: c.snapshotLocked()}:
	default:
		zlog.Warn().Msgf("playback: event channel full, dropping event: type=%s", t)
	}
}
