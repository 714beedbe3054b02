package session

import "time"

// ClockMode selects how the session clock drives the game.
type ClockMode int

const (
	// ClockCountdown restarts per question; reaching zero is a timeout.
	ClockCountdown ClockMode = iota
	// ClockBonus runs for the whole session; correct answers add time and
	// reaching zero ends the session.
	ClockBonus
)

// String returns the config name of the mode.
func (m ClockMode) String() string {
	if m == ClockBonus {
		return "bonus"
	}
	return "countdown"
}

// DefaultTick is the canonical clock resolution.
const DefaultTick = 100 * time.Millisecond

// ClockConfig parameterizes a Clock.
type ClockConfig struct {
	Mode ClockMode
	// Tick is the interval between decrements.
	Tick time.Duration
	// Decrement is subtracted on each tick. Zero means Tick.
	Decrement time.Duration
	// Durations holds the starting time per level index; the last entry
	// repeats for higher levels.
	Durations []time.Duration
	// Bonus is added on a correct answer in ClockBonus mode.
	Bonus time.Duration
}

// DurationFor returns the configured duration at a level index.
func (c ClockConfig) DurationFor(level int) time.Duration {
	if len(c.Durations) == 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}
	if level >= len(c.Durations) {
		level = len(c.Durations) - 1
	}
	return c.Durations[level]
}

func (c ClockConfig) tick() time.Duration {
	if c.Tick <= 0 {
		return DefaultTick
	}
	return c.Tick
}

func (c ClockConfig) decrement() time.Duration {
	if c.Decrement <= 0 {
		return c.tick()
	}
	return c.Decrement
}

// Clock counts remaining time down in fixed ticks. Each running period has
// a generation number; a tick callback carrying an older generation is
// stale and must be ignored. Clock is not safe for concurrent use; the
// owning Machine serializes access.
type Clock struct {
	cfg    ClockConfig
	sched  Scheduler
	onTick func(gen uint64)

	remaining time.Duration
	running   bool
	gen       uint64
	timer     Timer
}

// NewClock creates a stopped clock. onTick is called from the scheduler
// with the generation that scheduled it.
func NewClock(cfg ClockConfig, sched Scheduler, onTick func(gen uint64)) *Clock {
	return &Clock{cfg: cfg, sched: sched, onTick: onTick}
}

// Config returns the clock configuration.
func (c *Clock) Config() ClockConfig { return c.cfg }

// Remaining returns the time left.
func (c *Clock) Remaining() time.Duration { return c.remaining }

// Running reports whether ticks are scheduled.
func (c *Clock) Running() bool { return c.running }

// Current reports whether gen belongs to the running period.
func (c *Clock) Current(gen uint64) bool { return c.running && gen == c.gen }

// Reset stops the clock and sets the remaining time.
func (c *Clock) Reset(d time.Duration) {
	c.Stop()
	if d < 0 {
		d = 0
	}
	c.remaining = d
}

// Start begins ticking from the current remaining time. It is a no-op
// when already running or when no time remains.
func (c *Clock) Start() {
	if c.running || c.remaining <= 0 {
		return
	}
	c.gen++
	c.running = true
	c.schedule()
}

// Stop cancels the pending tick and invalidates its generation. The
// remaining time is kept so the clock can resume.
func (c *Clock) Stop() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.running = false
	c.gen++
}

// Advance applies one tick. It clamps at zero and stops the clock when
// time runs out, reporting expired.
func (c *Clock) Advance() (time.Duration, bool) {
	if !c.running {
		return c.remaining, false
	}
	c.timer = nil
	c.remaining -= c.cfg.decrement()
	if c.remaining <= 0 {
		c.remaining = 0
		c.running = false
		c.gen++
		return 0, true
	}
	c.schedule()
	return c.remaining, false
}

// Extend adds d to the remaining time.
func (c *Clock) Extend(d time.Duration) {
	if d > 0 {
		c.remaining += d
	}
}

func (c *Clock) schedule() {
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.cfg.tick(), func() { c.onTick(gen) })
}
