// Package session implements the per-game session engine: a
// Tutorial/Playing/Finished state machine driven by answers and clock
// ticks, with streak-based level progression, a three-heart error budget
// and a single score submission per session.
package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/puzzle"
)

// Phase is the top-level session state.
type Phase int

const (
	PhaseTutorial Phase = iota
	PhasePlaying
	PhaseFinished
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTutorial:
		return "tutorial"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrWrongPhase is returned when an action is not valid in the
	// current phase.
	ErrWrongPhase = errors.New("session: action not allowed in current phase")
	// ErrClosed is returned after Close or Exit.
	ErrClosed = errors.New("session: closed")
)

// Rules is the per-game tuning of the engine.
type Rules struct {
	GameID string
	// StreakThreshold is the number of consecutive correct answers that
	// advances one level.
	StreakThreshold int
	// Hearts enables the three-life budget. Without it misses only reset
	// the streak.
	Hearts bool
	Clock  ClockConfig
	Reward RewardFunc
	// GameOverDelay separates the losing event from the Finished phase.
	GameOverDelay time.Duration
	// Reveal overrides the reveal window of instances that have one.
	Reveal time.Duration
}

// Options wires a Machine to its collaborators.
type Options struct {
	Rules     Rules
	Generator puzzle.Generator
	// Levels must be ordered by level. Empty means the game's fallback.
	Levels     []levels.LevelConfig
	Scheduler  Scheduler
	Reconciler *Reconciler
	Rand       *rand.Rand
	Logger     *log.Logger

	// OnChange receives a snapshot after every state change. It runs
	// without the machine lock held.
	OnChange func(Snapshot)
	// OnGems receives the ledger result of the session's submission.
	OnGems func(gems int)
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Phase         Phase
	Score         int
	Hearts        int
	HeartsEnabled bool
	TimeRemaining time.Duration
	TimeTotal     time.Duration
	CorrectStreak int
	LevelIndex    int
	LevelCount    int
	Level         levels.LevelConfig

	// Puzzle is nil outside Playing.
	Puzzle    *puzzle.Instance
	PuzzleID  uint64
	Revealing bool
	// Resolved is set once the current puzzle has been answered or timed
	// out and no further input is accepted for it.
	Resolved bool

	Answered  int
	Correct   int
	Submitted bool
	Gems      int
}

// Outcome describes how an answer was handled.
type Outcome struct {
	// Accepted is false when the answer was ignored because it targeted a
	// stale or already resolved puzzle.
	Accepted  bool
	Correct   bool
	Points    int
	LeveledUp bool
	Hearts    int
	GameOver  bool
}

// Machine is the session state machine. All methods are safe for
// concurrent use; timer callbacks and answers are serialized through one
// mutex and checked against the active puzzle before mutating state.
type Machine struct {
	mu sync.Mutex

	rules    Rules
	gen      puzzle.Generator
	levels   []levels.LevelConfig
	sched    Scheduler
	rec      *Reconciler
	rng      *rand.Rand
	log      *log.Logger
	onChange func(Snapshot)
	onGems   func(int)

	clock  *Clock
	streak *StreakTracker
	lives  *LivesTracker

	phase    Phase
	score    int
	levelIdx int
	puzzle   *puzzle.Instance
	puzzleID uint64
	resolved bool

	revealing   bool
	revealTimer Timer
	finishTimer Timer

	// epoch changes on restart and close; delayed callbacks from an older
	// epoch are dropped.
	epoch     uint64
	submitted bool
	closed    bool
	gems      int
	answered  int
	correct   int
}

// New creates a machine in the Tutorial phase.
func New(opts Options) (*Machine, error) {
	if opts.Generator == nil {
		return nil, errors.New("session: generator is required")
	}
	tiers := opts.Levels
	if len(tiers) == 0 {
		tiers = levels.Fallback(opts.Rules.GameID)
	}
	if opts.Scheduler == nil {
		opts.Scheduler = WallClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Rules.Reward == nil {
		opts.Rules.Reward = FlatReward(1)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Machine{
		rules:    opts.Rules,
		gen:      opts.Generator,
		levels:   tiers,
		sched:    opts.Scheduler,
		rec:      opts.Reconciler,
		rng:      opts.Rand,
		log:      logger.WithPrefix("session").With("game", opts.Rules.GameID),
		onChange: opts.OnChange,
		onGems:   opts.OnGems,
		streak:   NewStreakTracker(opts.Rules.StreakThreshold),
		lives:    NewLivesTracker(),
	}
	m.clock = NewClock(opts.Rules.Clock, opts.Scheduler, m.handleTick)
	m.resetLocked()
	return m, nil
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Start leaves the tutorial and loads the first puzzle.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.unlockAndNotify()

	if m.closed {
		return ErrClosed
	}
	if m.phase != PhaseTutorial {
		return ErrWrongPhase
	}
	m.phase = PhasePlaying
	if m.rules.Clock.Mode == ClockBonus {
		m.clock.Reset(m.durationLocked())
	}
	m.log.Debug("session started", "levels", len(m.levels))
	m.nextPuzzleLocked()
	return nil
}

// Answer evaluates a submission for puzzle puzzleID. Answers for a
// puzzle that is no longer active, already resolved or still being
// revealed are ignored and reported with Accepted false.
func (m *Machine) Answer(puzzleID uint64, answer []int) (Outcome, error) {
	m.mu.Lock()
	defer m.unlockAndNotify()

	if m.closed {
		return Outcome{}, ErrClosed
	}
	if m.phase != PhasePlaying {
		return Outcome{}, ErrWrongPhase
	}
	if m.puzzle == nil || puzzleID != m.puzzleID || m.resolved || m.revealing {
		return Outcome{Hearts: m.lives.Hearts()}, nil
	}

	m.resolved = true
	m.answered++
	if m.puzzle.Check(answer) {
		return m.correctLocked(), nil
	}
	return m.missLocked(), nil
}

// Exit leaves the session from any phase. An unfinished session with a
// positive score is submitted once. back runs after the machine has
// stopped all timers.
func (m *Machine) Exit(back func()) {
	m.mu.Lock()
	if !m.closed && m.phase == PhasePlaying {
		m.submitLocked()
	}
	m.closeLocked()
	m.unlockAndNotify()

	if back != nil {
		back()
	}
}

// Close stops all timers without submitting. The machine rejects further
// actions.
func (m *Machine) Close() {
	m.mu.Lock()
	m.closeLocked()
	m.mu.Unlock()
}

// Restart returns a finished session to the tutorial with fresh state.
func (m *Machine) Restart() error {
	m.mu.Lock()
	defer m.unlockAndNotify()

	if m.closed {
		return ErrClosed
	}
	if m.phase != PhaseFinished {
		return ErrWrongPhase
	}
	m.resetLocked()
	return nil
}

func (m *Machine) correctLocked() Outcome {
	m.correct++
	points := m.rules.Reward(RewardContext{
		Remaining: m.clock.Remaining(),
		Duration:  m.durationLocked(),
		Streak:    m.streak.Streak() + 1,
		Level:     m.levelIdx,
	})
	if points < 0 {
		points = 0
	}
	m.score += points

	res := m.streak.OnCorrect(m.levelIdx < len(m.levels)-1)
	if res.LeveledUp {
		m.levelIdx++
		m.log.Debug("level up", "level", m.levels[m.levelIdx].Level)
	}
	if m.rules.Clock.Mode == ClockBonus {
		m.clock.Extend(m.rules.Clock.Bonus)
	}

	m.nextPuzzleLocked()
	return Outcome{
		Accepted:  true,
		Correct:   true,
		Points:    points,
		LeveledUp: res.LeveledUp,
		Hearts:    m.lives.Hearts(),
	}
}

// missLocked handles a wrong answer or a countdown timeout. The caller
// has already marked the puzzle resolved.
func (m *Machine) missLocked() Outcome {
	m.streak.OnMiss()
	if !m.rules.Hearts {
		m.nextPuzzleLocked()
		return Outcome{Accepted: true, Hearts: m.lives.Hearts()}
	}

	res := m.lives.Lose()
	if res.GameOver {
		m.clock.Stop()
		m.scheduleFinishLocked()
		return Outcome{Accepted: true, Hearts: 0, GameOver: true}
	}
	m.nextPuzzleLocked()
	return Outcome{Accepted: true, Hearts: res.Hearts}
}

func (m *Machine) handleTick(gen uint64) {
	m.mu.Lock()
	defer m.unlockAndNotify()

	if m.closed || m.phase != PhasePlaying || !m.clock.Current(gen) {
		return
	}
	if _, expired := m.clock.Advance(); !expired || m.resolved {
		return
	}

	m.resolved = true
	if m.rules.Clock.Mode == ClockBonus {
		m.streak.OnMiss()
		m.scheduleFinishLocked()
		return
	}
	m.answered++
	m.missLocked()
}

func (m *Machine) nextPuzzleLocked() {
	lvl := m.levels[m.levelIdx]
	p := m.gen.Generate(m.rng, lvl.NumberRangeMin, lvl.NumberRangeMax)
	m.puzzle = &p
	m.puzzleID++
	m.resolved = false
	m.stopRevealLocked()

	if m.rules.Clock.Mode == ClockCountdown {
		m.clock.Reset(m.durationLocked())
	}

	reveal := p.Reveal
	if reveal > 0 && m.rules.Reveal > 0 {
		reveal = m.rules.Reveal
	}
	if reveal > 0 {
		m.revealing = true
		m.clock.Stop()
		epoch, id := m.epoch, m.puzzleID
		m.revealTimer = m.sched.AfterFunc(reveal, func() { m.endReveal(epoch, id) })
		return
	}
	m.clock.Start()
}

func (m *Machine) endReveal(epoch, id uint64) {
	m.mu.Lock()
	defer m.unlockAndNotify()

	if m.epoch != epoch || m.puzzleID != id || m.phase != PhasePlaying || !m.revealing {
		return
	}
	m.revealing = false
	m.revealTimer = nil
	m.clock.Start()
}

func (m *Machine) stopRevealLocked() {
	if m.revealTimer != nil {
		m.revealTimer.Stop()
		m.revealTimer = nil
	}
	m.revealing = false
}

func (m *Machine) scheduleFinishLocked() {
	if m.rules.GameOverDelay <= 0 {
		m.finishLocked()
		return
	}
	epoch := m.epoch
	m.finishTimer = m.sched.AfterFunc(m.rules.GameOverDelay, func() {
		m.mu.Lock()
		defer m.unlockAndNotify()
		if m.epoch != epoch || m.closed || m.phase != PhasePlaying {
			return
		}
		m.finishLocked()
	})
}

func (m *Machine) finishLocked() {
	m.clock.Stop()
	m.stopRevealLocked()
	m.finishTimer = nil
	m.phase = PhaseFinished
	m.log.Debug("session finished", "score", m.score, "answered", m.answered, "correct", m.correct)
	m.submitLocked()
}

// submitLocked hands the score to the reconciler at most once per epoch.
func (m *Machine) submitLocked() {
	if m.submitted {
		return
	}
	m.submitted = true
	if m.rec == nil || m.score <= 0 {
		return
	}
	epoch := m.epoch
	m.rec.SubmitAsync(m.score, func(gems int) {
		m.mu.Lock()
		current := m.epoch == epoch
		if current {
			m.gems = gems
		}
		onGems := m.onGems
		m.mu.Unlock()
		if current && onGems != nil {
			onGems(gems)
		}
	})
}

func (m *Machine) closeLocked() {
	m.stopTimersLocked()
	// Keep the epoch so an in-flight submission still reports its gems.
	m.closed = true
}

func (m *Machine) stopTimersLocked() {
	m.clock.Stop()
	m.stopRevealLocked()
	if m.finishTimer != nil {
		m.finishTimer.Stop()
		m.finishTimer = nil
	}
}

func (m *Machine) resetLocked() {
	m.stopTimersLocked()
	m.epoch++
	m.phase = PhaseTutorial
	m.score = 0
	m.levelIdx = 0
	m.puzzle = nil
	m.resolved = false
	m.submitted = false
	m.gems = 0
	m.answered = 0
	m.correct = 0
	m.streak.Reset()
	m.lives.Reset()
	m.clock.Reset(m.durationLocked())
}

func (m *Machine) durationLocked() time.Duration {
	return m.rules.Clock.DurationFor(m.levelIdx)
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		Phase:         m.phase,
		Score:         m.score,
		Hearts:        m.lives.Hearts(),
		HeartsEnabled: m.rules.Hearts,
		TimeRemaining: m.clock.Remaining(),
		TimeTotal:     m.durationLocked(),
		CorrectStreak: m.streak.Streak(),
		LevelIndex:    m.levelIdx,
		LevelCount:    len(m.levels),
		Level:         m.levels[m.levelIdx],
		PuzzleID:      m.puzzleID,
		Revealing:     m.revealing,
		Resolved:      m.resolved,
		Answered:      m.answered,
		Correct:       m.correct,
		Submitted:     m.submitted,
		Gems:          m.gems,
	}
	if m.phase == PhasePlaying && m.puzzle != nil {
		p := *m.puzzle
		s.Puzzle = &p
	}
	return s
}

// unlockAndNotify releases the lock and publishes a snapshot.
func (m *Machine) unlockAndNotify() {
	snap := m.snapshotLocked()
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb(snap)
	}
}
