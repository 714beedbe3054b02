package session

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Ledger records a finished session's score and returns the gems earned.
// The ledger owns the highest-score comparison.
type Ledger interface {
	SubmitScore(ctx context.Context, userID, gameID string, score int) (int, error)
}

// DefaultSubmitTimeout bounds one ledger call.
const DefaultSubmitTimeout = 10 * time.Second

// Reconciler hands final scores to the ledger. A failed submission is
// logged and dropped; it is never retried.
type Reconciler struct {
	ledger  Ledger
	userID  string
	gameID  string
	timeout time.Duration
	log     *log.Logger

	wg sync.WaitGroup
}

// NewReconciler creates a reconciler for one user and game.
func NewReconciler(ledger Ledger, userID, gameID string, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{
		ledger:  ledger,
		userID:  userID,
		gameID:  gameID,
		timeout: DefaultSubmitTimeout,
		log:     logger.WithPrefix("reconciler"),
	}
}

// SetTimeout overrides DefaultSubmitTimeout.
func (r *Reconciler) SetTimeout(d time.Duration) { r.timeout = d }

// Submit sends score and returns the gems earned. Scores <= 0 are not
// sent. Failures return 0.
func (r *Reconciler) Submit(ctx context.Context, score int) int {
	if score <= 0 || r.ledger == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	gems, err := r.ledger.SubmitScore(ctx, r.userID, r.gameID, score)
	if err != nil {
		r.log.Warn("score submission dropped", "game", r.gameID, "score", score, "error", err)
		return 0
	}
	r.log.Debug("score submitted", "game", r.gameID, "score", score, "gems", gems)
	return gems
}

// SubmitAsync runs Submit on its own goroutine and passes the result to
// done. It returns immediately and does nothing for scores <= 0.
func (r *Reconciler) SubmitAsync(score int, done func(gems int)) {
	if score <= 0 || r.ledger == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		gems := r.Submit(context.Background(), score)
		if done != nil {
			done(gems)
		}
	}()
}

// Wait blocks until in-flight submissions finish.
func (r *Reconciler) Wait() { r.wg.Wait() }
