package reminder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/yusufakin/eticaret/internal/audit"
	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/storage/db"
)

const (
	// EventCartReminder is the audit event kind for reminder emails.
	EventCartReminder = "CART_REMINDER_EMAIL"

	// EntityCart is the audit entity type for carts.
	EntityCart = "Cart"

	// IdleThreshold is how long a cart must sit untouched before it becomes
	// a reminder candidate.
	IdleThreshold = 2 * time.Hour
)

// Status is the outcome of one candidate cart.
type Status int

const (
	StatusSent Status = iota
	StatusSkipped
	StatusFailed
)

// Result records the outcome for a single candidate. Failures are carried
// as data rather than propagated, so one bad cart never aborts the batch.
type Result struct {
	CartID int64
	Status Status
	Reason SkipReason
	Err    error
}

// Summary aggregates one run.
type Summary struct {
	Candidates int
	Sent       int
	Skipped    int
	Failed     int
	Results    []Result
}

// Job is the batch reminder orchestrator. One Run processes every candidate
// cart sequentially: dedup check, composition, rendering, dispatch, audit.
type Job struct {
	queries    *db.Queries
	audit      *audit.Service
	gate       *DedupGate
	composer   *Composer
	renderer   *email.Renderer
	dispatcher email.Dispatcher
	now        func() time.Time
}

func NewJob(queries *db.Queries, auditSvc *audit.Service, gate *DedupGate, composer *Composer, renderer *email.Renderer, dispatcher email.Dispatcher) *Job {
	return &Job{
		queries:    queries,
		audit:      auditSvc,
		gate:       gate,
		composer:   composer,
		renderer:   renderer,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Run executes one reminder batch. A failure to list candidates ends the
// run early with an empty summary; it never panics or propagates to the
// trigger mechanism.
func (j *Job) Run(ctx context.Context) Summary {
	slog.Info("starting cart reminder run")

	carts, err := j.queries.ListCartsEligibleForReminder(ctx, j.now().UTC().Add(-IdleThreshold))
	if err != nil {
		slog.Error("failed to list carts eligible for reminder", "error", err)
		return Summary{}
	}

	summary := Summary{Candidates: len(carts)}
	for _, cart := range carts {
		res := j.process(ctx, cart)
		summary.Results = append(summary.Results, res)
		switch res.Status {
		case StatusSent:
			summary.Sent++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
	}

	slog.Info("cart reminder run complete",
		"candidates", summary.Candidates,
		"sent", summary.Sent,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
	)
	return summary
}

// process handles one candidate. Dedup hits and recipient-less carts are
// silent skips with no audit write; everything else that goes wrong is
// logged, recorded as an error audit event, and returned as a failed result.
func (j *Job) process(ctx context.Context, cart db.Cart) Result {
	already, err := j.gate.AlreadySent(ctx, cart.ID)
	if err != nil {
		return j.fail(ctx, cart.ID, "failed to check reminder dedup", err)
	}
	if already {
		slog.Debug("reminder already sent for cart inside cooldown, skipping", "cart_id", cart.ID)
		return Result{CartID: cart.ID, Status: StatusSkipped, Reason: SkipAlreadySent}
	}

	rem, reason, err := j.composer.Compose(ctx, cart)
	if err != nil {
		return j.fail(ctx, cart.ID, "failed to compose reminder email", err)
	}
	if reason != SkipNone {
		return Result{CartID: cart.ID, Status: StatusSkipped, Reason: reason}
	}

	html, err := j.renderer.Render(rem.Model)
	if err != nil {
		return j.fail(ctx, cart.ID, "failed to render reminder email", err)
	}

	if err := j.dispatcher.Enqueue(&email.Email{
		To:      rem.To,
		Subject: rem.Subject,
		Body:    html,
		IsHTML:  true,
	}); err != nil {
		return j.fail(ctx, cart.ID, "failed to enqueue reminder email", err)
	}

	if err := j.audit.LogSuccess(ctx, EventCartReminder, EntityCart, strconv.FormatInt(cart.ID, 10),
		"Cart reminder email sent", map[string]interface{}{"recipient": rem.To}); err != nil {
		// The email is already queued; a lost record weakens the dedup
		// guarantee for the next run, so surface it as a failure.
		return Result{CartID: cart.ID, Status: StatusFailed, Err: err}
	}

	slog.Info("cart reminder email queued", "cart_id", cart.ID, "recipient", rem.To)
	return Result{CartID: cart.ID, Status: StatusSent}
}

func (j *Job) fail(ctx context.Context, cartID int64, message string, err error) Result {
	slog.Error(message, "cart_id", cartID, "error", err)
	if auditErr := j.audit.LogError(ctx, EventCartReminder, EntityCart, strconv.FormatInt(cartID, 10),
		message, err.Error(), nil); auditErr != nil {
		slog.Error("failed to record reminder error", "cart_id", cartID, "error", auditErr)
	}
	return Result{CartID: cartID, Status: StatusFailed, Err: err}
}
