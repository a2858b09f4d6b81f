package reminder

import (
	"context"
	"strconv"
	"time"

	"github.com/yusufakin/eticaret/internal/audit"
)

// ReminderCooldown is the minimum time before a reminded cart becomes
// eligible for another reminder.
const ReminderCooldown = 72 * time.Hour

// DedupGate answers whether a reminder was already sent for a cart within
// the cooldown window. It only reads the audit log; absence of a prior
// event means "not sent", not an error.
type DedupGate struct {
	audit  *audit.Service
	window time.Duration
}

func NewDedupGate(auditSvc *audit.Service) *DedupGate {
	return &DedupGate{audit: auditSvc, window: ReminderCooldown}
}

// AlreadySent reports whether a successful reminder event exists for the
// cart inside the cooldown window. True means the caller must skip.
func (g *DedupGate) AlreadySent(ctx context.Context, cartID int64) (bool, error) {
	return g.audit.HasEventSince(ctx, EventCartReminder, EntityCart, strconv.FormatInt(cartID, 10), g.window)
}
