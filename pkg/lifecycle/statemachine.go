package lifecycle

import (
	"time"

	"github.com/chris/remittance-transactions/pkg/models"
)

// Transitions lists the statuses reachable from each status.
// Terminal statuses have no entry.
var Transitions = map[models.TransactionStatus][]models.TransactionStatus{
	models.PENDING:    {models.PROCESSING, models.CANCELLED, models.FAILED},
	models.PROCESSING: {models.COMPLETED, models.CANCELLED, models.FAILED},
}

// CanTransition reports whether a transaction in status from may move to status to.
// Staying in the same status is always allowed and leaves milestones untouched.
func CanTransition(from, to models.TransactionStatus) bool {
	if from == to {
		return true
	}
	for _, next := range Transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// stampMilestone records the first arrival at status. Later arrivals keep the original time.
func stampMilestone(tx *models.Transaction, status models.TransactionStatus, at time.Time) {
	switch status {
	case models.PROCESSING:
		if tx.ProcessedAt == nil {
			tx.ProcessedAt = &at
		}
	case models.COMPLETED:
		if tx.CompletedAt == nil {
			tx.CompletedAt = &at
		}
	case models.CANCELLED:
		if tx.CancelledAt == nil {
			tx.CancelledAt = &at
		}
	}
}
