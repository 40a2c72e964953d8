package policy

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// MaxTransactionLimit bounds any caller-supplied result limit.
const MaxTransactionLimit = 500

// ScopeTransactionFilter authorizes a transaction listing and returns the filter the store must apply.
//
// With adminScope the caller must be an admin and any requested owner is kept.
// Otherwise the owner is always forced to the caller, whatever the request carried.
// A non-positive limit means "no limit"; larger limits are clamped to MaxTransactionLimit.
func ScopeTransactionFilter(id *domain.Identity, f domain.TransactionFilter, adminScope bool) (domain.TransactionFilter, Decision) {
	action := ActionListOwnTransactions
	if adminScope {
		action = ActionListAllTransactions
	}
	d := Evaluate(id, action, Resource{})
	if !d.Allowed {
		return domain.TransactionFilter{}, d
	}

	scoped := f
	if !adminScope {
		owner := id.UserID
		scoped.OwnerID = &owner
	}
	if scoped.Limit < 0 {
		scoped.Limit = 0
	}
	if scoped.Limit > MaxTransactionLimit {
		scoped.Limit = MaxTransactionLimit
	}
	return scoped, d
}
