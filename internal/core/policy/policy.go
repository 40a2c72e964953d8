// Package policy decides whether a caller may perform an action on a resource.
// It is stateless and safe for concurrent use; every decision is computed from its arguments.
package policy

import (
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// Action is the closed set of operations the policy knows about.
type Action string

const (
	ActionRegister   Action = "register"
	ActionLogin      Action = "login"
	ActionReadPublic Action = "read_public"

	ActionLogout              Action = "logout"
	ActionReadProfile         Action = "read_profile"
	ActionUpdateProfile       Action = "update_profile"
	ActionListOwnTransactions Action = "list_own_transactions"
	ActionCreateTransaction   Action = "create_transaction"
	ActionReadOwnSummary      Action = "read_own_summary"

	ActionReadTransaction   Action = "read_transaction"
	ActionUpdateTransaction Action = "update_transaction"
	ActionDeleteTransaction Action = "delete_transaction"

	ActionListAllTransactions Action = "list_all_transactions"
	ActionReadGlobalSummary   Action = "read_global_summary"
	ActionReadDailySummary    Action = "read_daily_summary"
	ActionListUsers           Action = "list_users"
	ActionReadUser            Action = "read_user"
	ActionListActivities      Action = "list_activities"
	ActionReadDashboard       Action = "read_dashboard"

	ActionToggleUser Action = "toggle_user"
	ActionDeleteUser Action = "delete_user"
)

type actionClass int

const (
	classUnknown actionClass = iota
	classPublic
	classSelf
	classOwned
	classAdmin
	classAccountMutation
)

func classify(a Action) actionClass {
	switch a {
	case ActionRegister, ActionLogin, ActionReadPublic:
		return classPublic
	case ActionLogout, ActionReadProfile, ActionUpdateProfile, ActionListOwnTransactions,
		ActionCreateTransaction, ActionReadOwnSummary:
		return classSelf
	case ActionReadTransaction, ActionUpdateTransaction, ActionDeleteTransaction:
		return classOwned
	case ActionListAllTransactions, ActionReadGlobalSummary, ActionReadDailySummary,
		ActionListUsers, ActionReadUser, ActionListActivities, ActionReadDashboard:
		return classAdmin
	case ActionToggleUser, ActionDeleteUser:
		return classAccountMutation
	default:
		return classUnknown
	}
}

// Resource describes the target of an action. Only the fields relevant to the action are read.
type Resource struct {
	// OwnerID is the owner of the transaction being read or mutated.
	OwnerID *string
	// AccountRole is the role of the account being toggled or deleted.
	AccountRole *domain.Role
	// AccountActive is the active flag of the account being logged into.
	AccountActive *bool
}

// OwnedBy is shorthand for a transaction resource.
func OwnedBy(ownerID string) Resource {
	return Resource{OwnerID: &ownerID}
}

// Account is shorthand for an account resource.
func Account(u *domain.User) Resource {
	role, active := u.Role, u.IsActive
	return Resource{AccountRole: &role, AccountActive: &active}
}

// Decision is the outcome of an evaluation. A zero Reason accompanies Allowed == true.
type Decision struct {
	Allowed bool
	Reason  apperrors.DenyReason
}

var allow = Decision{Allowed: true}

func deny(r apperrors.DenyReason) Decision {
	return Decision{Reason: r}
}

// Err returns nil for ALLOW and a *apperrors.DenyError for DENY.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return apperrors.NewDenyError(d.Reason)
}

// Evaluate applies the access rules in precedence order:
// public actions, authentication, account activity, admin protection,
// the admin-only gate and finally resource ownership.
func Evaluate(id *domain.Identity, action Action, res Resource) Decision {
	class := classify(action)

	if class == classPublic {
		if action == ActionLogin && res.AccountActive != nil && !*res.AccountActive {
			return deny(apperrors.ReasonInactiveAccount)
		}
		return allow
	}

	if id == nil {
		return deny(apperrors.ReasonUnauthenticated)
	}
	if !id.IsActive {
		return deny(apperrors.ReasonInactiveAccount)
	}

	switch class {
	case classSelf:
		return allow
	case classOwned:
		if isAdmin(id.Role) {
			return allow
		}
		if res.OwnerID != nil && *res.OwnerID == id.UserID {
			return allow
		}
		return deny(apperrors.ReasonNotOwner)
	case classAccountMutation:
		// Checked ahead of the admin gate: not even another admin may touch an admin account.
		if res.AccountRole == nil || isAdmin(*res.AccountRole) {
			return deny(apperrors.ReasonProtectedAdminResource)
		}
		return adminGate(id)
	case classAdmin:
		return adminGate(id)
	default:
		return deny(apperrors.ReasonAdminRequired)
	}
}

// Authenticate applies only the authentication and activity rules. Services call it
// before loading a target resource so anonymous callers learn nothing about existence.
func Authenticate(id *domain.Identity) Decision {
	if id == nil {
		return deny(apperrors.ReasonUnauthenticated)
	}
	if !id.IsActive {
		return deny(apperrors.ReasonInactiveAccount)
	}
	return allow
}

func adminGate(id *domain.Identity) Decision {
	if isAdmin(id.Role) {
		return allow
	}
	return deny(apperrors.ReasonAdminRequired)
}

func isAdmin(r domain.Role) bool {
	switch r {
	case domain.RoleAdmin:
		return true
	case domain.RoleUser:
		return false
	default:
		return false
	}
}
