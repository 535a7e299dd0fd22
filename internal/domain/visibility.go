package domain

import "errors"

// Visibility is the lifecycle state of dual-deletable content (events, team
// members, testimonials, ministry registrations). A record that exists is
// always shown on the public site; hiding it from the admin dashboard is a
// separate, reversible state. Full removal is the deletion of the record
// itself, so a removed-but-still-public entity is unrepresentable.
type Visibility string

const (
	VisibilityVisible         Visibility = "visible"
	VisibilityDashboardHidden Visibility = "dashboard_hidden"
)

// HideFromDashboard and Restore are the only transitions. Both are
// idempotent.
func (v Visibility) HideFromDashboard() Visibility {
	return VisibilityDashboardHidden
}

func (v Visibility) Restore() Visibility {
	return VisibilityVisible
}

func (v Visibility) OnDashboard() bool {
	return v != VisibilityDashboardHidden
}

// ListScope selects which projection of content a listing returns.
type ListScope string

const (
	ScopeDashboard ListScope = "dashboard" // visible records only
	ScopePublic    ListScope = "public"    // every record, hidden or not
	ScopeDeleted   ListScope = "deleted"   // dashboard-hidden records only
)

func ParseListScope(s string) (ListScope, error) {
	switch ListScope(s) {
	case ScopeDashboard, ScopePublic, ScopeDeleted:
		return ListScope(s), nil
	case "":
		return ScopePublic, nil
	}

	return "", ErrUnknownScope
}

// DeleteScope selects how far a delete reaches. Callers must pick one
// explicitly; there is no default.
type DeleteScope string

const (
	DeleteDashboardOnly DeleteScope = "dashboard"
	DeleteBoth          DeleteScope = "both"
)

func ParseDeleteScope(s string) (DeleteScope, error) {
	switch DeleteScope(s) {
	case DeleteDashboardOnly, DeleteBoth:
		return DeleteScope(s), nil
	}

	return "", ErrUnknownDeleteScope
}

var (
	ErrUnknownScope       = errors.New(`scope must be one of "dashboard", "public" or "deleted"`)
	ErrUnknownDeleteScope = errors.New(`delete type must be either "dashboard" or "both"`)
)
