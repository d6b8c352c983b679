package domain

// Policy names the set of roles allowed to perform a class of operations.
type Policy struct {
	Name  string
	roles []Role
}

var (
	// UserPolicy admits any authenticated account.
	UserPolicy = Policy{Name: "UserPolicy", roles: []Role{RoleUser, RoleAdmin}}
	// AdminPolicy admits administrators only.
	AdminPolicy = Policy{Name: "AdminPolicy", roles: []Role{RoleAdmin}}
)

// Permits reports whether role satisfies the policy.
func (p Policy) Permits(role Role) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// Operation identifies a protected action exposed by the API.
type Operation string

const (
	OpListBooks  Operation = "books.list"
	OpGetBook    Operation = "books.get"
	OpCreateBook Operation = "books.create"
	OpUpdateBook Operation = "books.update"
	OpDeleteBook Operation = "books.delete"
)

// operationPolicies is read-only after package init. Register and login are
// open and have no entry.
var operationPolicies = map[Operation]Policy{
	OpListBooks:  UserPolicy,
	OpGetBook:    UserPolicy,
	OpCreateBook: AdminPolicy,
	OpUpdateBook: AdminPolicy,
	OpDeleteBook: AdminPolicy,
}

// PolicyFor returns the policy guarding op.
func PolicyFor(op Operation) (Policy, bool) {
	p, ok := operationPolicies[op]
	return p, ok
}

// Authorize decides whether a caller holding role may perform op. Operations
// without a registered policy are refused.
func Authorize(role Role, op Operation) error {
	p, ok := PolicyFor(op)
	if !ok || !p.Permits(role) {
		return ErrForbidden
	}
	return nil
}
