package enum

// Role names seeded into the roles table.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleWaiter  = "waiter"
)

// Roles returns the seeded role names.
func Roles() []string {
	return []string{RoleAdmin, RoleCashier, RoleWaiter}
}
