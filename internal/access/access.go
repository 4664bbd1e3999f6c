// Package access centralizes capability derivation. Every entry point asks
// this one pure function instead of re-deriving role logic locally.
package access

import "strings"

// User is the current operator as configured locally. Ids and roles are
// issued by the platform; the console never invents capabilities beyond
// what the server will enforce anyway.
type User struct {
	Email       string
	Role        string // admin | finance | coordinator | trainer | ...
	FinanceFlag bool
}

// Capabilities are the boolean gates that decide which command families are
// available.
type Capabilities struct {
	Finance        bool
	SuperAdmin     bool
	DataManagement bool
}

// Derive computes capabilities from the user. Finance access is granted to
// the admin role, the finance role, a super-admin email match, or an
// explicit finance flag. Re-derived on every call; nothing is cached.
func Derive(u User, superAdminEmails []string) Capabilities {
	super := false
	email := strings.ToLower(strings.TrimSpace(u.Email))
	for _, s := range superAdminEmails {
		if email != "" && email == strings.ToLower(strings.TrimSpace(s)) {
			super = true
			break
		}
	}

	role := strings.ToLower(strings.TrimSpace(u.Role))
	admin := role == "admin"

	return Capabilities{
		Finance:        admin || role == "finance" || super || u.FinanceFlag,
		SuperAdmin:     super,
		DataManagement: admin || super,
	}
}
