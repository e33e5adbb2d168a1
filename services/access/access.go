package access

// Role identifies one admin role. The set is fixed at compile time.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
	RoleFinance    Role = "finance"
	RoleSupport    Role = "support"
)

// Page identifies one admin dashboard page.
type Page string

const (
	PageDashboard     Page = "dashboard"
	PageUsers         Page = "users"
	PageItems         Page = "items"
	PageRentals       Page = "rentals"
	PageTransactions  Page = "transactions"
	PageSubscriptions Page = "subscriptions"
	PageVouchers      Page = "vouchers"
	PageReports       Page = "reports"
	PageSettings      Page = "settings"
	PageAdmins        Page = "admins"
	PageSupport       Page = "support"
)

// PageAll grants every page; held only by super_admin.
const PageAll Page = "*"

func pageSet(pages ...Page) map[Page]struct{} {
	m := make(map[Page]struct{}, len(pages))
	for _, p := range pages {
		m[p] = struct{}{}
	}
	return m
}

// rolePermissions is the compiled-in permission table: role -> allowed pages.
// Authorization decisions read this data only, so the table stays auditable
// and testable independent of any handler.
var rolePermissions = map[Role]map[Page]struct{}{
	RoleSuperAdmin: pageSet(PageAll),
	RoleAdmin: pageSet(
		PageDashboard, PageUsers, PageItems, PageRentals,
		PageTransactions, PageSubscriptions, PageVouchers,
		PageReports, PageSettings, PageSupport,
	),
	RoleModerator: pageSet(
		PageDashboard, PageUsers, PageItems, PageRentals, PageSupport,
	),
	RoleFinance: pageSet(
		PageDashboard, PageTransactions, PageSubscriptions,
		PageVouchers, PageReports,
	),
	RoleSupport: pageSet(
		PageDashboard, PageUsers, PageSupport,
	),
}

// CheckAccess reports whether the role may view the page. Unknown roles and
// unknown pages deny by default; the function never panics.
func CheckAccess(role Role, page Page) bool {
	allowed, ok := rolePermissions[role]
	if !ok {
		return false
	}
	if _, ok := allowed[PageAll]; ok {
		return true
	}
	_, ok = allowed[page]
	return ok
}

// ValidRole reports whether the role exists in the permission table.
func ValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// Roles returns every role present in the permission table.
func Roles() []Role {
	roles := make([]Role, 0, len(rolePermissions))
	for r := range rolePermissions {
		roles = append(roles, r)
	}
	return roles
}
