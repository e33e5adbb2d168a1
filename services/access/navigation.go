package access

// NavigationItem is one sidebar entry in the admin dashboard. Every href must
// resolve to a route guarded with the same page id listed here.
type NavigationItem struct {
	Name         string `json:"name"`
	Href         string `json:"href"`
	Page         Page   `json:"page"`
	AllowedRoles []Role `json:"allowedRoles"`
}

var allRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleModerator, RoleFinance, RoleSupport}

// NavigationItems is the static navigation configuration.
var NavigationItems = []NavigationItem{
	{Name: "Dashboard", Href: "/admin", Page: PageDashboard, AllowedRoles: allRoles},
	{Name: "Users", Href: "/admin/users", Page: PageUsers, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleModerator, RoleSupport}},
	{Name: "Items", Href: "/admin/items", Page: PageItems, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleModerator}},
	{Name: "Rentals", Href: "/admin/rentals", Page: PageRentals, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleModerator}},
	{Name: "Transactions", Href: "/admin/transactions", Page: PageTransactions, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleFinance}},
	{Name: "Subscriptions", Href: "/admin/subscriptions", Page: PageSubscriptions, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleFinance}},
	{Name: "Vouchers", Href: "/admin/vouchers", Page: PageVouchers, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleFinance}},
	{Name: "Reports", Href: "/admin/reports", Page: PageReports, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleFinance}},
	{Name: "Settings", Href: "/admin/settings", Page: PageSettings, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin}},
	{Name: "Admins", Href: "/admin/admins", Page: PageAdmins, AllowedRoles: []Role{RoleSuperAdmin}},
	{Name: "Support", Href: "/admin/support", Page: PageSupport, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleModerator, RoleSupport}},
}

// NavigationFor returns the navigation entries visible to the given role.
func NavigationFor(role Role) []NavigationItem {
	var items []NavigationItem
	for _, item := range NavigationItems {
		for _, r := range item.AllowedRoles {
			if r == role {
				items = append(items, item)
				break
			}
		}
	}
	return items
}
