package access

import "testing"

func TestCheckAccessUnknownRole(t *testing.T) {
	pages := []Page{PageDashboard, PageUsers, PageSettings, PageAdmins, Page("bogus")}
	for _, p := range pages {
		if CheckAccess(Role("intern"), p) {
			t.Fatalf("unknown role must be denied page %q", p)
		}
		if CheckAccess(Role(""), p) {
			t.Fatalf("empty role must be denied page %q", p)
		}
	}
}

func TestCheckAccessUnknownPage(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleModerator, RoleFinance, RoleSupport} {
		if CheckAccess(r, Page("not-a-page")) {
			t.Fatalf("role %q must be denied an unknown page", r)
		}
	}
}

func TestCheckAccessSuperAdminWildcard(t *testing.T) {
	for _, p := range []Page{PageDashboard, PageUsers, PageItems, PageRentals, PageTransactions, PageSubscriptions, PageVouchers, PageReports, PageSettings, PageAdmins, PageSupport} {
		if !CheckAccess(RoleSuperAdmin, p) {
			t.Fatalf("super_admin must be allowed page %q", p)
		}
	}
}

func TestCheckAccessTablePairs(t *testing.T) {
	cases := []struct {
		role Role
		page Page
		want bool
	}{
		{RoleAdmin, PageDashboard, true},
		{RoleAdmin, PageSettings, true},
		{RoleAdmin, PageAdmins, false},
		{RoleModerator, PageUsers, true},
		{RoleModerator, PageTransactions, false},
		{RoleModerator, PageSettings, false},
		{RoleFinance, PageTransactions, true},
		{RoleFinance, PageVouchers, true},
		{RoleFinance, PageUsers, false},
		{RoleSupport, PageSupport, true},
		{RoleSupport, PageRentals, false},
	}
	for _, tc := range cases {
		if got := CheckAccess(tc.role, tc.page); got != tc.want {
			t.Fatalf("CheckAccess(%q, %q) = %v, want %v", tc.role, tc.page, got, tc.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleSuperAdmin, RoleAdmin, RoleModerator, RoleFinance, RoleSupport} {
		if !ValidRole(r) {
			t.Fatalf("role %q should be valid", r)
		}
	}
	if ValidRole(Role("ghost")) {
		t.Fatal("unknown role should not be valid")
	}
}

// Every navigation entry must agree with the permission table: a role sees an
// entry exactly when the table allows it onto the entry's page.
func TestNavigationMatchesPermissionTable(t *testing.T) {
	for _, role := range Roles() {
		visible := make(map[Page]bool)
		for _, item := range NavigationFor(role) {
			visible[item.Page] = true
		}
		for _, item := range NavigationItems {
			if visible[item.Page] != CheckAccess(role, item.Page) {
				t.Fatalf("navigation for role %q and page %q disagrees with permission table", role, item.Page)
			}
		}
	}
}

func TestNavigationForUnknownRoleIsEmpty(t *testing.T) {
	if items := NavigationFor(Role("nobody")); len(items) != 0 {
		t.Fatalf("unknown role should see no navigation, got %d items", len(items))
	}
}
