package models

// Settings section document ids in the "settings" collection. Exactly these
// six sections exist; a missing document resolves to the section's defaults.
const (
	SettingsSectionGeneral       = "general"
	SettingsSectionRental        = "rental"
	SettingsSectionSubscription  = "subscription"
	SettingsSectionVoucher       = "voucher"
	SettingsSectionNotifications = "notifications"
	SettingsSectionPermissions   = "permissions"
)

// SettingsSectionIDs lists every settings document id, in load order.
var SettingsSectionIDs = []string{
	SettingsSectionGeneral,
	SettingsSectionRental,
	SettingsSectionSubscription,
	SettingsSectionVoucher,
	SettingsSectionNotifications,
	SettingsSectionPermissions,
}

// GeneralSettings holds platform-wide presentation settings.
type GeneralSettings struct {
	PlatformName    string `firestore:"platformName" json:"platformName"`
	SupportEmail    string `firestore:"supportEmail" json:"supportEmail"`
	ContactPhone    string `firestore:"contactPhone" json:"contactPhone"`
	MaintenanceMode bool   `firestore:"maintenanceMode" json:"maintenanceMode"`
}

// RentalSettings governs listing and rental behavior.
type RentalSettings struct {
	MaxActiveRentals    int     `firestore:"maxActiveRentals" json:"maxActiveRentals"`
	MaxListingPhotos    int     `firestore:"maxListingPhotos" json:"maxListingPhotos"`
	ServiceFeePercent   float64 `firestore:"serviceFeePercent" json:"serviceFeePercent"`
	LateReturnFeePerDay float64 `firestore:"lateReturnFeePerDay" json:"lateReturnFeePerDay"`
}

// SubscriptionSettings governs plan defaults.
type SubscriptionSettings struct {
	TrialDays          int      `firestore:"trialDays" json:"trialDays"`
	GracePeriodDays    int      `firestore:"gracePeriodDays" json:"gracePeriodDays"`
	AllowedPaymentOpts []string `firestore:"allowedPaymentOpts" json:"allowedPaymentOpts"`
}

// VoucherSettings governs voucher issuance.
type VoucherSettings struct {
	Enabled            bool    `firestore:"enabled" json:"enabled"`
	MaxDiscountPercent float64 `firestore:"maxDiscountPercent" json:"maxDiscountPercent"`
	DefaultExpiryDays  int     `firestore:"defaultExpiryDays" json:"defaultExpiryDays"`
}

// NotificationSettings governs outbound notifications.
type NotificationSettings struct {
	EmailEnabled        bool `firestore:"emailEnabled" json:"emailEnabled"`
	ReminderHorizonDays int  `firestore:"reminderHorizonDays" json:"reminderHorizonDays"`
}

// PermissionSettings carries per-role feature toggles layered on top of the
// compiled-in access table. The table remains authoritative for page access.
type PermissionSettings struct {
	AllowSelfSignup    bool `firestore:"allowSelfSignup" json:"allowSelfSignup"`
	RequireDualReview  bool `firestore:"requireDualReview" json:"requireDualReview"`
	AutoApproveFinance bool `firestore:"autoApproveFinance" json:"autoApproveFinance"`
}

// SettingsAggregate is the full settings snapshot. Once loaded, every section
// is present; missing documents are backfilled with defaults so consumers
// never observe a partial aggregate.
type SettingsAggregate struct {
	General       GeneralSettings      `json:"general"`
	Rental        RentalSettings       `json:"rental"`
	Subscription  SubscriptionSettings `json:"subscription"`
	Voucher       VoucherSettings      `json:"voucher"`
	Notifications NotificationSettings `json:"notifications"`
	Permissions   PermissionSettings   `json:"permissions"`
}

// DefaultSettings returns the aggregate every accessor falls back to before a
// load completes or when a section document does not exist.
func DefaultSettings() SettingsAggregate {
	return SettingsAggregate{
		General: GeneralSettings{
			PlatformName: "Rent2Reuse",
		},
		Rental: RentalSettings{
			MaxActiveRentals:  5,
			MaxListingPhotos:  8,
			ServiceFeePercent: 5,
		},
		Subscription: SubscriptionSettings{
			GracePeriodDays:    3,
			AllowedPaymentOpts: []string{"card", "gcash", "bank_transfer"},
		},
		Voucher: VoucherSettings{
			MaxDiscountPercent: 50,
			DefaultExpiryDays:  30,
		},
		Notifications: NotificationSettings{
			EmailEnabled:        true,
			ReminderHorizonDays: 3,
		},
		Permissions: PermissionSettings{},
	}
}
