package models

import "time"

// Account status values for an admin record. Only approved accounts may hold
// an authenticated session.
const (
	AccountStatusPending  = "pending"
	AccountStatusApproved = "approved"
	AccountStatusRejected = "rejected"
)

// AdminAccount is one administrator's record in the "admin" collection,
// queryable by email or uid.
type AdminAccount struct {
	UID           string    `firestore:"uid" json:"uid"`
	Email         string    `firestore:"email" json:"email"`
	FullName      string    `firestore:"fullName" json:"fullName,omitempty"`
	AdminRole     string    `firestore:"adminRole" json:"adminRole"`
	AccountStatus string    `firestore:"accountStatus" json:"accountStatus"`
	PhotoURL      string    `firestore:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	LastLogout    time.Time `firestore:"lastLogout,omitempty" json:"lastLogout,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Approved reports whether the account may hold a session.
func (a *AdminAccount) Approved() bool {
	return a != nil && a.AccountStatus == AccountStatusApproved
}
