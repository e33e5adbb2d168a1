package models

import "time"

// Transaction status values.
const (
	TransactionPending  = "pending"
	TransactionApproved = "approved"
	TransactionRejected = "rejected"
)

// Plan describes a purchasable subscription plan.
type Plan struct {
	ID           string  `firestore:"id" json:"id"`
	Name         string  `firestore:"name" json:"name"`
	Price        float64 `firestore:"price" json:"price"`
	DurationDays int     `firestore:"durationDays" json:"durationDays"`
	Currency     string  `firestore:"currency" json:"currency"`
}

// Transaction is one payment record in the "transactions" collection.
type Transaction struct {
	TransactionID   string    `firestore:"transactionId" json:"transactionId"`
	UserID          string    `firestore:"userId" json:"userId"`
	PlanID          string    `firestore:"planId" json:"planId"`
	PlanName        string    `firestore:"planName" json:"planName"`
	Price           float64   `firestore:"price" json:"price"`
	DurationDays    int       `firestore:"duration" json:"duration"`
	PaymentMethod   string    `firestore:"paymentMethod" json:"paymentMethod"`
	PaymentProofURL string    `firestore:"paymentProofUrl,omitempty" json:"paymentProofUrl,omitempty"`
	Status          string    `firestore:"status" json:"status"`
	StartDate       time.Time `firestore:"startDate" json:"startDate"`
	EndDate         time.Time `firestore:"endDate" json:"endDate"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Subscription is the per-user subscription record referencing the
// transaction that paid for it.
type Subscription struct {
	SubscriptionID string    `firestore:"subscriptionId" json:"subscriptionId"`
	TransactionID  string    `firestore:"transactionId" json:"transactionId"`
	UserID         string    `firestore:"userId" json:"userId"`
	PlanID         string    `firestore:"planId" json:"planId"`
	PlanName       string    `firestore:"planName" json:"planName"`
	Status         string    `firestore:"status" json:"status"`
	StartDate      time.Time `firestore:"startDate" json:"startDate"`
	EndDate        time.Time `firestore:"endDate" json:"endDate"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
}

// ActivePlan is the denormalized active-plan block on a user document,
// overwritten whenever a new subscription is created. Concurrent purchases
// for the same user resolve last-writer-wins inside the Firestore transaction.
type ActivePlan struct {
	PlanID    string    `firestore:"activePlanId" json:"activePlanId"`
	PlanName  string    `firestore:"activePlanName" json:"activePlanName"`
	StartDate time.Time `firestore:"planStartDate" json:"planStartDate"`
	EndDate   time.Time `firestore:"planEndDate" json:"planEndDate"`
}
