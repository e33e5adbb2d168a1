package billing

import (
	"fmt"

	"rent2reuse/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CreateCardPaymentIntent creates a Stripe PaymentIntent for a card purchase
// of the given plan. The returned client secret is handed to the dashboard to
// confirm the payment; the transaction bundle is only written once the
// payment succeeds and CreateTransaction is called with method "card".
func CreateCardPaymentIntent(userID string, plan models.Plan) (string, error) {
	if plan.Price <= 0 {
		return "", fmt.Errorf("plan %q has no price", plan.ID)
	}
	currency := plan.Currency
	if currency == "" {
		currency = "php"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(plan.Price * 100)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("planId", plan.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	zap.L().Info("payment intent created",
		zap.String("userId", userID),
		zap.String("planId", plan.ID),
		zap.String("paymentIntent", pi.ID))
	return pi.ClientSecret, nil
}
