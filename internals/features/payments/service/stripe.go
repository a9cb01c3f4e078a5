package service

import (
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// InitStripe menginisialisasi client Stripe dengan secret key (sekali saat bootstrap).
func InitStripe(secretKey string) {
	stripe.Key = secretKey
}

// CreatePaymentIntent membuat PaymentIntent (usd, card) untuk amount dalam
// satuan terkecil (cent) dan mengembalikan client secret-nya.
func CreatePaymentIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
