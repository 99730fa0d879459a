package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dineout/internal/domain"
	"dineout/internal/payment"
)

func TestCardPayment(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		wantMasked string
	}{
		{name: "long card number shows last four", cardNumber: "4111111111113456", wantMasked: "3456"},
		{name: "short card number stays masked", cardNumber: "12", wantMasked: "****"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			card := payment.NewCard(testCase.cardNumber, "Paras")

			result, err := card.Process(250)

			assert.NoError(t, err)
			assert.Equal(t, 250.0, result.Amount)
			assert.Contains(t, result.PaymentID, "PAY-")
			assert.Contains(t, result.Message, testCase.wantMasked)
			assert.NotContains(t, result.Message, testCase.cardNumber+" ")
		})
	}
}

func TestWalletPayment(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "credentials supplied", password: "secret"},
		{name: "missing credentials", password: "", wantErr: domain.ErrPaymentAuthentication},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			wallet := payment.NewWallet("paras@wallet", testCase.password)

			result, err := wallet.Process(250)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 250.0, result.Amount)
			assert.Contains(t, result.Message, "paras@wallet")
		})
	}
}
