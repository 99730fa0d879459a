// Package payment holds the mocked payment methods. Charging is simulated:
// no gateway is contacted and a repeated call charges again.
package payment

import (
	"fmt"

	"github.com/google/uuid"

	"dineout/internal/domain"
)

// Result reports the outcome of one processed charge.
type Result struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
}

// Method is one way of paying an order total.
type Method interface {
	Process(amount float64) (Result, error)
}

// Card simulates a credit/debit card charge. It always succeeds and only
// ever reports the last four digits of the card number.
type Card struct {
	paymentID string
	number    string
	holder    string
}

func NewCard(number, holder string) *Card {
	return &Card{
		paymentID: "PAY-" + uuid.NewString(),
		number:    number,
		holder:    holder,
	}
}

func (c *Card) Process(amount float64) (Result, error) {
	return Result{
		PaymentID: c.paymentID,
		Amount:    amount,
		Message:   fmt.Sprintf("card payment of ₹%.2f approved for %s (card ending in %s)", amount, c.holder, maskedTail(c.number)),
	}, nil
}

func maskedTail(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return number[len(number)-4:]
}

// Wallet simulates a digital wallet charge. Authentication passes only
// when credentials were supplied at construction.
type Wallet struct {
	paymentID string
	walletID  string
	password  string
}

func NewWallet(walletID, password string) *Wallet {
	return &Wallet{
		paymentID: "PAY-" + uuid.NewString(),
		walletID:  walletID,
		password:  password,
	}
}

func (w *Wallet) Process(amount float64) (Result, error) {
	if w.password == "" {
		return Result{}, domain.ErrPaymentAuthentication
	}
	return Result{
		PaymentID: w.paymentID,
		Amount:    amount,
		Message:   fmt.Sprintf("wallet payment of ₹%.2f approved for %s", amount, w.walletID),
	}, nil
}

var (
	_ Method = (*Card)(nil)
	_ Method = (*Wallet)(nil)
)
