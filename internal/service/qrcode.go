package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// ReceiptQRGenerator encodes the order's receipt URL as a PNG.
type ReceiptQRGenerator struct {
	BaseURL string
}

func (g ReceiptQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/api/orders/%s/receipt", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
