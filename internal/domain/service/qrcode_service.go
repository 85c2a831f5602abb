package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateCouponQR renders a PNG QR code that redeems the coupon code
	GenerateCouponQR(code string) ([]byte, error)
}
