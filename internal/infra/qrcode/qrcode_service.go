// Package qrcode renders coupon codes as PNG QR images.
package qrcode

import (
	"net/url"
	"strings"

	"courseadmin/config"
	"courseadmin/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	redeemBaseURL        string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, base := defaultSize, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		base = cfg.QRCode.RedeemBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		redeemBaseURL:        strings.TrimRight(base, "?&"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCouponQR renders the redeem payload for code as PNG
func (s *qrcodeService) GenerateCouponQR(code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("coupon code is empty")
	}

	qrCode, err := qrcode.New(s.CouponPayload(code), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// CouponPayload is the text encoded in the QR: the redeem URL carrying the
// code when one is configured, otherwise the bare code.
func (s *qrcodeService) CouponPayload(code string) string {
	if s.redeemBaseURL == "" {
		return code
	}

	sep := "?"
	if strings.Contains(s.redeemBaseURL, "?") {
		sep = "&"
	}

	return s.redeemBaseURL + sep + url.Values{"code": {code}}.Encode()
}
