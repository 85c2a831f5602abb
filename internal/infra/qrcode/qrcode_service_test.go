package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"courseadmin/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(qr *config.QRCodeConfig) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: qr}).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.QRCodeConfig
		wantSize  int
		wantLevel qrcode.RecoveryLevel
	}{
		{"Unconfigured", nil, defaultSize, qrcode.Medium},
		{"Low error correction", &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}, 128, qrcode.Low},
		{"Medium error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}, 256, qrcode.Medium},
		{"High error correction", &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "q"}, 256, qrcode.High},
		{"Highest error correction", &config.QRCodeConfig{Size: 512, ErrorCorrectionLevel: "H"}, 512, qrcode.Highest},
		{"Default error correction", &config.QRCodeConfig{ErrorCorrectionLevel: "invalid"}, defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(tt.cfg)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	svc := newService(&config.QRCodeConfig{Size: 200, RedeemBaseURL: "https://shop.example.com/redeem"})

	qrBytes, err := svc.GenerateCouponQR("SUMMER25")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestQRCodeService_GenerateCouponQR_EmptyCode(t *testing.T) {
	svc := newService(nil)

	_, err := svc.GenerateCouponQR("  ")
	assert.Error(t, err)
}

func TestQRCodeService_CouponPayload(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"bare code", "", "SUMMER25"},
		{"redeem url", "https://shop.example.com/redeem", "https://shop.example.com/redeem?code=SUMMER25"},
		{"existing query", "https://shop.example.com/redeem?src=qr", "https://shop.example.com/redeem?src=qr&code=SUMMER25"},
		{"trailing question mark", "https://shop.example.com/redeem?", "https://shop.example.com/redeem?code=SUMMER25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&config.QRCodeConfig{RedeemBaseURL: tt.base})
			assert.Equal(t, tt.want, svc.CouponPayload("SUMMER25"))
		})
	}
}
