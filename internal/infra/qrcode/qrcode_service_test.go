package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low letter", "L", qrcode.Low},
		{"Low word", "low", qrcode.Low},
		{"Medium", "medium", qrcode.Medium},
		{"High letter", "Q", qrcode.High},
		{"Highest", "H", qrcode.Highest},
		{"Unknown falls back to medium", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_TrackingURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://shop.example.com/")

	assert.Equal(t, "https://shop.example.com/orders/ORD123", svc.TrackingURL("ORD123"))
	assert.Equal(t, "https://shop.example.com/orders/a%2Fb", svc.TrackingURL("a/b"))
}

func TestQRCodeService_GenerateOrderTrackingQR(t *testing.T) {
	svc := newQRCodeService(128, "M", "https://shop.example.com")

	qrBytes, err := svc.GenerateOrderTrackingQR("ORD123")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateOrderTrackingQR_RequiresOrderID(t *testing.T) {
	svc := newQRCodeService(128, "M", "")

	_, err := svc.GenerateOrderTrackingQR("  ")
	assert.Error(t, err)
}

func TestNewQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	qrBytes, err := svc.GenerateOrderTrackingQR("ORD1")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
	assert.Equal(t, "/orders/ORD1", svc.TrackingURL("ORD1"))
}
