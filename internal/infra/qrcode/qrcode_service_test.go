package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"folio/config"
	domainerrors "folio/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"low", "L", qrcode.Low},
		{"medium", "M", qrcode.Medium},
		{"quartile", "q", qrcode.High},
		{"highest", "H", qrcode.Highest},
		{"fallback", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, 256, svc.size)
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	assert.Equal(t, 256, svc.(*qrcodeService).size)
}

func TestGenerateLinkQR(t *testing.T) {
	svc := newQRCodeService(128, "M")

	data, err := svc.GenerateLinkQR("https://example.com/portfolio")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestGenerateLinkQR_RejectsInvalidLinks(t *testing.T) {
	svc := newQRCodeService(128, "M")

	for _, link := range []string{"", "not a url", "ftp://example.com", "/relative/path"} {
		_, err := svc.GenerateLinkQR(link)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput, link)
	}
}
