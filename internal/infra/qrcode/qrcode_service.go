// Package qrcode renders donor contact cards as PNG QR codes.
package qrcode

import (
	"fmt"

	"raktapulse/config"
	"raktapulse/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size int
}

// NewQRCodeService creates a new QR code generator instance.
func NewQRCodeService(cfg *config.Config) service.QRCodeGenerator {
	size := defaultSize
	if cfg.QRCode != nil && cfg.QRCode.Size > 0 {
		size = cfg.QRCode.Size
	}

	return &qrcodeService{size: size}
}

// GeneratePNG encodes the content as a PNG QR code image.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	qrCode, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
