package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/knighthacks/blade/internal/xio"
)

func QRObjectName(userID string) string {
	return fmt.Sprintf("qr-code-%s.png", userID)
}

func qrData(userID string) string {
	return "user:" + userID
}

// ProvisionQRCode renders the member's badge QR code and stores it in object
// storage under a name derived from the identity.
func (s *Service) ProvisionQRCode(ctx context.Context, userID string) error {
	png, err := renderQRCode(qrData(userID))
	if err != nil {
		return err
	}

	if err = s.objects.Put(ctx, QRObjectName(userID), png, "image/png"); err != nil {
		return fmt.Errorf("failed to store QR code: %w", err)
	}

	return nil
}

func (s *Service) HasQRCode(ctx context.Context, userID string) (bool, error) {
	return s.objects.Exists(ctx, QRObjectName(userID))
}

// GetQRCode returns the stored badge image, rendering it on the fly when the
// object is missing.
func (s *Service) GetQRCode(ctx context.Context, userID string) ([]byte, error) {
	png, err := s.objects.Get(ctx, QRObjectName(userID))
	if err == nil {
		return png, nil
	}

	return renderQRCode(qrData(userID))
}

func renderQRCode(data string) ([]byte, error) {
	qr, err := qrcode.New(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	buf := &bytes.Buffer{}
	qrW := standard.NewWithWriter(xio.NopWriteCloser(buf),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	if err = qr.Save(qrW); err != nil {
		return nil, fmt.Errorf("failed to save QR code: %w", err)
	}
	if err = qrW.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish QR code: %w", err)
	}

	return buf.Bytes(), nil
}
