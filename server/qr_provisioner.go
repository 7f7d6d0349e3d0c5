package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/knighthacks/blade/internal/tsync"
)

const qrProvisionConcurrency = 4

// provisionQRCodes periodically back-fills badge QR codes for members that do
// not have one in object storage, e.g. after a bucket wipe or a registration
// whose best-effort upload failed.
func (s *Server) provisionQRCodes() {
	for {
		s.doProvisionQRCodes()
		time.Sleep(1 * time.Hour)
	}
}

func (s *Server) doProvisionQRCodes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	members, err := s.DB.GetMembers(ctx)
	if err != nil {
		slog.Error("failed to list members for QR back-fill", slog.Any("err", err))
		return
	}

	var provisioned atomic.Int64
	eg := tsync.NewGroup(qrProvisionConcurrency)

	for _, member := range members {
		eg.Go(func() error {
			ok, err := s.Service.HasQRCode(ctx, member.UserID)
			if err != nil {
				return fmt.Errorf("failed to check QR code for %s: %w", member.UserID, err)
			}
			if ok {
				return nil
			}

			if err = s.Service.ProvisionQRCode(ctx, member.UserID); err != nil {
				return fmt.Errorf("failed to provision QR code for %s: %w", member.UserID, err)
			}
			provisioned.Add(1)
			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		slog.Error("QR back-fill finished with errors", slog.Any("err", err))
	}

	if n := provisioned.Load(); n > 0 {
		s.Notifier.Send(ctx, "QR Codes Provisioned", fmt.Sprintf("Back-filled `%d` member QR codes", n), "")
	}
}
