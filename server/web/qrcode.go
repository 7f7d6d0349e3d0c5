package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/knighthacks/blade/server/database"
	"github.com/knighthacks/blade/server/service"
)

// GetMemberQRCode serves the member's badge image for printing or re-scanning.
func (h *handler) GetMemberQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	memberID := r.PathValue("member_id")

	member, err := h.DB.GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			err = service.ErrMemberNotFound
		}
		h.respondError(w, r, err)
		return
	}

	png, err := h.Service.GetQRCode(ctx, member.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get QR code", slog.String("member_id", memberID), slog.Any("err", err))
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err = w.Write(png); err != nil {
		slog.ErrorContext(ctx, "failed to write QR code response", slog.Any("err", err))
	}
}
