package web

import (
	"net/http"

	"github.com/knighthacks/blade/internal/middlewares"
	"github.com/knighthacks/blade/server"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Healthz)

	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("GET /login/callback", h.LoginCallback)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.HandleFunc("POST   /members", h.CreateMember)
	mux.HandleFunc("GET    /members/me", h.GetMember)
	mux.HandleFunc("GET    /members/me/events", h.GetAttendedEvents)
	mux.Handle("GET    /members", h.admin(http.HandlerFunc(h.GetMembers)))
	mux.Handle("PUT    /members/{member_id}", h.admin(http.HandlerFunc(h.UpdateMember)))
	mux.Handle("DELETE /members/{member_id}", h.admin(http.HandlerFunc(h.DeleteMember)))
	mux.Handle("GET /members/{member_id}/qr", middlewares.Cache(h.admin(http.HandlerFunc(h.GetMemberQRCode))))

	mux.Handle("GET    /members/dues", h.admin(http.HandlerFunc(h.GetDuesPayingMembers)))
	mux.Handle("PUT    /members/{member_id}/dues", h.admin(http.HandlerFunc(h.MarkDuesPaid)))
	mux.Handle("DELETE /members/{member_id}/dues", h.admin(http.HandlerFunc(h.ClearDuesPaid)))
	mux.Handle("DELETE /dues", h.admin(http.HandlerFunc(h.ClearAllDues)))

	mux.Handle("GET    /events", h.admin(http.HandlerFunc(h.GetEvents)))
	mux.Handle("POST   /events", h.admin(http.HandlerFunc(h.CreateEvent)))
	mux.Handle("PATCH  /events/{event_id}", h.admin(http.HandlerFunc(h.UpdateEvent)))
	mux.Handle("DELETE /events/{event_id}", h.admin(http.HandlerFunc(h.DeleteEvent)))

	mux.Handle("POST /events/{event_id}/check-in", h.admin(http.HandlerFunc(h.CheckIn)))
	mux.Handle("GET  /events/{event_id}/attendees", h.admin(http.HandlerFunc(h.GetEventAttendees)))
	mux.HandleFunc("POST /events/{event_id}/feedback", h.SubmitFeedback)
	mux.Handle("GET  /events/{event_id}/feedback", h.admin(http.HandlerFunc(h.GetEventFeedback)))

	return h.auth(mux)
}
