package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"golang.org/x/oauth2"

	"github.com/knighthacks/blade/internal/xrand"
	"github.com/knighthacks/blade/server/auth"
	"github.com/knighthacks/blade/server/database"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || strings.HasPrefix(path, "/login")
}

func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		var session *database.SessionWithUser
		for _, cookie := range r.CookiesNamed("session") {
			var err error
			session, err = h.DB.GetSession(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, database.ErrNotFound) {
					slog.ErrorContext(ctx, "failed to get session from database", slog.Any("err", err), slog.String("session_id", cookie.Value))
				}
				continue
			}
			break
		}

		if session == nil {
			h.respondJSON(w, r, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}

		r = r.WithContext(auth.SetSession(ctx, *session))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := auth.GetSession(r)
		if !session.Admin {
			h.respondJSON(w, r, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	redirect := r.URL.Query().Get("rd")
	if redirect == "" {
		redirect = "/"
	}

	state := h.Auth.NewState(redirect)

	scopes := strings.Join(h.Auth.Config().Scopes, " ")
	opts := []oauth2.AuthCodeOption{oauth2.SetAuthURLParam("scope", scopes)}

	expiration := time.Now().Add(auth.LoginFlowTTL)
	addOauthCookie(w, state, expiration)
	http.Redirect(w, r, h.Auth.Config().AuthCodeURL(state, opts...), http.StatusTemporaryRedirect)
}

func (h *handler) LoginCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	oauthState, _ := r.Cookie("oauthstate")
	state := query.Get("state")
	code := query.Get("code")

	if oauthState == nil || state != oauthState.Value {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	redirectURL, ok := h.Auth.ConsumeState(state)
	if !ok {
		http.Error(w, "Unknown OAuth state", http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Config().Exchange(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to exchange OAuth code", slog.Any("err", err))
		http.Error(w, "Failed to exchange OAuth code", http.StatusInternalServerError)
		return
	}

	user, err := h.getDiscordUser(ctx, token.AccessToken)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get user info from Discord", slog.Any("err", err))
		http.Error(w, "Failed to get user info from Discord", http.StatusInternalServerError)
		return
	}

	if !slices.Contains(h.Cfg.Auth.Whitelist, user.ID.String()) {
		guilds, err := h.getDiscordUserGuilds(ctx, token.AccessToken)
		if err != nil {
			slog.ErrorContext(ctx, "failed to get user guilds from Discord", slog.Any("err", err))
			http.Error(w, "Failed to get user guilds from Discord", http.StatusInternalServerError)
			return
		}

		if i := slices.IndexFunc(guilds, func(g discord.OAuth2Guild) bool {
			return g.ID.String() == h.Cfg.Auth.GuildID
		}); i == -1 {
			slog.ErrorContext(ctx, "user is not whitelisted or a member of the Discord guild", slog.String("guild_id", h.Cfg.Auth.GuildID))
			http.Error(w, "You are not whitelisted or a member of the Discord guild", http.StatusForbidden)
			return
		}
	}

	admin := slices.Contains(h.Cfg.Auth.Admins, user.ID.String())

	now := time.Now()
	expiration := now.AddDate(1, 0, 0)
	session := xrand.Str(32)
	if err = h.DB.UpsertUser(ctx, database.User{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.EffectiveName(),
		AvatarURL:   user.EffectiveAvatarURL(),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to upsert user", slog.Any("err", err))
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	if err = h.DB.CreateSession(ctx, database.Session{
		ID:        session,
		CreatedAt: now,
		ExpiresAt: expiration,
		UserID:    user.ID.String(),
		Admin:     admin,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to create session", slog.Any("err", err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	addSessionCookie(w, session, expiration)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := auth.GetSession(r)
	if session.Session.ID != "" {
		if err := h.DB.DeleteSession(ctx, session.Session.ID); err != nil {
			slog.ErrorContext(ctx, "failed to delete session", slog.Any("err", err))
		}
	}

	addSessionCookie(w, "", time.Unix(0, 0))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *handler) getDiscordUser(ctx context.Context, accessToken string) (*discord.OAuth2User, error) {
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://discord.com/api/v10/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Authorization", "Bearer "+accessToken)

	rs, err := h.HTTPClient.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", rs.StatusCode)
	}

	var user discord.OAuth2User
	if err = json.NewDecoder(rs.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}

func (h *handler) getDiscordUserGuilds(ctx context.Context, accessToken string) ([]discord.OAuth2Guild, error) {
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://discord.com/api/v10/users/@me/guilds", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Authorization", "Bearer "+accessToken)

	rs, err := h.HTTPClient.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", rs.StatusCode)
	}

	var guilds []discord.OAuth2Guild
	if err = json.NewDecoder(rs.Body).Decode(&guilds); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return guilds, nil
}

func addOauthCookie(w http.ResponseWriter, state string, expiration time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "oauthstate",
		Value:    state,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func addSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    session,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
