package auth

import (
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/knighthacks/blade/internal/xrand"
)

// LoginFlowTTL bounds how long a login may sit between redirect and callback.
const LoginFlowTTL = 30 * time.Minute

func New(cfg Config) *Auth {
	a := &Auth{
		cfg: cfg,
		oauth2Cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoints.Discord,
			RedirectURL:  cfg.PublicURL + "/login/callback",
			Scopes:       []string{"identify", "guilds"},
		},
		pending: make(map[string]pendingLogin),
	}

	go a.expirePending()

	return a
}

type Auth struct {
	cfg       Config
	oauth2Cfg *oauth2.Config

	mu      sync.Mutex
	pending map[string]pendingLogin
}

type pendingLogin struct {
	redirectURL string
	startedAt   time.Time
}

func (p pendingLogin) expired() bool {
	return time.Since(p.startedAt) > LoginFlowTTL
}

func (a *Auth) Config() *oauth2.Config {
	return a.oauth2Cfg
}

// NewState registers a pending login and returns its opaque state token.
func (a *Auth) NewState(redirectURL string) string {
	state := xrand.Str(32)

	a.mu.Lock()
	a.pending[state] = pendingLogin{
		redirectURL: redirectURL,
		startedAt:   time.Now(),
	}
	a.mu.Unlock()

	return state
}

// ConsumeState resolves a state token to its redirect URL. Tokens are single
// use; an unknown or expired token returns ok = false.
func (a *Auth) ConsumeState(state string) (string, bool) {
	a.mu.Lock()
	login, ok := a.pending[state]
	delete(a.pending, state)
	a.mu.Unlock()

	if !ok || login.expired() {
		return "", false
	}

	return login.redirectURL, true
}

func (a *Auth) expirePending() {
	for range time.Tick(5 * time.Minute) {
		a.mu.Lock()
		for state, login := range a.pending {
			if login.expired() {
				delete(a.pending, state)
			}
		}
		a.mu.Unlock()
	}
}
