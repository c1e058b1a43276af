package auth

import (
	"fmt"
	"log/slog"

	"github.com/alexkarev/authgate/pkg/cookie"
	"github.com/alexkarev/authgate/pkg/environment"
	"github.com/alexkarev/authgate/pkg/identity"
)

// Cookie names for the session token triple issued after MFA verification.
const (
	CookieAccessToken  = "access_token"
	CookieRefreshToken = "refresh_token"
	CookieIDToken      = "id_token"
)

// Service orchestrates the authentication step handlers. It holds no
// per-request state; the identity provider is the system of record.
type Service struct {
	provider     identity.Provider
	cookies      *cookie.Manager
	clientID     string
	clientSecret string
	redirectURL  string
	tokenTTL     int
	log          *slog.Logger
}

// New builds the flow service. Session cookies are scoped to the apex
// domain so they are shared across subdomains, and carry the Secure
// attribute everywhere except local development.
func New(cfg Config, idp identity.Config, provider identity.Provider, log *slog.Logger) *Service {
	env := environment.Parse(cfg.Environment)

	cookies := cookie.New(
		cookie.WithDomain("."+cfg.Domain),
		cookie.WithSecure(env.SecureCookies()),
	)

	if log == nil {
		log = slog.Default()
	}

	return &Service{
		provider:     provider,
		cookies:      cookies,
		clientID:     idp.ClientID,
		clientSecret: idp.ClientSecret,
		redirectURL:  fmt.Sprintf("%s://%s%s", env.Scheme(), cfg.Domain, cfg.RedirectPath),
		tokenTTL:     cfg.TokenTTL,
		log:          log,
	}
}
