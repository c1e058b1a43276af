package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handle mounts the authentication step handlers.
//
//	r := chi.NewRouter()
//	r.Mount("/auth", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/signup", s.SignUp())
	r.Post("/signup/confirm", s.ConfirmSignUp())
	r.Post("/signup/resend", s.ResendCode())
	r.Post("/signin", s.SignIn())
	r.Post("/signin/mfa", s.MfaVerify())
	r.Post("/password/forgot", s.ForgotPassword())
	r.Post("/password/confirm", s.ForgotPasswordConfirm())

	return r
}
