package auth

import (
	"context"
	"net/http"

	"github.com/alexkarev/authgate/binder"
	"github.com/alexkarev/authgate/handler"
	"github.com/alexkarev/authgate/pkg/cookie"
	"github.com/alexkarev/authgate/pkg/identity"
	"github.com/alexkarev/authgate/pkg/validator"
)

// SignUp registers a new account. The provider leaves it unconfirmed until
// the emailed code is presented to ConfirmSignUp.
func (s *Service) SignUp() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req SignUpRequest) handler.Response {
		return s.run(ctx, step{
			name:     "signup",
			username: req.Email,
			fields: []field{
				{"email", req.Email},
				{"password", req.Password},
			},
			rules: append(
				[]validator.Rule{validator.Email("email", req.Email)},
				validator.StrongPassword("password", req.Password)...,
			),
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				reg, err := s.provider.Register(ctx, req.Email, req.Password, secretHash)
				if err != nil {
					return nil, err
				}
				return handler.JSON(SignUpResponse{
					Message:  "registration pending confirmation",
					UserSub:  reg.UserSub,
					Delivery: newCodeDelivery(reg.Delivery),
				}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryUsernameExists: handler.ErrConflict.WithMessage("an account with this email already exists"),
			},
		})
	})
}

// ConfirmSignUp completes registration with the emailed confirmation code.
func (s *Service) ConfirmSignUp() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req ConfirmSignUpRequest) handler.Response {
		return s.run(ctx, step{
			name:     "signup_confirm",
			username: req.Email,
			fields: []field{
				{"email", req.Email},
				{"code", req.Code},
			},
			rules: []validator.Rule{
				validator.Email("email", req.Email),
				validator.Code("code", req.Code),
			},
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				if err := s.provider.ConfirmRegistration(ctx, req.Email, req.Code, secretHash); err != nil {
					return nil, err
				}
				return handler.JSON(MessageResponse{Message: "account confirmed"}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryCodeMismatch: handler.ErrBadRequest.WithMessage("incorrect confirmation code"),
				identity.CategoryExpiredCode:  handler.ErrBadRequest.WithMessage("confirmation code has expired"),
				identity.CategoryUserNotFound: handler.ErrNotFound.WithMessage("user not found"),
			},
		})
	})
}

// SignIn verifies credentials and opens the MFA challenge. MFA is mandatory:
// a provider response carrying final tokens at this stage is an error, never
// an implicit success.
func (s *Service) SignIn() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req SignInRequest) handler.Response {
		return s.run(ctx, step{
			name:     "signin",
			username: req.Email,
			fields: []field{
				{"email", req.Email},
				{"password", req.Password},
			},
			rules: append(
				[]validator.Rule{validator.Email("email", req.Email)},
				validator.StrongPassword("password", req.Password)...,
			),
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				outcome, err := s.provider.InitiateAuth(ctx, req.Email, req.Password, secretHash)
				if err != nil {
					return nil, err
				}

				switch {
				case outcome.ChallengeName != "" && outcome.Tokens == nil:
					return handler.JSON(ChallengeResponse{
						Message:       "MFA required",
						ChallengeName: outcome.ChallengeName,
						Session:       outcome.Session,
					}), nil
				case outcome.Tokens != nil:
					return nil, handler.ErrInternalServerError.WithMessage(
						"unexpected token response: MFA is required, but tokens were returned")
				default:
					return nil, handler.ErrInternalServerError.WithMessage(
						"unexpected response from identity provider")
				}
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryNotAuthorized:    handler.ErrUnauthorized.WithMessage("incorrect email or password"),
				identity.CategoryUserNotConfirmed: handler.ErrForbidden.WithMessage("account is not confirmed; confirm your email first"),
			},
		})
	})
}

// MfaVerify answers the email OTP challenge. On success the token triple is
// issued as HttpOnly session cookies; token values never appear in the body.
func (s *Service) MfaVerify() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req MfaVerifyRequest) handler.Response {
		return s.run(ctx, step{
			name:     "mfa_verify",
			username: req.Email,
			fields: []field{
				{"email", req.Email},
				{"code", req.Code},
				{"session", req.Session},
			},
			rules: []validator.Rule{
				validator.Email("email", req.Email),
				validator.Code("code", req.Code),
			},
			call: func(callCtx context.Context, secretHash string) (handler.Response, error) {
				tokens, err := s.provider.RespondToChallenge(callCtx, req.Email, req.Code, req.Session, secretHash)
				if err != nil {
					return nil, err
				}

				s.issueSessionCookies(ctx.ResponseWriter(), tokens)

				return handler.JSON(AuthenticatedResponse{
					Message:  "authenticated",
					Redirect: s.redirectURL,
				}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryNotAuthorized: handler.ErrUnauthorized.WithMessage("incorrect or expired verification code"),
			},
		})
	})
}

// ResendCode re-sends the registration confirmation code.
func (s *Service) ResendCode() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req ResendCodeRequest) handler.Response {
		return s.run(ctx, step{
			name:     "resend_code",
			username: req.Email,
			fields:   []field{{"email", req.Email}},
			rules:    []validator.Rule{validator.Email("email", req.Email)},
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				delivery, err := s.provider.ResendConfirmationCode(ctx, req.Email, secretHash)
				if err != nil {
					return nil, err
				}
				return handler.JSON(DeliveryResponse{
					Message:  "confirmation code resent",
					Delivery: newCodeDelivery(delivery),
				}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryUserNotFound: handler.ErrNotFound.WithMessage("user not found"),
				// The provider rejects resends for confirmed accounts with
				// an invalid-parameter error.
				identity.CategoryInvalidParameter: handler.ErrBadRequest.WithMessage("account is already confirmed"),
			},
		})
	})
}

// ForgotPassword starts the password reset sub-flow by sending a reset code.
func (s *Service) ForgotPassword() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req ForgotPasswordRequest) handler.Response {
		return s.run(ctx, step{
			name:     "forgot_password",
			username: req.Email,
			fields:   []field{{"email", req.Email}},
			rules:    []validator.Rule{validator.Email("email", req.Email)},
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				delivery, err := s.provider.ForgotPassword(ctx, req.Email, secretHash)
				if err != nil {
					return nil, err
				}
				return handler.JSON(DeliveryResponse{
					Message:  "password reset code sent",
					Delivery: newCodeDelivery(delivery),
				}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryUserNotFound: handler.ErrNotFound.WithMessage("user not found"),
			},
		})
	})
}

// ForgotPasswordConfirm completes the reset with the emailed code and the
// new credential.
func (s *Service) ForgotPasswordConfirm() http.HandlerFunc {
	return wrap(s, func(ctx handler.Context, req ForgotPasswordConfirmRequest) handler.Response {
		return s.run(ctx, step{
			name:     "forgot_password_confirm",
			username: req.Email,
			fields: []field{
				{"email", req.Email},
				{"code", req.Code},
				{"new_password", req.NewPassword},
			},
			rules: append(
				[]validator.Rule{
					validator.Email("email", req.Email),
					validator.Code("code", req.Code),
				},
				validator.StrongPassword("new_password", req.NewPassword)...,
			),
			call: func(ctx context.Context, secretHash string) (handler.Response, error) {
				if err := s.provider.ConfirmForgotPassword(ctx, req.Email, req.Code, req.NewPassword, secretHash); err != nil {
					return nil, err
				}
				return handler.JSON(MessageResponse{Message: "password changed"}), nil
			},
			failures: map[identity.Category]handler.HTTPError{
				identity.CategoryCodeMismatch: handler.ErrBadRequest.WithMessage("incorrect confirmation code"),
				identity.CategoryExpiredCode:  handler.ErrBadRequest.WithMessage("confirmation code has expired"),
				identity.CategoryUserNotFound: handler.ErrNotFound.WithMessage("user not found"),
			},
		})
	})
}

// issueSessionCookies writes the token triple as HttpOnly cookies bounded
// by the provider token lifetime.
func (s *Service) issueSessionCookies(w http.ResponseWriter, tokens *identity.TokenSet) {
	maxAge := s.tokenTTL
	if tokens.ExpiresIn > 0 {
		maxAge = int(tokens.ExpiresIn)
	}

	s.cookies.Set(w, CookieAccessToken, tokens.AccessToken, cookie.WithMaxAge(maxAge))
	s.cookies.Set(w, CookieRefreshToken, tokens.RefreshToken, cookie.WithMaxAge(maxAge))
	s.cookies.Set(w, CookieIDToken, tokens.IDToken, cookie.WithMaxAge(maxAge))
}

// wrap binds a JSON body into the step's request type and adapts the typed
// handler to net/http.
func wrap[R any](s *Service, h func(handler.Context, R) handler.Response) http.HandlerFunc {
	return handler.Wrap(
		handler.HandlerFunc[handler.Context, R](h),
		handler.WithBinder[handler.Context, R](binder.JSON()),
	)
}
