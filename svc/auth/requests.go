package auth

// Request payloads for the step handlers. Field order matches validation
// order: presence is checked for all declared fields first, then each field
// is format-checked in declaration order.

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ConfirmSignUpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MfaVerifyRequest struct {
	Email   string `json:"email"`
	Code    string `json:"code"`
	Session string `json:"session"`
}

type ResendCodeRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordConfirmRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}
