package identity

import (
	"context"
	"errors"
	"fmt"
)

// Category classifies provider failures into the fixed set the flow
// controller maps to HTTP results. Anything the classifier does not
// recognize is CategoryOther.
type Category string

const (
	CategoryUserNotFound     Category = "user_not_found"
	CategoryUsernameExists   Category = "username_exists"
	CategoryCodeMismatch     Category = "code_mismatch"
	CategoryExpiredCode      Category = "expired_code"
	CategoryNotAuthorized    Category = "not_authorized"
	CategoryUserNotConfirmed Category = "user_not_confirmed"
	CategoryInvalidParameter Category = "invalid_parameter"
	CategoryOther            Category = "other"
)

// Error is a categorized provider failure. The description preserves the
// provider's own wording so uncategorized failures are never silently
// swallowed.
type Error struct {
	Category    Category
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity provider error (%s): %s", e.Category, e.Description)
}

// CategoryOf extracts the failure category from an error chain.
// Non-provider errors report CategoryOther.
func CategoryOf(err error) Category {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Category
	}
	return CategoryOther
}

// Registration is the payload of a successful account registration.
type Registration struct {
	UserSub  string
	Delivery *CodeDelivery
}

// CodeDelivery describes where the provider sent a confirmation or reset
// code. Destination is masked by the provider (e.g. "u***@e***.com").
type CodeDelivery struct {
	Destination string
	Medium      string
}

// TokenSet is the triple issued after successful challenge completion.
// ExpiresIn is the access token lifetime in seconds.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	ExpiresIn    int32
}

// AuthOutcome is the result of an authentication initiation. Exactly one of
// ChallengeName/Session or Tokens is populated; a response carrying both or
// neither is the caller's problem to reject.
type AuthOutcome struct {
	ChallengeName string
	Session       string
	Tokens        *TokenSet
}

// Provider abstracts the managed identity provider: account storage,
// credential verification, and code generation/delivery all live behind
// this interface. Every method takes the caller-derived secret hash binding
// username and client identity.
type Provider interface {
	Register(ctx context.Context, username, password, secretHash string) (*Registration, error)
	ConfirmRegistration(ctx context.Context, username, code, secretHash string) error
	InitiateAuth(ctx context.Context, username, password, secretHash string) (*AuthOutcome, error)
	RespondToChallenge(ctx context.Context, username, code, session, secretHash string) (*TokenSet, error)
	ResendConfirmationCode(ctx context.Context, username, secretHash string) (*CodeDelivery, error)
	ForgotPassword(ctx context.Context, username, secretHash string) (*CodeDelivery, error)
	ConfirmForgotPassword(ctx context.Context, username, code, newPassword, secretHash string) error
}
