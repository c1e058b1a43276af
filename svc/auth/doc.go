// Package auth implements the stateless email/password authentication flow
// with mandatory one-time-code MFA, backed by a managed identity provider.
//
// The flow is a sequence of independent HTTP steps: signup, signup
// confirmation, signin (which always opens an MFA challenge), MFA
// verification (which issues the session cookies), code resend, and the
// two-step password reset. The service holds no per-request state between
// steps; challenge continuity travels in the provider-issued session string
// that the client echoes back.
//
// Every step follows the same shape: required fields are checked for
// presence, then validated in declaration order reporting only the first
// failure, then the secret hash is derived and the provider is called.
// Provider failures are classified into categories and mapped to HTTP
// statuses per step; unrecognized failures surface as 500 with the
// provider's own description.
package auth
