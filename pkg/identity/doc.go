// Package identity abstracts the managed identity provider behind a narrow
// call/response contract. The provider owns user accounts, credential
// verification, and confirmation/reset code lifecycle; this package only
// forwards requests and classifies failures.
//
// Provider failures surface as *Error carrying one of a fixed set of
// categories (user not found, username exists, code mismatch, expired code,
// not authorized, user not confirmed, invalid parameter, other). Callers
// map categories to results without ever depending on the concrete
// provider's exception types:
//
//	delivery, err := prov.ForgotPassword(ctx, email, hash)
//	if identity.CategoryOf(err) == identity.CategoryUserNotFound {
//		// 404
//	}
//
// CognitoProvider is the AWS Cognito implementation, built for user pools
// whose app client has a client secret: every call carries the secret hash
// derived by the caller.
package identity
