// Package cookie provides a small cookie manager with secure defaults.
//
// A Manager carries default attributes (Path=/, HttpOnly, SameSite=Lax) that
// individual Set calls can override through functional options:
//
//	m := cookie.New(cookie.WithDomain(".example.com"), cookie.WithSecure(true))
//	m.Set(w, "access_token", token, cookie.WithMaxAge(3600))
//
// Every Set call emits a separate Set-Cookie header value, which is required
// for responses that carry more than one cookie.
package cookie
