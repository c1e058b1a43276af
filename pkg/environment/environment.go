// Package environment models the deployment environment tag and the
// behavior that depends on it: URL scheme and cookie security attributes.
package environment

// Environment represents the application deployment environment.
type Environment string

const (
	// Development for local development environment.
	Development Environment = "development"
	// Staging for staging environment.
	Staging Environment = "staging"
	// Production for production environment.
	Production Environment = "production"
)

// Parse normalizes an environment tag. Common development aliases map to
// Development; anything unrecognized is treated as Production so unknown
// deployments default to the secure behavior.
func Parse(s string) Environment {
	switch s {
	case "development", "dev", "local":
		return Development
	case "staging", "stage":
		return Staging
	default:
		return Production
	}
}

// IsDevelopment reports whether this is a local development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsProduction reports whether this is a production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// Scheme returns the URL scheme for externally visible links: plain http in
// development, https everywhere else.
func (e Environment) Scheme() string {
	if e.IsDevelopment() {
		return "http"
	}
	return "https"
}

// SecureCookies reports whether cookies must carry the Secure attribute.
// Only local development, where TLS is unavailable, may drop it.
func (e Environment) SecureCookies() bool {
	return !e.IsDevelopment()
}
