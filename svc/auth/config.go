package auth

// Config holds authentication flow configuration loaded from the
// environment. Domain is the apex domain shared by session cookies across
// subdomains; RedirectPath is where clients land after authentication.
type Config struct {
	Domain       string `env:"DOMAIN,required"`
	RedirectPath string `env:"REDIRECT_PATH" envDefault:"/"`
	Environment  string `env:"ENV" envDefault:"local"`
	TokenTTL     int    `env:"TOKEN_TTL" envDefault:"3600"`
}
