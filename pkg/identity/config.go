package identity

// Config holds identity provider configuration loaded from the environment.
// ClientSecret participates in secret hash derivation only; it is never sent
// to clients or logged.
type Config struct {
	ClientID     string `env:"COGNITO_APP_CLIENT_ID,required"`
	ClientSecret string `env:"COGNITO_APP_CLIENT_SECRET,required"`
	UserPoolID   string `env:"COGNITO_USER_POOL_ID,required"`
	Region       string `env:"AWS_REGION" envDefault:"us-east-1"`

	// Optional static credentials and endpoint override for local stacks.
	AccessKeyID string `env:"AWS_ACCESS_KEY_ID" envDefault:""`
	SecretKey   string `env:"AWS_SECRET_ACCESS_KEY" envDefault:""`
	Endpoint    string `env:"COGNITO_ENDPOINT" envDefault:""`
}
