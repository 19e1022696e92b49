package bynder

// Config holds configuration for the Bynder asset provider.
type Config struct {
	// BaseURL is the customer portal URL (e.g. https://assets.example.com).
	BaseURL string `mapstructure:"base_url" default:""`
	// ClientID is the OAuth2 client id.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth2 client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// Scopes is a space-separated list of OAuth2 scopes to request.
	Scopes string `mapstructure:"scopes" default:"asset:read"`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
