package inriver

// Config holds configuration for the inRiver entity store client.
type Config struct {
	// BaseURL is the REST API root (e.g. https://api.productmarketingcloud.com).
	BaseURL string `mapstructure:"base_url" default:""`
	// ApiKey is the REST API key sent with every request.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
