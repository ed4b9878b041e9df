package main

// Options configures the simulation server. Every option can also be set
// from the environment.
type Options struct {
	Listen             string   `short:"l" long:"listen" env:"LISTEN_ADDR" default:":8080" description:"Address the HTTP server listens on"`
	AllowOrigins       []string `long:"allow-origins" env:"ALLOW_ORIGINS" env-delim:"," default:"*" description:"Comma separated list of allowed CORS origins"`
	RateLimit          string   `long:"rate-limit" env:"SIM_RATE_LIMIT" default:"600-M" description:"Per client limit on simulation requests, e.g. 10-S or 600-M. Empty disables"`
	TrustForwardHeader bool     `long:"trust-forward-header" env:"TRUST_FORWARD_HEADER" description:"Use X-Forwarded-For / X-Real-IP to identify clients when rate limiting"`
}
