package httpapi

import "time"

const defaultMaxBodyBytes int64 = 1 << 20

// maxBodyBytes bounds form and JSON request bodies.
var maxBodyBytes = defaultMaxBodyBytes

// SetMaxBodyBytes configures the maximum request body size. n <= 0 restores 1 MiB.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
)

// SetCORSOptions configures CORS behavior for the JSON API.
func SetCORSOptions(enabled bool, origins []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
}

// Rate limit for submit and recommendation endpoints. Zero disables it.
var (
	rateLimitRequests int
	rateLimitWindow   = time.Minute
)

// SetRateLimit allows n submissions per client IP per minute (0 disables).
func SetRateLimit(n int) {
	if n < 0 {
		n = 0
	}
	rateLimitRequests = n
}
