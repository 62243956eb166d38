package constants

// Redis key formats.
const (
	// Failed login counter per origin identifier (client IP).
	// Format: login_attempts:<origin> -> count
	CacheKeyLoginAttempts = "login_attempts:%s"
)
