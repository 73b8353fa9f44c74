package jobscrape

import "context"

// HostLimiter provides per-host rate limiting for outbound requests.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
