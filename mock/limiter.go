package mock

import (
	"context"

	"github.com/LuseBiswas/jobscrape"
)

var _ jobscrape.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of jobscrape.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
