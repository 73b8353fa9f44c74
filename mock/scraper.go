package mock

import (
	"context"

	"github.com/LuseBiswas/jobscrape"
)

var _ jobscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of jobscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, role string) ([]*jobscrape.Job, error)
}

func (s *Scraper) Scrape(ctx context.Context, role string) ([]*jobscrape.Job, error) {
	return s.ScrapeFn(ctx, role)
}
