// Package scrape composes a Fetcher and an Extractor into a jobscrape.Scraper.
package scrape

import (
	"context"
	"net/url"

	"github.com/LuseBiswas/jobscrape"
)

var _ jobscrape.Scraper = (*Service)(nil)

// Service scrapes a role's listing page with one fetch and one extraction.
// It holds no per-call state and is safe for concurrent use as long as its
// dependencies are.
type Service struct {
	Fetcher   jobscrape.Fetcher
	Extractor jobscrape.Extractor

	// Limiter, if set, is waited on before every fetch.
	Limiter jobscrape.HostLimiter

	// BaseURL of the job board. Defaults to jobscrape.DefaultBaseURL.
	BaseURL string
}

// Scrape fetches the listing page for role and extracts its jobs.
func (s *Service) Scrape(ctx context.Context, role string) ([]*jobscrape.Job, error) {
	role, err := jobscrape.NormalizeRole(role)
	if err != nil {
		return nil, err
	}

	pageURL := jobscrape.RoleURL(s.baseURL(), role)

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, hostOf(pageURL)); err != nil {
			return nil, jobscrape.Errorf(jobscrape.EUNAVAILABLE, "waiting to fetch %s: %v", pageURL, err)
		}
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return s.Extractor.Extract(html)
}

func (s *Service) baseURL() string {
	if s.BaseURL == "" {
		return jobscrape.DefaultBaseURL
	}
	return s.BaseURL
}

// hostOf returns the host of rawURL, or "_" when it has none so that
// unparsable URLs still share a single limiter.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "_"
	}
	return u.Host
}
