package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/LuseBiswas/jobscrape"
)

// Ensure LoggingScraper implements jobscrape.Scraper.
var _ jobscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs each scrape with its outcome.
type LoggingScraper struct {
	next   jobscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next jobscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the role, job count and
// error code. An empty result is logged at warn level because it usually
// means the board changed its markup or served a bot wall.
func (s *LoggingScraper) Scrape(ctx context.Context, role string) (jobs []*jobscrape.Job, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"role", role,
			"count", len(jobs),
			"duration", time.Since(begin),
		}
		switch {
		case err != nil:
			attrs = append(attrs, "code", jobscrape.ErrorCode(err), "err", err)
			s.logger.Log(ctx, slog.LevelError, "scrape", attrs...)
		case len(jobs) == 0:
			s.logger.Log(ctx, slog.LevelWarn, "scrape", attrs...)
		default:
			s.logger.Log(ctx, slog.LevelInfo, "scrape", attrs...)
		}
	}(time.Now())
	return s.next.Scrape(ctx, role)
}
