package mock

import "github.com/LuseBiswas/jobscrape"

var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*jobscrape.Job, error)
}

func (e *Extractor) Extract(html string) ([]*jobscrape.Job, error) {
	return e.ExtractFn(html)
}
