package jobscrape

import "context"

// NotAvailable is the value of any Job field that could not be extracted.
const NotAvailable = "N/A"

// Job represents one listing parsed from a job card.
// Every field holds either the extracted text or NotAvailable, never "".
type Job struct {
	Title      string `json:"title"`
	Company    string `json:"company"`
	Salary     string `json:"salary"`
	Equity     string `json:"equity"`
	Experience string `json:"experience"`
}

// Scraper fetches the listing page for a role and extracts its jobs.
type Scraper interface {
	// Scrape returns the jobs listed for role in page order.
	// Returns EINVALID if the role is malformed and EUNAVAILABLE if the
	// listing page could not be fetched. A page without job cards is not
	// an error and yields an empty slice.
	Scrape(ctx context.Context, role string) ([]*Job, error)
}
