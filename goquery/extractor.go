// Package goquery implements jobscrape.Extractor on top of goquery,
// matching job cards by tag name and exact class attribute.
package goquery

import (
	"strings"

	"github.com/LuseBiswas/jobscrape"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor extracts jobs from listing pages using a fixed selector table.
// Matching is structural only: a page whose markup no longer matches the
// table yields no jobs rather than a best-effort guess.
type Extractor struct {
	card    goquery.Matcher
	title   goquery.Matcher
	company goquery.Matcher
	details goquery.Matcher
}

// NewExtractor compiles the selector table into an Extractor.
// Returns EINVALID if the table is incomplete or cannot be compiled.
func NewExtractor(sel jobscrape.Selectors) (*Extractor, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{}
	for _, c := range []struct {
		name string
		sig  jobscrape.Signature
		dst  *goquery.Matcher
	}{
		{"card", sel.Card, &e.card},
		{"title", sel.Title, &e.title},
		{"company", sel.Company, &e.company},
		{"details", sel.Details, &e.details},
	} {
		m, err := cascadia.Compile(CSS(c.sig))
		if err != nil {
			return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid %s selector: %v", c.name, err)
		}
		*c.dst = m
	}
	return e, nil
}

// Extract parses HTML and returns one Job per job card in document order.
func (e *Extractor) Extract(html string) ([]*jobscrape.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	jobs := []*jobscrape.Job{}
	doc.FindMatcher(e.card).Each(func(_ int, card *goquery.Selection) {
		job := &jobscrape.Job{
			Title:   e.text(card, e.title),
			Company: e.text(card, e.company),
		}

		// A missing details row leaves nothing to search, so all three
		// derived fields fall back to NotAvailable.
		var details string
		if sel := card.FindMatcher(e.details).First(); sel.Length() > 0 {
			details = strings.TrimSpace(sel.Text())
		}
		job.Salary, job.Equity, job.Experience = jobscrape.ParseDetails(details)

		jobs = append(jobs, job)
	})

	return jobs, nil
}

// text returns the trimmed text of the first descendant of card matching m,
// or NotAvailable if there is none or it holds only whitespace.
func (e *Extractor) text(card *goquery.Selection, m goquery.Matcher) string {
	text := strings.TrimSpace(card.FindMatcher(m).First().Text())
	if text == "" {
		return jobscrape.NotAvailable
	}
	return text
}

// CSS returns a selector matching elements with the signature's tag and
// exactly its class attribute, e.g. div[class="sm:flex sm:space-x-2"].
func CSS(sig jobscrape.Signature) string {
	class := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(sig.Class)
	return sig.Tag + `[class="` + class + `"]`
}
