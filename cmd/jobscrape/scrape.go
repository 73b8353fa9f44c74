package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/LuseBiswas/jobscrape"
	jobecho "github.com/LuseBiswas/jobscrape/echo"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Scraper.Scrape(deps.Ctx, c.Role)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobscrape.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stderr, jobecho.ScrapeFailedMessage)
	}

	if c.Format == "table" {
		return writeTable(deps, jobs)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(jobecho.ScrapeResponse{Jobs: jobs})
}

func writeTable(deps *Dependencies, jobs []*jobscrape.Job) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCOMPANY\tSALARY\tEQUITY\tEXPERIENCE")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.Title, j.Company, j.Salary, j.Equity, j.Experience)
	}
	return w.Flush()
}
