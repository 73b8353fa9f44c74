package echo

import (
	"net/http"
	"net/url"

	"github.com/LuseBiswas/jobscrape"
	"github.com/labstack/echo/v4"
)

// ScrapeFailedMessage is returned when a scrape produced no jobs, whether
// the fetch failed or the page had no job cards.
const ScrapeFailedMessage = "No jobs found or scraping failed"

// OutcomeHeader carries the error code behind a ScrapeFailedMessage
// response so clients can tell a failed fetch from an empty listing.
const OutcomeHeader = "X-Scrape-Outcome"

// ScrapeResponse is the body of a successful scrape.
type ScrapeResponse struct {
	Jobs []*jobscrape.Job `json:"jobs"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScrape(c echo.Context) error {
	// Echo routes on RawPath when the request has one, leaving the
	// parameter escaped. Otherwise it is already decoded.
	role := c.Param("role")
	if c.Request().URL.RawPath != "" {
		var err error
		if role, err = url.PathUnescape(role); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed role"})
		}
	}

	jobs, err := s.scraper.Scrape(c.Request().Context(), role)
	switch {
	case jobscrape.ErrorCode(err) == jobscrape.EINVALID:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: jobscrape.ErrorMessage(err)})
	case err != nil:
		c.Response().Header().Set(OutcomeHeader, jobscrape.ErrorCode(err))
		return c.JSON(http.StatusOK, ErrorResponse{Error: ScrapeFailedMessage})
	case len(jobs) == 0:
		c.Response().Header().Set(OutcomeHeader, jobscrape.ENOTFOUND)
		return c.JSON(http.StatusOK, ErrorResponse{Error: ScrapeFailedMessage})
	}

	c.Response().Header().Set(OutcomeHeader, "ok")
	return c.JSON(http.StatusOK, ScrapeResponse{Jobs: jobs})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
