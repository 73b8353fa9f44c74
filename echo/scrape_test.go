package echo_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LuseBiswas/jobscrape"
	jobecho "github.com/LuseBiswas/jobscrape/echo"
	"github.com/LuseBiswas/jobscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(scraper jobscrape.Scraper, opts ...jobecho.Option) *jobecho.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return jobecho.NewServer(scraper, logger, opts...)
}

func get(t *testing.T, s http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("returns jobs wrapped in envelope", func(t *testing.T) {
		t.Parallel()

		var gotRole string
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, role string) ([]*jobscrape.Job, error) {
				gotRole = role
				return []*jobscrape.Job{{
					Title:      "React Developer",
					Company:    "Acme",
					Salary:     "₹8L – ₹15L",
					Equity:     "No equity",
					Experience: "1 year of exp",
				}}, nil
			},
		}

		rec := get(t, newServer(scraper), "/scrape/react-developer")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "react-developer", gotRole)
		assert.Equal(t, "ok", rec.Header().Get(jobecho.OutcomeHeader))
		assert.JSONEq(t, `{"jobs":[{
			"title":"React Developer",
			"company":"Acme",
			"salary":"₹8L – ₹15L",
			"equity":"No equity",
			"experience":"1 year of exp"
		}]}`, rec.Body.String())
	})

	t.Run("returns generic error when fetch fails", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) ([]*jobscrape.Job, error) {
				return nil, jobscrape.Errorf(jobscrape.EUNAVAILABLE, "dial tcp: connection refused")
			},
		}

		rec := get(t, newServer(scraper), "/scrape/react-developer")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"No jobs found or scraping failed"}`, rec.Body.String())
		assert.Equal(t, jobscrape.EUNAVAILABLE, rec.Header().Get(jobecho.OutcomeHeader))
	})

	t.Run("returns generic error when no jobs are found", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) ([]*jobscrape.Job, error) {
				return []*jobscrape.Job{}, nil
			},
		}

		rec := get(t, newServer(scraper), "/scrape/react-developer")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"No jobs found or scraping failed"}`, rec.Body.String())
		assert.Equal(t, jobscrape.ENOTFOUND, rec.Header().Get(jobecho.OutcomeHeader))
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) ([]*jobscrape.Job, error) {
				return nil, jobscrape.Errorf(jobscrape.EINVALID, "role must not contain '/'")
			},
		}

		rec := get(t, newServer(scraper), "/scrape/a%2Fb")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body jobecho.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "role must not contain '/'", body.Error)
	})

	t.Run("unescapes role path segment", func(t *testing.T) {
		t.Parallel()

		var gotRole string
		scraper := &mock.Scraper{
			ScrapeFn: func(_ context.Context, role string) ([]*jobscrape.Job, error) {
				gotRole = role
				return []*jobscrape.Job{{Title: "Dev"}}, nil
			},
		}

		rec := get(t, newServer(scraper), "/scrape/c%23%20developer")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "c# developer", gotRole)
	})

	t.Run("decodes role exactly once", func(t *testing.T) {
		t.Parallel()

		for path, want := range map[string]string{
			"/scrape/100%25":   "100%",
			"/scrape/50%2541":  "50%41",
			"/scrape/a%2Fb%25": "a/b%",
		} {
			roles := make(chan string, 1)
			scraper := &mock.Scraper{
				ScrapeFn: func(_ context.Context, role string) ([]*jobscrape.Job, error) {
					roles <- role
					return []*jobscrape.Job{{Title: "Dev"}}, nil
				},
			}

			rec := get(t, newServer(scraper), path)

			require.Equal(t, http.StatusOK, rec.Code, path)
			assert.Equal(t, want, <-roles, path)
		}
	})

	t.Run("applies request deadline to scrape context", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool
		scraper := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, _ string) ([]*jobscrape.Job, error) {
				_, hasDeadline = ctx.Deadline()
				return []*jobscrape.Job{{Title: "Dev"}}, nil
			},
		}

		rec := get(t, newServer(scraper, jobecho.WithRequestTimeout(5*time.Second)), "/scrape/go")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, hasDeadline)
	})

	t.Run("recovers from scraper panic", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeFn: func(context.Context, string) ([]*jobscrape.Job, error) {
				panic("boom")
			},
		}

		rec := get(t, newServer(scraper), "/scrape/go")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_CORS(t *testing.T) {
	t.Parallel()

	t.Run("allows configured origin with credentials", func(t *testing.T) {
		t.Parallel()

		s := newServer(&mock.Scraper{}, jobecho.WithAllowOrigins("https://jobs.example.com"))

		req := httptest.NewRequest(http.MethodOptions, "/scrape/go", nil)
		req.Header.Set("Origin", "https://jobs.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://jobs.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "X-Custom-Header", rec.Header().Get("Access-Control-Allow-Headers"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	})

	t.Run("does not allow other origins", func(t *testing.T) {
		t.Parallel()

		s := newServer(&mock.Scraper{}, jobecho.WithAllowOrigins("https://jobs.example.com"))

		req := httptest.NewRequest(http.MethodOptions, "/scrape/go", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	rec := get(t, newServer(&mock.Scraper{}), "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
