package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/LuseBiswas/jobscrape"
	jobecho "github.com/LuseBiswas/jobscrape/echo"
	"github.com/LuseBiswas/jobscrape/goquery"
	jobhttp "github.com/LuseBiswas/jobscrape/http"
	"github.com/LuseBiswas/jobscrape/scrape"
	jobslog "github.com/LuseBiswas/jobscrape/slog"
	"github.com/LuseBiswas/jobscrape/yaml"
	"github.com/alecthomas/kong"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Dotenv file loaded into the environment before flags are parsed.
	// A missing file is ignored. Set before calling Run().
	EnvFile string

	// Scraper replaces the HTTP-backed scraper when set. Used by tests.
	Scraper jobscrape.Scraper
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

var validate = validator.New()

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := loadEnv(m.EnvFile); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscrape"),
		kong.Description("Scrape job listings for a role from a job board"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"base_url":     jobscrape.DefaultBaseURL,
			"user_agent":   jobhttp.DefaultUserAgent,
			"allow_origin": jobecho.DefaultAllowOrigin,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobscrape --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := validate.Struct(cli); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.LogFormat)

	scraper := m.Scraper
	if scraper == nil {
		svc, fetcher, err := newService(cli, deps.Logger)
		if err != nil {
			return err
		}
		defer fetcher.Close()
		scraper = svc
	}
	deps.Scraper = jobslog.NewLoggingScraper(scraper, deps.Logger)

	return kongCtx.Run(deps)
}

// newService wires the HTTP fetcher and goquery extractor into a scrape
// service. The returned fetcher must be closed by the caller.
func newService(cli *CLI, logger *slog.Logger) (*scrape.Service, jobscrape.Fetcher, error) {
	sel := goquery.WellfoundSelectors()
	if cli.Selectors != "" {
		var err error
		if sel, err = yaml.LoadSelectors(cli.Selectors); err != nil {
			return nil, nil, fmt.Errorf("failed to load selectors from %q: %w", cli.Selectors, err)
		}
	}

	extractor, err := goquery.NewExtractor(sel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build extractor: %w", err)
	}

	fetcher := jobslog.NewLoggingFetcher(
		jobhttp.NewFetcher(
			jobhttp.WithTimeout(cli.Timeout),
			jobhttp.WithUserAgent(cli.UserAgent),
		),
		logger,
	)

	svc := &scrape.Service{
		Fetcher:   fetcher,
		Extractor: extractor,
		BaseURL:   cli.BaseURL,
	}
	if cli.Rate > 0 {
		svc.Limiter = scrape.NewHostLimiter(cli.Rate, cli.Burst)
	}

	return svc, fetcher, nil
}

// loadEnv loads path into the process environment without overriding
// variables that are already set.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(strings.ToUpper(level)))

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
