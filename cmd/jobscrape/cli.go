package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/LuseBiswas/jobscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper jobscrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"JOBSCRAPE_LOG_LEVEL" help:"Minimum log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" env:"JOBSCRAPE_LOG_FORMAT" help:"Log output format (${enum})"`

	BaseURL   string        `name:"base-url" default:"${base_url}" env:"JOBSCRAPE_BASE_URL" validate:"required,url" help:"Job board base URL"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"JOBSCRAPE_USER_AGENT" validate:"required" help:"User-Agent sent to the job board"`
	Timeout   time.Duration `short:"t" default:"10s" env:"JOBSCRAPE_TIMEOUT" validate:"gt=0" help:"Outbound fetch timeout"`
	Rate      float64       `default:"1" env:"JOBSCRAPE_RATE" validate:"gte=0" help:"Outbound requests per second per host (0 disables limiting)"`
	Burst     int           `default:"3" env:"JOBSCRAPE_BURST" validate:"gte=1" help:"Outbound request burst per host"`
	Selectors string        `type:"existingfile" env:"JOBSCRAPE_SELECTORS" help:"YAML file overriding the job card selector table"`

	Serve  ServeCmd  `cmd:"" help:"Serve the scrape API over HTTP"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape one role and print its jobs"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string        `short:"a" default:":8080" env:"JOBSCRAPE_ADDR" validate:"required" help:"Listen address"`
	AllowOrigins    []string      `name:"allow-origin" default:"${allow_origin}" sep:"," env:"JOBSCRAPE_ALLOW_ORIGINS" validate:"dive,url" help:"Origins allowed by CORS (repeatable)"`
	RequestTimeout  time.Duration `name:"request-timeout" default:"30s" env:"JOBSCRAPE_REQUEST_TIMEOUT" validate:"gte=0" help:"Deadline for each inbound request"`
	ShutdownTimeout time.Duration `name:"shutdown-timeout" default:"10s" validate:"gte=0" help:"Time allowed for in-flight requests on shutdown"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Role   string `arg:"" help:"Role to scrape, e.g. react-developer"`
	Format string `short:"f" default:"json" enum:"json,table" help:"Output format (${enum})"`
}
