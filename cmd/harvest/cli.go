package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log every fetch and write"`
	Config  string `type:"path" help:"YAML file with crawl settings, markers and selectors"`

	Crawl CrawlCmd `cmd:"" help:"Crawl a site and write one cleaned document per page"`
	Index IndexCmd `cmd:"" help:"Load harvested documents into the document index"`
	Prune PruneCmd `cmd:"" help:"List or delete harvested files whose name contains a pattern"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Base URL; only pages under it are crawled"`
	Out         string        `short:"o" type:"path" default:"harvested" help:"Output directory"`
	SampleSize  int           `default:"50" help:"Pages sampled for boilerplate detection"`
	Threshold   float64       `default:"0.4" help:"Fraction of sampled pages a text must appear on to be boilerplate"`
	MinCount    int           `default:"2" help:"Minimum sampled pages a text must appear on to be boilerplate"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Delay       time.Duration `default:"500ms" help:"Minimum pause after each fetch"`
	MaxDelay    time.Duration `default:"1s" help:"Maximum pause after each fetch"`
	UserAgent   string        `help:"User-Agent header (default: desktop Chrome)"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	MaxPages    int           `help:"Stop after this many pages (0: no limit)"`
	Sitemap     bool          `help:"Seed the crawl from the site's sitemap"`
	Include     []string      `short:"I" sep:"none" help:"Only crawl URLs matching this regex (repeatable)"`
	Exclude     []string      `short:"X" sep:"none" help:"Skip URLs matching this regex (repeatable)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Dir      string `arg:"" type:"existingdir" help:"Directory of harvested documents"`
	Category string `required:"" help:"Category label stored with every document"`
	DB       string `type:"path" default:"harvest.db" help:"SQLite database file"`
	Replace  bool   `help:"Remove documents of the category before loading"`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	Dir     string `arg:"" help:"Directory of harvested documents"`
	Pattern string `arg:"" help:"Substring of the file names to remove"`
	Force   bool   `short:"f" help:"Delete the matching files instead of listing them"`
}
