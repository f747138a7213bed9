package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pinpoint"
	"github.com/fwojciec/pinpoint/annotate"
	"github.com/fwojciec/pinpoint/rod"
	"github.com/fwojciec/pinpoint/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Snapshots pinpoint.SnapshotService
	Converter pinpoint.Converter
	Browser   *rod.Fetcher // live page access; nil for offline commands
	Annotator *annotate.Annotator
	Logger    *slog.Logger // non-nil only with --verbose
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Resolve   ResolveCmd   `cmd:"" help:"Resolve reference texts to page elements"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a page and resolve its citations"`
	Pages     PagesCmd     `cmd:"" help:"Manage stored page snapshots"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL        string   `arg:"" help:"Page URL"`
	References []string `arg:"" name:"reference" help:"Reference texts to resolve"`
	Offline    bool     `short:"o" help:"Resolve against the stored snapshot instead of the live page"`
	MinScore   float64  `default:"0.3" help:"Minimum similarity for a match"`
	Trace      bool     `short:"t" help:"Print traversal counters per reference"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL         string `arg:"" help:"Page URL"`
	Static      bool   `short:"s" help:"Fetch with plain HTTP instead of a browser (static sites only)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent reference resolution limit"`
}

// PagesCmd groups the snapshot management subcommands.
type PagesCmd struct {
	List   PagesListCmd   `cmd:"" help:"List stored snapshots"`
	Delete PagesDeleteCmd `cmd:"" help:"Delete a stored snapshot"`
}

// PagesListCmd is the "pages list" subcommand.
type PagesListCmd struct{}

// PagesDeleteCmd is the "pages delete" subcommand.
type PagesDeleteCmd struct {
	URL   string `arg:"" help:"Snapshot URL"`
	Force bool   `help:"Confirm deletion"`
}
