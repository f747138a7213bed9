package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pinpoint"
	"github.com/fwojciec/pinpoint/annotate"
	"github.com/fwojciec/pinpoint/gemini"
	"github.com/fwojciec/pinpoint/goquery"
	"github.com/fwojciec/pinpoint/htmltomarkdown"
	pinhttp "github.com/fwojciec/pinpoint/http"
	"github.com/fwojciec/pinpoint/readability"
	"github.com/fwojciec/pinpoint/rod"
	pinslog "github.com/fwojciec/pinpoint/slog"
	"github.com/fwojciec/pinpoint/sqlite"
	"github.com/fwojciec/pinpoint/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	SnapshotService pinpoint.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pinpoint"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pinpoint --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PINPOINT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SnapshotService = sqlite.NewSnapshotService(m.DB)
	deps.DB = m.DB
	deps.Snapshots = m.SnapshotService
	deps.Converter = htmltomarkdown.NewConverter()

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	if cli.Verbose {
		deps.Logger = logger
	}

	// Wire command-specific dependencies based on command
	needBrowser := (cmd == "resolve" && !cli.Resolve.Offline) ||
		(cmd == "summarize" && !cli.Summarize.Static)
	if needBrowser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()
		deps.Browser = browser
	}

	if cmd == "summarize" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var fetcher pinpoint.Fetcher = deps.Browser
		if cli.Summarize.Static {
			fetcher = pinhttp.NewFetcher()
		}
		var summarizer pinpoint.Summarizer = gemini.NewSummarizer(client)
		if cli.Verbose {
			fetcher = pinslog.NewLoggingFetcher(fetcher, logger)
			summarizer = pinslog.NewLoggingSummarizer(summarizer, logger)
		}

		deps.Annotator = &annotate.Annotator{
			Fetcher:     fetcher,
			Extractor:   trafilatura.NewExtractor(),
			Fallback:    readability.NewExtractor(),
			Summarizer:  summarizer,
			Resolvers:   goquery.NewResolverFactory(),
			Snapshots:   m.SnapshotService,
			RateLimiter: annotate.NewDomainLimiter(1.0),
			Concurrency: cli.Summarize.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PINPOINT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pinpoint.db"
	}
	dir := filepath.Join(home, ".pinpoint")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pinpoint.db")
}
