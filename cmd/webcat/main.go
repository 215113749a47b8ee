package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/admission"
	"github.com/fwojciec/webcat/etree"
	"github.com/fwojciec/webcat/fs"
	"github.com/fwojciec/webcat/gemini"
	"github.com/fwojciec/webcat/goquery"
	webhttp "github.com/fwojciec/webcat/http"
	"github.com/fwojciec/webcat/readability"
	"github.com/fwojciec/webcat/rules"
	"github.com/fwojciec/webcat/scrape"
	webslog "github.com/fwojciec/webcat/slog"
	"github.com/fwojciec/webcat/trafilatura"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webcat"),
		kong.Description("Scrape web pages and categorize their content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	config := webcat.DefaultConfig()
	config.DelayMin = cli.DelayMin
	config.DelayMax = cli.DelayMax
	config.Timeout = cli.Timeout
	config.MaxRetries = cli.Retries
	if cli.UserAgent != "" {
		config.UserAgent = cli.UserAgent
	}
	if cli.Model != "" {
		config.Model = cli.Model
	}
	if config.DelayMax < config.DelayMin {
		return fmt.Errorf("delay-max must not be smaller than delay-min")
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := webhttp.NewFetcher(
		webhttp.WithTimeout(config.Timeout),
		webhttp.WithUserAgent(config.UserAgent),
		webhttp.WithMaxRetries(config.MaxRetries),
		webhttp.WithBaseDelay(config.DelayMin),
	)
	defer fetcher.Close()

	var extractor webcat.Extractor
	switch cli.Engine {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	var categorizer webcat.Categorizer = rules.NewCategorizer()
	if cli.AI {
		if cli.APIKey == "" {
			return fmt.Errorf("--ai requires an API key (--api-key or GEMINI_API_KEY)")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		categorizer = gemini.NewCategorizer(client, config)
	}

	scraper := &scrape.Scraper{
		Validator:   admission.NewValidator(),
		Fetcher:     webslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   extractor,
		Metadata:    goquery.NewMetadataExtractor(),
		Categorizer: webslog.NewLoggingCategorizer(categorizer, logger),
		RateLimiter: scrape.NewDomainLimiter(cli.Rate),
		DelayMin:    config.DelayMin,
		DelayMax:    config.DelayMax,
		Logger:      logger,
	}

	var exporter webcat.Exporter
	switch cli.Format {
	case "csv":
		exporter = fs.NewCSVExporter()
	case "xml":
		exporter = etree.NewExporter()
	default:
		exporter = fs.NewJSONExporter()
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Scraper:  scraper,
		Exporter: exporter,
	}

	cmd := &ScrapeCmd{
		URLs:   cli.URLs,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Format    string        `short:"f" default:"json" enum:"json,csv,xml" help:"Export format"`
	Output    string        `short:"o" default:"scraped_data" help:"Output file path; the format extension is appended when missing"`
	Engine    string        `short:"e" default:"cascade" enum:"cascade,trafilatura,readability" help:"Content extraction engine"`
	AI        bool          `help:"Categorize with the Gemini API instead of keyword rules"`
	APIKey    string        `env:"GEMINI_API_KEY" help:"Gemini API key, required with --ai"`
	Model     string        `help:"Gemini model name"`
	DelayMin  time.Duration `default:"1s" help:"Minimum pacing delay between requests"`
	DelayMax  time.Duration `default:"3s" help:"Maximum pacing delay between requests"`
	Timeout   time.Duration `short:"t" default:"30s" help:"Fetch timeout per URL"`
	Retries   int           `default:"3" help:"Fetch attempts per URL"`
	UserAgent string        `help:"User-Agent header sent with every fetch"`
	Rate      float64       `default:"1" help:"Maximum requests per second per domain"`
	Verbose   bool          `short:"v" help:"Log pipeline events to stderr"`
	URLs      []string      `arg:"" name:"urls" required:"" help:"URLs to scrape"`
}
