package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	records, err := deps.Scraper.ScrapeAll(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d/%d URLs\n", len(records), len(c.URLs))
	printStats(deps.Stdout, deps.Scraper.Stats())

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to export")
		return nil
	}

	path, err := deps.Exporter.Export(records, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webcat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(records), path)
	return nil
}

func printStats(w io.Writer, stats *scrape.Stats) {
	if stats.TotalScraped == 0 {
		return
	}

	fmt.Fprintln(w, "Categories:")
	for _, name := range slices.Sorted(maps.Keys(stats.Categories)) {
		fmt.Fprintf(w, "  %s: %d\n", name, stats.Categories[name])
	}

	fmt.Fprintf(w, "Domains: %d\n", stats.Domains)
	if stats.DuplicateContent > 0 {
		fmt.Fprintf(w, "Duplicate content: %d\n", stats.DuplicateContent)
	}
	fmt.Fprintf(w, "Content length: min=%d avg=%.0f max=%d\n",
		stats.ContentLength.Min, stats.ContentLength.Mean, stats.ContentLength.Max)
}
