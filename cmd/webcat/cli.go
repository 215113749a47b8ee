package main

import (
	"context"
	"io"

	"github.com/fwojciec/webcat"
	"github.com/fwojciec/webcat/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper  *scrape.Scraper
	Exporter webcat.Exporter
}

// ScrapeCmd handles the scrape operation.
type ScrapeCmd struct {
	URLs   []string
	Output string
}
