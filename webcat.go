// Package webcat provides a small-scale categorizing web scraper. It
// fetches pages, extracts clean text and structured metadata, assigns a
// topical category from a fixed taxonomy, and exports structured records
// to flat files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, etree/).
package webcat
