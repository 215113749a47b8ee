package scrape

// Stats aggregates the records collected by a Scraper.
type Stats struct {
	TotalScraped     int
	Categories       map[string]int
	StatusCodes      map[int]int
	ContentLength    ContentLengthStats
	Domains          int
	DuplicateContent int
}

// ContentLengthStats summarizes record content lengths.
type ContentLengthStats struct {
	Mean float64
	Min  int
	Max  int
}

// Stats computes aggregate statistics over the records collected so far.
func (s *Scraper) Stats() *Stats {
	stats := &Stats{
		Categories:  make(map[string]int),
		StatusCodes: make(map[int]int),
	}
	if len(s.records) == 0 {
		return stats
	}

	stats.TotalScraped = len(s.records)
	stats.ContentLength.Min = len(s.records[0].Content)

	domains := make(map[string]struct{})
	hashes := make(map[string]int)
	var total int

	for _, r := range s.records {
		stats.Categories[r.Category]++
		stats.StatusCodes[r.StatusCode]++

		n := len(r.Content)
		total += n
		if n < stats.ContentLength.Min {
			stats.ContentLength.Min = n
		}
		if n > stats.ContentLength.Max {
			stats.ContentLength.Max = n
		}

		domains[domainOf(r.URL)] = struct{}{}
		hashes[r.ContentHash]++
	}

	stats.ContentLength.Mean = float64(total) / float64(len(s.records))
	stats.Domains = len(domains)

	for _, count := range hashes {
		if count > 1 {
			stats.DuplicateContent += count - 1
		}
	}

	return stats
}
