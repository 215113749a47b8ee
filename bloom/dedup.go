// Package bloom provides probabilistic URL deduplication for batch scraping.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// minCapacity keeps the filter usable for very small batches.
const minCapacity = 64

// Dedup tracks URLs already processed within a batch using a Bloom filter.
// A false positive causes a URL to be skipped as a duplicate; false
// negatives do not occur. Dedup is not safe for concurrent use.
type Dedup struct {
	filter *bloom.BloomFilter
	count  uint
}

// NewDedup creates a Dedup sized for n expected URLs with the given false
// positive rate.
func NewDedup(n uint, fpRate float64) *Dedup {
	if n < minCapacity {
		n = minCapacity
	}
	return &Dedup{
		filter: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether url was already recorded, recording it as a side
// effect when it was not.
func (d *Dedup) Seen(url string) bool {
	if d.filter.TestAndAddString(url) {
		return true
	}
	d.count++
	return false
}

// Count returns the number of distinct URLs recorded so far.
func (d *Dedup) Count() uint {
	return d.count
}
