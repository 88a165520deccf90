package services

import (
	"errors"
	"math/rand/v2"
	"shopping-path-service/internal/domain"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// ErrEmptyIndex is returned when a layout yields no products.
var ErrEmptyIndex = errors.New("location index: layout contains no products")

// Normalize case-folds a product name for index lookups. Whitespace is
// significant and kept as is.
func Normalize(name string) string {
	return cases.Fold().String(name)
}

// LocationIndex maps normalized product names to exactly one location.
//
// Keys keep the enumeration order of the layout they were built from;
// fuzzy resolution scans in that order and the first hit wins.
// The index is read-only after construction and safe for concurrent reads.
type LocationIndex struct {
	keys        []string
	locations   map[string]domain.Location
	fingerprint uint64
}

// NewLocationIndex builds the index from flattened layout entries.
// A product listed twice keeps its first position and its last location.
func NewLocationIndex(entries []domain.ProductLocation) (*LocationIndex, error) {
	idx := &LocationIndex{
		keys:      make([]string, 0, len(entries)),
		locations: make(map[string]domain.Location, len(entries)),
	}

	for _, e := range entries {
		key := Normalize(e.Product)
		if key == "" {
			continue
		}
		if _, ok := idx.locations[key]; !ok {
			idx.keys = append(idx.keys, key)
		}
		idx.locations[key] = e.Location
	}

	if len(idx.keys) == 0 {
		return nil, ErrEmptyIndex
	}

	idx.fingerprint = idx.computeFingerprint()
	return idx, nil
}

func (x *LocationIndex) computeFingerprint() uint64 {
	d := xxhash.New()
	for _, k := range x.keys {
		loc := x.locations[k]
		_, _ = d.WriteString(k)
		_, _ = d.WriteString("\x00" + loc.Corridor + "\x00" + string(loc.Side) + "\x00" + string(loc.End))
		_, _ = d.WriteString("\x00" + loc.Category + "\x00" + strconv.Itoa(loc.DistanceFromStart) + "\n")
	}
	return d.Sum64()
}

// Len returns the number of distinct products.
func (x *LocationIndex) Len() int { return len(x.keys) }

// Fingerprint identifies the index content, including enumeration order.
func (x *LocationIndex) Fingerprint() uint64 { return x.fingerprint }

// Resolve looks up a requested item name.
//
// An exact (case-folded) match is authoritative. Otherwise the first key, in
// enumeration order, that contains the query or is contained in it wins.
// That match is not guaranteed to be the closest one; an empty query is a
// substring of every key and resolves to the first.
func (x *LocationIndex) Resolve(name string) (domain.Location, bool) {
	query := Normalize(name)

	if loc, ok := x.locations[query]; ok {
		return loc, true
	}

	for _, k := range x.keys {
		if strings.Contains(k, query) || strings.Contains(query, k) {
			return x.locations[k], true
		}
	}

	return domain.Location{}, false
}

// RandomSample draws up to n distinct product names uniformly without
// replacement. A nil rng uses the global source.
func (x *LocationIndex) RandomSample(n int, rng *rand.Rand) []string {
	if n <= 0 {
		return []string{}
	}
	if n > len(x.keys) {
		n = len(x.keys)
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	pool := make([]string, len(x.keys))
	copy(pool, x.keys)

	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := 0; i < n; i++ {
		j := i + intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}
