package engine

import (
	"cmp"
	"slices"
)

// Count is the number of questions sharing a key.
type Count struct {
	Key   string
	Count int

	// Converter names the converter handling the key, empty when none does.
	Converter string
}

// Stats counts questions per canonical signature and per short formula.
// Frequent unmatched signatures are the candidates for new converters.
type Stats struct {
	Total      int
	Matched    int
	Incomplete int

	signatures map[string]*Count
	shorts     map[string]*Count
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		signatures: make(map[string]*Count),
		shorts:     make(map[string]*Count),
	}
}

// Add records one result.
func (s *Stats) Add(r *Result) {
	s.Total++
	if r.Matched {
		s.Matched++
	}
	if r.Incomplete() {
		s.Incomplete++
	}

	bump(s.signatures, r.Signature, r.Converter)
	bump(s.shorts, r.Short, "")
}

func bump(counts map[string]*Count, key, converterName string) {
	c, ok := counts[key]
	if !ok {
		c = &Count{Key: key, Converter: converterName}
		counts[key] = c
	}
	c.Count++
}

// Signatures returns signature counts, most frequent first.
func (s *Stats) Signatures() []Count {
	return sorted(s.signatures)
}

// ShortFormulas returns counts per relation-name sequence, most frequent
// first.
func (s *Stats) ShortFormulas() []Count {
	return sorted(s.shorts)
}

// Unmatched returns the signatures no converter handles, most frequent
// first.
func (s *Stats) Unmatched() []Count {
	var out []Count
	for _, c := range s.Signatures() {
		if c.Converter == "" {
			out = append(out, c)
		}
	}
	return out
}

// sorted orders by count descending, then key ascending.
func sorted(counts map[string]*Count) []Count {
	out := make([]Count, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Count) int {
		if n := cmp.Compare(b.Count, a.Count); n != 0 {
			return n
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
