package reference

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

const (
	minBound = 0
	// The published tables top out at 99; 100 is accepted for tables that
	// close the range explicitly.
	minTopBound = 99
	maxTopBound = 100
)

// Bin is a closed score range [Lower, Upper] with the number of students
// that scored inside it.
type Bin struct {
	Lower int `json:"lower" koanf:"lower"`
	Upper int `json:"upper" koanf:"upper"`
	Count int `json:"count" koanf:"count"`
}

// Contains reports whether score lies inside the bin, bounds included.
func (b Bin) Contains(score float64) bool {
	return float64(b.Lower) <= score && score <= float64(b.Upper)
}

// Distribution is a validated score histogram for one subject. Bins are
// ordered descending by upper bound and partition [0, top] without gaps.
type Distribution struct {
	subject string
	bins    []Bin
	total   int
}

// NewDistribution validates bins and freezes them into a Distribution.
// Input order is irrelevant; bins are sorted descending by upper bound.
func NewDistribution(subject string, bins []Bin) (*Distribution, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: distribution without subject", ErrConfiguration)
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w: distribution %q has no bins", ErrConfiguration, subject)
	}

	sorted := slices.Clone(bins)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Upper > sorted[j].Upper
	})

	total := 0
	for i, b := range sorted {
		if b.Lower > b.Upper {
			return nil, fmt.Errorf("%w: distribution %q: bin %d-%d has lower bound above upper bound",
				ErrConfiguration, subject, b.Lower, b.Upper)
		}
		if b.Count < 0 {
			return nil, fmt.Errorf("%w: distribution %q: bin %d-%d has negative count %d",
				ErrConfiguration, subject, b.Lower, b.Upper, b.Count)
		}
		if i > 0 {
			prev := sorted[i-1]
			if prev.Lower != b.Upper+1 {
				return nil, fmt.Errorf("%w: distribution %q: bins %d-%d and %d-%d leave a gap or overlap",
					ErrConfiguration, subject, prev.Lower, prev.Upper, b.Lower, b.Upper)
			}
		}
		total += b.Count
	}

	if top := sorted[0].Upper; top < minTopBound || top > maxTopBound {
		return nil, fmt.Errorf("%w: distribution %q: top bin ends at %d, want %d or %d",
			ErrConfiguration, subject, top, minTopBound, maxTopBound)
	}
	if bottom := sorted[len(sorted)-1].Lower; bottom != minBound {
		return nil, fmt.Errorf("%w: distribution %q: bottom bin starts at %d, want %d",
			ErrConfiguration, subject, bottom, minBound)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: distribution %q has no students", ErrConfiguration, subject)
	}

	return &Distribution{subject: subject, bins: sorted, total: total}, nil
}

// Subject returns the subject the histogram describes.
func (d *Distribution) Subject() string { return d.subject }

// Bins returns a copy of the bins, highest range first.
func (d *Distribution) Bins() []Bin { return slices.Clone(d.bins) }

// Total returns the population size; always positive.
func (d *Distribution) Total() int { return d.total }
