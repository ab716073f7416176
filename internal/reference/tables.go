package reference

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ClassReference is the published class mean for one subject.
type ClassReference struct {
	Subject      string  `json:"subject" koanf:"subject"`
	ClassAverage float64 `json:"class_average" koanf:"class_average"`
}

// Tables is the immutable, validated reference data shared by every report.
// It is safe for concurrent use because nothing mutates it after NewTables.
type Tables struct {
	averages      map[string]float64
	distributions map[string]*Distribution
	subjects      []string
}

// NewTables indexes class averages and distributions by subject.
func NewTables(refs []ClassReference, dists []*Distribution) (*Tables, error) {
	if len(refs) == 0 && len(dists) == 0 {
		return nil, fmt.Errorf("%w: reference tables are empty", ErrConfiguration)
	}

	t := &Tables{
		averages:      make(map[string]float64, len(refs)),
		distributions: make(map[string]*Distribution, len(dists)),
	}
	seen := make(map[string]bool)
	addSubject := func(s string) {
		if !seen[s] {
			seen[s] = true
			t.subjects = append(t.subjects, s)
		}
	}

	for _, r := range refs {
		if strings.TrimSpace(r.Subject) == "" {
			return nil, fmt.Errorf("%w: class average without subject", ErrConfiguration)
		}
		if math.IsNaN(r.ClassAverage) || math.IsInf(r.ClassAverage, 0) {
			return nil, fmt.Errorf("%w: class average for %q is not a finite number", ErrConfiguration, r.Subject)
		}
		if _, dup := t.averages[r.Subject]; dup {
			return nil, fmt.Errorf("%w: duplicate class average for %q", ErrConfiguration, r.Subject)
		}
		t.averages[r.Subject] = r.ClassAverage
		addSubject(r.Subject)
	}

	for _, d := range dists {
		if d == nil {
			return nil, fmt.Errorf("%w: nil distribution", ErrConfiguration)
		}
		if _, dup := t.distributions[d.Subject()]; dup {
			return nil, fmt.Errorf("%w: duplicate distribution for %q", ErrConfiguration, d.Subject())
		}
		t.distributions[d.Subject()] = d
		addSubject(d.Subject())
	}

	return t, nil
}

// ClassAverage returns the class mean for subject, if published.
func (t *Tables) ClassAverage(subject string) (float64, bool) {
	avg, ok := t.averages[subject]
	return avg, ok
}

// Distribution returns the histogram for subject, if published.
func (t *Tables) Distribution(subject string) (*Distribution, bool) {
	d, ok := t.distributions[subject]
	return d, ok
}

// Subjects lists every subject known to either table, class averages first,
// in load order.
func (t *Tables) Subjects() []string {
	return slices.Clone(t.subjects)
}
