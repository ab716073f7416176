package reference

import "github.com/godilite/score-report/internal/repository/models"

// DistributionSpec is the unvalidated, serializable form of a Distribution.
type DistributionSpec struct {
	Subject string `json:"subject" koanf:"subject"`
	Bins    []Bin  `json:"bins" koanf:"bins"`
}

// Snapshot is the raw reference data as a source delivers it. It is what
// gets cached and parsed; Tables is what gets served.
type Snapshot struct {
	ClassAverages []ClassReference   `json:"class_averages" koanf:"class_averages"`
	Distributions []DistributionSpec `json:"distributions" koanf:"distributions"`
}

// Tables validates the snapshot. Every defect is reported as ErrConfiguration.
func (s Snapshot) Tables() (*Tables, error) {
	dists := make([]*Distribution, 0, len(s.Distributions))
	for _, spec := range s.Distributions {
		d, err := NewDistribution(spec.Subject, spec.Bins)
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}
	return NewTables(s.ClassAverages, dists)
}

// Rows flattens the snapshot into the shape the SQL store persists.
func (s Snapshot) Rows() ([]models.ClassAverageRow, []models.ScoreBinRow) {
	averages := make([]models.ClassAverageRow, 0, len(s.ClassAverages))
	for i, r := range s.ClassAverages {
		averages = append(averages, models.ClassAverageRow{
			Subject:      r.Subject,
			ClassAverage: r.ClassAverage,
			Position:     i,
		})
	}

	var bins []models.ScoreBinRow
	for _, d := range s.Distributions {
		for _, b := range d.Bins {
			bins = append(bins, models.ScoreBinRow{
				Subject:      d.Subject,
				LowerBound:   b.Lower,
				UpperBound:   b.Upper,
				StudentCount: b.Count,
			})
		}
	}
	return averages, bins
}
