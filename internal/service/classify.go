package service

// Classify lists subjects above and below their class average in report
// order. Subjects level with the average, or without one, are in neither list.
func Classify(report AnalysisReport) Recommendation {
	rec := Recommendation{Above: []string{}, Below: []string{}}
	for _, row := range report.Rows {
		if row.Difference == nil {
			continue
		}
		switch d := *row.Difference; {
		case d > 0:
			rec.Above = append(rec.Above, row.Subject)
		case d < 0:
			rec.Below = append(rec.Below, row.Subject)
		}
	}
	return rec
}
