package models

type ClassAverageRow struct {
	Subject      string
	ClassAverage float64
	Position     int
}

type ScoreBinRow struct {
	Subject      string
	LowerBound   int
	UpperBound   int
	StudentCount int
}
