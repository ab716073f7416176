package service

import "github.com/godilite/score-report/internal/reference"

// ReferenceData is the read-only lookup the report is merged against.
// *reference.Tables implements it.
type ReferenceData interface {
	ClassAverage(subject string) (float64, bool)
	Distribution(subject string) (*reference.Distribution, bool)
}
