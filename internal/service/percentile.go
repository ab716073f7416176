package service

import (
	"math"

	"github.com/godilite/score-report/internal/reference"
)

// EstimatePercentile ranks score against dist on a 0-100 scale, higher is
// better, rounded to one decimal. Students in bins above the score count
// fully against it; the bin holding the score counts half, as if the
// student sat at its median. Scores outside every bin extrapolate to 0 or
// 100. A nil distribution yields nil.
func EstimatePercentile(score float64, dist *reference.Distribution) *float64 {
	if dist == nil || dist.Total() <= 0 {
		return nil
	}

	var countAbove float64
	for _, b := range dist.Bins() {
		switch {
		case float64(b.Lower) > score:
			countAbove += float64(b.Count)
		case b.Contains(score):
			countAbove += float64(b.Count) / 2
		}
	}

	fromTop := countAbove / float64(dist.Total()) * 100
	rank := round1(100 - fromTop)
	return &rank
}

// round1 breaks exact ties toward the even digit.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
