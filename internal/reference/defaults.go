package reference

// deciles builds the standard 90-99 ... 0-9 bins from counts listed
// highest range first.
func deciles(counts ...int) []Bin {
	bins := make([]Bin, len(counts))
	for i, c := range counts {
		upper := 99 - i*10
		bins[i] = Bin{Lower: upper - 9, Upper: upper, Count: c}
	}
	return bins
}

// Default returns the published class tables the service ships with.
func Default() Snapshot {
	return Snapshot{
		ClassAverages: []ClassReference{
			{Subject: "國語文", ClassAverage: 72.54},
			{Subject: "英語文", ClassAverage: 68.23},
			{Subject: "數學", ClassAverage: 69.76},
			{Subject: "歷史", ClassAverage: 68.72},
			{Subject: "地理", ClassAverage: 68.22},
			{Subject: "物理", ClassAverage: 75.07},
			{Subject: "化學", ClassAverage: 79.65},
			{Subject: "生物", ClassAverage: 68.81},
			{Subject: "地球科學", ClassAverage: 63.94},
		},
		Distributions: []DistributionSpec{
			{Subject: "國語文", Bins: deciles(9, 75, 147, 94, 26, 3, 0, 0, 1, 0)},
			{Subject: "英語文", Bins: deciles(18, 82, 92, 61, 57, 27, 11, 4, 3, 0)},
			{Subject: "數學", Bins: deciles(24, 78, 94, 90, 33, 19, 9, 8, 0, 0)},
			{Subject: "歷史", Bins: deciles(0, 37, 155, 101, 52, 10, 3, 0, 0, 0)},
			{Subject: "化學", Bins: deciles(31, 75, 36, 18, 7, 3, 3, 0, 0, 0)},
			{Subject: "生物", Bins: deciles(2, 36, 60, 34, 26, 15, 3, 1, 0, 0)},
		},
	}
}
