package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/score-report/internal/reference"
)

func mustTables(t testing.TB) *reference.Tables {
	t.Helper()
	tables, err := reference.Default().Tables()
	require.NoError(t, err)
	return tables
}

func mustDistribution(t testing.TB, subject string) *reference.Distribution {
	t.Helper()
	d, ok := mustTables(t).Distribution(subject)
	require.True(t, ok, subject)
	return d
}

func TestEstimatePercentile(t *testing.T) {
	mathDist := mustDistribution(t, "數學")

	cases := []struct {
		name  string
		score float64
		want  float64
	}{
		{name: "worked example", score: 85, want: 82.3},
		{name: "lower bound of a bin counts half", score: 80, want: 82.3},
		{name: "upper bound of a bin counts half", score: 89, want: 82.3},
		{name: "top bin", score: 95, want: 96.6},
		{name: "above every bin", score: 100, want: 100},
		{name: "bottom bin", score: 5, want: 0},
		{name: "middle", score: 70, want: 58.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimatePercentile(tc.score, mathDist)

			require.NotNil(t, got)
			assert.InDelta(t, tc.want, *got, 1e-9)
		})
	}

	t.Run("nil distribution", func(t *testing.T) {
		assert.Nil(t, EstimatePercentile(85, nil))
	})

	t.Run("zero value distribution", func(t *testing.T) {
		assert.Nil(t, EstimatePercentile(85, &reference.Distribution{}))
	})

	t.Run("below every bin", func(t *testing.T) {
		got := EstimatePercentile(-5, mathDist)
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
	})
}

func TestEstimatePercentile_BoundaryHalfCount(t *testing.T) {
	d, err := reference.NewDistribution("X", []reference.Bin{
		{Lower: 50, Upper: 99, Count: 10},
		{Lower: 0, Upper: 49, Count: 10},
	})
	require.NoError(t, err)

	// 10/2 of 20 counted above on either bound of the top bin.
	atLower := EstimatePercentile(50, d)
	atUpper := EstimatePercentile(99, d)
	justBelow := EstimatePercentile(49.5, d)

	require.NotNil(t, atLower)
	require.NotNil(t, atUpper)
	require.NotNil(t, justBelow)
	assert.Equal(t, 75.0, *atLower)
	assert.Equal(t, 75.0, *atUpper)
	assert.Equal(t, 50.0, *justBelow, "falls between bins: only the full top bin counts")
}

func TestEstimatePercentile_TieRoundsToEven(t *testing.T) {
	d, err := reference.NewDistribution("X", []reference.Bin{
		{Lower: 90, Upper: 99, Count: 3},
		{Lower: 0, Upper: 89, Count: 197},
	})
	require.NoError(t, err)

	// 1.5 of 200 above leaves exactly 99.25.
	got := EstimatePercentile(95, d)

	require.NotNil(t, got)
	assert.Equal(t, 99.2, *got)
}

func TestEstimatePercentile_RangeAndMonotonicity(t *testing.T) {
	tables := mustTables(t)

	for _, subject := range tables.Subjects() {
		d, ok := tables.Distribution(subject)
		if !ok {
			continue
		}
		t.Run(subject, func(t *testing.T) {
			prev := -1.0
			for s := 0.0; s <= 100; s += 0.5 {
				got := EstimatePercentile(s, d)
				require.NotNil(t, got)
				assert.GreaterOrEqual(t, *got, 0.0)
				assert.LessOrEqual(t, *got, 100.0)
				assert.GreaterOrEqual(t, *got, prev, "score %v ranks below a lower score", s)
				prev = *got
			}
		})
	}
}
