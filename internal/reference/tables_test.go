package reference

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables, err := Default().Tables()
	require.NoError(t, err)

	avg, ok := tables.ClassAverage("數學")
	assert.True(t, ok)
	assert.Equal(t, 69.76, avg)

	avg, ok = tables.ClassAverage("地理")
	assert.True(t, ok)
	assert.Equal(t, 68.22, avg)

	_, ok = tables.Distribution("地理")
	assert.False(t, ok, "地理 has no published histogram")

	d, ok := tables.Distribution("數學")
	require.True(t, ok)
	assert.Equal(t, 355, d.Total())

	for _, subject := range []string{"國語文", "英語文", "數學", "歷史", "化學", "生物"} {
		_, ok := tables.Distribution(subject)
		assert.True(t, ok, subject)
	}

	assert.Equal(t, []string{"國語文", "英語文", "數學", "歷史", "地理", "物理", "化學", "生物", "地球科學"}, tables.Subjects())
}

func TestNewTables(t *testing.T) {
	math1, err := NewDistribution("Math", deciles(1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
	require.NoError(t, err)

	t.Run("distribution-only subjects are listed after averages", func(t *testing.T) {
		tables, err := NewTables([]ClassReference{{Subject: "Art", ClassAverage: 70}}, []*Distribution{math1})

		require.NoError(t, err)
		assert.Equal(t, []string{"Art", "Math"}, tables.Subjects())
		_, ok := tables.ClassAverage("Math")
		assert.False(t, ok)
	})

	cases := []struct {
		name  string
		refs  []ClassReference
		dists []*Distribution
		msg   string
	}{
		{name: "empty", msg: "empty"},
		{name: "blank subject", refs: []ClassReference{{Subject: "", ClassAverage: 1}}, msg: "without subject"},
		{name: "NaN average", refs: []ClassReference{{Subject: "A", ClassAverage: math.NaN()}}, msg: "not a finite number"},
		{name: "infinite average", refs: []ClassReference{{Subject: "A", ClassAverage: math.Inf(1)}}, msg: "not a finite number"},
		{
			name: "duplicate average",
			refs: []ClassReference{{Subject: "A", ClassAverage: 1}, {Subject: "A", ClassAverage: 2}},
			msg:  "duplicate class average",
		},
		{name: "duplicate distribution", dists: []*Distribution{math1, math1}, msg: "duplicate distribution"},
		{name: "nil distribution", dists: []*Distribution{nil}, msg: "nil distribution"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tables, err := NewTables(tc.refs, tc.dists)

			assert.Nil(t, tables)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestSnapshotTables_PropagatesBinErrors(t *testing.T) {
	snap := Snapshot{
		Distributions: []DistributionSpec{{Subject: "Bad", Bins: []Bin{{Lower: 0, Upper: 99, Count: 0}}}},
	}

	tables, err := snap.Tables()

	assert.Nil(t, tables)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), `"Bad"`)
}

func TestSnapshotRows(t *testing.T) {
	averages, bins := Default().Rows()

	require.Len(t, averages, 9)
	assert.Equal(t, "國語文", averages[0].Subject)
	assert.Equal(t, 0, averages[0].Position)
	assert.Equal(t, 8, averages[8].Position)

	require.Len(t, bins, 60)
	assert.Equal(t, "國語文", bins[0].Subject)
	assert.Equal(t, 99, bins[0].UpperBound)
	assert.Equal(t, 9, bins[0].StudentCount)
}
