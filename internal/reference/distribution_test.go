package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistribution(t *testing.T) {
	t.Run("standard deciles", func(t *testing.T) {
		d, err := NewDistribution("數學", deciles(24, 78, 94, 90, 33, 19, 9, 8, 0, 0))

		require.NoError(t, err)
		assert.Equal(t, "數學", d.Subject())
		assert.Equal(t, 355, d.Total())
		bins := d.Bins()
		assert.Len(t, bins, 10)
		assert.Equal(t, Bin{Lower: 90, Upper: 99, Count: 24}, bins[0])
		assert.Equal(t, Bin{Lower: 0, Upper: 9, Count: 0}, bins[9])
	})

	t.Run("input order does not matter", func(t *testing.T) {
		d, err := NewDistribution("X", []Bin{
			{Lower: 0, Upper: 49, Count: 5},
			{Lower: 90, Upper: 100, Count: 1},
			{Lower: 50, Upper: 89, Count: 10},
		})

		require.NoError(t, err)
		bins := d.Bins()
		assert.Equal(t, 100, bins[0].Upper)
		assert.Equal(t, 89, bins[1].Upper)
		assert.Equal(t, 49, bins[2].Upper)
	})

	t.Run("bins are copied", func(t *testing.T) {
		src := deciles(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
		d, err := NewDistribution("X", src)
		require.NoError(t, err)

		src[0].Count = 1000
		got := d.Bins()
		got[1].Count = 1000

		assert.Equal(t, 1, d.Bins()[0].Count)
		assert.Equal(t, 1, d.Bins()[1].Count)
		assert.Equal(t, 10, d.Total())
	})

	cases := []struct {
		name    string
		subject string
		bins    []Bin
		msg     string
	}{
		{name: "missing subject", subject: " ", bins: deciles(1), msg: "without subject"},
		{name: "no bins", subject: "X", bins: nil, msg: "no bins"},
		{
			name:    "lower above upper",
			subject: "X",
			bins:    []Bin{{Lower: 50, Upper: 99, Count: 1}, {Lower: 49, Upper: 0, Count: 1}},
			msg:     "lower bound above upper bound",
		},
		{
			name:    "negative count",
			subject: "X",
			bins:    []Bin{{Lower: 0, Upper: 99, Count: -1}},
			msg:     "negative count",
		},
		{
			name:    "gap",
			subject: "X",
			bins:    []Bin{{Lower: 60, Upper: 99, Count: 1}, {Lower: 0, Upper: 49, Count: 1}},
			msg:     "gap or overlap",
		},
		{
			name:    "overlap",
			subject: "X",
			bins:    []Bin{{Lower: 40, Upper: 99, Count: 1}, {Lower: 0, Upper: 49, Count: 1}},
			msg:     "gap or overlap",
		},
		{
			name:    "does not reach the top",
			subject: "X",
			bins:    []Bin{{Lower: 0, Upper: 89, Count: 1}},
			msg:     "top bin ends at 89",
		},
		{
			name:    "goes past 100",
			subject: "X",
			bins:    []Bin{{Lower: 0, Upper: 110, Count: 1}},
			msg:     "top bin ends at 110",
		},
		{
			name:    "does not start at zero",
			subject: "X",
			bins:    []Bin{{Lower: 10, Upper: 99, Count: 1}},
			msg:     "bottom bin starts at 10",
		},
		{
			name:    "zero population",
			subject: "X",
			bins:    deciles(0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
			msg:     "no students",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDistribution(tc.subject, tc.bins)

			assert.Nil(t, d)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestBinContains(t *testing.T) {
	b := Bin{Lower: 80, Upper: 89}

	assert.True(t, b.Contains(80))
	assert.True(t, b.Contains(89))
	assert.True(t, b.Contains(85.5))
	assert.False(t, b.Contains(79.9))
	assert.False(t, b.Contains(89.5))
}
