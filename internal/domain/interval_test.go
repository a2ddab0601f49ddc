package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{name: "disjoint", a: Interval{Start: 60, End: 120}, b: Interval{Start: 180, End: 240}, want: false},
		{name: "touching boundaries do not overlap", a: Interval{Start: 60, End: 120}, b: Interval{Start: 120, End: 180}, want: false},
		{name: "partial overlap", a: Interval{Start: 60, End: 150}, b: Interval{Start: 120, End: 180}, want: true},
		{name: "containment", a: Interval{Start: 60, End: 240}, b: Interval{Start: 120, End: 180}, want: true},
		{name: "identical", a: Interval{Start: 60, End: 120}, b: Interval{Start: 60, End: 120}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	outer := Interval{Start: 540, End: 1080}

	assert.True(t, outer.Contains(Interval{Start: 540, End: 600}))
	assert.True(t, outer.Contains(Interval{Start: 1020, End: 1080}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Interval{Start: 480, End: 600}))
	assert.False(t, outer.Contains(Interval{Start: 1020, End: 1140}))
}

func TestInterval_Subtract(t *testing.T) {
	tests := []struct {
		name string
		base Interval
		cut  Interval
		want []Interval
	}{
		{
			name: "no overlap keeps base",
			base: Interval{Start: 540, End: 720},
			cut:  Interval{Start: 720, End: 780},
			want: []Interval{{Start: 540, End: 720}},
		},
		{
			name: "cut in the middle splits in two",
			base: Interval{Start: 540, End: 1080},
			cut:  Interval{Start: 720, End: 780},
			want: []Interval{{Start: 540, End: 720}, {Start: 780, End: 1080}},
		},
		{
			name: "cut at the start trims left",
			base: Interval{Start: 540, End: 1080},
			cut:  Interval{Start: 540, End: 600},
			want: []Interval{{Start: 600, End: 1080}},
		},
		{
			name: "cut covering base removes everything",
			base: Interval{Start: 540, End: 1080},
			cut:  Interval{Start: 0, End: 1440},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.base.Subtract(tt.cut))
		})
	}
}

func TestSubtractAll(t *testing.T) {
	t.Run("multiple cuts over multiple bases", func(t *testing.T) {
		base := []Interval{
			{Start: 540, End: 780},  // 09:00-13:00
			{Start: 840, End: 1080}, // 14:00-18:00
		}
		cuts := []Interval{
			{Start: 600, End: 660},  // 10:00-11:00
			{Start: 900, End: 1080}, // 15:00-18:00
		}

		got := SubtractAll(base, cuts)

		assert.Equal(t, []Interval{
			{Start: 540, End: 600},
			{Start: 660, End: 780},
			{Start: 840, End: 900},
		}, got)
	})

	t.Run("invalid cuts are ignored", func(t *testing.T) {
		base := []Interval{{Start: 540, End: 720}}
		cuts := []Interval{{Start: 600, End: 600}, {Start: 700, End: 650}}

		got := SubtractAll(base, cuts)

		assert.Equal(t, base, got)
	})

	t.Run("result is sorted ascending", func(t *testing.T) {
		base := []Interval{
			{Start: 840, End: 1080},
			{Start: 540, End: 780},
		}

		got := SubtractAll(base, nil)

		assert.Equal(t, []Interval{
			{Start: 540, End: 780},
			{Start: 840, End: 1080},
		}, got)
	})
}
