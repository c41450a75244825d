package slime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_MatchesJVM(t *testing.T) {
	r := NewRandom(42)
	assert.Equal(t, int32(-1170105035), r.NextInt())
	assert.Equal(t, int32(234785527), r.NextInt())

	assert.Equal(t, int32(0), NewRandom(42).IntN(10))
	assert.Equal(t, int32(11), NewRandom(42).IntN(16))
	assert.Equal(t, int32(46), NewRandom(0).IntN(64))

	r = NewRandom(123)
	var got []int32
	for range 5 {
		got = append(got, r.IntN(100))
	}
	assert.Equal(t, []int32{82, 50, 76, 89, 95}, got)

	// Bounds just above 2^30 reject about half of all draws.
	r = NewRandom(7)
	got = got[:0]
	for range 6 {
		got = append(got, r.IntN(1<<30+1))
	}
	assert.Equal(t, []int32{20678044, 747989380, 1053566254, 755731200, 259278708, 542588911}, got)
}

func TestRandom_Reseed(t *testing.T) {
	r := NewRandom(1)
	first := r.NextInt()
	r.NextInt()
	r.SetSeed(1)
	assert.Equal(t, first, r.NextInt())
	assert.Panics(t, func() { r.IntN(0) })
}

func TestSeed(t *testing.T) {
	tests := []struct {
		world int64
		x, z  int32
		want  int64
	}{
		{0, 0, 0, 987234911},
		{12345, 3, -7, 716187793},
		{-8594768700734077283, 100000, -100000, -8588574464498403262},
		// x*x overflows int32 here.
		{8594768700734077283, 46341, 46341, 8585335105590199365},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Seed(tt.world, tt.x, tt.z), "Seed(%d, %d, %d)", tt.world, tt.x, tt.z)
	}
}

func TestIsSlimeChunk(t *testing.T) {
	tests := []struct {
		world int64
		want  [][2]int32
	}{
		{0, [][2]int32{{-2, 0}, {1, -3}, {2, -3}, {2, 2}}},
		{12345, [][2]int32{{-2, 1}, {-1, 2}, {0, -2}, {3, 0}}},
		{8594768700734077283, [][2]int32{{-2, 2}, {-2, 3}, {0, 2}, {1, 3}, {2, -2}, {2, 2}}},
	}
	for _, tt := range tests {
		var got [][2]int32
		c := NewChecker(tt.world)
		require.Equal(t, tt.world, c.World())
		for x := int32(-3); x <= 3; x++ {
			for z := int32(-3); z <= 3; z++ {
				if IsSlimeChunk(tt.world, x, z) {
					got = append(got, [2]int32{x, z})
				}
				require.Equal(t, IsSlimeChunk(tt.world, x, z), c.Test(x, z))
			}
		}
		assert.Equal(t, tt.want, got, "world %d", tt.world)
	}
}

func TestChecker_OrderIndependent(t *testing.T) {
	a := NewChecker(99)
	b := NewChecker(99)
	want := make(map[[2]int32]bool)
	for x := int32(-20); x < 20; x++ {
		for z := int32(-20); z < 20; z++ {
			want[[2]int32{x, z}] = a.Test(x, z)
		}
	}
	for z := int32(19); z >= -20; z-- {
		for x := int32(19); x >= -20; x-- {
			require.Equal(t, want[[2]int32{x, z}], b.Test(x, z))
		}
	}
}

func BenchmarkChecker(b *testing.B) {
	c := NewChecker(8594768700734077283)
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		c.Test(int32(i), int32(i>>8))
	}
}
