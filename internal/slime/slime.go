// Package slime implements the slime chunk predicate of the game's world
// generator, bit-exact with the upstream formula.
package slime

// Seed derives the per-chunk generator seed. The products wrapped in int64
// conversions are evaluated in 32-bit arithmetic and may overflow; that
// overflow is part of the upstream definition.
func Seed(world int64, x, z int32) int64 {
	return (world +
		int64(x*x*4987142) +
		int64(x*5947611) +
		int64(z*z)*4392871 +
		int64(z*389711)) ^ 987234911
}

// IsSlimeChunk reports whether chunk (x, z) spawns slimes in the given world.
func IsSlimeChunk(world int64, x, z int32) bool {
	var r Random
	r.SetSeed(Seed(world, x, z))
	return r.IntN(10) == 0
}

// Checker evaluates the predicate for one world, reusing a single generator.
// The result depends only on (world, x, z), never on previous calls.
type Checker struct {
	world int64
	rnd   Random
}

// NewChecker returns a Checker for the given world seed.
func NewChecker(world int64) *Checker {
	return &Checker{world: world}
}

// World returns the world seed.
func (c *Checker) World() int64 { return c.world }

// Test reports whether chunk (x, z) is a slime chunk.
func (c *Checker) Test(x, z int32) bool {
	c.rnd.SetSeed(Seed(c.world, x, z))
	return c.rnd.IntN(10) == 0
}
