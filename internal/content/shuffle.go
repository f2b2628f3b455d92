package content

import "math/rand"

// Shuffle returns a new slice with the items in random order drawn from
// rng. Passing a seeded source makes the ordering reproducible; the input
// is never mutated.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
