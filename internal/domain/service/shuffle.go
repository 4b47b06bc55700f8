package service

import (
	"hash/fnv"
	"math/rand/v2"
)

// seededShuffle returns a copy of items in an order that depends only on
// seed, so every process picks the same jobs for the same day.
func seededShuffle(items []string, seed string) []string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()

	r := rand.New(rand.NewPCG(sum, sum^0x9e3779b97f4a7c15))
	out := append([]string(nil), items...)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// pick returns up to n items from the seeded shuffle.
func pick(items []string, seed string, n int) []string {
	out := seededShuffle(items, seed)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
