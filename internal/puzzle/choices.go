package puzzle

import "math/rand"

// Choices builds count distinct options containing correct exactly once.
// Distractors stay within spread of correct when possible and never drop
// below floor. It returns the shuffled options and the index of correct.
func Choices(rng *rand.Rand, correct, count, spread, floor int) ([]int, int) {
	if count < 1 {
		count = 1
	}
	if spread < 1 {
		spread = 1
	}
	seen := map[int]bool{correct: true}
	opts := []int{correct}

	add := func(v int) {
		if v < floor || seen[v] || len(opts) >= count {
			return
		}
		seen[v] = true
		opts = append(opts, v)
	}

	for tries := 0; tries < 8*count && len(opts) < count; tries++ {
		off := 1 + rng.Intn(spread)
		if rng.Intn(2) == 0 {
			off = -off
		}
		add(correct + off)
	}
	// Walk outward so the option list always fills.
	for off := 1; len(opts) < count; off++ {
		add(correct + off)
		add(correct - off)
	}

	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	idx := 0
	for i, v := range opts {
		if v == correct {
			idx = i
			break
		}
	}
	return opts, idx
}
