package assets

import "sync"

// splitWeight divides total into n integer shares that sum to exactly
// total, spreading the remainder over the first shares. Integer weights
// keep aggregate progress free of float truncation artifacts.
func splitWeight(total, n int) []int {
	shares := make([]int, n)
	base := total / n
	rem := total % n
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}

// progressTracker accumulates completed item weights and reports the
// running sum. The callback runs under the tracker lock so observed
// values are strictly non-decreasing; it must not call back into the
// loader.
type progressTracker struct {
	mu   sync.Mutex
	sum  int
	emit func(int)
}

func newProgressTracker(emit func(int)) *progressTracker {
	return &progressTracker{emit: emit}
}

func (t *progressTracker) add(weight int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sum += weight
	if t.emit != nil {
		t.emit(t.sum)
	}
}
