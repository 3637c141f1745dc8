package session

import "math/rand"

// indexPool is the set of queue indices not yet played in the current
// shuffle cycle. Keeping it as an explicit shrinking pool (instead of
// re-filtering the queue against the history on every draw) makes the
// without-replacement guarantee easy to see and to test.
type indexPool struct {
	remaining []int
}

func newIndexPool() *indexPool {
	return &indexPool{}
}

// refill resets the pool to all indices 0..n-1.
func (p *indexPool) refill(n int) {
	p.remaining = p.remaining[:0]
	for i := 0; i < n; i++ {
		p.remaining = append(p.remaining, i)
	}
}

// rebuild resets the pool to the indices 0..n-1 not present in played.
// Called whenever a queue mutation invalidates the current pool.
func (p *indexPool) rebuild(n int, played []int) {
	seen := make(map[int]bool, len(played))
	for _, i := range played {
		seen[i] = true
	}
	p.remaining = p.remaining[:0]
	for i := 0; i < n; i++ {
		if !seen[i] {
			p.remaining = append(p.remaining, i)
		}
	}
}

// add marks a single index as unplayed.
func (p *indexPool) add(i int) {
	p.remaining = append(p.remaining, i)
}

// draw removes and returns a uniformly random index. ok is false when
// the pool is empty.
func (p *indexPool) draw(rng *rand.Rand) (index int, ok bool) {
	if len(p.remaining) == 0 {
		return 0, false
	}
	i := rng.Intn(len(p.remaining))
	index = p.remaining[i]
	p.remaining[i] = p.remaining[len(p.remaining)-1]
	p.remaining = p.remaining[:len(p.remaining)-1]
	return index, true
}

func (p *indexPool) empty() bool {
	return len(p.remaining) == 0
}

func (p *indexPool) clear() {
	p.remaining = p.remaining[:0]
}
