package scheduler

import "sync"

// Guard owns the "refresh in progress" state. It exists as its own
// component so the single-flight invariant can be tested without the
// scheduler around it.
type Guard struct {
	mu     sync.Mutex
	active bool
	done   chan struct{}
	result int
}

func NewGuard() *Guard {
	return &Guard{}
}

// TryBegin reports whether the caller now owns a new cycle. When it
// returns false, a cycle is already in flight and the returned channel
// closes on its completion.
func (g *Guard) TryBegin() (bool, <-chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return false, g.done
	}
	g.active = true
	g.done = make(chan struct{})
	return true, g.done
}

// Complete records the cycle result and releases the guard. Only the owner
// that won TryBegin may call it.
func (g *Guard) Complete(result int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.result = result
	g.active = false
	close(g.done)
}

// Result returns the most recently completed cycle's result.
func (g *Guard) Result() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result
}
