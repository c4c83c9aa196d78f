package session

import "sync"

// noticeGate limits the session-expired notice to one showing per
// unauthenticated episode. A successful authentication reopens the gate.
type noticeGate struct {
	mu    sync.Mutex
	shown bool
}

// shouldShow reports whether the notice may be shown and closes the gate in
// the same step, so concurrent logouts race for a single true.
func (g *noticeGate) shouldShow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.shown {
		return false
	}
	g.shown = true
	return true
}

func (g *noticeGate) reset() {
	g.mu.Lock()
	g.shown = false
	g.mu.Unlock()
}
