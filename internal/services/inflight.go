package services

import "sync"

// inflightGuard rejects a mutation while another one for the same identity
// is still on the wire. The original client had no such guard and a double
// tap could issue the same write twice; the contract stays unchanged, an
// overlapping call simply fails fast with common.ErrorBusy.
type inflightGuard struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func (g *inflightGuard) tryAcquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ids == nil {
		g.ids = make(map[string]struct{})
	}
	if _, busy := g.ids[id]; busy {
		return false
	}
	g.ids[id] = struct{}{}
	return true
}

func (g *inflightGuard) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.ids, id)
}
