package api

import (
	"sync"
	"time"
)

// idGen synthesizes record ids for locally created users. Ids derive from
// the current time in milliseconds; when two creations land on the same
// clock reading the generator bumps past the last issued value, so ids are
// strictly increasing within one process.
//
// The ids are local-only and are never reconciled against a service-assigned
// id; a subsequent bulk fetch overwrites the collection and drops them.
type idGen struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time // test seam
}

func newIDGen() *idGen {
	return &idGen{now: time.Now}
}

func (g *idGen) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
