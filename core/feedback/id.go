package feedback

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// idGenerator issues human-scannable feedback ids of the form
// fb-YYYYMMDD-NNNN. The sequence restarts each day and is unique per
// process; a restart can land the counter on ids already issued that
// day, which the caller recovers from via skip on a duplicate insert.
type idGenerator struct {
	mu  sync.Mutex
	day string
	seq int
}

func newIDGenerator() *idGenerator {
	return &idGenerator{}
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	day := time.Now().Format("20060102")
	if day != g.day {
		g.day = day
		g.seq = 0
	}
	g.seq++
	return fmt.Sprintf("fb-%s-%04d", day, g.seq)
}

// skip jumps the sequence past a range already taken in the store, so a
// retry after a duplicate-key insert lands on fresh ids instead of
// walking the collision one number at a time.
func (g *idGenerator) skip() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq += 100 + rand.IntN(900)
}
