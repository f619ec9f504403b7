// README: Injectable random source; default is a mutex-guarded math/rand.
package bot

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source used for template/joke/fact selection and for
// random-year and random-page sampling. Tests inject a seeded source to make
// composed output exact.
type Rand interface {
	Intn(n int) int
}

// lockedRand makes a *rand.Rand safe for concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand() *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
