package lchar

import (
	"math/rand"
	"sync"
	"time"
)

// rand.Rand is not safe for concurrent use, so we guard our own one.
var shuffler = struct {
	sync.Mutex
	rnd *rand.Rand
}{
	rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
}

// Randomize returns a uniformly random permutation of list. list itself is
// left untouched. Randomize works on whole strings, e.g. words; it is not
// meant to shuffle code-points within a cluster.
//
// The result is not reproducible.
func Randomize(list []string) []string {
	shuffler.Lock()
	defer shuffler.Unlock()
	return randomizeWith(shuffler.rnd, list)
}

// randomizeWith shuffles a copy of list with a Fisher-Yates shuffle driven by rnd.
func randomizeWith(rnd *rand.Rand, list []string) []string {
	shuffled := make([]string, len(list))
	copy(shuffled, list)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
