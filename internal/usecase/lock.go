package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// stripedLock - a fixed set of mutexes, a key always maps to the same one.
type stripedLock struct {
	stripes [lockStripes]sync.Mutex
}

func newStripedLock() *stripedLock {
	return &stripedLock{}
}

// Lock - locks the stripe of the key and returns its unlock func.
func (that *stripedLock) Lock(key string) func() {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))

	mu := &that.stripes[hash.Sum32()%lockStripes]
	mu.Lock()

	return mu.Unlock
}
