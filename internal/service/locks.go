package service

import "sync"

// threadLocks serializes runs per thread: at most one in-flight run on a
// thread at a time. Locks are created on first use and never removed; the
// process holds a small, bounded set of threads.
type threadLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newThreadLocks() *threadLocks {
	return &threadLocks{locks: make(map[string]*sync.Mutex)}
}

func (t *threadLocks) lock(threadID string) func() {
	t.mu.Lock()
	l, ok := t.locks[threadID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[threadID] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
