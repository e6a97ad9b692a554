package service

import "sync"

// sessionLocks serializes mutations of a single cart session.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock blocks until the session is free and returns its unlock func.
func (l *sessionLocks) lock(id string) (unlock func()) {
	l.mu.Lock()
	sl, ok := l.locks[id]
	if !ok {
		sl = new(sessionLock)
		l.locks[id] = sl
	}
	sl.refs++
	l.mu.Unlock()

	sl.Lock()

	return func() {
		sl.Unlock()

		l.mu.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *sessionLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
