package notifier

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// reentrantMutex is a mutex that the holding goroutine may lock again.
// It also reports whether the calling goroutine is the holder.
type reentrantMutex struct {
	mu    sync.Mutex
	owner atomic.Int64 // goroutine id of the holder, 0 when unlocked
	depth int          // guarded by mu
}

func (m *reentrantMutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(id)
	m.depth = 1
}

// Unlock must be called by the holding goroutine.
func (m *reentrantMutex) Unlock() {
	m.depth--
	if m.depth > 0 {
		return
	}
	m.owner.Store(0)
	m.mu.Unlock()
}

// heldByCurrentGoroutine is safe to call without holding the lock: only the
// holder can observe its own id in owner.
func (m *reentrantMutex) heldByCurrentGoroutine() bool {
	return m.owner.Load() == goid.Get()
}
