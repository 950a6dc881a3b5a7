// Package clock abstracts the passage of time for timed game transitions.
// Production code uses Real; tests drive Virtual by hand so rolls and
// transits complete instantly and in a known order.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Scheduler tells the time and runs callbacks after a delay. Scheduled
// callbacks cannot be cancelled: once a timed transition starts it completes.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func())
}

// Real is the wall clock.
type Real struct{}

// Now returns the current wall time.
func (Real) Now() time.Time { return time.Now() }

// AfterFunc runs f on its own goroutine after d.
func (Real) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// maxFires bounds RunUntilIdle so a callback that always reschedules
// itself cannot hang a test.
const maxFires = 10000

type virtualTimer struct {
	at  time.Time
	seq uint64
	f   func()
}

// Virtual is a manually advanced clock. Callbacks run synchronously on the
// goroutine calling Advance or RunUntilIdle, never while the clock's lock
// is held, so a callback may schedule further callbacks.
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []virtualTimer
}

// NewVirtual creates a virtual clock reading start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// AfterFunc queues f to run once the clock has advanced by d.
func (v *Virtual) AfterFunc(d time.Duration, f func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if d < 0 {
		d = 0
	}
	v.seq++
	v.timers = append(v.timers, virtualTimer{at: v.now.Add(d), seq: v.seq, f: f})
}

// Pending returns the number of queued callbacks.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// Advance moves the clock forward by d, firing every callback due on the
// way in deadline order. It returns the number fired.
func (v *Virtual) Advance(d time.Duration) int {
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	fired := 0
	for fired < maxFires {
		t, ok := v.popDue(target, false)
		if !ok {
			break
		}
		t.f()
		fired++
	}

	v.mu.Lock()
	if v.now.Before(target) {
		v.now = target
	}
	v.mu.Unlock()
	return fired
}

// RunUntilIdle fires queued callbacks in deadline order, jumping the clock
// to each deadline, until none remain. It returns the number fired.
func (v *Virtual) RunUntilIdle() int {
	fired := 0
	for fired < maxFires {
		t, ok := v.popDue(time.Time{}, true)
		if !ok {
			break
		}
		t.f()
		fired++
	}
	return fired
}

// popDue removes the earliest timer due at or before limit (any timer when
// unbounded) and moves the clock to its deadline.
func (v *Virtual) popDue(limit time.Time, unbounded bool) (virtualTimer, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.timers) == 0 {
		return virtualTimer{}, false
	}
	sort.Slice(v.timers, func(i, j int) bool {
		if v.timers[i].at.Equal(v.timers[j].at) {
			return v.timers[i].seq < v.timers[j].seq
		}
		return v.timers[i].at.Before(v.timers[j].at)
	})
	next := v.timers[0]
	if !unbounded && next.at.After(limit) {
		return virtualTimer{}, false
	}
	v.timers = v.timers[1:]
	if next.at.After(v.now) {
		v.now = next.at
	}
	return next, true
}
