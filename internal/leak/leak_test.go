// SPDX-License-Identifier: Unlicense OR MIT

package leak

import (
	"runtime"
	"testing"
	"time"
)

type resource struct {
	id  int
	buf [16]byte
}

// collect runs the garbage collector until a report arrives on c or the
// timeout passes.
func collect(c <-chan int, timeout time.Duration) (int, bool) {
	deadline := time.After(timeout)
	for {
		runtime.GC()
		select {
		case id := <-c:
			return id, true
		case <-deadline:
			return 0, false
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestTrackReportsLeak(t *testing.T) {
	reported := make(chan int, 1)
	func() {
		r := &resource{id: 42}
		Track(r, func(r *resource) {
			reported <- r.id
		})
	}()
	id, ok := collect(reported, 5*time.Second)
	if !ok {
		t.Fatal("leak was not reported")
	}
	if id != 42 {
		t.Errorf("reported id %d, want 42", id)
	}
}

func TestUntrack(t *testing.T) {
	reported := make(chan int, 1)
	func() {
		r := &resource{id: 1}
		Track(r, func(r *resource) {
			reported <- r.id
		})
		Untrack(r)
	}()
	if id, ok := collect(reported, 200*time.Millisecond); ok {
		t.Errorf("released object %d reported as leaked", id)
	}
}
