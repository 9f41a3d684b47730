package shared

import (
	"sync"
	"time"

	"booking-flow/internal/pkg/clock"
)

// TaskGroup owns the delayed tasks of one session. Scheduling a task under a
// name that is already pending replaces it; Close cancels everything and
// rejects later schedules.
type TaskGroup struct {
	mu     sync.Mutex
	clock  clock.Clock
	tasks  map[string]*task
	seq    uint64
	closed bool
}

type task struct {
	timer clock.Timer
	seq   uint64
}

func NewTaskGroup(clk clock.Clock) *TaskGroup {
	return &TaskGroup{clock: clk, tasks: make(map[string]*task)}
}

func (g *TaskGroup) Schedule(name string, d time.Duration, fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	if prev, ok := g.tasks[name]; ok {
		prev.timer.Stop()
	}
	g.seq++
	seq := g.seq
	t := &task{seq: seq}
	g.tasks[name] = t
	t.timer = g.clock.AfterFunc(d, func() {
		if !g.claim(name, seq) {
			return
		}
		fn()
	})
	return true
}

// claim removes the task if it is still the one registered under name.
func (g *TaskGroup) claim(name string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.tasks[name]
	if !ok || t.seq != seq || g.closed {
		return false
	}
	delete(g.tasks, name)
	return true
}

func (g *TaskGroup) Cancel(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.tasks[name]
	if !ok {
		return false
	}
	delete(g.tasks, name)
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}

func (g *TaskGroup) Pending(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.tasks[name]
	return ok
}

func (g *TaskGroup) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	for name, t := range g.tasks {
		if t.timer != nil {
			t.timer.Stop()
		}
		delete(g.tasks, name)
	}
}
