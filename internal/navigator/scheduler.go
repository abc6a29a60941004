package navigator

import (
	"sort"
	"time"
)

// Scheduler runs fn after d. The returned function cancels fn if it has not
// run yet; calling it more than once is harmless.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

type immediate struct{}

// Immediate returns a Scheduler that ignores the delay and runs fn
// synchronously inside Schedule.
func Immediate() Scheduler { return immediate{} }

func (immediate) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}

// Task identifies a job held by a TaskQueue.
type Task struct {
	ID    int
	Delay time.Duration
}

// TaskQueue is a Scheduler that only records jobs. Its owner decides when
// each job is due and calls Fire; this keeps every state mutation on the
// owner's goroutine.
type TaskQueue struct {
	nextID int
	jobs   map[int]func()
	fresh  []Task
}

// NewTaskQueue creates an empty queue.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{jobs: make(map[int]func())}
}

func (q *TaskQueue) Schedule(d time.Duration, fn func()) func() {
	q.nextID++
	id := q.nextID
	q.jobs[id] = fn
	q.fresh = append(q.fresh, Task{ID: id, Delay: d})
	return func() { delete(q.jobs, id) }
}

// Drain returns the tasks scheduled since the previous Drain.
func (q *TaskQueue) Drain() []Task {
	out := q.fresh
	q.fresh = nil
	return out
}

// Fire runs task id if it is still pending. It reports whether the job ran.
func (q *TaskQueue) Fire(id int) bool {
	fn, ok := q.jobs[id]
	if !ok {
		return false
	}
	delete(q.jobs, id)
	fn()
	return true
}

// Pending returns the number of jobs that are neither fired nor cancelled.
func (q *TaskQueue) Pending() int {
	return len(q.jobs)
}

// FireAll runs every pending job in scheduling order, including jobs
// scheduled by the jobs it runs.
func (q *TaskQueue) FireAll() int {
	fired := 0
	for len(q.jobs) > 0 {
		ids := make([]int, 0, len(q.jobs))
		for id := range q.jobs {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			if q.Fire(id) {
				fired++
			}
		}
	}
	q.fresh = nil
	return fired
}
