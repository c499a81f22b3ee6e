package core

// Status is what a task step returns
type Status uint8

const (
	// Yield reschedules the task for the next frame
	Yield Status = iota
	// Done finishes the task
	Done
)

// Task is a resumable sequence stepped once per frame. A step must finish
// all of its mutations before returning.
type Task interface {
	Step(dt float64) Status
}

// TaskFunc adapts a function to Task
type TaskFunc func(dt float64) Status

func (f TaskFunc) Step(dt float64) Status { return f(dt) }

// Scheduler runs queued tasks one after another, one step per frame
type Scheduler struct {
	queue []Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Queue appends a task
func (s *Scheduler) Queue(t Task) {
	s.queue = append(s.queue, t)
}

// Busy reports whether any task is pending
func (s *Scheduler) Busy() bool { return len(s.queue) > 0 }

// Len returns the number of pending tasks
func (s *Scheduler) Len() int { return len(s.queue) }

// Step advances the head task to its next suspension point
func (s *Scheduler) Step(dt float64) {
	if len(s.queue) == 0 {
		return
	}
	if s.queue[0].Step(dt) == Done {
		s.queue[0] = nil
		s.queue = s.queue[1:]
	}
}

// ---- Combinators ----

type sequence struct {
	tasks []Task
	cur   int
}

// Sequence runs tasks in order. A task that finishes hands over to the next
// one within the same step, so only explicit yields suspend.
func Sequence(tasks ...Task) Task {
	return &sequence{tasks: tasks}
}

func (q *sequence) Step(dt float64) Status {
	for q.cur < len(q.tasks) {
		if q.tasks[q.cur].Step(dt) == Yield {
			return Yield
		}
		q.cur++
	}
	return Done
}

// Do runs fn once without suspending
func Do(fn func()) Task {
	return TaskFunc(func(float64) Status {
		fn()
		return Done
	})
}

// Wait suspends for n frames
func Wait(n int) Task {
	left := n
	return TaskFunc(func(float64) Status {
		if left <= 0 {
			return Done
		}
		left--
		return Yield
	})
}

// Ticks calls fn and suspends, n times. fn gets the iteration index.
func Ticks(n int, fn func(i int)) Task {
	i := 0
	return TaskFunc(func(float64) Status {
		if i >= n {
			return Done
		}
		fn(i)
		i++
		return Yield
	})
}

// Defer builds the task when it first runs, so it sees the state left by
// the tasks before it
func Defer(build func() Task) Task {
	var t Task
	return TaskFunc(func(dt float64) Status {
		if t == nil {
			t = build()
			if t == nil {
				return Done
			}
		}
		return t.Step(dt)
	})
}

// Each builds and runs one task per item in order
func Each[T any](items []T, build func(T) Task) Task {
	tasks := make([]Task, len(items))
	for i, it := range items {
		tasks[i] = Defer(func() Task { return build(it) })
	}
	return Sequence(tasks...)
}
