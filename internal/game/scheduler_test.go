package game

import "time"

// manualScheduler fires scheduled tasks only when Fire is called.
type manualScheduler struct {
	tasks map[int]func()
	next  int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{tasks: map[int]func(){}}
}

// Every implements Scheduler.
func (s *manualScheduler) Every(_ time.Duration, fn func()) func() {
	id := s.next
	s.next++
	s.tasks[id] = fn
	return func() { delete(s.tasks, id) }
}

// Fire runs every active task once.
func (s *manualScheduler) Fire() {
	fns := make([]func(), 0, len(s.tasks))
	for _, fn := range s.tasks {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}

// Active returns the number of scheduled tasks.
func (s *manualScheduler) Active() int {
	return len(s.tasks)
}
