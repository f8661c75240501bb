package cmd

import "sync"

// sessionCleanup collects the teardown of a shell session. It runs when
// RunE returns and also when a builtin exits the process.
type sessionCleanup struct {
	once sync.Once
	fns  []func()
}

// Defer queues fn, queued functions run in reverse order.
func (s *sessionCleanup) Defer(fn func()) {
	s.fns = append(s.fns, fn)
}

// Run runs the queued functions, only the first call does anything.
func (s *sessionCleanup) Run() {
	s.once.Do(func() {
		for i := len(s.fns) - 1; i >= 0; i-- {
			s.fns[i]()
		}
	})
}

// Exit returns an exit hook that cleans up before calling exit.
func (s *sessionCleanup) Exit(exit func(code int)) func(code int) {
	return func(code int) {
		s.Run()
		exit(code)
	}
}
