package scheduler

import "sync"

// StopSignal is a write-once flag shared by every task of one run. Once
// raised it stays raised; there is no reset.
type StopSignal struct {
	once sync.Once
	done chan struct{}
}

func NewStopSignal() *StopSignal {
	return &StopSignal{done: make(chan struct{})}
}

// Raise sets the signal. It reports whether this call was the one that
// raised it.
func (s *StopSignal) Raise() bool {
	raised := false
	s.once.Do(func() {
		close(s.done)
		raised = true
	})
	return raised
}

// Raised reports whether the signal has been raised.
func (s *StopSignal) Raised() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done is closed when the signal is raised.
func (s *StopSignal) Done() <-chan struct{} {
	return s.done
}
