package game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// sessionQueueDepth bounds each session's outbound queue. Broadcast never
// blocks on a slow consumer; overflow drops the newest line with a logged
// warning.
const sessionQueueDepth = 64

// Session is one connected client's delivery state. It owns at most one
// Actor (nil until login) and a bounded FIFO of outbound lines. The queue
// has its own lock, separate from the world lock, so fan-out can enqueue
// without holding the world lock across I/O; lock order is always world
// lock first, queue lock second.
type Session struct {
	id string

	mu      sync.Mutex
	queue   chan []byte
	closed  bool
	dropped int

	// actor is owned by the world lock, not the session lock.
	actor *Actor
}

func newSession() *Session {
	return &Session{
		id:    uuid.New().String(),
		queue: make(chan []byte, sessionQueueDepth),
	}
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

// Messages returns the channel a blocked reader waits on. The channel is
// closed when the session is detached, which unblocks any waiter.
func (s *Session) Messages() <-chan []byte {
	return s.queue
}

// Push enqueues one outbound line. Safe to call concurrently; a line pushed
// after close is discarded.
func (s *Session) Push(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case s.queue <- []byte(line):
	default:
		s.dropped++
		slog.Warn("session queue full, dropping line", "session", s.id, "dropped", s.dropped)
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.queue)
}
