package input

import "sync/atomic"

// Queue hands commands from input goroutines to the driver. Push never
// blocks and drops commands arriving while the queue is full; Send waits.
type Queue struct {
	ch      chan Command
	dropped atomic.Int64
}

// NewQueue creates a queue holding up to size pending commands.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Command, size)}
}

// Push enqueues c and reports whether it was accepted.
func (q *Queue) Push(c Command) bool {
	select {
	case q.ch <- c:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Send enqueues c, waiting for space until stop is closed. It reports whether
// c was accepted.
func (q *Queue) Send(c Command, stop <-chan struct{}) bool {
	select {
	case q.ch <- c:
		return true
	case <-stop:
		return false
	}
}

// Drain appends all pending commands to buf in arrival order and returns it.
func (q *Queue) Drain(buf []Command) []Command {
	for {
		select {
		case c := <-q.ch:
			buf = append(buf, c)
		default:
			return buf
		}
	}
}

// C exposes the receive side for drivers that block waiting for input.
func (q *Queue) C() <-chan Command { return q.ch }

// Dropped returns the number of commands discarded on a full queue.
func (q *Queue) Dropped() int64 { return q.dropped.Load() }
