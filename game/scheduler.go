package game

import "time"

// FrameFunc runs before the next paint and receives the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler is the "run this before the next paint" primitive.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a Scheduler whose owner flushes it once per display tick.
// Callbacks requested while a flush is running are deferred to the next flush.
// Not safe for concurrent use; it lives on the same goroutine as the engine.
type FrameQueue struct {
	pending []FrameFunc
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Pending returns the number of callbacks waiting for the next flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every queued callback with the given timestamp and returns how
// many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}
