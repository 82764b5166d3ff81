package ws

import (
	"sync"

	"spinWheelServer/surface"
)

// outbox is a session's send queue. A frame is a full repaint, so a frame
// queued behind an unsent frame replaces it; control messages are never
// replaced or dropped. limit bounds the queue length.
type outbox struct {
	mu     sync.Mutex
	msgs   []ServerMessage
	limit  int
	closed bool
	wake   chan struct{}
}

func newOutbox(limit int) *outbox {
	return &outbox{limit: limit, wake: make(chan struct{}, 1)}
}

// push queues msg and reports false when the queue is full or closed.
func (o *outbox) push(msg ServerMessage) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return false
	}
	if n := len(o.msgs); n > 0 && msg.Type == TypeFrame && o.msgs[n-1].Type == TypeFrame {
		o.msgs[n-1] = mergeFrames(o.msgs[n-1], msg)
	} else {
		if len(o.msgs) >= o.limit {
			return false
		}
		o.msgs = append(o.msgs, msg)
	}
	o.signal()
	return true
}

// take hands over everything queued and whether the outbox has been closed.
func (o *outbox) take() ([]ServerMessage, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	msgs := o.msgs
	o.msgs = nil
	return msgs, o.closed
}

func (o *outbox) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	o.signal()
}

func (o *outbox) signal() {
	select {
	case o.wake <- struct{}{}:
	default:
	}
}

// mergeFrames keeps the newer frame, carrying over a buffer resize the older
// one would have applied.
func mergeFrames(older, newer ServerMessage) ServerMessage {
	prev, _ := older.Data.(FramePayload)
	next, _ := newer.Data.(FramePayload)
	if len(prev.Ops) > 0 && prev.Ops[0].Op == "resize" && (len(next.Ops) == 0 || next.Ops[0].Op != "resize") {
		next.Ops = append([]surface.Op{prev.Ops[0]}, next.Ops...)
	}
	return ServerMessage{Type: TypeFrame, Data: next}
}
