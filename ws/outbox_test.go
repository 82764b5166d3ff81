package ws

import (
	"encoding/json"
	"testing"
	"time"

	"spinWheelServer/config"
	"spinWheelServer/game"
	"spinWheelServer/surface"
)

// A spin whose messages are never written out must still queue exactly one
// winner, behind the final frame.
func TestWheelSessionStalledWriter(t *testing.T) {
	start := time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC)
	s := newWheelSession(nil, []game.Option{game.WithClock(func() time.Time { return start })})

	s.handleMessage(ClientMessage{Type: TypeResize, Data: json.RawMessage(`{"width":200,"height":200}`)})
	s.flushFrame()
	s.handleMessage(ClientMessage{Type: TypeSetLabel, Data: json.RawMessage(`{"index":1,"text":"Pizza"}`)})
	s.flushFrame()
	s.handleMessage(ClientMessage{Type: TypeSpin})
	s.flushFrame()

	for i := 1; i <= 400 && s.engine.Spinning(); i++ {
		s.frames.Flush(start.Add(time.Duration(i) * config.FrameInterval))
		s.flushFrame()
	}
	if s.engine.Spinning() {
		t.Fatal("Expected the spin to finish")
	}
	if s.dropped {
		t.Fatal("Expected no overflow during a single spin")
	}

	msgs, closed := s.out.take()
	if closed {
		t.Fatal("Expected outbox to stay open")
	}

	counts := map[string]int{}
	winnerAt := -1
	for i, m := range msgs {
		counts[m.Type]++
		if m.Type == TypeWinner {
			winnerAt = i
		}
	}
	if counts[TypeWinner] != 1 || counts[TypeSpinStart] != 1 {
		t.Fatalf("Expected one spin_start and one winner, got %v", counts)
	}
	if counts[TypeFrame] > 3 {
		t.Errorf("Expected queued frames to be merged, got %d", counts[TypeFrame])
	}
	if winnerAt < 1 || msgs[winnerAt-1].Type != TypeFrame {
		t.Errorf("Expected the final frame right before the winner, got %v", msgs)
	}
	if last := msgs[len(msgs)-1]; last.Type != TypeState || last.Data.(game.State).Spinning {
		t.Errorf("Expected idle state last, got %+v", last)
	}

	// the merged first frame still resizes the canvas
	first := msgs[0].Data.(FramePayload)
	if first.Ops[0].Op != "resize" {
		t.Errorf("Expected resize to survive merging, got %s", first.Ops[0].Op)
	}
	win := msgs[winnerAt].Data.(WinnerPayload)
	if want := game.VerifySpin(win.ServerSeed, win.SpinID, game.DefaultSectors); win.Index != want.Index {
		t.Errorf("winner %d does not replay to %d", win.Index, want.Index)
	}
}

func TestOutboxLimit(t *testing.T) {
	o := newOutbox(2)
	frame := func(op string) ServerMessage {
		return ServerMessage{Type: TypeFrame, Data: FramePayload{Ops: []surface.Op{{Op: op}}}}
	}

	if !o.push(ServerMessage{Type: TypeState}) || !o.push(frame("resize")) {
		t.Fatal("Expected pushes under the limit to succeed")
	}
	if !o.push(frame("clearRect")) {
		t.Error("Expected a frame behind a frame to merge even when full")
	}
	if o.push(ServerMessage{Type: TypeWinner}) {
		t.Error("Expected a control message past the limit to be refused")
	}

	msgs, _ := o.take()
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}
	ops := msgs[1].Data.(FramePayload).Ops
	if len(ops) != 2 || ops[0].Op != "resize" || ops[1].Op != "clearRect" {
		t.Errorf("unexpected merged ops %+v", ops)
	}

	o.close()
	if o.push(ServerMessage{Type: TypeState}) {
		t.Error("Expected push after close to fail")
	}
	if _, closed := o.take(); !closed {
		t.Error("Expected take to report closed")
	}
}
