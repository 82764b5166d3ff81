package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"spinWheelServer/config"
	"spinWheelServer/crypto"
	"spinWheelServer/game"
	"spinWheelServer/surface"
)

// WheelHandler serves /ws/wheel. Every connection gets its own engine; no
// wheel state is shared between connections.
type WheelHandler struct {
	upgrader websocket.Upgrader
	options  []game.Option
}

func NewWheelHandler(allowedOrigins []string, opts ...game.Option) *WheelHandler {
	return &WheelHandler{
		upgrader: newUpgrader(allowedOrigins),
		options:  opts,
	}
}

func (h *WheelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Println("📥 Wheel WebSocket connection from:", r.RemoteAddr)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("❌ WebSocket upgrade failed:", err)
		return
	}

	s := newWheelSession(conn, h.options)

	atomic.AddInt64(&sessionCount, 1)
	log.Printf("✅ Wheel session %s started (active: %d)", s.id, ActiveSessions())
	defer func() {
		atomic.AddInt64(&sessionCount, -1)
		log.Printf("👋 Wheel session %s ended (active: %d)", s.id, ActiveSessions())
	}()

	go s.writePump()
	go s.readPump()
	s.run()
}

// spinCommitment is the provably-fair record of the spin in flight.
type spinCommitment struct {
	spinID         string
	serverSeed     string
	serverSeedHash string
}

// wheelSession owns one engine. All engine access happens on the run
// goroutine; readPump and writePump only move bytes.
type wheelSession struct {
	id   string
	conn *websocket.Conn

	surface *surface.Recorder
	frames  *game.FrameQueue
	engine  *game.Engine
	spin    *spinCommitment

	inbox   chan ClientMessage
	out     *outbox
	dropped bool
}

func newWheelSession(conn *websocket.Conn, opts []game.Option) *wheelSession {
	s := &wheelSession{
		id:      uuid.NewString(),
		conn:    conn,
		surface: surface.NewRecorder(),
		frames:  &game.FrameQueue{},
		inbox:   make(chan ClientMessage, 16),
		out:     newOutbox(config.WSSendQueueSize),
	}

	engineOpts := append([]game.Option{}, opts...)
	engineOpts = append(engineOpts,
		game.WithRandom(s.commitSpin),
		game.OnWinner(s.reportWinner),
	)
	s.engine = game.NewEngine(s.surface, s.frames, engineOpts...)
	return s
}

func (s *wheelSession) run() {
	defer s.out.close()

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	s.queue(TypeSession, SessionPayload{SessionID: s.id})
	s.sendState()

	for {
		select {
		case msg, ok := <-s.inbox:
			if !ok {
				return
			}
			s.handleMessage(msg)
		case now := <-ticker.C:
			s.frames.Flush(now)
		}
		s.flushFrame()
	}
}

func (s *wheelSession) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case TypeResize:
		var req ResizeRequest
		if !s.decode(msg, &req) {
			return
		}
		if req.Width < 0 || req.Height < 0 || req.Width > config.MaxSurfaceSize || req.Height > config.MaxSurfaceSize {
			s.sendError(fmt.Sprintf("surface size must be within [0,%d]", config.MaxSurfaceSize))
			return
		}
		s.surface.Resize(req.Width, req.Height)
		s.engine.Draw()

	case TypeSetCount:
		var req SetCountRequest
		if !s.decode(msg, &req) {
			return
		}
		s.engine.SetSectorCount(req.Delta)
		s.sendState()

	case TypeSetLabel:
		var req SetLabelRequest
		if !s.decode(msg, &req) {
			return
		}
		if n := s.engine.State().SectorCount; req.Index < 0 || req.Index >= n {
			s.sendError(fmt.Sprintf("label index %d out of range [0,%d)", req.Index, n))
			return
		}
		s.engine.SetLabel(req.Index, truncateLabel(req.Text))
		s.sendState()

	case TypeSpin:
		if !s.engine.Spin() {
			log.Printf("⚠️  Session %s: spin ignored, wheel already spinning", s.id)
		}

	case TypeState:
		s.sendState()

	case typeInvalid:
		s.sendError("invalid message")

	default:
		s.sendError(fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// commitSpin is the engine's random source: it commits to a fresh server
// seed, announces its hash and derives the spin fraction from it.
func (s *wheelSession) commitSpin() float64 {
	seed, hash := crypto.GenerateServerSeed()
	s.spin = &spinCommitment{
		spinID:         uuid.NewString(),
		serverSeed:     seed,
		serverSeedHash: hash,
	}

	s.queue(TypeSpinStart, SpinStartPayload{
		SpinID:         s.spin.spinID,
		ServerSeedHash: hash,
		DurationMs:     s.engine.Duration().Milliseconds(),
	})
	log.Printf("🎡 Session %s spin %s started", s.id, s.spin.spinID)

	return game.SpinFraction(seed, s.spin.spinID)
}

func (s *wheelSession) reportWinner(result game.Result) {
	// final frame goes out before the result
	s.flushFrame()

	payload := WinnerPayload{
		Index:        result.Index,
		Label:        result.Label,
		Text:         "Winner: " + result.Label,
		TotalDegrees: result.TotalDegrees,
	}
	if c := s.spin; c != nil {
		payload.SpinID = c.spinID
		payload.ServerSeed = c.serverSeed
		payload.ServerSeedHash = c.serverSeedHash
	}
	s.spin = nil

	s.queue(TypeWinner, payload)
	s.sendState()
	log.Printf("🎯 Session %s spin %s landed on %q (sector %d)", s.id, payload.SpinID, result.Label, result.Index)
}

func (s *wheelSession) flushFrame() {
	if s.surface.Pending() == 0 {
		return
	}
	w, h := s.surface.BufferSize()
	s.queue(TypeFrame, FramePayload{Width: w, Height: h, Ops: s.surface.Flush()})
}

func (s *wheelSession) sendState() {
	s.queue(TypeState, s.engine.State())
}

func (s *wheelSession) sendError(message string) {
	s.queue(TypeError, ErrorPayload{Message: message})
}

func (s *wheelSession) decode(msg ClientMessage, v interface{}) bool {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		s.sendError(fmt.Sprintf("invalid %s payload", msg.Type))
		return false
	}
	return true
}

// queue hands a message to the writer. A client that lets the queue fill
// up is disconnected rather than silently missing messages.
func (s *wheelSession) queue(msgType string, data interface{}) {
	if s.out.push(ServerMessage{Type: msgType, Data: data}) || s.dropped {
		return
	}
	s.dropped = true
	log.Printf("⚠️  Session %s send queue full at %s, closing slow connection", s.id, msgType)
	if s.conn != nil {
		s.conn.Close()
	}
}

// readPump turns websocket frames into inbox messages and closes the inbox
// when the connection goes away.
func (s *wheelSession) readPump() {
	defer close(s.inbox)

	s.conn.SetReadLimit(config.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(config.WSReadDeadline))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(config.WSReadDeadline))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("❌ Read error for session %s: %v", s.id, err)
			}
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(config.WSReadDeadline))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("❌ Failed to parse message from session %s: %v", s.id, err)
			msg = ClientMessage{Type: typeInvalid}
		}
		s.inbox <- msg
	}
}

func (s *wheelSession) writePump() {
	ping := time.NewTicker(config.WSPingInterval)
	defer func() {
		ping.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case <-s.out.wake:
			msgs, closed := s.out.take()
			for _, msg := range msgs {
				payload, err := json.Marshal(msg)
				if err != nil {
					log.Printf("❌ Failed to marshal %s for session %s: %v", msg.Type, s.id, err)
					continue
				}
				s.conn.SetWriteDeadline(time.Now().Add(config.WSWriteDeadline))
				if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					log.Printf("❌ Write error for session %s: %v", s.id, err)
					return
				}
			}
			if closed {
				s.conn.SetWriteDeadline(time.Now().Add(config.WSWriteDeadline))
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
		case <-ping.C:
			s.conn.SetWriteDeadline(time.Now().Add(config.WSWriteDeadline))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func truncateLabel(text string) string {
	runes := []rune(text)
	if len(runes) > config.MaxLabelLength {
		return string(runes[:config.MaxLabelLength])
	}
	return text
}
