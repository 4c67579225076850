package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MessageType names the kinds of message sent on the perft stream.
type MessageType string

const (
	MessageTypeProgress MessageType = "progress"
	MessageTypeResult   MessageType = "result"
	MessageTypeError    MessageType = "error"
)

// Message is one frame of the perft stream. Progress frames carry Move,
// Nodes, Done and Total; the result frame carries FEN, Depth and Nodes.
type Message struct {
	Type  MessageType `json:"type"`
	Move  string      `json:"move,omitempty"`
	Nodes uint64      `json:"nodes,omitempty"`
	Done  int         `json:"done,omitempty"`
	Total int         `json:"total,omitempty"`
	FEN   string      `json:"fen,omitempty"`
	Depth int         `json:"depth,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsPerftHandler runs one perft per connection. The client sends a perft
// request as its first message and receives a progress frame per root
// move followed by a result or error frame. Closing the connection early
// cancels the count.
func (s *Server) wsPerftHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		s.log.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	log := s.log.With("remote", conn.RemoteAddr().String())
	log.Debug("websocket connected")

	var req perftRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Debug("bad perft request", "error", err)
		_ = conn.WriteJSON(Message{Type: MessageTypeError, Error: "malformed request: " + err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		// Any read error, including the client closing, stops the count.
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	var writeErr error
	resp, err := s.runPerft(ctx, req, func(rc engine.RootCount) {
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(Message{
			Type:  MessageTypeProgress,
			Move:  rc.Move.String(),
			Nodes: rc.Nodes,
			Done:  rc.Done,
			Total: rc.Total,
		})
		if writeErr != nil {
			cancel()
		}
	})
	switch {
	case writeErr != nil:
		log.Debug("websocket write failed", "error", writeErr)
		return
	case err != nil:
		_ = conn.WriteJSON(Message{Type: MessageTypeError, Error: err.Error()})
	default:
		_ = conn.WriteJSON(Message{Type: MessageTypeResult, FEN: resp.FEN, Depth: resp.Depth, Nodes: resp.Nodes})
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
