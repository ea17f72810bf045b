package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

const (
	actionState   = "game:state"
	actionGuess   = "game:guess"
	actionNewGame = "game:new"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Letter string `json:"letter"`
}

type ResponsePayload struct {
	Result *entity.GuessResult `json:"result,omitempty"`
	State  *entity.Snapshot    `json:"state,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadBytes,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, errMsg string) error {
	return that.sendMessage(conn, actionError, ResponsePayload{Error: errMsg})
}
