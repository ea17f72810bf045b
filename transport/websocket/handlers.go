package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
)

func (that *Server) handleState(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	state := that.session.State(ctx)

	return that.sendMessage(conn, msg.Action, ResponsePayload{State: &state})
}

func (that *Server) handleGuess(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return that.sendErrorResponse(conn, "invalid payload")
	}

	result, state := that.session.Guess(ctx, payloadReq.Letter)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Result: &result, State: &state})
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	state := that.session.NewGame(ctx)

	return that.sendMessage(conn, msg.Action, ResponsePayload{State: &state})
}
