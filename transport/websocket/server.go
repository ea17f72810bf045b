package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

type session interface {
	Guess(ctx context.Context, letter string) (entity.GuessResult, entity.Snapshot)
	State(ctx context.Context) entity.Snapshot
	NewGame(ctx context.Context) entity.Snapshot
}

type handlerFunc func(ctx context.Context, message *Message, conn *websocket.Conn) error

type Server struct {
	logger   *zap.SugaredLogger
	session  session
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *zap.SugaredLogger, session session) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionGuess] = server.handleGuess
	server.handlers[actionNewGame] = server.handleNewGame

	return server
}

// Register mounts the websocket endpoint on router.
func (that *Server) Register(router chi.Router) {
	router.Get("/ws", that.upgradeToWebSocket)
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Errorw("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Infow("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Errorw("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Infow("WebSocket connection closed")
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Debugw("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(conn, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Debugw("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(conn, "unknown action: "+message.Action); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return nil
			}
			log.Errorw("error processing message", "action", message.Action, "error", err)
		}
	}
}
