package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

type game interface {
	Reset()
	SubmitGuess(input string) entity.GuessResult
	State() entity.Snapshot
}

// GameSession serializes access to one game so that concurrent transports can share it.
type GameSession struct {
	logger *zap.SugaredLogger

	mu   sync.Mutex
	game game
}

func NewGameSession(logger *zap.SugaredLogger, game game) *GameSession {
	return &GameSession{
		logger: logger.With("component", "session"),
		game:   game,
	}
}

func (that *GameSession) Guess(_ context.Context, letter string) (entity.GuessResult, entity.Snapshot) {
	log := that.logger.With("method", "Guess")

	that.mu.Lock()
	defer that.mu.Unlock()

	result := that.game.SubmitGuess(letter)
	state := that.game.State()

	switch result.Reason {
	case entity.ReasonWin:
		log.Infow("game won", "word", result.RevealedWord, "attempts_remaining", result.AttemptsRemaining)
	case entity.ReasonLoss:
		log.Infow("game lost", "word", result.RevealedWord)
	case entity.ReasonInvalidInput, entity.ReasonDuplicateGuess, entity.ReasonGameFinished:
		log.Debugw("guess rejected", "input", letter, "reason", result.Reason)
	default:
		log.Debugw("guess applied", "letter", result.Letter, "reason", result.Reason, "attempts_remaining", result.AttemptsRemaining)
	}

	return result, state
}

func (that *GameSession) State(_ context.Context) entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.State()
}

// NewGame resets the game with a fresh secret word.
func (that *GameSession) NewGame(_ context.Context) entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Reset()
	that.logger.Infow("new game started")

	return that.game.State()
}
