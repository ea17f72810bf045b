package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

const (
	banner    = "=============================="
	separator = "========================================"
)

type game interface {
	Reset()
	SubmitGuess(input string) entity.GuessResult
	State() entity.Snapshot
	IsInProgress() bool
	AttemptsUsed() int
}

// Console plays one game at a time on a line-oriented terminal.
type Console struct {
	logger *zap.SugaredLogger
	game   game

	in  io.Reader
	out io.Writer
}

func New(logger *zap.SugaredLogger, game game, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     in,
		out:    out,
	}
}

// Play runs rounds until the player declines a rematch. End of input and a
// cancelled context both end the session quietly. Input left unread when Play
// returns is dropped.
func (that *Console) Play(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	that.printf("HANGMAN GAME\n")
	that.printf("Guess the football word!\n")
	that.printf("You have %d attempts.\n\n", entity.MaxAttempts)

	for {
		if !that.playRound(ctx, lines) {
			that.printf("\n\nGame interrupted. Thanks for playing!\n")
			return nil
		}

		again, ok := that.askPlayAgain(ctx, lines)
		if !ok {
			that.printf("\n\nGame interrupted. Thanks for playing!\n")
			return nil
		}

		if !again {
			that.printf("Thanks for playing Hangman!\n")
			return nil
		}

		that.game.Reset()
		that.logger.Debugw("new round started")
		that.printf("\n%s\n", separator)
	}
}

// playRound reports false when input ran out before the game finished.
func (that *Console) playRound(ctx context.Context, lines <-chan string) bool {
	for {
		if !that.game.IsInProgress() {
			return true
		}

		that.render(that.game.State())
		that.printf("Guess a letter: ")

		line, ok := that.readLine(ctx, lines)
		if !ok {
			return false
		}

		if strings.TrimSpace(line) == "" {
			that.printf("Please enter a letter!\n\n")
			continue
		}

		result := that.game.SubmitGuess(line)
		that.printf("%s\n", Message(result))

		switch result.Reason {
		case entity.ReasonWin:
			that.printf("\n%s\nCONGRATULATIONS! You won!\n%s\n", banner, banner)
			that.logger.Debugw("round won", "word", result.RevealedWord)
		case entity.ReasonLoss:
			that.printf("\n%s\nGAME OVER! Better luck next time!\n%s\n", banner, banner)
			that.logger.Debugw("round lost", "word", result.RevealedWord)
		default:
			that.printf("\n")
		}
	}
}

func (that *Console) askPlayAgain(ctx context.Context, lines <-chan string) (bool, bool) {
	for {
		that.printf("\nPlay again? (y/n): ")

		line, ok := that.readLine(ctx, lines)
		if !ok {
			return false, false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, true
		case "n":
			return false, true
		default:
			that.printf("Please enter 'y' or 'n'\n")
		}
	}
}

func (that *Console) render(state entity.Snapshot) {
	that.printf("%s\n", Stage(that.game.AttemptsUsed()))
	that.printf("Word: %s\n", state.DisplayWord)
	that.printf("Tries left: %d\n", state.AttemptsRemaining)
	that.printf("Guessed: %s\n\n", strings.Join(state.GuessedLetters, ", "))
}

func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Errorw("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Console) readLine(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Errorw("failed to write output", "error", err)
	}
}
