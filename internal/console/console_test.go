package console

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
	"github.com/rocketscienceinc/hangman-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newConsole(t *testing.T, word, input string) (*Console, *bytes.Buffer) {
	t.Helper()

	game, err := entity.NewGame([]string{word}, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return New(zap.NewNop().Sugar(), game, strings.NewReader(input), out), out
}

func TestConsole_Play(t *testing.T) {
	t.Run("Win and leave", func(t *testing.T) {
		// Given: a console for CAT and a scripted player
		console, out := newConsole(t, "CAT", "c\n\na\nab\na\nt\nn\n")

		// When: the game is played
		err := console.Play(context.Background())
		require.NoError(t, err)

		// Then: every turn is reported and the player leaves politely
		output := out.String()
		assert.Contains(t, output, "You have 6 attempts.")
		assert.Contains(t, output, "Word: _ _ _")
		assert.Contains(t, output, "Good! 'C' found")
		assert.Contains(t, output, "Please enter a letter!")
		assert.Contains(t, output, "Word: C A _")
		assert.Contains(t, output, "Guessed: A, C")
		assert.Contains(t, output, "Enter single letter only!")
		assert.Contains(t, output, "'A' already guessed!")
		assert.Contains(t, output, "Yes! Word: CAT")
		assert.Contains(t, output, "CONGRATULATIONS! You won!")
		assert.Contains(t, output, "Play again? (y/n): ")
		assert.True(t, strings.HasSuffix(output, "Thanks for playing Hangman!\n"))
		assert.NotContains(t, output, "Game interrupted")
	})

	t.Run("Lose, play again and run out of input", func(t *testing.T) {
		// Given: a console for DOG and a player who loses, hesitates and restarts
		console, out := newConsole(t, "DOG", "z\nq\nx\nw\nv\nu\nmaybe\nY\n")

		// When: the game is played
		err := console.Play(context.Background())
		require.NoError(t, err)

		// Then: the loss reveals the word and a new round starts before input ends
		output := out.String()
		assert.Contains(t, output, "Wrong! 5 tries left")
		assert.Contains(t, output, "Wrong! 1 tries left")
		assert.Contains(t, output, "No! Word was: DOG")
		assert.Contains(t, output, "GAME OVER! Better luck next time!")
		assert.Contains(t, output, "Please enter 'y' or 'n'")
		assert.Contains(t, output, Stage(5))
		assert.Equal(t, 2, strings.Count(output, "Tries left: 6\n"))
		assert.True(t, strings.HasSuffix(output, "Game interrupted. Thanks for playing!\n"))
	})

	t.Run("Cancelled context interrupts the game", func(t *testing.T) {
		// Given: input that never arrives and a cancelled context
		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		game, err := entity.NewGame([]string{"CAT"}, nil)
		require.NoError(t, err)

		out := &bytes.Buffer{}
		console := New(zap.NewNop().Sugar(), game, reader, out)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the game is played
		err = console.Play(ctx)

		// Then: the session ends without touching the game
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Game interrupted. Thanks for playing!")
		assert.Empty(t, game.State().GuessedLetters)
	})
}

func TestConsole_Play_ReleasesInputReader(t *testing.T) {
	baseline := runtime.NumGoroutine()

	// Given: players who leave with input still pending
	for range 20 {
		console, out := newConsole(t, "CAT", "c\na\nt\nn\nextra\nmore\n")

		// When: the game is played
		require.NoError(t, console.Play(context.Background()))
		require.True(t, strings.HasSuffix(out.String(), "Thanks for playing Hangman!\n"))
	}

	// Then: no reader goroutine outlives its session
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= baseline
	}, time.Second, 10*time.Millisecond)
}

func TestStage(t *testing.T) {
	t.Run("Draws more of the figure for every wrong guess", func(t *testing.T) {
		// Then: the empty gallows has no figure and the last stage has both legs
		assert.NotContains(t, Stage(0), "O")
		assert.Contains(t, Stage(1), "O")
		assert.Contains(t, Stage(entity.MaxAttempts), `/ \`)

		for i := 1; i <= entity.MaxAttempts; i++ {
			assert.NotEqual(t, Stage(i-1), Stage(i))
		}
	})

	t.Run("Clamps out of range values", func(t *testing.T) {
		assert.Equal(t, Stage(0), Stage(-3))
		assert.Equal(t, Stage(entity.MaxAttempts), Stage(entity.MaxAttempts+4))
	})
}

func TestMessage(t *testing.T) {
	cases := []struct {
		result   entity.GuessResult
		expected string
	}{
		{entity.GuessResult{Reason: entity.ReasonCorrectLetter, Letter: "E"}, "Good! 'E' found"},
		{entity.GuessResult{Reason: entity.ReasonWrongLetter, Letter: "Z", AttemptsRemaining: 3}, "Wrong! 3 tries left"},
		{entity.GuessResult{Reason: entity.ReasonWin, RevealedWord: "AJAX"}, "Yes! Word: AJAX"},
		{entity.GuessResult{Reason: entity.ReasonLoss, RevealedWord: "PORTO"}, "No! Word was: PORTO"},
		{entity.GuessResult{Reason: entity.ReasonInvalidInput}, "Enter single letter only!"},
		{entity.GuessResult{Reason: entity.ReasonDuplicateGuess, Letter: "Q"}, "'Q' already guessed!"},
		{entity.GuessResult{Reason: entity.ReasonGameFinished}, "Game over!"},
	}

	for _, tc := range cases {
		t.Run(string(tc.result.Reason), func(t *testing.T) {
			assert.Equal(t, tc.expected, Message(tc.result))
		})
	}
}

func TestDemo(t *testing.T) {
	t.Run("Guesses every distinct letter until the word is found", func(t *testing.T) {
		// When: the demo runs on a word with repeated letters
		out := &bytes.Buffer{}
		err := Demo(out, "hattrick")
		require.NoError(t, err)

		// Then: one turn per distinct letter ends in a win
		output := out.String()
		assert.Contains(t, output, "Secret word: HATTRICK")
		assert.Contains(t, output, "Initial state: _ _ _ _ _ _ _ _")
		assert.Contains(t, output, "--- Turn 7 ---")
		assert.NotContains(t, output, "--- Turn 8 ---")
		assert.Contains(t, output, "Display: H A T T R I C K")
		assert.Contains(t, output, "Status: win")
		assert.Contains(t, output, "ALGORITHM COMPLEXITIES:")
	})

	t.Run("Default word", func(t *testing.T) {
		out := &bytes.Buffer{}
		require.NoError(t, Demo(out, DemoWord))
		assert.Contains(t, out.String(), "--- Turn 9 ---")
		assert.Contains(t, out.String(), "Guessed letters: [A, G, H, I, L, M, O, R, T]")
	})

	t.Run("Rejects words that cannot be played", func(t *testing.T) {
		err := Demo(&bytes.Buffer{}, "tiki-taka")
		require.ErrorIs(t, err, apperror.ErrInvalidVocabulary)
	})
}
