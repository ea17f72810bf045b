package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

const DemoWord = "ALGORITHM"

// Demo plays word against itself, guessing its letters in order of first
// appearance, and prints every step followed by the cost of each operation.
func Demo(out io.Writer, word string) error {
	game, err := entity.NewGame([]string{word}, nil)
	if err != nil {
		return fmt.Errorf("failed to create demo game: %w", err)
	}

	word = strings.ToUpper(word)

	var builder strings.Builder
	builder.WriteString("HANGMAN ALGORITHM ANALYSIS\n")
	builder.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&builder, "Secret word: %s\n", word)
	fmt.Fprintf(&builder, "Initial state: %s\n", game.DisplayWord())

	for i, letter := range distinctLetters(word) {
		fmt.Fprintf(&builder, "\n--- Turn %d ---\n", i+1)
		fmt.Fprintf(&builder, "Guessing: %s\n", letter)

		result := game.SubmitGuess(letter)
		state := game.State()

		fmt.Fprintf(&builder, "Result: %s\n", Message(result))
		fmt.Fprintf(&builder, "Display: %s\n", state.DisplayWord)
		fmt.Fprintf(&builder, "Guessed letters: [%s]\n", strings.Join(state.GuessedLetters, ", "))
		fmt.Fprintf(&builder, "Status: %s\n", result.Reason)

		if state.Status != entity.StatusInProgress {
			break
		}
	}

	builder.WriteString("\nALGORITHM COMPLEXITIES:\n")
	builder.WriteString("- Word display generation: O(n)\n")
	builder.WriteString("- Guess validation: O(1) set operations\n")
	builder.WriteString("- Win condition check: O(n) set comparison\n")
	builder.WriteString("- Overall per guess: O(n)\n")
	builder.WriteString("- Space complexity: O(n) for guessed letters set\n")

	if _, err = io.WriteString(out, builder.String()); err != nil {
		return fmt.Errorf("failed to write demo: %w", err)
	}

	return nil
}

func distinctLetters(word string) []string {
	seen := make(map[rune]struct{}, len(word))
	letters := make([]string, 0, len(word))

	for _, r := range word {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, string(r))
	}

	return letters
}
