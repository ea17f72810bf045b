package console

import (
	"fmt"

	"github.com/rocketscienceinc/hangman-backend/internal/entity"
)

// Message turns a guess result into the line shown to the player.
func Message(result entity.GuessResult) string {
	switch result.Reason {
	case entity.ReasonCorrectLetter:
		return fmt.Sprintf("Good! '%s' found", result.Letter)
	case entity.ReasonWrongLetter:
		return fmt.Sprintf("Wrong! %d tries left", result.AttemptsRemaining)
	case entity.ReasonWin:
		return "Yes! Word: " + result.RevealedWord
	case entity.ReasonLoss:
		return "No! Word was: " + result.RevealedWord
	case entity.ReasonInvalidInput:
		return "Enter single letter only!"
	case entity.ReasonDuplicateGuess:
		return fmt.Sprintf("'%s' already guessed!", result.Letter)
	case entity.ReasonGameFinished:
		return "Game over!"
	default:
		return string(result.Reason)
	}
}
