package console

import "github.com/rocketscienceinc/hangman-backend/internal/entity"

var stages = [entity.MaxAttempts + 1]string{
	`
   +---+
   |   |
       |
       |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
       |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
   |   |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|   |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
       |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
  /    |
       |
=========`,
	`
   +---+
   |   |
   O   |
  /|\  |
  / \  |
       |
=========`,
}

// Stage returns the gallows drawing for the number of wrong guesses so far.
// Out-of-range values are clamped to 0..MaxAttempts.
func Stage(attemptsUsed int) string {
	attemptsUsed = max(0, min(attemptsUsed, entity.MaxAttempts))
	return stages[attemptsUsed]
}
