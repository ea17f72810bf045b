package entity

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusLost       = "lost"

	// MaxAttempts is the number of wrong letters a player may submit before losing.
	MaxAttempts = 6

	HiddenLetter = "_"
)

type Reason string

const (
	ReasonCorrectLetter  Reason = "correct_letter"
	ReasonWrongLetter    Reason = "wrong_letter"
	ReasonWin            Reason = "win"
	ReasonLoss           Reason = "loss"
	ReasonInvalidInput   Reason = "invalid_input"
	ReasonDuplicateGuess Reason = "duplicate_guess"
	ReasonGameFinished   Reason = "game_finished"
)

// RandomSource picks the secret word. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// GuessResult is the outcome of a single SubmitGuess call.
type GuessResult struct {
	Accepted          bool   `json:"accepted"`
	Reason            Reason `json:"reason"`
	Letter            string `json:"letter,omitempty"`
	RevealedWord      string `json:"revealed_word,omitempty"`
	AttemptsRemaining int    `json:"attempts_remaining"`
}

// Snapshot is an immutable copy of the game state for presentation layers.
type Snapshot struct {
	DisplayWord       string   `json:"display_word"`
	AttemptsRemaining int      `json:"attempts_remaining"`
	GuessedLetters    []string `json:"guessed_letters"`
	Status            string   `json:"status"`
	Won               bool     `json:"won"`
}

// Game is a single hangman session. It is not safe for concurrent use.
type Game struct {
	vocabulary []string
	random     RandomSource

	secretWord        string
	guessedLetters    map[string]struct{}
	attemptsRemaining int
	status            string
}

// NewGame validates the vocabulary and starts a fresh round.
// A nil vocabulary selects DefaultVocabulary, a nil random source a privately seeded generator.
func NewGame(vocabulary []string, random RandomSource) (*Game, error) {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary
	}

	words, err := normalizeVocabulary(vocabulary)
	if err != nil {
		return nil, err
	}

	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // word choice is not security sensitive
	}

	game := &Game{
		vocabulary: words,
		random:     random,
	}
	game.Reset()

	return game, nil
}

func normalizeVocabulary(vocabulary []string) ([]string, error) {
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("%w: list is empty", apperror.ErrInvalidVocabulary)
	}

	words := make([]string, 0, len(vocabulary))
	for i, entry := range vocabulary {
		word := strings.ToUpper(entry)
		if word == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", apperror.ErrInvalidVocabulary, i)
		}

		if !isLetters(word) {
			return nil, fmt.Errorf("%w: entry %d %q contains non-letter characters", apperror.ErrInvalidVocabulary, i, entry)
		}

		words = append(words, word)
	}

	return words, nil
}

// Reset draws a new secret word and restores the full attempt budget.
func (that *Game) Reset() {
	that.secretWord = that.vocabulary[that.random.IntN(len(that.vocabulary))]
	that.guessedLetters = make(map[string]struct{})
	that.attemptsRemaining = MaxAttempts
	that.status = StatusInProgress
}

// SubmitGuess applies one guess. Every rejection is reported through the result;
// the game state only changes for a new, valid letter on an unfinished game.
func (that *Game) SubmitGuess(input string) GuessResult {
	if that.IsFinished() {
		return that.result(false, ReasonGameFinished, "")
	}

	letter := strings.ToUpper(strings.TrimSpace(input))
	if len(letter) != 1 || !isLetters(letter) {
		return that.result(false, ReasonInvalidInput, "")
	}

	if that.hasGuessed(letter) {
		return that.result(false, ReasonDuplicateGuess, letter)
	}

	that.guessedLetters[letter] = struct{}{}

	if strings.Contains(that.secretWord, letter) {
		if that.allLettersGuessed() {
			that.status = StatusWon

			result := that.result(true, ReasonWin, letter)
			result.RevealedWord = that.secretWord
			return result
		}

		return that.result(true, ReasonCorrectLetter, letter)
	}

	that.attemptsRemaining--
	if that.attemptsRemaining == 0 {
		that.status = StatusLost

		result := that.result(false, ReasonLoss, letter)
		result.RevealedWord = that.secretWord
		return result
	}

	return that.result(false, ReasonWrongLetter, letter)
}

// DisplayWord renders the secret word with unguessed positions masked, e.g. "C _ T".
func (that *Game) DisplayWord() string {
	display := make([]string, 0, len(that.secretWord))
	for _, r := range that.secretWord {
		letter := string(r)
		if that.hasGuessed(letter) {
			display = append(display, letter)
		} else {
			display = append(display, HiddenLetter)
		}
	}

	return strings.Join(display, " ")
}

// State returns a copy of the game state; later guesses do not change it.
func (that *Game) State() Snapshot {
	guessed := make([]string, 0, len(that.guessedLetters))
	for letter := range that.guessedLetters {
		guessed = append(guessed, letter)
	}
	sort.Strings(guessed)

	return Snapshot{
		DisplayWord:       that.DisplayWord(),
		AttemptsRemaining: that.attemptsRemaining,
		GuessedLetters:    guessed,
		Status:            that.status,
		Won:               that.status == StatusWon,
	}
}

func (that *Game) IsFinished() bool {
	return that.status == StatusWon || that.status == StatusLost
}

func (that *Game) IsInProgress() bool {
	return that.status == StatusInProgress
}

// AttemptsUsed counts wrong letters so far, 0..MaxAttempts.
func (that *Game) AttemptsUsed() int {
	return MaxAttempts - that.attemptsRemaining
}

func (that *Game) hasGuessed(letter string) bool {
	_, ok := that.guessedLetters[letter]
	return ok
}

func (that *Game) allLettersGuessed() bool {
	for _, r := range that.secretWord {
		if !that.hasGuessed(string(r)) {
			return false
		}
	}

	return true
}

func (that *Game) result(accepted bool, reason Reason, letter string) GuessResult {
	return GuessResult{
		Accepted:          accepted,
		Reason:            reason,
		Letter:            letter,
		AttemptsRemaining: that.attemptsRemaining,
	}
}

func isLetters(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
