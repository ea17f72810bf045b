package apperror

import "errors"

var (
	ErrInvalidVocabulary       = errors.New("invalid vocabulary")
	ErrUnknownVocabularySource = errors.New("unknown vocabulary source")
)
