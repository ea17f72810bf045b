package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultVocabularyKey = "vocabulary:words"

var ErrVocabularyNotFound = errors.New("vocabulary not found")

type VocabularyRepository interface {
	Replace(ctx context.Context, words []string) error
	GetAll(ctx context.Context) ([]string, error)
}

type dbVocabulary struct {
	client *redis.Client
	key    string
}

// NewVocabularyRepository stores the vocabulary as a Redis list under key.
func NewVocabularyRepository(client *redis.Client, key string) VocabularyRepository {
	if key == "" {
		key = DefaultVocabularyKey
	}

	return &dbVocabulary{
		client: client,
		key:    key,
	}
}

// Replace swaps the stored list for words in a single transaction.
func (that *dbVocabulary) Replace(ctx context.Context, words []string) error {
	values := make([]any, 0, len(words))
	for _, word := range words {
		values = append(values, word)
	}

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, that.key)
		if len(values) > 0 {
			pipe.RPush(ctx, that.key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace vocabulary: %w", err)
	}

	return nil
}

func (that *dbVocabulary) GetAll(ctx context.Context) ([]string, error) {
	words, err := that.client.LRange(ctx, that.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get vocabulary: %w", err)
	}

	if len(words) == 0 {
		return nil, ErrVocabularyNotFound
	}

	return words, nil
}
