package repository

import (
	"testing"

	"github.com/rocketscienceinc/hangman-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyRepository_Replace(t *testing.T) {
	t.Run("Replace_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		vocabularyRepo := NewVocabularyRepository(st.Storage, "")

		// Given: a vocabulary
		words := []string{"MESSI", "KANE", "PELE"}

		// When: Replace is called
		err := vocabularyRepo.Replace(ctx, words)

		// Then: the list is stored in order under the default key
		require.NoError(t, err)

		stored, err := st.Storage.LRange(ctx, DefaultVocabularyKey, 0, -1).Result()
		require.NoError(t, err)
		assert.Equal(t, words, stored)
	})

	t.Run("Replace_Overwrites", func(t *testing.T) {
		ctx, st := suite.New(t)

		vocabularyRepo := NewVocabularyRepository(st.Storage, "test:words")

		// Given: a stored vocabulary
		require.NoError(t, vocabularyRepo.Replace(ctx, []string{"AJAX", "PORTO", "BENFICA"}))

		// When: Replace is called with a new list
		err := vocabularyRepo.Replace(ctx, []string{"WEMBLEY"})
		require.NoError(t, err)

		// Then: only the new list remains
		words, err := vocabularyRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"WEMBLEY"}, words)
	})
}

func TestVocabularyRepository_GetAll(t *testing.T) {
	t.Run("GetAll_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		vocabularyRepo := NewVocabularyRepository(st.Storage, "")

		// Given: a stored vocabulary
		words := []string{"offside", "freekick"}
		require.NoError(t, vocabularyRepo.Replace(ctx, words))

		// When: GetAll is called
		retrieved, err := vocabularyRepo.GetAll(ctx)

		// Then: the stored words are returned
		require.NoError(t, err)
		assert.Equal(t, words, retrieved)
	})

	t.Run("GetAll_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		vocabularyRepo := NewVocabularyRepository(st.Storage, "missing:words")

		// When: GetAll is called for a key that was never written
		retrieved, err := vocabularyRepo.GetAll(ctx)

		// Then: an ErrVocabularyNotFound error should be returned
		require.ErrorIs(t, err, ErrVocabularyNotFound)
		assert.Empty(t, retrieved)
	})

	t.Run("GetAll_AfterEmptyReplace", func(t *testing.T) {
		ctx, st := suite.New(t)

		vocabularyRepo := NewVocabularyRepository(st.Storage, "")
		require.NoError(t, vocabularyRepo.Replace(ctx, []string{"VAR"}))

		// When: the list is replaced with nothing
		require.NoError(t, vocabularyRepo.Replace(ctx, nil))

		// Then: the vocabulary is gone
		_, err := vocabularyRepo.GetAll(ctx)
		require.ErrorIs(t, err, ErrVocabularyNotFound)
	})
}
