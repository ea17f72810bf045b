package vocabulary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
	"github.com/rocketscienceinc/hangman-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Plain text, one word per line", func(t *testing.T) {
		// Given: a text file with comments and blank lines
		path := writeFile(t, "words.txt", "# clubs\nAjax\n\n  porto  \n#benfica\nPSG\n")

		// When: the file is loaded
		words, err := LoadFile(path)
		require.NoError(t, err)

		// Then: only trimmed words remain, in order
		assert.Equal(t, []string{"Ajax", "porto", "PSG"}, words)
	})

	t.Run("YAML sequence", func(t *testing.T) {
		// Given: a yaml file with a top-level list
		path := writeFile(t, "words.yaml", "- messi\n- ' kane '\n- PELE\n")

		// When: the file is loaded
		words, err := LoadFile(path)
		require.NoError(t, err)

		// Then: the list is returned trimmed
		assert.Equal(t, []string{"messi", "kane", "PELE"}, words)
	})

	t.Run("YAML mapping with words", func(t *testing.T) {
		// Given: a yml file with a words key
		path := writeFile(t, "words.YML", "name: stadiums\nwords:\n  - wembley\n  - anfield\n")

		// When: the file is loaded
		words, err := LoadFile(path)
		require.NoError(t, err)

		// Then: the words are returned
		assert.Equal(t, []string{"wembley", "anfield"}, words)
	})

	t.Run("Loaded words build a game", func(t *testing.T) {
		// Given: a text vocabulary
		path := writeFile(t, "words.txt", "offside\nhattrick\n")
		words, err := LoadFile(path)
		require.NoError(t, err)

		// When: a game is built from it
		game, err := entity.NewGame(words, nil)
		require.NoError(t, err)

		// Then: the display matches one of the words
		display := strings.ReplaceAll(game.DisplayWord(), " ", "")
		assert.Contains(t, []int{len("OFFSIDE"), len("HATTRICK")}, len(display))
	})

	t.Run("Empty files are invalid vocabularies", func(t *testing.T) {
		for name, content := range map[string]string{
			"empty.txt":    "",
			"comments.txt": "# nothing\n\n",
			"empty.yaml":   "",
			"nowords.yaml": "name: none\n",
			"list.yaml":    "[]\n",
		} {
			t.Run(name, func(t *testing.T) {
				// When: a file without words is loaded
				_, err := LoadFile(writeFile(t, name, content))

				// Then: ErrInvalidVocabulary is returned
				require.ErrorIs(t, err, apperror.ErrInvalidVocabulary)
			})
		}
	})

	t.Run("Scalar YAML documents are rejected", func(t *testing.T) {
		// Given: a yaml file holding a single string
		path := writeFile(t, "word.yaml", "messi\n")

		// When: the file is loaded
		_, err := LoadFile(path)

		// Then: ErrUnsupportedDocument is returned
		require.ErrorIs(t, err, ErrUnsupportedDocument)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: a missing file is loaded
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))

		// Then: the open error is returned
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
