// Package vocabulary reads word lists for the game engine from files.
//
// YAML files (.yaml, .yml) hold either a top-level sequence of words or a mapping
// with a "words" sequence. Any other file is read as plain text: one word per line,
// blank lines and lines starting with # are skipped.
//
// Entries are only trimmed here; entity.NewGame decides whether they are valid.
package vocabulary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/hangman-backend/internal/apperror"
)

var ErrUnsupportedDocument = errors.New("yaml vocabulary must be a sequence or a mapping with words")

type document struct {
	Words []string `yaml:"words"`
}

func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		words, err = ReadYAML(file)
	default:
		words, err = ReadText(file)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	return words, nil
}

func ReadText(reader io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words = append(words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan vocabulary: %w", err)
	}

	return nonEmpty(words)
}

func ReadYAML(reader io.Reader) ([]string, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(reader).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nonEmpty(nil)
		}
		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	if len(root.Content) == 0 {
		return nonEmpty(nil)
	}

	var words []string
	switch node := root.Content[0]; node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&words); err != nil {
			return nil, fmt.Errorf("failed to decode word list: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode words: %w", err)
		}
		words = doc.Words
	default:
		return nil, ErrUnsupportedDocument
	}

	for i := range words {
		words[i] = strings.TrimSpace(words[i])
	}

	return nonEmpty(words)
}

func nonEmpty(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words found", apperror.ErrInvalidVocabulary)
	}

	return words, nil
}
