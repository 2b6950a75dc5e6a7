// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wordfall Contributors

// Package words loads the Finnish word lists and validates guesses against
// them.
package words

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"
)

// SupportedLengths are the word lengths the game ships lists for.
var SupportedLengths = []int{5, 6, 7}

// LanguageFinnish is the only supported language.
const LanguageFinnish = "fi"

// allowedChars matches lowercase Finnish words.
var allowedChars = regexp.MustCompile(`^[a-zäöå]+$`)

// Lists holds the allowed-word sets keyed by word length. Built once at
// startup; lookups are O(1) set membership.
type Lists struct {
	sets map[int]map[string]struct{}
}

// Load reads the word lists from dir, one fi_allowed_<length>.txt file per
// supported length. A missing file logs a warning and leaves that length
// empty rather than failing startup; an unreadable file is an error.
func Load(dir string, logger *slog.Logger) (*Lists, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sets := make(map[int]map[string]struct{}, len(SupportedLengths))
	for _, length := range SupportedLengths {
		path := filepath.Join(dir, fmt.Sprintf("fi_allowed_%d.txt", length))

		set, err := loadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("word list not found, length disabled", "path", path, "word_length", length)
				sets[length] = map[string]struct{}{}
				continue
			}
			return nil, oops.Code("WORDS_LOAD_FAILED").
				With("path", path).
				With("word_length", length).
				Wrap(err)
		}

		logger.Info("loaded word list", "path", path, "word_length", length, "words", len(set))
		sets[length] = set
	}

	return &Lists{sets: sets}, nil
}

func loadFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // caller wraps with context
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err //nolint:wrapcheck // caller wraps with context
	}
	return set, nil
}

// Validate reports whether a guess is an allowed word. The guess is trimmed
// and lowercased first. Anything off the happy path is simply invalid,
// never an error: unsupported language or length, a rune count that does
// not match wordLength, characters outside the Finnish alphabet, or a word
// missing from the list.
func (l *Lists) Validate(language string, wordLength int, guess string) bool {
	if language != LanguageFinnish {
		return false
	}

	guess = strings.ToLower(strings.TrimSpace(guess))
	if guess == "" {
		return false
	}
	if utf8.RuneCountInString(guess) != wordLength {
		return false
	}

	set, ok := l.sets[wordLength]
	if !ok {
		return false
	}
	if !allowedChars.MatchString(guess) {
		return false
	}

	_, found := set[guess]
	return found
}

// Count returns the number of allowed words for a length. Zero for
// unsupported lengths.
func (l *Lists) Count(wordLength int) int {
	return len(l.sets[wordLength])
}
