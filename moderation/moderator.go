// Package moderation censors disallowed words in chat content before it is
// persisted. The matcher is an Aho-Corasick automaton built once at startup;
// input is normalized (lowercased, leet-speak folded, punctuation stripped)
// so obfuscated spellings still match, while the replacement is applied to
// the original runes to preserve spacing.
package moderation

import (
	"bufio"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

//go:embed censored/*
var censoredFS embed.FS

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// NewModerator builds the automaton from the given word list.
func NewModerator(words []string, replacement rune, log *slog.Logger) (*Moderator, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("no censored words provided")
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = foldRunes([]rune(word))
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: machine, replacement: replacement, log: log}, nil
}

// NewDefaultModerator loads the word lists embedded under censored/.
func NewDefaultModerator(replacement rune, log *slog.Logger) (*Moderator, error) {
	words, err := loadEmbeddedWords()
	if err != nil {
		return nil, err
	}
	log.Debug("moderation word list loaded", "words", len(words))
	return NewModerator(words, replacement, log)
}

// Censor replaces every occurrence of a censored word with the replacement
// rune, spanning the original (possibly obfuscated) characters.
func (m *Moderator) Censor(original string) string {
	origRunes := []rune(original)
	folded, origIdx := foldWithMapping(origRunes)
	if len(folded) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(folded, false)
	if len(spans) == 0 {
		return original
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes)
}

func loadEmbeddedWords() ([]string, error) {
	entries, err := censoredFS.ReadDir("censored")
	if err != nil {
		return nil, err
	}
	var words []string
	for _, entry := range entries {
		file, err := censoredFS.Open("censored/" + entry.Name())
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word != "" && !strings.HasPrefix(word, "#") {
				words = append(words, word)
			}
		}
		_ = file.Close()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return words, nil
}

// foldWithMapping normalizes input for matching and records, for every kept
// rune, its index in the original string.
func foldWithMapping(origRunes []rune) ([]rune, []int) {
	folded := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))
	for i, r := range origRunes {
		clean := foldLeet(r)
		if isNoise(clean) {
			continue
		}
		folded = append(folded, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return folded, origIdx
}

func foldRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := foldLeet(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// foldLeet maps common leet-speak substitutions to their alphabet runes.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
