// Package cmu parses CMU Pronouncing Dictionary files into stress patterns.
// Pure function: file path in, domain structs out. No database dependencies.
package cmu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// StressPattern holds one dictionary pronunciation reduced to its stresses.
type StressPattern struct {
	Stresses     string // e.g. "/u"
	VariantIndex int    // 0 for primary, 1 for (2), 2 for (3), etc.
}

// ParseResult holds the parsed CMU dictionary data.
type ParseResult struct {
	Patterns map[string][]StressPattern // normalizedWord → distinct patterns
	Stats    Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines        int
	CommentLines      int
	ParsedLines       int
	SkippedLines      int // no usable word or no vowel phonemes
	DuplicatePatterns int // variants that differ only in phonemes, not stresses
	UniqueWords       int
}

// Parse reads a CMU dict file and returns the stress patterns per word.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader is Parse over an already opened dictionary.
func ParseReader(r io.Reader) (ParseResult, error) {
	result := ParseResult{
		Patterns: make(map[string][]StressPattern),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		word, pattern, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(line, ";;;") {
				result.Stats.CommentLines++
			} else if strings.TrimSpace(line) != "" {
				result.Stats.SkippedLines++
			}
			continue
		}
		if err != nil {
			result.Stats.SkippedLines++
			continue
		}

		result.Stats.ParsedLines++
		if hasStresses(result.Patterns[word], pattern.Stresses) {
			result.Stats.DuplicatePatterns++
			continue
		}
		result.Patterns[word] = append(result.Patterns[word], pattern)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(result.Patterns)
	return result, nil
}

// ToPronunciations converts parsed patterns to corpus records with the given
// starting popularity, ordered by word and then by variant.
func (r ParseResult) ToPronunciations(popularity int) []domain.Pronunciation {
	if len(r.Patterns) == 0 {
		return nil
	}

	words := slices.Sorted(maps.Keys(r.Patterns))
	result := make([]domain.Pronunciation, 0, len(words))
	for _, word := range words {
		for _, p := range r.Patterns[word] {
			result = append(result, domain.Pronunciation{
				Word:       word,
				Stresses:   p.Stresses,
				Popularity: popularity,
			})
		}
	}
	return result
}

func hasStresses(patterns []StressPattern, stresses string) bool {
	for _, p := range patterns {
		if p.Stresses == stresses {
			return true
		}
	}
	return false
}

// stressOf maps a phoneme's trailing stress digit to a scansion symbol.
// Consonants carry no digit and report false.
func stressOf(phoneme string) (byte, bool) {
	if phoneme == "" {
		return 0, false
	}
	switch phoneme[len(phoneme)-1] {
	case '1', '2':
		return domain.Stressed, true
	case '0':
		return domain.Unstressed, true
	}
	return 0, false
}

// phonemesToStresses keeps one symbol per vowel phoneme.
// Primary and secondary stress both count as stressed.
func phonemesToStresses(phonemes []string) string {
	var b strings.Builder
	for _, p := range phonemes {
		if s, ok := stressOf(p); ok {
			b.WriteByte(s)
		}
	}
	return b.String()
}

// parseLine parses a single line from a CMU dict file. Both the classic
// upper-case layout ("WORD  PH1 PH2") and the lower-case cmudict.dict layout
// ("word PH1 PH2 # comment") are accepted.
// Returns the normalized word, its StressPattern, or errSkipLine.
func parseLine(line string) (string, StressPattern, error) {
	if strings.HasPrefix(line, ";;;") {
		return "", StressPattern{}, errSkipLine
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", StressPattern{}, errSkipLine
	}

	word, variantIdx := parseWordAndVariant(fields[0])
	if word == "" {
		return "", StressPattern{}, errSkipLine
	}

	stresses := phonemesToStresses(fields[1:])
	if stresses == "" {
		return "", StressPattern{}, errSkipLine
	}

	return word, StressPattern{
		Stresses:     stresses,
		VariantIndex: variantIdx,
	}, nil
}

// parseWordAndVariant splits a raw CMU word like "HOUSE(2)" into
// the normalized word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return domain.NormalizeWord(raw), 0
	}

	// A malformed suffix still never contributes letters to the word.
	word := domain.NormalizeWord(raw[:idx])
	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return word, 0
	}

	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil || n < 1 {
		return word, 0
	}

	return word, n - 1
}
