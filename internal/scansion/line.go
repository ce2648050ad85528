package scansion

import (
	"regexp"
	"strings"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// SplitLines splits a poem on CR, LF or CRLF. An empty poem is one empty line.
func SplitLines(poem string) []string {
	return lineBreak.Split(poem, -1)
}

// WordScorer returns the syllable scores of one raw poem token.
type WordScorer func(word string) ([]domain.Score, error)

// ScoreLine builds a line score sequence: each word's syllable scores
// followed by a Space. A blank line yields an empty, non-nil sequence.
func ScoreLine(line string, score WordScorer) ([]domain.Score, error) {
	words := domain.SplitWords(line)
	out := make([]domain.Score, 0, len(words)*3)
	for _, w := range words {
		scores, err := score(w)
		if err != nil {
			return nil, err
		}
		out = append(out, scores...)
		out = append(out, domain.Space)
	}
	return out, nil
}

// ScorePoem applies ScoreLine to every line of the poem.
func ScorePoem(poem string, score WordScorer) ([][]domain.Score, error) {
	lines := SplitLines(poem)
	out := make([][]domain.Score, 0, len(lines))
	for _, line := range lines {
		scores, err := ScoreLine(line, score)
		if err != nil {
			return nil, err
		}
		out = append(out, scores)
	}
	return out, nil
}

// joinLines renders each line with fn and joins them with newlines.
func joinLines(lines [][]domain.Score, fn func([]domain.Score) string) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = fn(line)
	}
	return strings.Join(rendered, "\n")
}
