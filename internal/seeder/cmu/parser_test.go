package cmu

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestPhonemesToStresses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phonemes []string
		want     string
	}{
		{"single unstressed", []string{"DH", "AH0"}, "u"},
		{"primary stress", []string{"M", "UW1", "N"}, "/"},
		{"secondary counts as stressed", []string{"HH", "OW1", "M", "B", "AW2", "N", "D"}, "//"},
		{"mixed", []string{"W", "AO1", "T", "ER0"}, "/u"},
		{"consonants only", []string{"HH", "M"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, phonemesToStresses(tt.phonemes))
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		line        string
		wantWord    string
		wantPattern StressPattern
		wantSkip    bool
	}{
		{
			name:        "simple word",
			line:        "WATER  W AO1 T ER0",
			wantWord:    "water",
			wantPattern: StressPattern{Stresses: "/u"},
		},
		{
			name:        "variant 2",
			line:        "A(2)  EY1",
			wantWord:    "a",
			wantPattern: StressPattern{Stresses: "/", VariantIndex: 1},
		},
		{
			name:        "variant 3",
			line:        "THE(3)  DH IY0",
			wantWord:    "the",
			wantPattern: StressPattern{Stresses: "u", VariantIndex: 2},
		},
		{
			name:        "apostrophe stripped",
			line:        "'BOUT  B AW1 T",
			wantWord:    "bout",
			wantPattern: StressPattern{Stresses: "/"},
		},
		{
			name:        "lower-case layout with comment",
			line:        "homebound HH OW1 M B AW2 N D # compound",
			wantWord:    "homebound",
			wantPattern: StressPattern{Stresses: "//"},
		},
		{name: "comment line", line: ";;; This is a comment", wantSkip: true},
		{name: "empty line", line: "", wantSkip: true},
		{name: "word without phonemes", line: "LONELY", wantSkip: true},
		{name: "word normalizes to nothing", line: "--  D AE1 SH", wantSkip: true},
		{name: "no vowel phonemes", line: "HMM  HH M", wantSkip: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			word, pattern, err := parseLine(tt.line)
			if tt.wantSkip {
				assert.ErrorIs(t, err, errSkipLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWord, word)
			assert.Equal(t, tt.wantPattern, pattern)
		})
	}
}

func TestParseWordAndVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw         string
		wantWord    string
		wantVariant int
	}{
		{"HOUSE", "house", 0},
		{"HOUSE(2)", "house", 1},
		{"HOUSE(10)", "house", 9},
		{"HOUSE(x)", "house", 0},
		{"HOUSE(0)", "house", 0},
		{"HOUSE(2", "house", 0},
		{"HOUSE(ab)", "house", 0},
		{"HOUSE(ab", "house", 0},
		{"HOUSE()", "house", 0},
		{"Home-Bound", "homebound", 0},
		{"CAFÉ", "caf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			word, variant := parseWordAndVariant(tt.raw)
			assert.Equal(t, tt.wantWord, word)
			assert.Equal(t, tt.wantVariant, variant)
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	result, err := Parse(testdataPath(t, "cmudict-sample.txt"))
	require.NoError(t, err)

	assert.Equal(t, Stats{
		TotalLines:        17,
		CommentLines:      2,
		ParsedLines:       13,
		SkippedLines:      2,
		DuplicatePatterns: 1,
		UniqueWords:       8,
	}, result.Stats)

	assert.Equal(t, []StressPattern{{Stresses: "u"}, {Stresses: "/", VariantIndex: 1}}, result.Patterns["the"])
	assert.Equal(t, []StressPattern{{Stresses: "/uu"}, {Stresses: "/u", VariantIndex: 1}}, result.Patterns["anchoring"])
	assert.Equal(t, []StressPattern{{Stresses: "u/"}, {Stresses: "u/u", VariantIndex: 1}}, result.Patterns["beloved"])
	assert.NotContains(t, result.Patterns, "hmm")
	assert.NotContains(t, result.Patterns, "")
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(testdataPath(t, "does-not-exist.txt"))
	assert.Error(t, err)
}

func TestToPronunciations(t *testing.T) {
	t.Parallel()

	result, err := ParseReader(strings.NewReader("WATER  W AO1 T ER0\nA  AH0\nA(2)  EY1\n"))
	require.NoError(t, err)

	got := result.ToPronunciations(3)
	want := []domain.Pronunciation{
		{Word: "a", Stresses: "u", Popularity: 3},
		{Word: "a", Stresses: "/", Popularity: 3},
		{Word: "water", Stresses: "/u", Popularity: 3},
	}
	assert.Equal(t, want, got)
}

func TestToPronunciations_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseResult{}.ToPronunciations(1))
}
