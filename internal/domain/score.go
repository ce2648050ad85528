package domain

import "strconv"

// ScoreKind distinguishes measured syllables from the two marker positions
// of a line score sequence.
type ScoreKind uint8

const (
	ScoreKnown ScoreKind = iota
	ScoreUnknown
	ScoreSpace
)

// Score is one position of a line score sequence. Known values are
// stressed/unstressed ratios: higher means more stressed, and only their
// ordering within a line is meaningful.
type Score struct {
	Kind  ScoreKind
	Value float64
}

// Marker positions.
var (
	Unknown = Score{Kind: ScoreUnknown}
	Space   = Score{Kind: ScoreSpace}
)

// Known wraps a measured stress ratio.
func Known(v float64) Score {
	return Score{Kind: ScoreKnown, Value: v}
}

// IsKnown reports whether the position carries a measured value.
func (s Score) IsKnown() bool { return s.Kind == ScoreKnown }

// IsUnknown reports whether the position is a syllable with no corpus evidence.
func (s Score) IsUnknown() bool { return s.Kind == ScoreUnknown }

// IsSpace reports whether the position is a word boundary.
func (s Score) IsSpace() bool { return s.Kind == ScoreSpace }

// String renders the position the way scansion strings do: "?" for
// unknown, " " for a word boundary, the value with four decimals otherwise.
func (s Score) String() string {
	switch s.Kind {
	case ScoreUnknown:
		return string(Uncertain)
	case ScoreSpace:
		return string(WordBreak)
	default:
		return strconv.FormatFloat(s.Value, 'f', 4, 64)
	}
}
