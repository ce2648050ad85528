package scansion

import (
	"github.com/hathaway2010/poetry-scansion/internal/domain"
)

// fixtureCorpus is a small hand-scanned corpus around the opening of
// "The Harbor".
var fixtureCorpus = buildCorpus([]struct {
	word     string
	stresses string
	pop      int
}{
	{"the", "u", 381}, {"the", "/", 4},
	{"moon", "u", 1}, {"moon", "/", 15},
	{"is", "u", 89}, {"is", "/", 29},
	{"a", "u", 149}, {"a", "/", 1},
	{"wavering", "/uu", 1},
	{"rim", "u", 2}, {"rim", "/", 1},
	{"where", "u", 11}, {"where", "/", 14},
	{"one", "u", 15}, {"one", "/", 4},
	{"fish", "u", 2}, {"fish", "/", 1},
	{"slips", "/", 1},
	{"water", "/u", 3},
	{"makes", "u", 1}, {"makes", "/", 4},
	{"quietness", "/uu", 1}, {"quietness", "/u/", 1},
	{"of", "u", 152}, {"of", "/", 60},
	{"sound", "u", 1}, {"sound", "/", 3},
	{"night", "u", 2}, {"night", "/", 12},
	{"an", "u", 11},
	{"anchoring", "/u/", 1},
	{"many", "/u", 4},
	{"ships", "/", 2},
	{"homebound", "u/", 1},
	{"beloved", "u/", 1}, {"beloved", "u/u", 1},
})

const fixturePoem = "THE moon is a wavering rim where one fish slips,\n" +
	"The water makes a quietness of sound;\n" +
	"Night is an anchoring of many ships\n" +
	"Homebound."

func buildCorpus(rows []struct {
	word     string
	stresses string
	pop      int
}) map[string][]domain.Pronunciation {
	out := make(map[string][]domain.Pronunciation)
	for _, r := range rows {
		out[r.word] = append(out[r.word], domain.Pronunciation{
			Word:       r.word,
			Stresses:   r.stresses,
			Popularity: r.pop,
		})
	}
	return out
}

// corpusScorer scores raw tokens against an in-memory corpus.
func corpusScorer(corpus map[string][]domain.Pronunciation) WordScorer {
	return func(raw string) ([]domain.Score, error) {
		word := domain.NormalizeWord(raw)
		if word == "" {
			return []domain.Score{domain.Unknown}, nil
		}
		return Profile(word, corpus[word]), nil
	}
}

func k(v float64) domain.Score { return domain.Known(v) }

var (
	sp = domain.Space
	uk = domain.Unknown
)

func mustScorePoem(poem string) [][]domain.Score {
	lines, err := ScorePoem(poem, corpusScorer(fixtureCorpus))
	if err != nil {
		panic(err)
	}
	return lines
}
