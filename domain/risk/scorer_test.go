package risk

import (
	"testing"

	"entitygraph-pipeline/domain/resolve"

	"github.com/stretchr/testify/assert"
)

func newTestScorer() *Scorer {
	return NewScorer(&resolve.CanonicalCatalog{
		CoreSurname: "Epstein",
		Rules: []*resolve.CanonicalRule{
			{Canonical: "Jeffrey Epstein", Category: resolve.CategoryHighRisk},
			{Canonical: "Ghislaine Maxwell", Category: resolve.CategoryHighRisk},
			{Canonical: "Jane Doe", Category: "witness"},
		},
	})
}

func TestScoreClampedToMax(t *testing.T) {
	s := newTestScorer()

	// 5(精选) + 3(姓氏) + 2 + 1 + 2 明显超过上限
	score := s.Score("Jeffrey Epstein", Evidence{
		MentionCount: 100,
		HasFlightLog: true,
		HasLegal:     true,
	})
	assert.Equal(t, MaxRating, score)
}

func TestScoreSurnameToken(t *testing.T) {
	s := newTestScorer()

	// 不在精选集合，但包含核心姓氏 token
	assert.Equal(t, 3, s.Score("Mark Epstein", Evidence{MentionCount: 1}))
}

func TestScoreDocumentFlags(t *testing.T) {
	s := newTestScorer()

	assert.Equal(t, 2, s.Score("Jane Doe", Evidence{MentionCount: 1, HasFlightLog: true}))
	assert.Equal(t, 1, s.Score("Jane Doe", Evidence{MentionCount: 1, HasLegal: true}))
	assert.Equal(t, 3, s.Score("Jane Doe", Evidence{MentionCount: 1, HasFlightLog: true, HasLegal: true}))
}

func TestScoreMentionThresholds(t *testing.T) {
	s := newTestScorer()

	assert.Equal(t, 0, s.Score("Jane Doe", Evidence{MentionCount: 9}))
	assert.Equal(t, 1, s.Score("Jane Doe", Evidence{MentionCount: 10}))
	assert.Equal(t, 1, s.Score("Jane Doe", Evidence{MentionCount: 49}))
	assert.Equal(t, 2, s.Score("Jane Doe", Evidence{MentionCount: 50}))
}

func TestScoreBounds(t *testing.T) {
	s := newTestScorer()

	for _, evidence := range []Evidence{
		{},
		{MentionCount: 1000, HasFlightLog: true, HasLegal: true},
	} {
		for _, name := range []string{"Jeffrey Epstein", "Jane Doe", "Nobody"} {
			score := s.Score(name, evidence)
			assert.GreaterOrEqual(t, score, MinRating)
			assert.LessOrEqual(t, score, MaxRating)
		}
	}
}

func TestMergeRatingMonotonic(t *testing.T) {
	assert.Equal(t, 4, MergeRating(4, 2))
	assert.Equal(t, 4, MergeRating(2, 4))
	assert.Equal(t, 3, MergeRating(3, 3))
}
