package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisambiguator(t *testing.T) *Disambiguator {
	contexts, err := LoadContextCatalog("testdata/context.yaml")
	require.Nil(t, err)
	return NewDisambiguator(contexts)
}

func TestDisambiguatePilot(t *testing.T) {
	d := newTestDisambiguator(t)

	canonical, confidence, err := d.Disambiguate("Bill Riley",
		"the pilot logged the Gulfstream departure at dawn")
	require.Nil(t, err)
	assert.Equal(t, "William Kyle Riley", canonical)
	assert.GreaterOrEqual(t, confidence, 0.85)
}

func TestDisambiguateInvestigator(t *testing.T) {
	d := newTestDisambiguator(t)

	canonical, _, err := d.Disambiguate("Bill Riley",
		"the private investigator was served a subpoena")
	require.Nil(t, err)
	assert.Equal(t, "William H. Riley", canonical)
}

func TestDisambiguateNegativeKeywordDisqualifies(t *testing.T) {
	d := newTestDisambiguator(t)

	// "investigator" 让飞行员候选出局，"surveillance" 给侦探候选加分
	canonical, _, err := d.Disambiguate("Bill Riley",
		"the investigator ran surveillance on the estate")
	require.Nil(t, err)
	assert.Equal(t, "William H. Riley", canonical)
}

func TestDisambiguateNoSignalNoDefault(t *testing.T) {
	d := newTestDisambiguator(t)

	_, _, err := d.Disambiguate("Bill Riley", "nothing relevant in this window")
	assert.ErrorIs(t, err, ErrAmbiguous)
}

func TestDisambiguateDefaultFallback(t *testing.T) {
	d := newTestDisambiguator(t)

	canonical, confidence, err := d.Disambiguate("John Alexander", "no signal at all")
	require.Nil(t, err)
	assert.Equal(t, "John Alexander Jr", canonical)
	assert.Equal(t, 0.5, confidence)
}

func TestDisambiguateConfidenceCeiling(t *testing.T) {
	d := newTestDisambiguator(t)

	// 四个关键词全部命中：0.8 + 0.05*4 = 1.0
	_, confidence, err := d.Disambiguate("Bill Riley",
		"pilot on a gulfstream, an aviation flight record")
	require.Nil(t, err)
	assert.Equal(t, 1.0, confidence)
}

func TestDisambiguateUnknownName(t *testing.T) {
	d := newTestDisambiguator(t)

	assert.False(t, d.Knows("Nobody Special"))
	_, _, err := d.Disambiguate("Nobody Special", "context")
	assert.ErrorIs(t, err, ErrAmbiguous)
}
