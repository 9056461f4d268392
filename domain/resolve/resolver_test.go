package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	canonical, err := LoadCanonicalCatalog("testdata/canonical.yaml")
	require.Nil(t, err)

	contexts, err := LoadContextCatalog("testdata/context.yaml")
	require.Nil(t, err)

	return NewResolver(canonical, contexts)
}

func TestResolveAlias(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve("Jeff Epstein", "")
	require.Nil(t, err)
	assert.Equal(t, "Jeffrey Epstein", res.Canonical)
	require.NotNil(t, res.Rule)
	assert.Equal(t, CategoryHighRisk, res.Rule.Category)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestResolvePatternCaseInsensitive(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve("Jeffrey  epstein", "")
	require.Nil(t, err)
	assert.Equal(t, "Jeffrey Epstein", res.Canonical)
}

func TestResolveAliasIsCaseSensitive(t *testing.T) {
	r := newTestResolver(t)

	// 别名比较不做大小写归一：大小写变体落到正则兜底，
	// 没有模式可兜底的串保留为独立实体
	res, err := r.Resolve("JEFF EPSTEIN", "")
	require.Nil(t, err)
	assert.Equal(t, "Jeffrey Epstein", res.Canonical, "正则兜底是大小写不敏感的")

	res, err = r.Resolve("jE", "")
	require.Nil(t, err)
	assert.Nil(t, res.Rule)
}

func TestResolvePriorityOverCatalogOrder(t *testing.T) {
	r := newTestResolver(t)

	// "Trump Organization" 同时被组织规则（priority 10）和
	// 人物规则的宽松模式 \btrump\b（priority 20）覆盖，优先级决定归属
	res, err := r.Resolve("Trump Organization", "")
	require.Nil(t, err)
	assert.Equal(t, "Trump Organization", res.Canonical)
	require.NotNil(t, res.Rule)
	assert.Equal(t, "organization", res.Rule.Type)

	res, err = r.Resolve("Donald J. Trump", "")
	require.Nil(t, err)
	assert.Equal(t, "Donald Trump", res.Canonical)
}

func TestResolveUnknownNameStandsAlone(t *testing.T) {
	r := newTestResolver(t)

	res, err := r.Resolve("Jane Doe", "")
	require.Nil(t, err)
	assert.Equal(t, "Jane Doe", res.Canonical)
	assert.Nil(t, res.Rule)
}

func TestResolveDeterminism(t *testing.T) {
	r := newTestResolver(t)

	first, err := r.Resolve("Jeff Epstein", "some context")
	require.Nil(t, err)
	second, err := r.Resolve("Jeff Epstein", "entirely different context")
	require.Nil(t, err)

	assert.Equal(t, first.Canonical, second.Canonical)
}

func TestSortRulesTieBreak(t *testing.T) {
	rules := []*CanonicalRule{
		{Canonical: "Bbb", Priority: 10},
		{Canonical: "Aaa", Priority: 10},
		{Canonical: "Ccc", Priority: 10, Aliases: []string{"x", "y"}},
		{Canonical: "Ddd", Priority: 5},
	}

	sortRules(rules)

	assert.Equal(t, "Ddd", rules[0].Canonical)
	assert.Equal(t, "Ccc", rules[1].Canonical, "更具体的规则在前")
	assert.Equal(t, "Aaa", rules[2].Canonical)
	assert.Equal(t, "Bbb", rules[3].Canonical)
}
