package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namesOf(n int) []string {
	ret := make([]string, n)
	for i := range ret {
		ret[i] = fmt.Sprintf("Entity %03d", i)
	}
	return ret
}

func TestCoOccurrenceCardinality(t *testing.T) {
	for _, n := range []int{2, 3, 10, 20} {
		edges := CoOccurrence(1, namesOf(n))
		assert.Len(t, edges, n*(n-1)/2, "n=%d", n)
	}
}

func TestCoOccurrenceGuards(t *testing.T) {
	// 实体太少或太多的文档整篇跳过
	assert.Empty(t, CoOccurrence(1, namesOf(0)))
	assert.Empty(t, CoOccurrence(1, namesOf(1)))
	assert.Empty(t, CoOccurrence(1, namesOf(51)))

	// 上限边界仍然生成
	assert.NotEmpty(t, CoOccurrence(1, namesOf(50)))
}

func TestCoOccurrenceTruncation(t *testing.T) {
	// 超过 20 个实体时只取前 20 个，至多 190 条边
	edges := CoOccurrence(1, namesOf(30))
	assert.Len(t, edges, 190)

	for _, edge := range edges {
		assert.NotContains(t, []string{"Entity 020", "Entity 029"}, edge.Source)
		assert.NotContains(t, []string{"Entity 020", "Entity 029"}, edge.Target)
	}
}

func TestCoOccurrenceUndirected(t *testing.T) {
	edges := CoOccurrence(7, []string{"Zeta", "Alpha"})

	assert.Len(t, edges, 1)
	assert.Equal(t, Edge{Source: "Alpha", Target: "Zeta", DocumentID: 7}, edges[0])

	// 相同文档对调顺序产出同一条边
	reversed := CoOccurrence(7, []string{"Alpha", "Zeta"})
	assert.Equal(t, edges, reversed)
}
