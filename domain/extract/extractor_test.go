package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"entitygraph-pipeline/repository/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawsOfType(mentions []Mention, typeHint string) []string {
	ret := make([]string, 0)
	for _, m := range mentions {
		if m.TypeHint == typeHint {
			ret = append(ret, m.Raw)
		}
	}
	return ret
}

func TestExtractPersonNames(t *testing.T) {
	e := NewExtractor()

	mentions := e.Extract("On that day John Smith met with Ghislaine Noelle Maxwell at the hotel.")
	persons := rawsOfType(mentions, metadata.EntityTypePerson)

	assert.Contains(t, persons, "John Smith")
	assert.Contains(t, persons, "Ghislaine Noelle Maxwell")
}

func TestExtractPersonWithMiddleInitial(t *testing.T) {
	e := NewExtractor()

	mentions := e.Extract("witness William H. Riley testified")
	persons := rawsOfType(mentions, metadata.EntityTypePerson)

	assert.Contains(t, persons, "William H. Riley")
}

func TestExtractOrganizations(t *testing.T) {
	e := NewExtractor()

	mentions := e.Extract("funds moved through Southern Trust and later The Wexner Foundation")
	orgs := rawsOfType(mentions, metadata.EntityTypeOrganization)

	assert.Contains(t, orgs, "Southern Trust")
	assert.Contains(t, orgs, "The Wexner Foundation")
}

func TestExtractLocations(t *testing.T) {
	e := NewExtractor()

	mentions := e.Extract("the flight departed Palm Beach heading for Teterboro, NJ that evening")
	locations := rawsOfType(mentions, metadata.EntityTypeLocation)

	assert.Contains(t, locations, "Palm Beach")
	assert.Contains(t, locations, "Teterboro, NJ")
}

func TestExtractEmailAndPhone(t *testing.T) {
	e := NewExtractor()

	mentions := e.Extract("reach the office at jane.doe@example.com or (212) 555-0187")

	assert.Equal(t, []string{"jane.doe@example.com"}, rawsOfType(mentions, TypeHintEmail))
	require.Len(t, rawsOfType(mentions, TypeHintPhone), 1)
}

func TestExtractContextWindow(t *testing.T) {
	e := NewExtractor()

	pad := strings.Repeat("x ", 60)
	text := pad + "John Smith" + " the pilot flew the plane that evening as scheduled"
	mentions := e.Extract(text)
	persons := make([]Mention, 0)
	for _, m := range mentions {
		if m.Raw == "John Smith" {
			persons = append(persons, m)
		}
	}
	require.NotEmpty(t, persons)

	m := persons[0]
	assert.Contains(t, m.Context, "pilot")
	assert.LessOrEqual(t, len(m.Context), len("John Smith")+2*ContextRadius)
	assert.Equal(t, len(pad), m.Offset)
}

func TestExtractContextWindowKeepsValidUTF8(t *testing.T) {
	e := NewExtractor()

	// 提及前后填充多字节字符，让窗口两端都落在 rune 中间
	text := strings.Repeat("é", 35) + " John Smith flew " + strings.Repeat("日", 40)
	mentions := e.Extract(text)

	found := false
	for _, m := range mentions {
		if m.Raw == "John Smith" {
			found = true
			assert.True(t, utf8.ValidString(m.Context))
			assert.Contains(t, m.Context, "John Smith")
		}
	}
	require.True(t, found)
}

func TestExtractIsPureFunction(t *testing.T) {
	e := NewExtractor()
	text := "John Smith flew from Palm Beach with Southern Trust Inc staff"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}
