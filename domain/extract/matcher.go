package extract

import (
	"regexp"

	"entitygraph-pipeline/repository/metadata"
)

/*
Matcher 是一族命名模式。Extractor 按固定顺序依次应用所有 Matcher，
每个匹配产出一个候选提及。各族模式可以独立测试、增删和重排。
*/
type Matcher interface {
	// Name 模式族的名字，用于日志
	Name() string
	// TypeHint 此模式族产出的候选的类型提示
	TypeHint() string
	// Find 返回 text 中所有匹配的 [begin, end) 字节区间
	Find(text string) [][]int
}

type regexMatcher struct {
	name     string
	typeHint string
	re       *regexp.Regexp
}

func (m *regexMatcher) Name() string     { return m.name }
func (m *regexMatcher) TypeHint() string { return m.typeHint }

func (m *regexMatcher) Find(text string) [][]int {
	return m.re.FindAllStringIndex(text, -1)
}

// 法律实体后缀，组织模式和分类器共用
const legalSuffixAlt = `Inc|LLC|Corp|Corporation|Company|Ltd|Foundation|Trust|Group|Holdings|Institute|Associates|Partners|Bank|Enterprises`

var (
	// 2~4 个连续首字母大写 token，可带缩写中间名
	personPattern = regexp.MustCompile(
		`\b[A-Z][a-z]+(?: [A-Z]\.)?(?: [A-Z][a-z]+){1,3}\b`)

	organizationPattern = regexp.MustCompile(
		`\b(?:[A-Z][A-Za-z&'\-]+ ){1,4}(?:` + legalSuffixAlt + `)\b\.?`)

	theOrgPattern = regexp.MustCompile(
		`\bThe [A-Z][a-z]+ [A-Z][a-z]+\b`)

	// "Capitalized, XX" 形式的城市
	cityStatePattern = regexp.MustCompile(
		`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?, [A-Z]{2}\b`)

	emailPattern = regexp.MustCompile(
		`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

	phonePattern = regexp.MustCompile(
		`\(?\d{3}\)?[-. ]\d{3}[-. ]?\d{4}\b`)
)

// 已知地名的小型 gazetteer
var gazetteer = []string{
	"New York",
	"Palm Beach",
	"New Mexico",
	"Santa Fe",
	"Virgin Islands",
	"Little St. James",
	"Manhattan",
	"Florida",
	"Miami",
	"Paris",
	"London",
	"Washington",
}

type gazetteerMatcher struct {
	res []*regexp.Regexp
}

func newGazetteerMatcher(places []string) *gazetteerMatcher {
	ret := &gazetteerMatcher{}
	for _, place := range places {
		ret.res = append(ret.res, regexp.MustCompile(`\b`+regexp.QuoteMeta(place)+`\b`))
	}
	return ret
}

func (m *gazetteerMatcher) Name() string     { return "gazetteer" }
func (m *gazetteerMatcher) TypeHint() string { return metadata.EntityTypeLocation }

func (m *gazetteerMatcher) Find(text string) [][]int {
	var ret [][]int
	for _, re := range m.res {
		ret = append(ret, re.FindAllStringIndex(text, -1)...)
	}
	return ret
}

/*
DefaultMatchers 返回固定顺序的全部模式族：人名、组织、地点、邮箱、电话。
顺序即应用顺序。
*/
func DefaultMatchers() []Matcher {
	return []Matcher{
		&regexMatcher{name: "person", typeHint: metadata.EntityTypePerson, re: personPattern},
		&regexMatcher{name: "organization-suffix", typeHint: metadata.EntityTypeOrganization, re: organizationPattern},
		&regexMatcher{name: "organization-the", typeHint: metadata.EntityTypeOrganization, re: theOrgPattern},
		newGazetteerMatcher(gazetteer),
		&regexMatcher{name: "city-state", typeHint: metadata.EntityTypeLocation, re: cityStatePattern},
		&regexMatcher{name: "email", typeHint: TypeHintEmail, re: emailPattern},
		&regexMatcher{name: "phone", typeHint: TypeHintPhone, re: phonePattern},
	}
}
