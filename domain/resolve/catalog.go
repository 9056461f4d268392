package resolve

import (
	"regexp"
	"sort"

	"entitygraph-pipeline/config"
	"entitygraph-pipeline/utils"
)

/*
CanonicalRule 规范身份目录中的一条规则。配置数据，加载一次，运行期不可变。

	Canonical 规范名；
	Type 实体类型；
	Priority 显式优先级，越小越先匹配。两条规则的模式可能命中同一子串
	（如人的姓氏出现在无关组织名里）时，优先级决定归属，而不是目录里的书写顺序；
	Aliases 别名集合，做精确串匹配。注意：别名比较只做 trim、不做大小写归一，
	而下面的正则模式是大小写不敏感的，这个不一致是目录语义的一部分，
	上游规范化会把候选名 title-case，所以目录中的别名按 title-case 书写；
	Patterns 备选的正则模式，大小写不敏感，按书写顺序尝试；
	Category、RiskLevel、Birth、Death、Notes 风险与档案元数据；
*/
type CanonicalRule struct {
	Canonical string   `yaml:"canonical"`
	Type      string   `yaml:"type"`
	Priority  int      `yaml:"priority"`
	Aliases   []string `yaml:"aliases"`
	Patterns  []string `yaml:"patterns"`
	Category  string   `yaml:"category"`
	RiskLevel int      `yaml:"risk_level"`
	Birth     string   `yaml:"birth"`
	Death     string   `yaml:"death"`
	Notes     string   `yaml:"notes"`

	compiled []*regexp.Regexp
}

const CategoryHighRisk = "high_risk"

/*
CanonicalCatalog 规范身份目录。

	CoreSurname 核心高风险姓氏 token，风险评分使用；
*/
type CanonicalCatalog struct {
	CoreSurname string           `yaml:"core_surname"`
	Rules       []*CanonicalRule `yaml:"rules"`
}

/*
Candidate 歧义名的一个候选身份。

	Keywords 正向关键词，每命中一个上下文得 1 分；
	Negative 负向关键词，命中任意一个则该候选直接出局；
	Default 平局或无正分时的兜底候选；
*/
type Candidate struct {
	Canonical string   `yaml:"canonical"`
	Keywords  []string `yaml:"keywords"`
	Negative  []string `yaml:"negative"`
	Default   bool     `yaml:"default"`
}

/*
ContextRule 一组歧义名变体到 2 个以上候选身份的映射。
*/
type ContextRule struct {
	Names      []string    `yaml:"names"`
	Candidates []Candidate `yaml:"candidates"`
}

type ContextCatalog struct {
	Rules []ContextRule `yaml:"rules"`
}

/*
LoadCanonicalCatalog 从 yaml 文件加载规范身份目录并编译全部模式。
模式统一加 (?i) 前缀编译，别名保持原样。
*/
func LoadCanonicalCatalog(path string) (*CanonicalCatalog, error) {
	var catalog CanonicalCatalog
	if err := config.LoadYAML(path, &catalog); err != nil {
		return nil, utils.WrapError(err, "load canonical catalog fail")
	}

	if err := compileCatalog(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}

func compileCatalog(catalog *CanonicalCatalog) error {
	for _, rule := range catalog.Rules {
		for _, pattern := range rule.Patterns {
			re, err := regexp.Compile(`(?i)` + pattern)
			if err != nil {
				return utils.WrapErrorf(err, "compile pattern [%s] of rule [%s] fail", pattern, rule.Canonical)
			}
			rule.compiled = append(rule.compiled, re)
		}
	}

	sortRules(catalog.Rules)
	return nil
}

/*
sortRules 按显式 Priority 升序排列规则。并列时别名加模式更多（更具体）的在前，
再并列按规范名排序，保证解析顺序与目录文件的书写顺序无关。
*/
func sortRules(rules []*CanonicalRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}

		si := len(rules[i].Aliases) + len(rules[i].Patterns)
		sj := len(rules[j].Aliases) + len(rules[j].Patterns)
		if si != sj {
			return si > sj
		}

		return rules[i].Canonical < rules[j].Canonical
	})
}

func LoadContextCatalog(path string) (*ContextCatalog, error) {
	var catalog ContextCatalog
	if err := config.LoadYAML(path, &catalog); err != nil {
		return nil, utils.WrapError(err, "load context catalog fail")
	}
	return &catalog, nil
}
