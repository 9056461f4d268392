package resolve

import (
	"strings"
)

/*
Resolution 一次规范身份解析的结果。

	Canonical 规范名。未命中任何规则时为候选名自身（独立实体）；
	Rule 命中的规则，独立实体为 nil；
	Confidence 置信度。目录直接命中为 1.0，歧义名按关键词评分映射；
*/
type Resolution struct {
	Canonical  string
	Rule       *CanonicalRule
	Confidence float64
}

/*
Resolver 规范身份解析器。持有按优先级排好序的规则表和歧义名消解器。

对歧义目录中的名字先走上下文消解（数据流 4→5），其余名字按规则表线性扫描：
每条规则先查别名集合的精确成员，再按序试正则模式，第一条命中的规则胜出，
没有打分。全部未命中的名字以其规范化形式保留为新建的独立实体。
*/
type Resolver struct {
	rules         []*CanonicalRule
	byCanonical   map[string]*CanonicalRule
	disambiguator *Disambiguator
}

func NewResolver(catalog *CanonicalCatalog, contexts *ContextCatalog) *Resolver {
	ret := &Resolver{
		rules:         catalog.Rules,
		byCanonical:   make(map[string]*CanonicalRule, len(catalog.Rules)),
		disambiguator: NewDisambiguator(contexts),
	}

	for _, rule := range ret.rules {
		ret.byCanonical[rule.Canonical] = rule
	}

	return ret
}

/*
Resolve 解析一个规范化后的候选名。

歧义名消解失败时返回 ErrAmbiguous，调用方把该提及标记为未解析，
不做静默兜底。
*/
func (r *Resolver) Resolve(name, context string) (Resolution, error) {
	if r.disambiguator.Knows(name) {
		canonical, confidence, err := r.disambiguator.Disambiguate(name, context)
		if err != nil {
			return Resolution{}, err
		}

		return Resolution{
			Canonical:  canonical,
			Rule:       r.byCanonical[canonical],
			Confidence: confidence,
		}, nil
	}

	trimmed := strings.TrimSpace(name)

	for _, rule := range r.rules {
		if r.ruleMatches(rule, trimmed) {
			return Resolution{
				Canonical:  rule.Canonical,
				Rule:       rule,
				Confidence: 1.0,
			}, nil
		}
	}

	return Resolution{Canonical: trimmed, Confidence: 1.0}, nil
}

func (r *Resolver) ruleMatches(rule *CanonicalRule, name string) bool {
	// 别名精确匹配，不做大小写归一（见 CanonicalRule.Aliases 的说明）
	if rule.Canonical == name {
		return true
	}
	for _, alias := range rule.Aliases {
		if alias == name {
			return true
		}
	}

	for _, re := range rule.compiled {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

/*
RuleByCanonical 按规范名取规则，供风险评分读取目录元数据。
*/
func (r *Resolver) RuleByCanonical(canonical string) *CanonicalRule {
	return r.byCanonical[canonical]
}

func (r *Resolver) Rules() []*CanonicalRule {
	return r.rules
}
