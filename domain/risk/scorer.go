package risk

import (
	"strings"

	"entitygraph-pipeline/domain/resolve"
)

const (
	MinRating = 0
	MaxRating = 5
)

/*
Evidence 一个实体在本次运行中累积的证据信号。

	MentionCount 累计提及次数；
	HasFlightLog 是否有飞行日志类证据文档；
	HasLegal 是否有法律文书类证据文档；
*/
type Evidence struct {
	MentionCount int
	HasFlightLog bool
	HasLegal     bool
}

/*
Scorer 风险评分器。对每个实体按累积信号做加法评分并截断到 [0,5]：

	+5 规范名在精选高风险身份集合中；
	+3 规范名包含核心高风险姓氏 token；
	+2 任一证据文档为飞行日志类；
	+1 任一证据文档为法律文书类；
	+1 累计提及 ≥ 10，再 +1 累计提及 ≥ 50。

每次遇到实体都重新计算，与既有评分做 MAX 合并，单调不减。
*/
type Scorer struct {
	highRisk    map[string]struct{}
	coreSurname string
}

/*
NewScorer 从规范身份目录构建评分器：category 为 high_risk 的规则
进入精选集合，核心姓氏 token 取目录的 core_surname 字段。
*/
func NewScorer(catalog *resolve.CanonicalCatalog) *Scorer {
	ret := &Scorer{
		highRisk:    make(map[string]struct{}),
		coreSurname: strings.ToLower(catalog.CoreSurname),
	}

	for _, rule := range catalog.Rules {
		if rule.Category == resolve.CategoryHighRisk {
			ret.highRisk[rule.Canonical] = struct{}{}
		}
	}

	return ret
}

func (s *Scorer) Score(canonical string, evidence Evidence) int {
	score := 0

	if _, hit := s.highRisk[canonical]; hit {
		score += 5
	}

	if len(s.coreSurname) != 0 && strings.Contains(strings.ToLower(canonical), s.coreSurname) {
		score += 3
	}

	if evidence.HasFlightLog {
		score += 2
	}

	if evidence.HasLegal {
		score += 1
	}

	if evidence.MentionCount >= 10 {
		score += 1
	}
	if evidence.MentionCount >= 50 {
		score += 1
	}

	return Clamp(score)
}

func Clamp(score int) int {
	if score < MinRating {
		return MinRating
	}
	if score > MaxRating {
		return MaxRating
	}
	return score
}

/*
MergeRating 评分合并策略：取 MAX，保证评分跨运行单调不减。
*/
func MergeRating(old, next int) int {
	if next > old {
		return next
	}
	return old
}
