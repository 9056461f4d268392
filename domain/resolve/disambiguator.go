package resolve

import (
	"errors"
	"strings"
)

// 歧义名无法消解且目录未配置兜底候选
var ErrAmbiguous = errors.New("ambiguous name unresolved")

// 命中负向关键词的候选直接出局
const disqualifiedScore = -1000

const (
	defaultConfidence = 0.5
	baseConfidence    = 0.8
	scoreConfidence   = 0.05
	maxConfidence     = 1.0
)

/*
Disambiguator 上下文消解器。只作用于歧义名目录中的名字：
对命中的名字逐个候选打分，正向关键词每在上下文中出现一个
（大小写不敏感的子串匹配）得 1 分，出现任一负向关键词则该候选记为
disqualifiedScore。取严格最高的正分候选；平局或无正分时回落到配置的
兜底候选（置信度 0.5），没有兜底则消解失败。

胜出候选的置信度为 min(0.8 + 0.05*score, 1.0)。
*/
type Disambiguator struct {
	byName map[string]*ContextRule
}

func NewDisambiguator(catalog *ContextCatalog) *Disambiguator {
	ret := &Disambiguator{byName: make(map[string]*ContextRule)}

	if catalog == nil {
		return ret
	}

	for i := range catalog.Rules {
		rule := &catalog.Rules[i]
		for _, name := range rule.Names {
			ret.byName[name] = rule
		}
	}

	return ret
}

func (d *Disambiguator) Knows(name string) bool {
	_, ok := d.byName[name]
	return ok
}

func (d *Disambiguator) Disambiguate(name, context string) (string, float64, error) {
	rule, ok := d.byName[name]
	if !ok {
		return "", 0, ErrAmbiguous
	}

	lowerContext := strings.ToLower(context)

	best := -1
	bestScore := disqualifiedScore
	tie := false

	for i := range rule.Candidates {
		score := scoreCandidate(&rule.Candidates[i], lowerContext)

		if score == bestScore {
			tie = true
			continue
		}
		if score > bestScore {
			bestScore = score
			best = i
			tie = false
		}
	}

	if best >= 0 && bestScore > 0 && !tie {
		confidence := baseConfidence + scoreConfidence*float64(bestScore)
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		return rule.Candidates[best].Canonical, confidence, nil
	}

	// 平局或无正分：回落到兜底候选
	for i := range rule.Candidates {
		if rule.Candidates[i].Default {
			return rule.Candidates[i].Canonical, defaultConfidence, nil
		}
	}

	return "", 0, ErrAmbiguous
}

func scoreCandidate(candidate *Candidate, lowerContext string) int {
	for _, negative := range candidate.Negative {
		if strings.Contains(lowerContext, strings.ToLower(negative)) {
			return disqualifiedScore
		}
	}

	score := 0
	for _, keyword := range candidate.Keywords {
		if strings.Contains(lowerContext, strings.ToLower(keyword)) {
			score++
		}
	}

	return score
}
