package extract

import (
	"regexp"
	"strings"

	"entitygraph-pipeline/repository/metadata"
)

var classifierLegalSuffix = regexp.MustCompile(`(?i)\b(?:` + legalSuffixAlt + `)\.?$`)

var classifierGeoSuffix = regexp.MustCompile(`, [A-Z]{2}$`)

// 上下文中出现则判定为人的称谓词
var titleWords = []string{
	"mr.", "mrs.", "ms.", "dr.", "prof.",
	"senator", "president", "governor", "judge", "attorney",
	"prince", "duke", "professor", "congressman",
}

var alphaTokenPattern = regexp.MustCompile(`^[A-Za-z.'\-]+$`)

/*
Classify 对规范化后的候选名做启发式类型判定，决策顺序固定，先命中者胜：

 1. 法律实体后缀 ⇒ organization；
 2. 地理后缀或 gazetteer 成员 ⇒ location；
 3. 上下文窗口内出现称谓词 ⇒ person；
 4. 2~4 个纯字母 token 且无意外标点 ⇒ person；
 5. 其余 ⇒ unknown。

unknown 会保留而非丢弃，后续证据（如名册成员身份）可以将其升级。
*/
func Classify(name, context string) string {
	if classifierLegalSuffix.MatchString(name) {
		return metadata.EntityTypeOrganization
	}

	if classifierGeoSuffix.MatchString(name) || inGazetteer(name) {
		return metadata.EntityTypeLocation
	}

	lowerContext := strings.ToLower(context)
	for _, title := range titleWords {
		if strings.Contains(lowerContext, title) {
			return metadata.EntityTypePerson
		}
	}

	tokens := strings.Fields(name)
	if len(tokens) >= 2 && len(tokens) <= 4 {
		clean := true
		for _, token := range tokens {
			if !alphaTokenPattern.MatchString(token) {
				clean = false
				break
			}
		}
		if clean {
			return metadata.EntityTypePerson
		}
	}

	return metadata.EntityTypeUnknown
}

func inGazetteer(name string) bool {
	for _, place := range gazetteer {
		if strings.EqualFold(place, name) {
			return true
		}
	}
	return false
}
