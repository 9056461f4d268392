package extract

import (
	"strings"
	"unicode"
)

/*
噪声过滤的阈值。这些是精确契约而非可调默认值，改动会破坏重复运行的可复现性。
*/
const (
	minNameLen     = 3
	maxNameLen     = 60
	maxDigits      = 3
	maxAllUpperLen = 4
)

// 常见虚词、称谓、月份、星期以及文档版式 token 的停用表
var stoplist = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "for", "with", "from", "this", "that", "not", "are", "was",
		"were", "been", "have", "has", "had", "will", "would", "could", "should",
		"mr", "mrs", "ms", "dr", "prof", "jr", "sr", "esq",
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"page", "exhibit", "deposition", "confidential", "redacted", "subject",
		"case", "document", "court", "dated", "date", "time", "total",
	}
	for _, w := range words {
		stoplist[w] = struct{}{}
	}
}

/*
Clean 对一个候选名做规范化与垃圾过滤。

规范化：折叠空白、去首尾空白、每个 token 首字母大写；
长度不超过 maxAllUpperLen 的全大写 token（州缩写、机构缩写）保留原样，
与下面的全大写豁免一致，分类器的地理后缀判定依赖它。
以下任一条件成立时候选被拒绝（丢弃，不落库）：
  - 长度 < 3 或 > 60；
  - 命中停用表；
  - 数字字符超过 3 个；
  - 全大写且长度 > 4（OCR/页眉残留的启发式）。

全大写检查作用于规范化大小写之前的原始串。
*/
func Clean(raw string) (string, bool) {
	collapsed := strings.Join(strings.Fields(raw), " ")

	if len(collapsed) < minNameLen || len(collapsed) > maxNameLen {
		return "", false
	}

	if _, hit := stoplist[strings.ToLower(collapsed)]; hit {
		return "", false
	}

	digits := 0
	letters := 0
	lowers := 0
	for _, ch := range collapsed {
		switch {
		case unicode.IsDigit(ch):
			digits++
		case unicode.IsLetter(ch):
			letters++
			if unicode.IsLower(ch) {
				lowers++
			}
		}
	}

	if digits > maxDigits {
		return "", false
	}

	if letters > 0 && lowers == 0 && len(collapsed) > maxAllUpperLen {
		return "", false
	}

	return titleCase(collapsed), true
}

func titleCase(s string) string {
	tokens := strings.Fields(s)
	for i, token := range tokens {
		if isShortAllUpper(token) {
			continue
		}
		runes := []rune(strings.ToLower(token))
		runes[0] = unicode.ToUpper(runes[0])
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}

func isShortAllUpper(token string) bool {
	if len(token) > maxAllUpperLen {
		return false
	}

	uppers := 0
	for _, ch := range token {
		if unicode.IsLower(ch) {
			return false
		}
		if unicode.IsUpper(ch) {
			uppers++
		}
	}
	return uppers > 0
}
