package extract

import "unicode/utf8"

// 邮箱和电话不会成为实体，只作为联系信息的类型提示
const (
	TypeHintEmail = "email"
	TypeHintPhone = "phone"
)

// 提及上下文窗口的半径（字节）
const ContextRadius = 50

/*
Mention 一次文档内的候选提及。本流水线的中间数据，随运行消费，不落库。

	Raw 原始表面字符串；
	TypeHint 产出它的模式族给出的类型提示；
	Context 提及前后各 ContextRadius 字节的上下文窗口；
	Offset 提及在文档中的字节偏移；
*/
type Mention struct {
	Raw      string
	TypeHint string
	Context  string
	Offset   int
}

/*
Extractor 对单篇文档做基于模式的提及抽取。
没有共享可变状态，对 (docID, text) 是纯函数，可以按文档并行。
*/
type Extractor struct {
	matchers []Matcher
}

func NewExtractor() *Extractor {
	return &Extractor{matchers: DefaultMatchers()}
}

func NewExtractorWithMatchers(matchers []Matcher) *Extractor {
	return &Extractor{matchers: matchers}
}

/*
Extract 按固定顺序应用全部模式族，返回文档中的候选提及多重集合。
同一个片段可能被多个模式族命中，去重交给下游的归并。
*/
func (e *Extractor) Extract(text string) []Mention {
	var ret []Mention

	for _, matcher := range e.matchers {
		for _, span := range matcher.Find(text) {
			ret = append(ret, Mention{
				Raw:      text[span[0]:span[1]],
				TypeHint: matcher.TypeHint(),
				Context:  contextWindow(text, span[0], span[1]),
				Offset:   span[0],
			})
		}
	}

	return ret
}

// contextWindow 截取提及前后各 ContextRadius 字节，
// 边界对齐到 rune 起点，不会把多字节字符截成无效 UTF-8
func contextWindow(text string, begin, end int) string {
	lo := begin - ContextRadius
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}

	hi := end + ContextRadius
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}

	return text[lo:hi]
}
