package graph

// 共现边生成的复杂度阈值
const (
	// 文档内不同实体数的下限与上限，超出则整篇跳过：
	// 低于下限的近空文档与高于上限的附录/索引类文档都只会产生噪声
	MinDocEntities = 2
	MaxDocEntities = 50

	// 取前多少个实体参与两两配对，上限 190 条边每篇
	MaxPairEntities = 20

	EdgeWeight     = 1.0
	EdgeConfidence = 0.6
)

/*
Edge 一条待落库的共现边。Source/Target 为规范名，按字典序排列，
同一文档内 X-Y 与 Y-X 归并为同一条边。
*/
type Edge struct {
	Source     string
	Target     string
	DocumentID uint
}

/*
CoOccurrence 为一篇文档生成共现边。names 是文档中已解析出的不同规范名，
按首次出现顺序排列：

	实体数 < MinDocEntities 或 > MaxDocEntities 时整篇跳过；
	截断到前 MaxPairEntities 个后做两两配对。
*/
func CoOccurrence(docID uint, names []string) []Edge {
	if len(names) < MinDocEntities || len(names) > MaxDocEntities {
		return nil
	}

	if len(names) > MaxPairEntities {
		names = names[:MaxPairEntities]
	}

	ret := make([]Edge, 0, len(names)*(len(names)-1)/2)
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			source, target := names[i], names[j]
			if target < source {
				source, target = target, source
			}
			ret = append(ret, Edge{
				Source:     source,
				Target:     target,
				DocumentID: docID,
			})
		}
	}

	return ret
}
