package graph

import (
	"entitygraph-pipeline/repository/metadata"
)

/*
EntityAccum 一个规范实体在运行过程中的内存聚合。按规范名为 key
收进 Aggregate，写库前先在内存完成全部归并，合并策略与落库时的
upsert 策略一致，可以脱离存储单独测试。
*/
type EntityAccum struct {
	Name         string
	Type         string
	Role         string
	Description  string
	RiskRating   int
	MentionCount int

	// 证据文档信号
	HasFlightLog bool
	HasLegal     bool
}

// Aggregate 规范名 -> 聚合，一次运行的全局内存聚合
type Aggregate map[string]*EntityAccum

/*
MergeAccum 把 src 并入 dst，coalesce-or-max 策略：

	Type、Role 取既有的非空值（unknown 视同空，让后续证据可以升级类型）；
	Description 取二者中较长的；
	RiskRating 取 MAX，单调不减；
	MentionCount 相加；
	证据信号取并集；
*/
func MergeAccum(dst, src *EntityAccum) {
	dst.Type = coalesceType(dst.Type, src.Type)
	dst.Role = coalesce(dst.Role, src.Role)

	if len(src.Description) > len(dst.Description) {
		dst.Description = src.Description
	}

	if src.RiskRating > dst.RiskRating {
		dst.RiskRating = src.RiskRating
	}

	dst.MentionCount += src.MentionCount
	dst.HasFlightLog = dst.HasFlightLog || src.HasFlightLog
	dst.HasLegal = dst.HasLegal || src.HasLegal
}

func coalesce(existing, next string) string {
	if len(existing) != 0 {
		return existing
	}
	return next
}

func coalesceType(existing, next string) string {
	if len(existing) != 0 && existing != metadata.EntityTypeUnknown {
		return existing
	}
	if len(next) != 0 {
		return next
	}
	return existing
}

/*
Add 把一个实体观察并入聚合。

归并次序影响 Type/Role 的 coalesce 结果，调用方必须按确定的顺序
（worker 的提交序，而非完成序）合并各 worker 的部分聚合，
保证同一语料重复运行产出一致。
*/
func (a Aggregate) Add(accum *EntityAccum) {
	existing, ok := a[accum.Name]
	if !ok {
		cp := *accum
		a[accum.Name] = &cp
		return
	}

	MergeAccum(existing, accum)
}

// Merge 把另一个部分聚合整体并入（map-reduce 的 combine 步骤）
func (a Aggregate) Merge(other Aggregate) {
	for _, accum := range other {
		a.Add(accum)
	}
}
