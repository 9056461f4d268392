package metadata

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

/*
Extra 用于扩展信息，或者保存多态的信息，通过JSON格式。不直接单独作为一个数据库对象，类似gorm.Model。

	ExtraType 标记JSON的schema；
	ExtraJSON 额外信息的JSON主体；
*/
type Extra struct {
	ExtraType sql.NullString `gorm:"type:varchar(16)"`
	ExtraJSON sql.NullString `gorm:"type:text"`
}

//////////////////////////////// 语料，由外部摄取系统写入，本流水线只读 ////////////////////////////////////

/*
Document 记录了一篇已抽取为纯文本的文档。

	Title 文档标题；
	Content 文档正文（OCR/PDF 抽取后的纯文本）；
	Category 文档类别，见 DocCategory* 常量，影响实体的风险评分；

本表由外部摄取系统负责写入，本流水线对其只读。
*/
type Document struct {
	gorm.Model
	Extra
	Title    string `gorm:"type:varchar(256)"`
	Content  string `gorm:"type:text"`
	Category string `gorm:"type:varchar(16);index:idx_documents_category"`
}

//////////////////////////////// 实体图谱，本流水线独占写入 ////////////////////////////////////

/*
Entity 记录了一个规范实体。

	Name 规范名，全表唯一，是 upsert 的 key；
	Type 实体类型，见 EntityType* 常量；
	Role 实体角色的自由文本标签；
	Description 实体描述，取历次出现中最长的上下文片段；
	RiskRating 风险评分，[0,5] 区间整数，合并时取 MAX，单调不减；
	MentionCount 累计提及次数；
*/
type Entity struct {
	gorm.Model
	Extra
	Name         string `gorm:"type:varchar(64) not null;uniqueIndex:idx_entities_name"`
	Type         string `gorm:"type:varchar(16)"`
	Role         string `gorm:"type:varchar(128)"`
	Description  string `gorm:"type:text"`
	RiskRating   int
	MentionCount int
}

/*
Relationship 记录了两个实体之间的一条共现边。

	SourceID、TargetID 边两端的实体；
	Type 关系类型，见 RelationTypeCoOccurrence；
	Weight 边权重；
	Confidence 置信度；
	DocumentID 证据文档；

(SourceID, TargetID, DocumentID) 全表唯一，重复插入是 no-op 而非错误。
*/
type Relationship struct {
	gorm.Model
	Extra
	SourceID   uint   `gorm:"not null;uniqueIndex:idx_relationships_src_tgt_doc"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_relationships_src_tgt_doc"`
	Type       string `gorm:"type:varchar(32)"`
	Weight     float64
	Confidence float64
	DocumentID uint `gorm:"not null;uniqueIndex:idx_relationships_src_tgt_doc"`
}

/*
Run 记录了一次流水线运行的元信息与汇总报告。

	RunID 运行的唯一标识（uuid）；
	RiskHistogramJSON 风险评分直方图，JSON 数组，下标为评分；
*/
type Run struct {
	gorm.Model
	Extra
	RunID             string `gorm:"type:varchar(40) not null;uniqueIndex:idx_runs_run_id"`
	Documents         int
	Skipped           int
	Mentions          int
	Entities          int
	Relationships     int
	Unresolved        int
	RiskHistogramJSON string `gorm:"type:text"`
	StartedAt         time.Time
	FinishedAt        time.Time
}
