package graph

import (
	"context"
	"errors"
	"sort"
	"time"

	"entitygraph-pipeline/repository/metadata"
	"entitygraph-pipeline/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
LoadResult 一次批量落库的统计。

	EntitiesCreated、EntitiesUpdated 新建/归并的实体数；
	RelationshipsCreated 实际插入的边数，重复 (source, target, document) 是 no-op；
*/
type LoadResult struct {
	EntitiesCreated      int
	EntitiesUpdated      int
	RelationshipsCreated int
	FinishTime           time.Time
}

/*
load 批量落库。全部实体 upsert 加全部边插入在同一个事务内执行，
中途失败整体回滚，库里不会留下半次运行的结果。upsert 的
coalesce/MAX 策略在并发读改写下不安全，因此目标库同一时刻只允许
一个流水线运行持有写权限（单写者纪律）。

事务提交之后重建全文索引：索引不在事务内增量维护。
*/
func load(setting *Setting, ctx context.Context, aggregate Aggregate, edges []Edge, run *metadata.Run) (*LoadResult, error) {
	loader := entityLoader{
		aggregate: aggregate,
		edges:     edges,
		run:       run,
		result:    &LoadResult{},
	}

	db := setting.GetMetadataDatabase()

	err := db.WithContext(ctx).Transaction(loader.load)
	if err != nil {
		return nil, err
	}

	loader.result.FinishTime = time.Now()

	if err := metadata.RebuildSearchIndex(db); err != nil {
		return nil, utils.WrapError(err, "rebuild search index after load fail")
	}

	return loader.result, nil
}

type entityLoader struct {
	// 输入
	aggregate Aggregate
	edges     []Edge
	run       *metadata.Run

	// 状态
	tx  *gorm.DB
	ids map[string]uint // 规范名 -> Entity.ID

	// 输出
	result *LoadResult
}

func (l *entityLoader) load(tx *gorm.DB) error {
	l.tx = tx
	l.ids = make(map[string]uint, len(l.aggregate))

	if err := l.upsertEntities(); err != nil {
		return utils.WrapError(err, "upsert entities fail")
	}

	if err := l.insertEdges(); err != nil {
		return utils.WrapError(err, "insert relationships fail")
	}

	if err := l.createRun(); err != nil {
		return utils.WrapError(err, "create run record fail")
	}

	return nil
}

/*
upsertEntities 按规范名 upsert 全部实体。冲突时在既有行上应用与内存
归并相同的 coalesce/MAX 策略。按名字排序遍历，保证同一聚合落库行为确定。
*/
func (l *entityLoader) upsertEntities() error {
	names := make([]string, 0, len(l.aggregate))
	for name := range l.aggregate {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		accum := l.aggregate[name]

		var existing metadata.Entity
		err := l.tx.Where(&metadata.Entity{Name: name}).Take(&existing).Error

		switch {
		case err == nil:
			// 冲突：在既有行上应用同一套归并策略
			merged := EntityAccum{
				Name:         existing.Name,
				Type:         existing.Type,
				Role:         existing.Role,
				Description:  existing.Description,
				RiskRating:   existing.RiskRating,
				MentionCount: existing.MentionCount,
			}
			MergeAccum(&merged, accum)

			existing.Type = merged.Type
			existing.Role = merged.Role
			existing.Description = merged.Description
			existing.RiskRating = merged.RiskRating
			existing.MentionCount = merged.MentionCount

			if err := l.tx.Save(&existing).Error; err != nil {
				return utils.WrapErrorf(err, "update entity [%s] fail", name)
			}

			l.ids[name] = existing.ID
			l.result.EntitiesUpdated++

		case errors.Is(err, gorm.ErrRecordNotFound):
			created := metadata.Entity{
				Name:         accum.Name,
				Type:         accum.Type,
				Role:         accum.Role,
				Description:  accum.Description,
				RiskRating:   accum.RiskRating,
				MentionCount: accum.MentionCount,
			}
			if err := l.tx.Create(&created).Error; err != nil {
				return utils.WrapErrorf(err, "create entity [%s] fail", name)
			}

			l.ids[name] = created.ID
			l.result.EntitiesCreated++

		default:
			return utils.WrapErrorf(err, "select entity [%s] fail", name)
		}
	}

	return nil
}

/*
insertEdges 以 insert-or-ignore 语义插入共现边，
(source_id, target_id, document_id) 冲突时静默跳过。
*/
func (l *entityLoader) insertEdges() error {
	for _, edge := range l.edges {
		sourceID, ok := l.ids[edge.Source]
		if !ok {
			continue
		}
		targetID, ok := l.ids[edge.Target]
		if !ok {
			continue
		}

		res := l.tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&metadata.Relationship{
			SourceID:   sourceID,
			TargetID:   targetID,
			Type:       metadata.RelationTypeCoOccurrence,
			Weight:     EdgeWeight,
			Confidence: EdgeConfidence,
			DocumentID: edge.DocumentID,
		})
		if res.Error != nil {
			return utils.WrapErrorf(res.Error, "insert edge [%s]-[%s] fail", edge.Source, edge.Target)
		}

		l.result.RelationshipsCreated += int(res.RowsAffected)
	}

	return nil
}

func (l *entityLoader) createRun() error {
	if l.run == nil {
		return nil
	}

	l.run.Entities = l.result.EntitiesCreated + l.result.EntitiesUpdated
	l.run.Relationships = l.result.RelationshipsCreated

	return l.tx.Create(l.run).Error
}
