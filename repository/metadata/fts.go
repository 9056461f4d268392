package metadata

import (
	"entitygraph-pipeline/utils"

	"gorm.io/gorm"
)

/*
entity_fts 是 entities 表上的 FTS5 external-content 全文索引，覆盖实体名和描述。

索引不做增量维护：批量写入完成后必须显式调用 RebuildSearchIndex，
在一次 rebuild 之前索引内容不可信。
*/

const createEntityFTSSQL = `
CREATE VIRTUAL TABLE IF NOT EXISTS entity_fts USING fts5(
	name,
	description,
	content='entities',
	content_rowid='id'
)`

func createSearchIndex(db *gorm.DB) error {
	return db.Exec(createEntityFTSSQL).Error
}

/*
RebuildSearchIndex 从 entities 表全量重建全文索引。写入流水线在事务提交之后调用。
*/
func RebuildSearchIndex(db *gorm.DB) error {
	err := db.Exec(`INSERT INTO entity_fts(entity_fts) VALUES ('rebuild')`).Error
	if err != nil {
		return utils.WrapError(err, "rebuild entity_fts fail")
	}

	return nil
}

type SearchResult struct {
	EntityID uint
	Name     string
	Score    float64
}

/*
SearchEntities 按 bm25 排序做全文检索。供下游展示层以及测试使用，
结果只在最近一次 RebuildSearchIndex 之后有效。
*/
func SearchEntities(db *gorm.DB, query string, limit int) ([]SearchResult, error) {
	rows, err := db.Raw(`
		SELECT e.id, e.name, bm25(entity_fts)
		FROM entity_fts
		JOIN entities e ON entity_fts.rowid = e.id
		WHERE entity_fts MATCH ?
		ORDER BY bm25(entity_fts)
		LIMIT ?`, query, limit).Rows()
	if err != nil {
		return nil, utils.WrapErrorf(err, "search entities with [%s] fail", query)
	}
	defer rows.Close()

	ret := make([]SearchResult, 0)
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.EntityID, &r.Name, &r.Score); err != nil {
			return nil, utils.WrapError(err, "scan search result fail")
		}
		ret = append(ret, r)
	}

	return ret, rows.Err()
}
