package graph

import (
	"context"

	"entitygraph-pipeline/repository/metadata"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Setting struct {
	GetMetadataDatabase func() *gorm.DB
	Logger              *logrus.Logger
}

var globalSetting Setting

func Init(setting *Setting) {
	globalSetting = *setting
}

/*
Load 把内存聚合与共现边在一个事务内批量落库，随后重建全文索引。
见 load.go。
*/
func Load(ctx context.Context, aggregate Aggregate, edges []Edge, run *metadata.Run) (*LoadResult, error) {
	return load(&globalSetting, ctx, aggregate, edges, run)
}
