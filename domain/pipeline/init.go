package pipeline

import (
	"context"

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
RunConfig 一次批处理运行的参数。

	CanonicalCatalogPath、ContextCatalogPath 规则目录文件；
	RosterPath 名册文件，可为空；
	Workers 抽取 worker 数，<=0 时取 DefaultWorkers；
	NotifyEmail 运行结束后接收汇总报告的邮箱，可为空；
*/
type RunConfig struct {
	CanonicalCatalogPath string
	ContextCatalogPath   string
	RosterPath           string
	Workers              int
	NotifyEmail          string
}

func Run(ctx context.Context, config *RunConfig) (*Report, error) {
	return run(&globalSetting, ctx, config)
}
