package pipeline

import (
	"time"

	"entitygraph-pipeline/repository/metadata"

	"github.com/sirupsen/logrus"
)

/*
Report 一次运行的汇总报告。运行结束必须产出：调用方拿不到报告时
应当把这次运行视为不完整、不可信。

	RiskHistogram 按风险评分统计的实体数直方图；
*/
type Report struct {
	RunID         string
	Documents     int
	Skipped       int
	Mentions      int
	Unresolved    int
	Entities      int
	Relationships int
	RiskHistogram metadata.SchemaRiskHistogram
	StartedAt     time.Time
	FinishedAt    time.Time
}

func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Report) LogTo(logger *logrus.Logger) {
	logger.WithFields(logrus.Fields{
		"run_id":         r.RunID,
		"documents":      r.Documents,
		"skipped":        r.Skipped,
		"mentions":       r.Mentions,
		"unresolved":     r.Unresolved,
		"entities":       r.Entities,
		"relationships":  r.Relationships,
		"risk_histogram": r.RiskHistogram,
		"duration":       r.Duration().String(),
	}).Info("pipeline run finished")
}
