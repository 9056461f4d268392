package pipeline

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"entitygraph-pipeline/domain/extract"
	"entitygraph-pipeline/domain/graph"
	"entitygraph-pipeline/domain/resolve"
	"entitygraph-pipeline/domain/risk"
	"entitygraph-pipeline/domain/roster"
	"entitygraph-pipeline/repository/metadata"
	"entitygraph-pipeline/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultWorkers = 4
	documentBatch  = 128

	rosterRole = "contact book entry"
)

/*
runner 一次流水线运行的执行体。

数据流：抽取/过滤/分类按文档并行（阶段 1~3 是无共享状态的纯函数），
每个 worker 产出部分聚合；按文档提交序归并成全局聚合（combine），
再做名册升级、风险评分与共现边生成，最后一次事务批量落库并重建全文索引。
*/
type runner struct {
	// 输入
	setting *Setting
	config  *RunConfig

	// 运行期不可变的配置
	resolver      *resolve.Resolver
	scorer        *risk.Scorer
	rosterEntries []roster.Entry

	// 输出
	report *Report
}

func run(setting *Setting, ctx context.Context, config *RunConfig) (*Report, error) {
	r := runner{
		setting: setting,
		config:  config,
		report: &Report{
			RunID:     uuid.NewString(),
			StartedAt: time.Now(),
		},
	}

	// 规则目录或名册不可读属于致命错误，在任何写入发生之前终止
	if err := r.loadConfiguration(); err != nil {
		return nil, err
	}

	results, err := r.processDocuments(ctx)
	if err != nil {
		return nil, err
	}

	aggregate, edges := r.combine(results)
	r.applyRoster(aggregate)
	r.applyRisk(aggregate)

	if err := r.persist(ctx, aggregate, edges); err != nil {
		return nil, err
	}

	r.report.FinishedAt = time.Now()
	r.report.LogTo(setting.Logger)

	if len(config.NotifyEmail) != 0 {
		// 通知失败不影响运行结果
		if err := notify(config.NotifyEmail, r.report); err != nil {
			setting.Logger.WithError(err).Errorf("send report to [%s] fail", config.NotifyEmail)
		}
	}

	return r.report, nil
}

func (r *runner) loadConfiguration() error {
	canonical, err := resolve.LoadCanonicalCatalog(r.config.CanonicalCatalogPath)
	if err != nil {
		return utils.WrapError(err, "load canonical catalog fail")
	}

	contexts, err := resolve.LoadContextCatalog(r.config.ContextCatalogPath)
	if err != nil {
		return utils.WrapError(err, "load context catalog fail")
	}

	r.resolver = resolve.NewResolver(canonical, contexts)
	r.scorer = risk.NewScorer(canonical)

	if len(r.config.RosterPath) != 0 {
		entries, err := roster.ParseFile(r.config.RosterPath)
		if err != nil {
			return utils.WrapError(err, "load roster fail")
		}
		r.rosterEntries = entries
	}

	return nil
}

/*
docResult 单篇文档经阶段 1~5 处理后的部分结果。

	index 文档的提交序，combine 按它排序以保证归并顺序确定；
	names 文档内不同规范名，按首次出现顺序；
*/
type docResult struct {
	index      int
	docID      uint
	partial    graph.Aggregate
	names      []string
	mentions   int
	unresolved int
	skipped    bool
}

func (r *runner) processDocuments(ctx context.Context) ([]docResult, error) {
	workers := r.config.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	jobs := make(chan docJob, workers)
	out := make(chan docResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker := newDocWorker(r.resolver)
			for job := range jobs {
				out <- worker.process(job)
			}
		}()
	}

	collected := make([]docResult, 0)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for res := range out {
			collected = append(collected, res)
		}
	}()

	db := r.setting.GetMetadataDatabase().WithContext(ctx)

	index := 0
	var batch []metadata.Document
	res := db.Select("id", "title", "content", "category").
		FindInBatches(&batch, documentBatch, func(_ *gorm.DB, _ int) error {
			for i := range batch {
				jobs <- docJob{index: index, doc: batch[i]}
				index++
			}
			batch = nil
			return nil
		})

	close(jobs)
	wg.Wait()
	close(out)
	<-done

	if res.Error != nil {
		return nil, utils.WrapError(res.Error, "read document corpus fail")
	}

	return collected, nil
}

/*
combine map-reduce 的合并步骤：按文档提交序把各部分聚合并入全局聚合，
并在同一顺序下生成共现边。顺序确定是 coalesce 策略可复现的前提。
*/
func (r *runner) combine(results []docResult) (graph.Aggregate, []graph.Edge) {
	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	aggregate := graph.Aggregate{}
	edges := make([]graph.Edge, 0)

	for i := range results {
		res := &results[i]
		r.report.Documents++
		r.report.Mentions += res.mentions
		r.report.Unresolved += res.unresolved

		if res.skipped {
			r.report.Skipped++
			r.setting.Logger.WithField("document", res.docID).Debug("skip empty document")
			continue
		}

		aggregate.Merge(res.partial)
		edges = append(edges, graph.CoOccurrence(res.docID, res.names)...)
	}

	return aggregate, edges
}

/*
applyRoster 名册条目并入聚合：名册成员成为 person 实体，
已有的 unknown 实体凭名册成员身份升级类型。
*/
func (r *runner) applyRoster(aggregate graph.Aggregate) {
	for _, entry := range r.rosterEntries {
		name, ok := extract.Clean(entry.Name)
		if !ok {
			continue
		}

		resolution, err := r.resolver.Resolve(name, entry.Notes)
		if errors.Is(err, resolve.ErrAmbiguous) {
			r.report.Unresolved++
			continue
		}

		// 归并时 unknown 视同空，名册成员身份把既有的 unknown 实体升级为 person
		aggregate.Add(&graph.EntityAccum{
			Name:        resolution.Canonical,
			Type:        metadata.EntityTypePerson,
			Role:        rosterRole,
			Description: strings.TrimSpace(entry.Notes),
		})
	}
}

func (r *runner) applyRisk(aggregate graph.Aggregate) {
	for name, accum := range aggregate {
		rating := r.scorer.Score(name, risk.Evidence{
			MentionCount: accum.MentionCount,
			HasFlightLog: accum.HasFlightLog,
			HasLegal:     accum.HasLegal,
		})
		accum.RiskRating = risk.MergeRating(accum.RiskRating, rating)

		r.report.RiskHistogram[risk.Clamp(accum.RiskRating)]++
	}
}

func (r *runner) persist(ctx context.Context, aggregate graph.Aggregate, edges []graph.Edge) error {
	runRow := &metadata.Run{
		RunID:             r.report.RunID,
		Documents:         r.report.Documents,
		Skipped:           r.report.Skipped,
		Mentions:          r.report.Mentions,
		Unresolved:        r.report.Unresolved,
		RiskHistogramJSON: r.report.RiskHistogram.ToJSON(),
		StartedAt:         r.report.StartedAt,
		FinishedAt:        time.Now(),
	}

	result, err := graph.Load(ctx, aggregate, edges, runRow)
	if err != nil {
		return utils.WrapError(err, "bulk load fail")
	}

	r.report.Entities = result.EntitiesCreated + result.EntitiesUpdated
	r.report.Relationships = result.RelationshipsCreated

	return nil
}
