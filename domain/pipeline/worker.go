package pipeline

import (
	"errors"
	"strings"

	"entitygraph-pipeline/domain/extract"
	"entitygraph-pipeline/domain/graph"
	"entitygraph-pipeline/domain/resolve"
	"entitygraph-pipeline/repository/metadata"
)

type docJob struct {
	index int
	doc   metadata.Document
}

/*
docWorker 处理单篇文档的 worker。抽取、过滤、分类、解析都是
纯函数或只读配置，worker 之间没有共享可变状态；每个 worker
持有自己的 Extractor。
*/
type docWorker struct {
	extractor *extract.Extractor
	resolver  *resolve.Resolver
}

func newDocWorker(resolver *resolve.Resolver) *docWorker {
	return &docWorker{
		extractor: extract.NewExtractor(),
		resolver:  resolver,
	}
}

func (w *docWorker) process(job docJob) docResult {
	ret := docResult{
		index:   job.index,
		docID:   job.doc.ID,
		partial: graph.Aggregate{},
	}

	// 空文档跳过，不中止运行
	if len(strings.TrimSpace(job.doc.Content)) == 0 {
		ret.skipped = true
		return ret
	}

	mentions := w.extractor.Extract(job.doc.Content)
	ret.mentions = len(mentions)

	seen := make(map[string]struct{})

	for _, mention := range mentions {
		// 邮箱和电话不产生实体
		if mention.TypeHint == extract.TypeHintEmail || mention.TypeHint == extract.TypeHintPhone {
			continue
		}

		name, ok := extract.Clean(mention.Raw)
		if !ok {
			continue
		}

		entityType := extract.Classify(name, mention.Context)

		resolution, err := w.resolver.Resolve(name, mention.Context)
		if errors.Is(err, resolve.ErrAmbiguous) {
			// 消解失败：标记而非静默归属
			ret.unresolved++
			continue
		}

		if resolution.Rule != nil && len(resolution.Rule.Type) != 0 {
			entityType = resolution.Rule.Type
		}

		accum := graph.EntityAccum{
			Name:         resolution.Canonical,
			Type:         entityType,
			Description:  strings.TrimSpace(mention.Context),
			MentionCount: 1,
			HasFlightLog: job.doc.Category == metadata.DocCategoryFlightLog,
			HasLegal:     job.doc.Category == metadata.DocCategoryLegal,
		}
		if resolution.Rule != nil {
			accum.Role = resolution.Rule.Category
		}

		ret.partial.Add(&accum)

		if _, dup := seen[resolution.Canonical]; !dup {
			seen[resolution.Canonical] = struct{}{}
			ret.names = append(ret.names, resolution.Canonical)
		}
	}

	return ret
}
