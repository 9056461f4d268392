package pipeline

import (
	"fmt"
	"strings"

	"entitygraph-pipeline/utils"
	emailutils "entitygraph-pipeline/utils/email"
)

const reportEmailHTMLTemplate = `
<h1>实体图谱构建完成</h1>
<p>运行号：%s</p>
<p>处理文档数：%d（跳过 %d）</p>
<p>候选提及数：%d（未消解 %d）</p>
<p>实体数：%d</p>
<p>共现关系数：%d</p>

<h2>风险评分分布</h2>
<p>%s</p>

<p></p>
<p>更多信息请前往系统查看</p>
`

const reportEmailTextTemplate = `实体图谱构建完成
运行号：%s
处理文档数：%d（跳过 %d）
候选提及数：%d（未消解 %d）
实体数：%d
共现关系数：%d
风险评分分布：%s
`

func notify(email string, report *Report) error {
	err := emailutils.SendHtml(email, "【实体图谱流水线】构建完成",
		renderReportPage(report), renderReportText(report))
	if err != nil {
		return utils.WrapErrorf(err, "send email to [%s] fail", email)
	}

	return nil
}

func renderReportPage(report *Report) string {
	return fmt.Sprintf(reportEmailHTMLTemplate,
		report.RunID,
		report.Documents, report.Skipped,
		report.Mentions, report.Unresolved,
		report.Entities,
		report.Relationships,
		strings.Join(renderHistogram(report), "<br/>"))
}

// renderReportText 纯文本降级正文，收件端不渲染 HTML 时展示
func renderReportText(report *Report) string {
	return fmt.Sprintf(reportEmailTextTemplate,
		report.RunID,
		report.Documents, report.Skipped,
		report.Mentions, report.Unresolved,
		report.Entities,
		report.Relationships,
		strings.Join(renderHistogram(report), "，"))
}

func renderHistogram(report *Report) []string {
	histogram := make([]string, 0, len(report.RiskHistogram))
	for rating, count := range report.RiskHistogram {
		histogram = append(histogram, fmt.Sprintf("评分 %d：%d", rating, count))
	}
	return histogram
}
