/*
 * @module service/dashboard/service_quality
 * @description 服务质量页编排:支持工单指标、解决时长与退货关联
 * @architecture 服务层 - 页面控制器
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 过滤器状态 -> 6次目录查询 -> KPI卡片 + 图表规格
 * @dependencies service/query, service/filters, service/metrics, service/charts
 * @refs service.go
 */

package dashboard

import (
	"context"
	"time"

	"malinka-analytics-service/service/charts"
	"malinka-analytics-service/service/filters"
	"malinka-analytics-service/service/metrics"
)

var serviceQualitySlots = map[string]string{
	"support-metrics-chart":  charts.KindBar,
	"support-trend-chart":    charts.KindLine,
	"segment-support-chart":  charts.KindBar,
	"resolution-time-chart":  charts.KindBar,
	"support-returns-chart":  charts.KindBar,
	"regional-support-chart": charts.KindBar,
}

// ServiceQuality 更新服务质量页
func (s *Service) ServiceQuality(ctx context.Context, state filters.State) PageResult {
	return safeUpdate("service-quality", serviceQualitySlots, func() PageResult {
		params := state.Params()

		supportMetrics := s.gateway.Execute(ctx, "support_metrics", params)
		summary := metrics.ServiceSummaryFrom(supportMetrics)
		cards := []metrics.Card{
			{Title: "Всего обращений", Value: summary.TotalTickets},
			{Title: "Ср. время решения", Value: summary.AvgResolutionTime},
			{Title: "Доля решенных", Value: summary.ResolutionRate},
		}

		specs := map[string]charts.Spec{
			"support-metrics-chart":  charts.SupportMetrics(supportMetrics),
			"support-trend-chart":    charts.SupportTrend(s.gateway.Execute(ctx, "support_trend", params)),
			"segment-support-chart":  charts.SegmentSupport(s.gateway.Execute(ctx, "segment_support", params)),
			"resolution-time-chart":  charts.ResolutionTime(s.gateway.Execute(ctx, "resolution_time", params)),
			"support-returns-chart":  charts.SupportReturns(s.gateway.Execute(ctx, "support_returns", params)),
			"regional-support-chart": charts.RegionalSupport(s.gateway.Execute(ctx, "regional_support", params)),
		}

		return PageResult{
			Page:      "service-quality",
			Cards:     cards,
			Charts:    specs,
			UpdatedAt: time.Now(),
		}
	})
}
