/*
 * @module service/dashboard/customer_behavior
 * @description 客户行为页编排:分段、漏斗、区域活跃度与忠诚度
 * @architecture 服务层 - 页面控制器
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 过滤器状态 -> 8次目录查询 -> KPI卡片 + 图表规格
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

var customerSlots = map[string]string{
	"segmentation-chart":      charts.KindPie,
	"funnel-chart":            charts.KindFunnel,
	"regional-activity-chart": charts.KindBar,
	"segment-behavior-chart":  charts.KindBar,
	"traffic-channels-chart":  charts.KindSunburst,
	"user-devices-chart":      charts.KindPie,
	"loyalty-chart":           charts.KindPie,
}

// CustomerBehavior 更新客户行为页
func (s *Service) CustomerBehavior(ctx context.Context, state filters.State) PageResult {
	return safeUpdate("customer-behavior", customerSlots, func() PageResult {
		params := state.Params()

		segments := s.gateway.Execute(ctx, "customer_user_segments", params)
		funnel := s.gateway.Execute(ctx, "customer_events_funnel", params)
		salesTrend := s.gateway.Execute(ctx, "overview_sales_trend", params)

		summary := metrics.CustomerSummaryFrom(segments, funnel, salesTrend)
		cards := []metrics.Card{
			{Title: "Всего пользователей", Value: summary.TotalUsers},
			{Title: "Конверсия", Value: summary.ConversionRate},
			{Title: "LTV", Value: summary.LTV},
			{Title: "Удержание", Value: summary.RetentionRate},
		}

		specs := map[string]charts.Spec{
			"segmentation-chart":      charts.Segmentation(segments),
			"funnel-chart":            charts.Funnel(funnel),
			"regional-activity-chart": charts.RegionalActivity(s.gateway.Execute(ctx, "customer_regional_activity", params)),
			"segment-behavior-chart":  charts.SegmentBehavior(s.gateway.Execute(ctx, "customer_segment_behavior", params)),
			"traffic-channels-chart":  charts.TrafficChannels(s.gateway.Execute(ctx, "customer_traffic_channels", params)),
			"user-devices-chart":      charts.UserDevices(s.gateway.Execute(ctx, "customer_user_devices", params)),
			"loyalty-chart":           charts.Loyalty(s.gateway.Execute(ctx, "customer_loyalty", params)),
		}

		return PageResult{
			Page:      "customer-behavior",
			Cards:     cards,
			Charts:    specs,
			UpdatedAt: time.Now(),
		}
	})
}
