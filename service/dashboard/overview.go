/*
 * @module service/dashboard/overview
 * @description 总览页编排:核心KPI加十张全局图表
 * @architecture 服务层 - 页面控制器
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 过滤器状态 -> 12次目录查询(KPI含环比对照窗口) -> KPI卡片 + 图表规格
 * @rules 与其他页面共享同一管线形态,只是查询与图表绑定不同
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

// overviewSlots 总览页输出槽位及其图表类型
var overviewSlots = map[string]string{
	"sales-trend-chart":          charts.KindLine,
	"category-sales-chart":       charts.KindPie,
	"funnel-chart":               charts.KindFunnel,
	"segmentation-chart":         charts.KindPie,
	"ad-performance-chart":       charts.KindBar,
	"returns-analysis-chart":     charts.KindBar,
	"traffic-channels-chart":     charts.KindSunburst,
	"inventory-status-chart":     charts.KindTreemap,
	"support-metrics-chart":      charts.KindBar,
	"supplier-performance-chart": charts.KindScatter,
}

// Overview 更新总览页
func (s *Service) Overview(ctx context.Context, state filters.State) PageResult {
	return safeUpdate("overview", overviewSlots, func() PageResult {
		params := state.Params()

		cards := metrics.SalesCards(
			s.gateway.Execute(ctx, "overview_kpi", params),
			s.gateway.Execute(ctx, "overview_kpi", state.PreviousWindow().Params()),
		)

		specs := map[string]charts.Spec{
			"sales-trend-chart":          charts.SalesTrend(s.gateway.Execute(ctx, "overview_sales_trend", params)),
			"category-sales-chart":       charts.CategorySales(s.gateway.Execute(ctx, "overview_category_sales", params)),
			"funnel-chart":               charts.Funnel(s.gateway.Execute(ctx, "overview_events_funnel", params)),
			"segmentation-chart":         charts.Segmentation(s.gateway.Execute(ctx, "overview_user_segments", nil)),
			"ad-performance-chart":       charts.AdPerformance(s.gateway.Execute(ctx, "overview_ad_performance", params)),
			"returns-analysis-chart":     charts.ReturnsAnalysis(s.gateway.Execute(ctx, "overview_returns_analysis", params)),
			"traffic-channels-chart":     charts.TrafficChannels(s.gateway.Execute(ctx, "overview_traffic_channels", params)),
			"inventory-status-chart":     charts.InventoryStatus(s.gateway.Execute(ctx, "overview_inventory_status", nil)),
			"support-metrics-chart":      charts.SupportMetrics(s.gateway.Execute(ctx, "overview_support_metrics", params)),
			"supplier-performance-chart": charts.SupplierPerformance(s.gateway.Execute(ctx, "overview_supplier_performance", params)),
		}

		return PageResult{
			Page:      "overview",
			Cards:     cards,
			Charts:    specs,
			UpdatedAt: time.Now(),
		}
	})
}
