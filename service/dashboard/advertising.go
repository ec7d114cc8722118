/*
 * @module service/dashboard/advertising
 * @description 广告营销页编排:活动效果、ROI动态、渠道转化
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

var advertisingSlots = map[string]string{
	"ad-performance-chart":         charts.KindBar,
	"ad-trend-chart":               charts.KindLine,
	"product-ad-performance-chart": charts.KindBar,
	"channel-conversion-chart":     charts.KindBar,
	"roi-trend-chart":              charts.KindLine,
	"top-ctr-campaigns-chart":      charts.KindBar,
}

// Advertising 更新广告营销页
func (s *Service) Advertising(ctx context.Context, state filters.State) PageResult {
	return safeUpdate("advertising", advertisingSlots, func() PageResult {
		params := state.Params()

		performance := s.gateway.Execute(ctx, "ad_performance", params)
		summary := metrics.AdSummaryFrom(performance)
		cards := []metrics.Card{
			{Title: "Расходы на рекламу", Value: summary.TotalSpend},
			{Title: "Доходы от рекламы", Value: summary.TotalRevenue},
			{Title: "Средний ROI", Value: summary.AvgROI},
			{Title: "Средний CTR", Value: summary.AvgCTR},
		}

		specs := map[string]charts.Spec{
			"ad-performance-chart":         charts.AdPerformance(performance),
			"ad-trend-chart":               charts.AdTrend(s.gateway.Execute(ctx, "ad_trend", params)),
			"product-ad-performance-chart": charts.ProductAdPerformance(s.gateway.Execute(ctx, "product_ad_performance", params)),
			"channel-conversion-chart":     charts.ChannelConversion(s.gateway.Execute(ctx, "channel_conversion", params)),
			"roi-trend-chart":              charts.ROITrend(s.gateway.Execute(ctx, "roi_trend", params)),
			"top-ctr-campaigns-chart":      charts.TopCTRCampaigns(s.gateway.Execute(ctx, "top_ctr_campaigns", params)),
		}

		return PageResult{
			Page:      "advertising",
			Cards:     cards,
			Charts:    specs,
			UpdatedAt: time.Now(),
		}
	})
}
