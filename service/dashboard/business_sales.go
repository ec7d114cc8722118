/*
 * @module service/dashboard/business_sales
 * @description 业务销售页编排:按品类/供应商维度的深入销售分析
 * @architecture 服务层 - 页面控制器
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 过滤器状态 -> 7次目录查询 -> KPI卡片 + 图表规格
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

var businessSlots = map[string]string{
	"sales-trend-chart":          charts.KindLine,
	"category-sales-chart":       charts.KindPie,
	"top-products-chart":         charts.KindBar,
	"supplier-performance-chart": charts.KindScatter,
	"returns-analysis-chart":     charts.KindBar,
	"inventory-status-chart":     charts.KindTreemap,
}

// BusinessSales 更新业务销售页
func (s *Service) BusinessSales(ctx context.Context, state filters.State) PageResult {
	return safeUpdate("business-sales", businessSlots, func() PageResult {
		params := state.Params()

		cards := metrics.SalesCards(
			s.gateway.Execute(ctx, "business_kpi", params),
			s.gateway.Execute(ctx, "business_kpi", state.PreviousWindow().Params()),
		)

		specs := map[string]charts.Spec{
			"sales-trend-chart":          charts.SalesTrend(s.gateway.Execute(ctx, "business_sales_trend", params)),
			"category-sales-chart":       charts.CategorySales(s.gateway.Execute(ctx, "business_category_sales", params)),
			"top-products-chart":         charts.TopProducts(s.gateway.Execute(ctx, "business_top_products", params)),
			"supplier-performance-chart": charts.SupplierPerformance(s.gateway.Execute(ctx, "business_supplier_performance", params)),
			"returns-analysis-chart":     charts.ReturnsAnalysis(s.gateway.Execute(ctx, "business_returns_analysis", params)),
			"inventory-status-chart":     charts.InventoryStatus(s.gateway.Execute(ctx, "business_inventory_status", params)),
		}

		return PageResult{
			Page:      "business-sales",
			Cards:     cards,
			Charts:    specs,
			UpdatedAt: time.Now(),
		}
	})
}
