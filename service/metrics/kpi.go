/*
 * @module service/metrics/kpi
 * @description KPI指标计算:销售汇总、广告效果、转化漏斗、客户忠诚度
 * @architecture 服务层 - 纯计算
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 结果表 -> 空值安全聚合 -> 格式化KPI
 * @rules 所有除法带零保护:分母为0结果为0,不报错;空表返回零值KPI
 * @dependencies service/query
 * @refs format.go, service/dashboard
 */

package metrics

import (
	"malinka-analytics-service/service/query"
)

// Card 一张KPI卡片:标题、显示值、可选的环比增量
type Card struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Delta      string `json:"delta,omitempty"`
	DeltaColor string `json:"delta_color,omitempty"`
}

// SalesSummary 销售KPI汇总
type SalesSummary struct {
	TotalRevenue  string `json:"total_revenue"`
	TotalOrders   string `json:"total_orders"`
	AvgOrderValue string `json:"avg_order_value"`
	ReturnRate    string `json:"return_rate"`
}

// DefaultSalesSummary 零值销售KPI,查询失败或无数据时返回
func DefaultSalesSummary() SalesSummary {
	return SalesSummary{
		TotalRevenue:  "0 ₽",
		TotalOrders:   "0",
		AvgOrderValue: "0 ₽",
		ReturnRate:    "0%",
	}
}

// SalesSummaryFrom 从单行聚合结果计算销售KPI
// 缺失或NULL的数值列按0处理,零订单时退货率为0
func SalesSummaryFrom(table query.Table) SalesSummary {
	if table.Empty() {
		return DefaultSalesSummary()
	}

	row := table.First()
	totalRevenue := row.Float("total_revenue")
	totalOrders := row.Int("total_orders")
	totalReturns := row.Float("total_returns")
	avgOrderValue := row.Float("avg_order_value")

	returnRate := 0.0
	if totalOrders > 0 {
		returnRate = totalReturns / float64(totalOrders) * 100
	}

	return SalesSummary{
		TotalRevenue:  FormatCurrency(totalRevenue),
		TotalOrders:   FormatCount(totalOrders),
		AvgOrderValue: FormatCurrency(avgOrderValue),
		ReturnRate:    FormatPercentage(returnRate),
	}
}

// Delta 环比增量的显示值与颜色
// 前值为0或无变化时不显示;invert用于"越低越好"的指标
func Delta(current, previous float64, invert bool) (string, string) {
	change := PercentageChange(current, previous)
	if change == 0 {
		return "", ""
	}

	color := "green"
	if (change < 0) != invert {
		color = "red"
	}
	if change > 0 {
		return "+" + FormatPercentage(change), color
	}
	return FormatPercentage(change), color
}

// SalesCards 销售KPI卡片行,带与上一等长周期的环比增量
func SalesCards(current, previous query.Table) []Card {
	summary := SalesSummaryFrom(current)
	cards := []Card{
		{Title: "Общая выручка", Value: summary.TotalRevenue},
		{Title: "Количество заказов", Value: summary.TotalOrders},
		{Title: "Средний чек", Value: summary.AvgOrderValue},
		{Title: "Уровень возвратов", Value: summary.ReturnRate},
	}

	if current.Empty() || previous.Empty() {
		return cards
	}
	cur, prev := current.First(), previous.First()

	cards[0].Delta, cards[0].DeltaColor = Delta(cur.Float("total_revenue"), prev.Float("total_revenue"), false)
	cards[1].Delta, cards[1].DeltaColor = Delta(float64(cur.Int("total_orders")), float64(prev.Int("total_orders")), false)
	cards[2].Delta, cards[2].DeltaColor = Delta(cur.Float("avg_order_value"), prev.Float("avg_order_value"), false)
	cards[3].Delta, cards[3].DeltaColor = Delta(returnRateOf(cur), returnRateOf(prev), true)

	return cards
}

func returnRateOf(row query.Row) float64 {
	orders := row.Int("total_orders")
	if orders <= 0 {
		return 0
	}
	return row.Float("total_returns") / float64(orders) * 100
}

// ROI 广告投资回报率,投入为0时返回0
func ROI(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return (revenue - spend) / spend
}

// CTR 点击率(百分比),曝光为0时返回0
func CTR(clicks, impressions float64) float64 {
	if impressions <= 0 {
		return 0
	}
	return clicks / impressions * 100
}

// ConversionRate 转化率(百分比),浏览为0时返回0
func ConversionRate(purchases, views float64) float64 {
	if views <= 0 {
		return 0
	}
	return purchases / views * 100
}

// 漏斗阶段的规范顺序,未知事件类型排在最后
var funnelOrder = map[string]int{
	"view":        1,
	"click":       2,
	"add_to_cart": 3,
	"wishlist":    4,
	"purchase":    5,
}

// FunnelStageRank 漏斗阶段排序权重
func FunnelStageRank(eventType string) int {
	if rank, ok := funnelOrder[eventType]; ok {
		return rank
	}
	return 6
}

// FunnelConversion 从漏斗结果表计算整体转化率(purchase/view)
func FunnelConversion(table query.Table) float64 {
	counts := make(map[string]float64, table.Len())
	for _, row := range table.Rows {
		counts[row.String("event_type")] += row.Float("events_count")
	}
	return ConversionRate(counts["purchase"], counts["view"])
}

// LoyaltyTier 按周期内订单数划分客户忠诚度
// 档位为包含下界,从高到低取第一个命中
func LoyaltyTier(orderCount int64) string {
	switch {
	case orderCount >= 5:
		return "VIP"
	case orderCount >= 3:
		return "Постоянный"
	case orderCount >= 1:
		return "Новый"
	default:
		return "Неактивный"
	}
}

// AdSummary 广告KPI汇总
type AdSummary struct {
	TotalSpend   string `json:"total_spend"`
	TotalRevenue string `json:"total_revenue"`
	AvgROI       string `json:"avg_roi"`
	AvgCTR       string `json:"avg_ctr"`
}

// DefaultAdSummary 零值广告KPI
func DefaultAdSummary() AdSummary {
	return AdSummary{
		TotalSpend:   "0 ₽",
		TotalRevenue: "0 ₽",
		AvgROI:       "0.0%",
		AvgCTR:       "0.0%",
	}
}

// AdSummaryFrom 从广告效果结果表计算广告KPI
func AdSummaryFrom(table query.Table) AdSummary {
	if table.Empty() {
		return DefaultAdSummary()
	}

	var spend, revenue, clicks, impressions float64
	for _, row := range table.Rows {
		spend += row.Float("total_spend")
		revenue += row.Float("total_revenue")
		clicks += row.Float("total_clicks")
		impressions += row.Float("total_impressions")
	}

	return AdSummary{
		TotalSpend:   FormatCurrency(spend),
		TotalRevenue: FormatCurrency(revenue),
		AvgROI:       FormatPercentage(ROI(revenue, spend) * 100),
		AvgCTR:       FormatPercentage(CTR(clicks, impressions)),
	}
}

// CustomerSummary 客户行为KPI汇总
type CustomerSummary struct {
	TotalUsers     string `json:"total_users"`
	ConversionRate string `json:"conversion_rate"`
	LTV            string `json:"ltv"`
	RetentionRate  string `json:"retention_rate"`
}

// DefaultCustomerSummary 零值客户KPI
func DefaultCustomerSummary() CustomerSummary {
	return CustomerSummary{
		TotalUsers:     "0",
		ConversionRate: "0.0%",
		LTV:            "0 ₽",
		RetentionRate:  "0.0%",
	}
}

// CustomerSummaryFrom 从分段表/漏斗表/销售趋势表计算客户KPI
// LTV = 周期收入 / 独立用户数;留存率 = loyal 段占比
func CustomerSummaryFrom(segments, funnel, salesTrend query.Table) CustomerSummary {
	summary := DefaultCustomerSummary()

	var totalUsers, loyalUsers float64
	for _, row := range segments.Rows {
		count := row.Float("users_count")
		totalUsers += count
		if row.String("segment") == "loyal" {
			loyalUsers += count
		}
	}
	summary.TotalUsers = FormatCount(int64(totalUsers))
	summary.ConversionRate = FormatPercentage(FunnelConversion(funnel))

	var totalRevenue float64
	for _, row := range salesTrend.Rows {
		totalRevenue += row.Float("daily_revenue")
	}
	if totalUsers > 0 {
		summary.LTV = FormatCurrency(totalRevenue / totalUsers)
		summary.RetentionRate = FormatPercentage(loyalUsers / totalUsers * 100)
	}

	return summary
}

// ServiceSummary 服务质量KPI汇总
type ServiceSummary struct {
	TotalTickets      string `json:"total_tickets"`
	AvgResolutionTime string `json:"avg_resolution_time"`
	ResolutionRate    string `json:"resolution_rate"`
}

// DefaultServiceSummary 零值服务质量KPI
func DefaultServiceSummary() ServiceSummary {
	return ServiceSummary{
		TotalTickets:      "0",
		AvgResolutionTime: "0 мин",
		ResolutionRate:    "0.0%",
	}
}

// ServiceSummaryFrom 从支持指标结果表计算服务质量KPI
// 平均解决时长与解决率按工单数加权
func ServiceSummaryFrom(table query.Table) ServiceSummary {
	if table.Empty() {
		return DefaultServiceSummary()
	}

	var tickets, weightedTime, weightedRate float64
	for _, row := range table.Rows {
		count := row.Float("tickets_count")
		tickets += count
		weightedTime += row.Float("avg_resolution_time") * count
		weightedRate += row.Float("resolution_rate") * count
	}
	if tickets == 0 {
		return DefaultServiceSummary()
	}

	return ServiceSummary{
		TotalTickets:      FormatCount(int64(tickets)),
		AvgResolutionTime: FormatCount(int64(weightedTime/tickets)) + " мин",
		ResolutionRate:    FormatPercentage(weightedRate / tickets),
	}
}
