/*
 * @module service/charts/builder
 * @description 图表构建器,把查询结果表映射为各类图表规格
 * @architecture 服务层 - 纯转换
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 结果表 + 图表类型 -> 固定编码契约 -> Spec
 * @rules 每种图表的列绑定是固定契约;漏斗阶段按规范顺序排序;
 *        空表一律返回同类型占位规格
 * @dependencies service/metrics, service/query
 * @refs spec.go
 */

package charts

import (
	"sort"

	"malinka-analytics-service/service/metrics"
	"malinka-analytics-service/service/query"
)

// 系列配色,与原始仪表盘一致
const (
	colorOrders  = "#3498DB"
	colorRevenue = "#27AE60"
	colorROI     = "#E74C3C"
	colorSpend   = "#F39C12"
	colorTickets = "#9B59B6"
)

// labeledSeries 按(标签列,数值列)提取单系列
func labeledSeries(table query.Table, name, labelCol, valueCol string) Series {
	points := make([]Point, 0, table.Len())
	for _, row := range table.Rows {
		points = append(points, Point{
			Label: row.String(labelCol),
			Value: row.Float(valueCol),
		})
	}
	return Series{Name: name, Points: points}
}

// SalesTrend 销售动态:双轴折线,订单数主轴,收入副轴,统一悬浮
func SalesTrend(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindLine)
	}

	orders := labeledSeries(table, "Количество заказов", "date", "orders_count")
	orders.Axis = "primary"
	orders.Color = colorOrders

	revenue := labeledSeries(table, "Выручка", "date", "daily_revenue")
	revenue.Axis = "secondary"
	revenue.Color = colorRevenue

	return Spec{
		Kind:       KindLine,
		Title:      "Динамика продаж и выручки",
		XTitle:     "Дата",
		YTitle:     "Количество заказов",
		Y2Title:    "Выручка (руб)",
		HoverMode:  "x unified",
		ShowLegend: true,
		Series:     []Series{orders, revenue},
	}
}

// CategorySales 品类分布:饼图,百分比+标签显示
func CategorySales(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindPie)
	}
	return Spec{
		Kind:       KindPie,
		Title:      "Распределение продаж по категориям",
		TextInfo:   "percent+label",
		ShowLegend: true,
		Series:     []Series{labeledSeries(table, "category_revenue", "category", "category_revenue")},
	}
}

// Funnel 事件漏斗:水平漏斗,阶段按规范顺序排列
func Funnel(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindFunnel)
	}

	rows := make([]query.Row, len(table.Rows))
	copy(rows, table.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return metrics.FunnelStageRank(rows[i].String("event_type")) <
			metrics.FunnelStageRank(rows[j].String("event_type"))
	})

	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point{
			Label: row.String("event_type"),
			Value: row.Float("events_count"),
		})
	}

	return Spec{
		Kind:        KindFunnel,
		Title:       "Воронка событий пользователей",
		XTitle:      "Количество событий",
		YTitle:      "Тип события",
		Orientation: "h",
		Series:      []Series{{Name: "events_count", Points: points}},
	}
}

// Segmentation 用户分段:环形图
func Segmentation(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindPie)
	}
	return Spec{
		Kind:       KindPie,
		Title:      "Распределение пользователей по сегментам",
		TextInfo:   "percent+label",
		Hole:       0.4,
		ShowLegend: true,
		Series:     []Series{labeledSeries(table, "users_count", "segment", "users_count")},
	}
}

// AdPerformance 广告效果:双面板柱状图,面板一ROI,面板二支出vs收入
func AdPerformance(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	roi := labeledSeries(table, "ROI", "campaign_name", "roi")
	roi.Panel = 0
	roi.Color = colorROI

	spend := labeledSeries(table, "Расходы", "campaign_name", "total_spend")
	spend.Panel = 1
	spend.Color = colorSpend

	revenue := labeledSeries(table, "Доходы", "campaign_name", "total_revenue")
	revenue.Panel = 1
	revenue.Color = colorRevenue

	return Spec{
		Kind:        KindBar,
		Title:       "Эффективность рекламы",
		PanelTitles: []string{"ROI по кампаниям", "Расходы vs Доходы"},
		ShowLegend:  true,
		Series:      []Series{roi, spend, revenue},
	}
}

// ReturnsAnalysis 退货原因:水平柱状图,颜色绑定数量
func ReturnsAnalysis(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:        KindBar,
		Title:       "Анализ причин возвратов",
		XTitle:      "Количество возвратов",
		YTitle:      "Причина",
		Orientation: "h",
		ColorScale:  "Reds",
		Series:      []Series{labeledSeries(table, "returns_count", "reason", "returns_count")},
	}
}

// TrafficChannels 流量渠道:旭日图
func TrafficChannels(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindSunburst)
	}
	return Spec{
		Kind:       KindSunburst,
		Title:      "Распределение трафика по каналам",
		ColorScale: "Blues",
		Series:     []Series{labeledSeries(table, "sessions_count", "channel", "sessions_count")},
	}
}

// InventoryStatus 库存状态:矩形树图
func InventoryStatus(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindTreemap)
	}
	return Spec{
		Kind:       KindTreemap,
		Title:      "Остатки товаров на складе по категориям",
		ColorScale: "Greens",
		Series:     []Series{labeledSeries(table, "total_stock", "category", "total_stock")},
	}
}

// SupportMetrics 支持指标:双面板柱状图(工单类型/解决时长)
func SupportMetrics(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	tickets := labeledSeries(table, "Количество тикетов", "issue_type", "tickets_count")
	tickets.Panel = 0
	tickets.Color = colorTickets

	resolution := labeledSeries(table, "Ср. время решения (мин)", "issue_type", "avg_resolution_time")
	resolution.Panel = 1
	resolution.Color = colorOrders

	return Spec{
		Kind:        KindBar,
		Title:       "Метрики поддержки",
		PanelTitles: []string{"Типы обращений", "Время решения"},
		Series:      []Series{tickets, resolution},
	}
}

// SupplierPerformance 供应商表现:气泡散点,点径与颜色都绑定评分
func SupplierPerformance(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindScatter)
	}

	points := make([]Point, 0, table.Len())
	for _, row := range table.Rows {
		points = append(points, Point{
			Label: row.String("supplier_name"),
			X:     row.Float("orders_count"),
			Value: row.Float("total_revenue"),
			Size:  row.Float("supplier_rating"),
		})
	}

	return Spec{
		Kind:       KindScatter,
		Title:      "Производительность поставщиков",
		XTitle:     "Количество заказов",
		YTitle:     "Общая выручка",
		ColorScale: "Viridis",
		Series:     []Series{{Name: "supplier_rating", Points: points}},
	}
}

// TopProducts 畅销商品:水平柱状图,按品类着色
func TopProducts(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	points := make([]Point, 0, table.Len())
	for _, row := range table.Rows {
		points = append(points, Point{
			Label: row.String("product_name"),
			Value: row.Float("total_revenue"),
		})
	}

	return Spec{
		Kind:        KindBar,
		Title:       "Топ товаров по выручке",
		XTitle:      "Выручка",
		YTitle:      "Товар",
		Orientation: "h",
		ShowLegend:  true,
		Series:      []Series{{Name: "total_revenue", Points: points}},
	}
}

// AdTrend 广告动态:收入与支出双折线
func AdTrend(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindLine)
	}

	revenue := labeledSeries(table, "Доходы", "date", "daily_revenue")
	revenue.Color = colorRevenue
	spend := labeledSeries(table, "Расходы", "date", "daily_spend")
	spend.Color = colorSpend

	return Spec{
		Kind:       KindLine,
		Title:      "Динамика рекламных показателей",
		XTitle:     "Дата",
		HoverMode:  "x unified",
		ShowLegend: true,
		Series:     []Series{revenue, spend},
	}
}

// ProductAdPerformance 商品广告效果:ROI水平柱状图
func ProductAdPerformance(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:        KindBar,
		Title:       "Эффективность рекламы по товарам",
		XTitle:      "ROI",
		YTitle:      "Товар",
		Orientation: "h",
		Series:      []Series{labeledSeries(table, "roi", "product_name", "roi")},
	}
}

// ChannelConversion 渠道转化:柱状图
func ChannelConversion(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:   KindBar,
		Title:  "Конверсия по каналам",
		XTitle: "Канал",
		YTitle: "Конверсия (%)",
		Series: []Series{labeledSeries(table, "conversion_rate", "channel", "conversion_rate")},
	}
}

// ROITrend 周度ROI动态:折线图
func ROITrend(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindLine)
	}
	roi := labeledSeries(table, "Недельный ROI", "week_start", "weekly_roi")
	roi.Color = colorROI
	return Spec{
		Kind:   KindLine,
		Title:  "ROI по неделям",
		XTitle: "Неделя",
		YTitle: "ROI",
		Series: []Series{roi},
	}
}

// TopCTRCampaigns 高CTR活动:柱状图
func TopCTRCampaigns(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:   KindBar,
		Title:  "Топ кампаний по CTR",
		XTitle: "Кампания",
		YTitle: "CTR (%)",
		Series: []Series{labeledSeries(table, "ctr", "campaign_name", "ctr")},
	}
}

// RegionalActivity 区域活跃度:柱状图
func RegionalActivity(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	orders := labeledSeries(table, "Заказы", "region", "total_orders")
	orders.Color = colorOrders
	users := labeledSeries(table, "Пользователи", "region", "total_users")
	users.Color = colorRevenue

	return Spec{
		Kind:       KindBar,
		Title:      "Активность по регионам",
		XTitle:     "Регион",
		ShowLegend: true,
		Series:     []Series{orders, users},
	}
}

// SegmentBehavior 分段行为:订单数与平均客单价双面板
func SegmentBehavior(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	orders := labeledSeries(table, "Заказы", "segment", "total_orders")
	orders.Panel = 0
	orders.Color = colorOrders

	aov := labeledSeries(table, "Средний чек", "segment", "avg_order_value")
	aov.Panel = 1
	aov.Color = colorRevenue

	return Spec{
		Kind:        KindBar,
		Title:       "Поведение сегментов",
		PanelTitles: []string{"Заказы по сегментам", "Средний чек"},
		Series:      []Series{orders, aov},
	}
}

// UserDevices 用户设备:饼图
func UserDevices(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindPie)
	}
	return Spec{
		Kind:       KindPie,
		Title:      "Устройства пользователей",
		TextInfo:   "percent+label",
		ShowLegend: true,
		Series:     []Series{labeledSeries(table, "sessions_count", "device", "sessions_count")},
	}
}

// Loyalty 客户忠诚度:环形图
func Loyalty(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindPie)
	}
	return Spec{
		Kind:       KindPie,
		Title:      "Лояльность клиентов",
		TextInfo:   "percent+label",
		Hole:       0.4,
		ShowLegend: true,
		Series:     []Series{labeledSeries(table, "customers_count", "loyalty_level", "customers_count")},
	}
}

// SupportTrend 工单动态:双轴折线(工单数/平均解决时长)
func SupportTrend(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindLine)
	}

	tickets := labeledSeries(table, "Обращения", "date", "daily_tickets")
	tickets.Axis = "primary"
	tickets.Color = colorTickets

	resolution := labeledSeries(table, "Ср. время решения (мин)", "date", "avg_resolution_time")
	resolution.Axis = "secondary"
	resolution.Color = colorOrders

	return Spec{
		Kind:       KindLine,
		Title:      "Динамика обращений",
		XTitle:     "Дата",
		YTitle:     "Обращения",
		Y2Title:    "Время решения (мин)",
		HoverMode:  "x unified",
		ShowLegend: true,
		Series:     []Series{tickets, resolution},
	}
}

// SegmentSupport 分段支持效率:柱状图
func SegmentSupport(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:   KindBar,
		Title:  "Эффективность поддержки по сегментам",
		XTitle: "Сегмент",
		YTitle: "Обращения",
		Series: []Series{labeledSeries(table, "tickets_count", "segment", "tickets_count")},
	}
}

// ResolutionTime 解决时长分布:柱状图
func ResolutionTime(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:   KindBar,
		Title:  "Анализ времени решения",
		XTitle: "Время решения",
		YTitle: "Обращения",
		Series: []Series{labeledSeries(table, "tickets_count", "resolution_time_bucket", "tickets_count")},
	}
}

// SupportReturns 支持与退货关联:双系列柱状图
func SupportReturns(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}

	tickets := labeledSeries(table, "Обращения", "issue_type", "support_tickets")
	tickets.Color = colorTickets
	returns := labeledSeries(table, "Возвраты", "issue_type", "returns_count")
	returns.Color = colorROI

	return Spec{
		Kind:       KindBar,
		Title:      "Связь поддержки и возвратов",
		XTitle:     "Тип обращения",
		ShowLegend: true,
		Series:     []Series{tickets, returns},
	}
}

// RegionalSupport 区域支持满意度:柱状图
func RegionalSupport(table query.Table) Spec {
	if table.Empty() {
		return Placeholder(KindBar)
	}
	return Spec{
		Kind:   KindBar,
		Title:  "Удовлетворенность по регионам",
		XTitle: "Регион",
		YTitle: "Обращения",
		Series: []Series{labeledSeries(table, "tickets_count", "region", "tickets_count")},
	}
}
