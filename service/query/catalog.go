/*
 * @module service/query/catalog
 * @description SQL查询目录,按仪表盘页面组织的命名参数化查询模板
 * @architecture 服务层 - 纯数据,无执行逻辑
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 页面服务按名称取模板 -> Gateway绑定参数执行
 * @rules 可选过滤维度一律写成 (@param IS NULL OR col = @param),同一模板同时服务
 *        过滤与不过滤两种调用;相关子查询必须重复外层过滤谓词,保证分子分母一致
 * @dependencies 无
 * @refs gateway.go, service/dashboard
 */

package query

// Definition 一条命名查询:模板文本加上它接受的命名参数集合
type Definition struct {
	Name   string
	Page   string
	SQL    string
	Params []string
}

// 页面标识
const (
	PageOverview    = "overview"
	PageBusiness    = "business-sales"
	PageCustomer    = "customer-behavior"
	PageAdvertising = "advertising-marketing"
	PageService     = "service-quality"
	PageShared      = "shared"
)

var dateParams = []string{"start_date", "end_date"}

// catalog 全部查询定义,按名称索引
var catalog = map[string]Definition{

	// ===================== 总览页 =====================

	"overview_kpi": {
		Name: "overview_kpi", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    COUNT(DISTINCT s.transaction_id) as total_orders,
    SUM(s.quantity * p.price) as total_revenue,
    COUNT(DISTINCT r.return_id) as total_returns,
    AVG(s.quantity * p.price) as avg_order_value
FROM sales s
JOIN products p ON s.product_id = p.product_id
LEFT JOIN returns r ON s.transaction_id = r.transaction_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date`,
	},

	"overview_sales_trend": {
		Name: "overview_sales_trend", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    DATE(s.transaction_date) as date,
    COUNT(DISTINCT s.transaction_id) as orders_count,
    SUM(s.quantity * p.price) as daily_revenue
FROM sales s
JOIN products p ON s.product_id = p.product_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
GROUP BY DATE(s.transaction_date)
ORDER BY date`,
	},

	"overview_category_sales": {
		Name: "overview_category_sales", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    p.category,
    COUNT(DISTINCT s.transaction_id) as orders_count,
    SUM(s.quantity * p.price) as category_revenue
FROM sales s
JOIN products p ON s.product_id = p.product_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
GROUP BY p.category
ORDER BY category_revenue DESC`,
	},

	"overview_events_funnel": {
		Name: "overview_events_funnel", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    event_type,
    COUNT(DISTINCT event_id) as events_count
FROM events
WHERE event_timestamp BETWEEN @start_date AND @end_date
GROUP BY event_type
ORDER BY
    CASE event_type
        WHEN 'view' THEN 1
        WHEN 'click' THEN 2
        WHEN 'add_to_cart' THEN 3
        WHEN 'wishlist' THEN 4
        WHEN 'purchase' THEN 5
        ELSE 6
    END`,
	},

	"overview_user_segments": {
		Name: "overview_user_segments", Page: PageOverview, Params: nil,
		SQL: `
SELECT
    segment,
    COUNT(DISTINCT customer_id) as users_count
FROM user_segments
GROUP BY segment`,
	},

	"overview_ad_performance": {
		Name: "overview_ad_performance", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    campaign_name,
    SUM(revenue) as total_revenue,
    SUM(spend) as total_spend,
    SUM(clicks) as total_clicks,
    SUM(impressions) as total_impressions,
    CASE
        WHEN SUM(spend) > 0 THEN (SUM(revenue) - SUM(spend)) / SUM(spend)
        ELSE 0
    END as roi
FROM ad_revenue
WHERE date BETWEEN @start_date AND @end_date
GROUP BY campaign_name
ORDER BY roi DESC`,
	},

	"overview_returns_analysis": {
		Name: "overview_returns_analysis", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    r.reason,
    COUNT(r.return_id) as returns_count,
    COUNT(r.return_id) * 100.0 / (SELECT COUNT(*) FROM returns WHERE EXISTS (
        SELECT 1 FROM sales s
        WHERE s.transaction_id = returns.transaction_id
        AND s.transaction_date BETWEEN @start_date AND @end_date
    )) as percentage
FROM returns r
WHERE EXISTS (
    SELECT 1 FROM sales s
    WHERE s.transaction_id = r.transaction_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
)
GROUP BY r.reason
ORDER BY returns_count DESC`,
	},

	"overview_traffic_channels": {
		Name: "overview_traffic_channels", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    channel,
    COUNT(DISTINCT traffic_id) as sessions_count,
    COUNT(DISTINCT customer_id) as unique_users
FROM traffic
WHERE session_start BETWEEN @start_date AND @end_date
GROUP BY channel
ORDER BY sessions_count DESC`,
	},

	"overview_inventory_status": {
		Name: "overview_inventory_status", Page: PageOverview, Params: nil,
		SQL: `
SELECT
    p.category,
    SUM(i.stock_quantity) as total_stock,
    COUNT(DISTINCT i.product_id) as unique_products,
    CASE
        WHEN SUM(i.stock_quantity) = 0 THEN 'OUT_OF_STOCK'
        WHEN SUM(i.stock_quantity) < 10 THEN 'LOW_STOCK'
        ELSE 'IN_STOCK'
    END as stock_status
FROM inventory i
JOIN products p ON i.product_id = p.product_id
GROUP BY p.category
ORDER BY total_stock DESC`,
	},

	"overview_support_metrics": {
		Name: "overview_support_metrics", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    issue_type,
    COUNT(ticket_id) as tickets_count,
    AVG(resolution_time_minutes) as avg_resolution_time,
    COUNT(CASE WHEN resolved THEN 1 END) * 100.0 / COUNT(*) as resolution_rate
FROM customer_support
WHERE support_date BETWEEN @start_date AND @end_date
GROUP BY issue_type
ORDER BY tickets_count DESC`,
	},

	"overview_supplier_performance": {
		Name: "overview_supplier_performance", Page: PageOverview, Params: dateParams,
		SQL: `
SELECT
    s.supplier_name,
    COUNT(DISTINCT sa.transaction_id) as orders_count,
    SUM(sa.quantity * p.price) as total_revenue,
    AVG(s.rating) as supplier_rating
FROM sales sa
JOIN products p ON sa.product_id = p.product_id
JOIN suppliers s ON p.supplier_id = s.supplier_id
WHERE sa.transaction_date BETWEEN @start_date AND @end_date
GROUP BY s.supplier_name
ORDER BY total_revenue DESC
LIMIT 10`,
	},

	// ===================== 业务与销售页 =====================

	"business_kpi": {
		Name: "business_kpi", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "category", "supplier"},
		SQL: `
SELECT
    COUNT(DISTINCT s.transaction_id) as total_orders,
    SUM(s.quantity * p.price) as total_revenue,
    COUNT(DISTINCT r.return_id) as total_returns,
    AVG(s.quantity * p.price) as avg_order_value
FROM sales s
JOIN products p ON s.product_id = p.product_id
LEFT JOIN returns r ON s.transaction_id = r.transaction_id
JOIN suppliers sup ON p.supplier_id = sup.supplier_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
    AND (@category IS NULL OR p.category = @category)
    AND (@supplier IS NULL OR sup.supplier_name = @supplier)`,
	},

	"business_sales_trend": {
		Name: "business_sales_trend", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "category", "supplier"},
		SQL: `
SELECT
    DATE(s.transaction_date) as date,
    COUNT(DISTINCT s.transaction_id) as orders_count,
    SUM(s.quantity * p.price) as daily_revenue
FROM sales s
JOIN products p ON s.product_id = p.product_id
JOIN suppliers sup ON p.supplier_id = sup.supplier_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
    AND (@category IS NULL OR p.category = @category)
    AND (@supplier IS NULL OR sup.supplier_name = @supplier)
GROUP BY DATE(s.transaction_date)
ORDER BY date`,
	},

	"business_category_sales": {
		Name: "business_category_sales", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "supplier"},
		SQL: `
SELECT
    p.category,
    COUNT(DISTINCT s.transaction_id) as orders_count,
    SUM(s.quantity * p.price) as category_revenue
FROM sales s
JOIN products p ON s.product_id = p.product_id
JOIN suppliers sup ON p.supplier_id = sup.supplier_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
    AND (@supplier IS NULL OR sup.supplier_name = @supplier)
GROUP BY p.category
ORDER BY category_revenue DESC`,
	},

	"business_supplier_performance": {
		Name: "business_supplier_performance", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "category", "supplier"},
		SQL: `
SELECT
    s.supplier_name,
    COUNT(DISTINCT sa.transaction_id) as orders_count,
    SUM(sa.quantity * p.price) as total_revenue,
    AVG(s.rating) as supplier_rating
FROM sales sa
JOIN products p ON sa.product_id = p.product_id
JOIN suppliers s ON p.supplier_id = s.supplier_id
WHERE sa.transaction_date BETWEEN @start_date AND @end_date
    AND (@category IS NULL OR p.category = @category)
    AND (@supplier IS NULL OR s.supplier_name = @supplier)
GROUP BY s.supplier_name
ORDER BY total_revenue DESC
LIMIT 10`,
	},

	"business_returns_analysis": {
		Name: "business_returns_analysis", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "category", "supplier"},
		SQL: `
SELECT
    r.reason,
    COUNT(r.return_id) as returns_count,
    COUNT(r.return_id) * 100.0 / (SELECT COUNT(*) FROM returns WHERE EXISTS (
        SELECT 1 FROM sales s
        JOIN products p ON s.product_id = p.product_id
        JOIN suppliers sup ON p.supplier_id = sup.supplier_id
        WHERE s.transaction_id = returns.transaction_id
        AND s.transaction_date BETWEEN @start_date AND @end_date
        AND (@category IS NULL OR p.category = @category)
        AND (@supplier IS NULL OR sup.supplier_name = @supplier)
    )) as percentage
FROM returns r
WHERE EXISTS (
    SELECT 1 FROM sales s
    JOIN products p ON s.product_id = p.product_id
    JOIN suppliers sup ON p.supplier_id = sup.supplier_id
    WHERE s.transaction_id = r.transaction_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
    AND (@category IS NULL OR p.category = @category)
    AND (@supplier IS NULL OR sup.supplier_name = @supplier)
)
GROUP BY r.reason
ORDER BY returns_count DESC`,
	},

	"business_inventory_status": {
		Name: "business_inventory_status", Page: PageBusiness,
		Params: []string{"supplier"},
		SQL: `
SELECT
    p.category,
    SUM(i.stock_quantity) as total_stock,
    COUNT(DISTINCT i.product_id) as unique_products
FROM inventory i
JOIN products p ON i.product_id = p.product_id
JOIN suppliers sup ON p.supplier_id = sup.supplier_id
WHERE (@supplier IS NULL OR sup.supplier_name = @supplier)
GROUP BY p.category
ORDER BY total_stock DESC`,
	},

	"business_top_products": {
		Name: "business_top_products", Page: PageBusiness,
		Params: []string{"start_date", "end_date", "category", "supplier"},
		SQL: `
SELECT
    p.product_name as product_name,
    p.category,
    COUNT(s.transaction_id) as sales_count,
    SUM(s.quantity * p.price) as total_revenue
FROM sales s
JOIN products p ON s.product_id = p.product_id
JOIN suppliers sup ON p.supplier_id = sup.supplier_id
WHERE s.transaction_date BETWEEN @start_date AND @end_date
    AND (@category IS NULL OR p.category = @category)
    AND (@supplier IS NULL OR sup.supplier_name = @supplier)
GROUP BY p.product_id, p.product_name, p.category
ORDER BY total_revenue DESC
LIMIT 10`,
	},

	// ===================== 客户行为页 =====================

	"customer_user_segments": {
		Name: "customer_user_segments", Page: PageCustomer,
		Params: []string{"region"},
		SQL: `
SELECT
    segment,
    COUNT(DISTINCT customer_id) as users_count
FROM user_segments
WHERE (@region IS NULL OR region = @region)
GROUP BY segment`,
	},

	"customer_events_funnel": {
		Name: "customer_events_funnel", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "segment", "region"},
		SQL: `
SELECT
    event_type,
    COUNT(DISTINCT event_id) as events_count
FROM events
WHERE event_timestamp BETWEEN @start_date AND @end_date
    AND (@segment IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE segment = @segment
    ))
    AND (@region IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE region = @region
    ))
GROUP BY event_type
ORDER BY
    CASE event_type
        WHEN 'view' THEN 1
        WHEN 'click' THEN 2
        WHEN 'add_to_cart' THEN 3
        WHEN 'wishlist' THEN 4
        WHEN 'purchase' THEN 5
        ELSE 6
    END`,
	},

	"customer_regional_activity": {
		Name: "customer_regional_activity", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "segment", "region"},
		SQL: `
SELECT
    us.region,
    COUNT(DISTINCT us.customer_id) as total_users,
    COUNT(DISTINCT s.transaction_id) as total_orders,
    COUNT(DISTINCT s.transaction_id) * 1.0 / COUNT(DISTINCT us.customer_id) as orders_per_user
FROM user_segments us
LEFT JOIN sales s ON us.customer_id = s.customer_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
WHERE (@segment IS NULL OR us.segment = @segment)
    AND (@region IS NULL OR us.region = @region)
GROUP BY us.region
ORDER BY total_orders DESC`,
	},

	"customer_segment_behavior": {
		Name: "customer_segment_behavior", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "segment", "region"},
		SQL: `
SELECT
    us.segment,
    COUNT(DISTINCT s.transaction_id) as total_orders,
    AVG(s.quantity * p.price) as avg_order_value,
    COUNT(DISTINCT r.return_id) as total_returns
FROM user_segments us
LEFT JOIN sales s ON us.customer_id = s.customer_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
LEFT JOIN products p ON s.product_id = p.product_id
LEFT JOIN returns r ON s.transaction_id = r.transaction_id
WHERE (@segment IS NULL OR us.segment = @segment)
    AND (@region IS NULL OR us.region = @region)
GROUP BY us.segment
ORDER BY total_orders DESC`,
	},

	"customer_traffic_channels": {
		Name: "customer_traffic_channels", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "channel", "region"},
		SQL: `
SELECT
    channel,
    COUNT(DISTINCT traffic_id) as sessions_count,
    COUNT(DISTINCT customer_id) as unique_users
FROM traffic
WHERE session_start BETWEEN @start_date AND @end_date
    AND (@channel IS NULL OR channel = @channel)
    AND (@region IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE region = @region
    ))
GROUP BY channel
ORDER BY sessions_count DESC`,
	},

	"customer_user_devices": {
		Name: "customer_user_devices", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "channel"},
		SQL: `
SELECT
    device,
    COUNT(DISTINCT traffic_id) as sessions_count,
    COUNT(DISTINCT customer_id) as unique_users
FROM traffic
WHERE session_start BETWEEN @start_date AND @end_date
    AND (@channel IS NULL OR channel = @channel)
GROUP BY device
ORDER BY sessions_count DESC`,
	},

	"customer_loyalty": {
		Name: "customer_loyalty", Page: PageCustomer,
		Params: []string{"start_date", "end_date", "segment", "region"},
		SQL: `
SELECT
    CASE
        WHEN COUNT(DISTINCT s.transaction_id) >= 5 THEN 'VIP'
        WHEN COUNT(DISTINCT s.transaction_id) >= 3 THEN 'Постоянный'
        WHEN COUNT(DISTINCT s.transaction_id) >= 1 THEN 'Новый'
        ELSE 'Неактивный'
    END as loyalty_level,
    COUNT(DISTINCT us.customer_id) as customers_count,
    AVG(s.quantity * p.price) as avg_order_value
FROM user_segments us
LEFT JOIN sales s ON us.customer_id = s.customer_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
LEFT JOIN products p ON s.product_id = p.product_id
WHERE (@segment IS NULL OR us.segment = @segment)
    AND (@region IS NULL OR us.region = @region)
GROUP BY loyalty_level
ORDER BY customers_count DESC`,
	},

	// ===================== 广告与营销页 =====================

	"ad_performance": {
		Name: "ad_performance", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    campaign_name,
    SUM(revenue) as total_revenue,
    SUM(spend) as total_spend,
    SUM(clicks) as total_clicks,
    SUM(impressions) as total_impressions,
    CASE
        WHEN SUM(spend) > 0 THEN (SUM(revenue) - SUM(spend)) / SUM(spend)
        ELSE 0
    END as roi,
    CASE
        WHEN SUM(impressions) > 0 THEN SUM(clicks) * 100.0 / SUM(impressions)
        ELSE 0
    END as ctr
FROM ad_revenue
WHERE date BETWEEN @start_date AND @end_date
GROUP BY campaign_name
ORDER BY roi DESC`,
	},

	"ad_trend": {
		Name: "ad_trend", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    date,
    SUM(revenue) as daily_revenue,
    SUM(spend) as daily_spend,
    SUM(clicks) as daily_clicks,
    SUM(impressions) as daily_impressions
FROM ad_revenue
WHERE date BETWEEN @start_date AND @end_date
GROUP BY date
ORDER BY date`,
	},

	"product_ad_performance": {
		Name: "product_ad_performance", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    p.product_name,
    p.category,
    SUM(ar.revenue) as total_revenue,
    SUM(ar.spend) as total_spend,
    SUM(ar.clicks) as total_clicks,
    CASE
        WHEN SUM(ar.spend) > 0 THEN (SUM(ar.revenue) - SUM(ar.spend)) / SUM(ar.spend)
        ELSE 0
    END as roi
FROM ad_revenue ar
JOIN products p ON ar.product_id = p.product_id
WHERE ar.date BETWEEN @start_date AND @end_date
GROUP BY p.product_id, p.product_name, p.category
ORDER BY roi DESC
LIMIT 15`,
	},

	"channel_conversion": {
		Name: "channel_conversion", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    t.channel,
    COUNT(DISTINCT t.traffic_id) as sessions,
    COUNT(DISTINCT s.transaction_id) as orders,
    CASE
        WHEN COUNT(DISTINCT t.traffic_id) > 0 THEN
            COUNT(DISTINCT s.transaction_id) * 100.0 / COUNT(DISTINCT t.traffic_id)
        ELSE 0
    END as conversion_rate
FROM traffic t
LEFT JOIN sales s ON t.customer_id = s.customer_id
    AND s.transaction_date BETWEEN @start_date AND @end_date
WHERE t.session_start BETWEEN @start_date AND @end_date
GROUP BY t.channel
ORDER BY conversion_rate DESC`,
	},

	"roi_trend": {
		Name: "roi_trend", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    DATE_TRUNC('week', date) as week_start,
    SUM(revenue) as weekly_revenue,
    SUM(spend) as weekly_spend,
    CASE
        WHEN SUM(spend) > 0 THEN (SUM(revenue) - SUM(spend)) / SUM(spend)
        ELSE 0
    END as weekly_roi
FROM ad_revenue
WHERE date BETWEEN @start_date AND @end_date
GROUP BY week_start
ORDER BY week_start`,
	},

	"top_ctr_campaigns": {
		Name: "top_ctr_campaigns", Page: PageAdvertising, Params: dateParams,
		SQL: `
SELECT
    campaign_name,
    SUM(clicks) as total_clicks,
    SUM(impressions) as total_impressions,
    CASE
        WHEN SUM(impressions) > 0 THEN SUM(clicks) * 100.0 / SUM(impressions)
        ELSE 0
    END as ctr
FROM ad_revenue
WHERE date BETWEEN @start_date AND @end_date
GROUP BY campaign_name
HAVING SUM(impressions) > 1000
ORDER BY ctr DESC
LIMIT 10`,
	},

	// ===================== 服务质量页 =====================

	"support_metrics": {
		Name: "support_metrics", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type"},
		SQL: `
SELECT
    issue_type,
    COUNT(ticket_id) AS tickets_count,
    AVG(resolution_time_minutes) AS avg_resolution_time,
    COUNT(CASE WHEN resolved THEN 1 END) * 100.0 / COUNT(*) AS resolution_rate
FROM customer_support
WHERE support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR issue_type = @issue_type)
GROUP BY issue_type
ORDER BY tickets_count DESC`,
	},

	"support_trend": {
		Name: "support_trend", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type", "segment", "region"},
		SQL: `
SELECT
    DATE(support_date) AS date,
    COUNT(ticket_id) AS daily_tickets,
    AVG(resolution_time_minutes) AS avg_resolution_time
FROM customer_support
WHERE support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR issue_type = @issue_type)
  AND (@segment IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE segment = @segment
      ))
  AND (@region IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE region = @region
      ))
GROUP BY DATE(support_date)
ORDER BY date`,
	},

	"segment_support": {
		Name: "segment_support", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type", "segment", "region"},
		SQL: `
SELECT
    us.segment,
    COUNT(cs.ticket_id) AS tickets_count,
    AVG(cs.resolution_time_minutes) AS avg_resolution_time,
    COUNT(CASE WHEN cs.resolved THEN 1 END) * 100.0 / COUNT(*) AS resolution_rate
FROM customer_support cs
JOIN user_segments us ON cs.customer_id = us.customer_id
WHERE cs.support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR cs.issue_type = @issue_type)
  AND (@segment IS NULL OR us.segment = @segment)
  AND (@region IS NULL OR us.region = @region)
GROUP BY us.segment
ORDER BY tickets_count DESC`,
	},

	"resolution_time": {
		Name: "resolution_time", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type", "segment", "region"},
		SQL: `
SELECT
    CASE
        WHEN resolution_time_minutes < 60 THEN 'До 1 часа'
        WHEN resolution_time_minutes < 240 THEN '1-4 часа'
        WHEN resolution_time_minutes < 1440 THEN '4-24 часа'
        ELSE 'Более 24 часов'
    END AS resolution_time_bucket,
    COUNT(ticket_id) AS tickets_count,
    AVG(resolution_time_minutes) AS avg_resolution_time
FROM customer_support
WHERE support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR issue_type = @issue_type)
  AND (@segment IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE segment = @segment
      ))
  AND (@region IS NULL OR customer_id IN (
        SELECT customer_id FROM user_segments WHERE region = @region
      ))
GROUP BY resolution_time_bucket
ORDER BY tickets_count DESC`,
	},

	"support_returns": {
		Name: "support_returns", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type", "segment", "region"},
		SQL: `
SELECT
    cs.issue_type,
    COUNT(DISTINCT cs.ticket_id) AS support_tickets,
    COUNT(DISTINCT r.return_id) AS returns_count,
    CASE
        WHEN COUNT(DISTINCT cs.ticket_id) > 0 THEN
            COUNT(DISTINCT r.return_id) * 100.0 / COUNT(DISTINCT cs.ticket_id)
        ELSE 0
    END AS returns_per_ticket
FROM customer_support cs
LEFT JOIN returns r ON cs.customer_id = r.customer_id
  AND r.return_id IN (
      SELECT return_id FROM returns
      WHERE EXISTS (
          SELECT 1 FROM sales s
          WHERE s.transaction_id = returns.transaction_id
            AND s.transaction_date BETWEEN @start_date AND @end_date
      )
  )
WHERE cs.support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR cs.issue_type = @issue_type)
  AND (@segment IS NULL OR cs.customer_id IN (
        SELECT customer_id FROM user_segments WHERE segment = @segment
      ))
  AND (@region IS NULL OR cs.customer_id IN (
        SELECT customer_id FROM user_segments WHERE region = @region
      ))
GROUP BY cs.issue_type
ORDER BY support_tickets DESC`,
	},

	"regional_support": {
		Name: "regional_support", Page: PageService,
		Params: []string{"start_date", "end_date", "issue_type", "segment", "region"},
		SQL: `
SELECT
    us.region,
    COUNT(cs.ticket_id) AS tickets_count,
    AVG(cs.resolution_time_minutes) AS avg_resolution_time,
    COUNT(CASE WHEN cs.resolved THEN 1 END) * 100.0 / COUNT(*) AS resolution_rate
FROM customer_support cs
JOIN user_segments us ON cs.customer_id = us.customer_id
WHERE cs.support_date BETWEEN @start_date AND @end_date
  AND (@issue_type IS NULL OR cs.issue_type = @issue_type)
  AND (@segment IS NULL OR us.segment = @segment)
  AND (@region IS NULL OR us.region = @region)
GROUP BY us.region
ORDER BY tickets_count DESC`,
	},

	// ===================== 过滤器选项 =====================

	"options_categories": {
		Name: "options_categories", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT category
FROM products
WHERE category IS NOT NULL
ORDER BY category`,
	},

	"options_segments": {
		Name: "options_segments", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT segment
FROM user_segments
WHERE segment IS NOT NULL
ORDER BY segment`,
	},

	"options_channels": {
		Name: "options_channels", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT channel
FROM traffic
WHERE channel IS NOT NULL
ORDER BY channel`,
	},

	"options_regions": {
		Name: "options_regions", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT region
FROM user_segments
WHERE region IS NOT NULL
ORDER BY region`,
	},

	"options_suppliers": {
		Name: "options_suppliers", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT supplier_name
FROM suppliers
WHERE supplier_name IS NOT NULL
ORDER BY supplier_name`,
	},

	"options_issue_types": {
		Name: "options_issue_types", Page: PageShared, Params: nil,
		SQL: `
SELECT DISTINCT issue_type
FROM customer_support
WHERE issue_type IS NOT NULL
ORDER BY issue_type`,
	},
}

// Lookup 按名称查找查询定义
func Lookup(name string) (Definition, bool) {
	def, ok := catalog[name]
	return def, ok
}

// Names 返回目录中全部查询名称
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

// PageQueries 返回指定页面的全部查询定义
func PageQueries(page string) []Definition {
	defs := make([]Definition, 0)
	for _, def := range catalog {
		if def.Page == page {
			defs = append(defs, def)
		}
	}
	return defs
}
