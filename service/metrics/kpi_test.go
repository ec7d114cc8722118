/*
 * @module service/metrics/kpi_test
 * @description KPI指标计算的单元测试
 * @architecture 测试层
 */

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"malinka-analytics-service/service/query"
)

// TestSalesSummaryFrom 测试销售KPI计算
func TestSalesSummaryFrom(t *testing.T) {
	t.Run("空表返回零值KPI", func(t *testing.T) {
		summary := SalesSummaryFrom(query.EmptyTable())
		assert.Equal(t, DefaultSalesSummary(), summary)
	})

	t.Run("正常聚合结果", func(t *testing.T) {
		table := query.Table{
			Columns: []string{"total_orders", "total_revenue", "total_returns", "avg_order_value"},
			Rows: []query.Row{{
				"total_orders":    int64(200),
				"total_revenue":   2_500_000.0,
				"total_returns":   10.0,
				"avg_order_value": 12_500.0,
			}},
		}
		summary := SalesSummaryFrom(table)
		assert.Equal(t, "2.5M ₽", summary.TotalRevenue)
		assert.Equal(t, "200", summary.TotalOrders)
		assert.Equal(t, "12.5K ₽", summary.AvgOrderValue)
		assert.Equal(t, "5.0%", summary.ReturnRate)
	})

	t.Run("零订单时退货率为0", func(t *testing.T) {
		table := query.Table{
			Columns: []string{"total_orders", "total_revenue", "total_returns", "avg_order_value"},
			Rows: []query.Row{{
				"total_orders":    int64(0),
				"total_revenue":   nil,
				"total_returns":   5.0,
				"avg_order_value": nil,
			}},
		}
		summary := SalesSummaryFrom(table)
		assert.Equal(t, "0 ₽", summary.TotalRevenue)
		assert.Equal(t, "0.0%", summary.ReturnRate)
	})
}

// TestDelta 测试环比增量显示
func TestDelta(t *testing.T) {
	t.Run("增长为绿色带加号", func(t *testing.T) {
		delta, color := Delta(120, 100, false)
		assert.Equal(t, "+20.0%", delta)
		assert.Equal(t, "green", color)
	})

	t.Run("下降为红色", func(t *testing.T) {
		delta, color := Delta(80, 100, false)
		assert.Equal(t, "-20.0%", delta)
		assert.Equal(t, "red", color)
	})

	t.Run("越低越好的指标颜色反转", func(t *testing.T) {
		delta, color := Delta(120, 100, true)
		assert.Equal(t, "+20.0%", delta)
		assert.Equal(t, "red", color)

		delta, color = Delta(80, 100, true)
		assert.Equal(t, "-20.0%", delta)
		assert.Equal(t, "green", color)
	})

	t.Run("前值为0不显示", func(t *testing.T) {
		delta, color := Delta(100, 0, false)
		assert.Equal(t, "", delta)
		assert.Equal(t, "", color)
	})
}

// TestSalesCards 测试销售KPI卡片与环比增量
func TestSalesCards(t *testing.T) {
	current := query.Table{
		Columns: []string{"total_orders", "total_revenue", "total_returns", "avg_order_value"},
		Rows: []query.Row{{
			"total_orders":    int64(120),
			"total_revenue":   240_000.0,
			"total_returns":   6.0,
			"avg_order_value": 2_000.0,
		}},
	}
	previous := query.Table{
		Columns: []string{"total_orders", "total_revenue", "total_returns", "avg_order_value"},
		Rows: []query.Row{{
			"total_orders":    int64(100),
			"total_revenue":   200_000.0,
			"total_returns":   10.0,
			"avg_order_value": 2_000.0,
		}},
	}

	cards := SalesCards(current, previous)
	assert.Len(t, cards, 4)

	assert.Equal(t, "240.0K ₽", cards[0].Value)
	assert.Equal(t, "+20.0%", cards[0].Delta)
	assert.Equal(t, "green", cards[0].DeltaColor)

	assert.Equal(t, "120", cards[1].Value)
	assert.Equal(t, "+20.0%", cards[1].Delta)

	// 平均客单价不变,无增量
	assert.Equal(t, "", cards[2].Delta)

	// 退货率下降,反向指标为绿色
	assert.Equal(t, "5.0%", cards[3].Value)
	assert.Equal(t, "-50.0%", cards[3].Delta)
	assert.Equal(t, "green", cards[3].DeltaColor)

	// 无对照窗口时卡片不带增量
	plain := SalesCards(current, query.EmptyTable())
	assert.Equal(t, "", plain[0].Delta)
}

// TestZeroGuards 测试除零保护
func TestZeroGuards(t *testing.T) {
	assert.Equal(t, 0.0, ROI(1000, 0))
	assert.Equal(t, 1.0, ROI(2000, 1000))
	assert.Equal(t, 0.0, CTR(50, 0))
	assert.Equal(t, 5.0, CTR(50, 1000))
	assert.Equal(t, 0.0, ConversionRate(10, 0))
	assert.Equal(t, 1.0, ConversionRate(10, 1000))
}

// TestFunnelStageRank 测试漏斗阶段排序权重
func TestFunnelStageRank(t *testing.T) {
	assert.Equal(t, 1, FunnelStageRank("view"))
	assert.Equal(t, 2, FunnelStageRank("click"))
	assert.Equal(t, 3, FunnelStageRank("add_to_cart"))
	assert.Equal(t, 4, FunnelStageRank("wishlist"))
	assert.Equal(t, 5, FunnelStageRank("purchase"))
	assert.Equal(t, 6, FunnelStageRank("unknown_event"))
}

// TestFunnelConversion 测试漏斗整体转化率
func TestFunnelConversion(t *testing.T) {
	table := query.Table{
		Columns: []string{"event_type", "events_count"},
		Rows: []query.Row{
			{"event_type": "view", "events_count": int64(1000)},
			{"event_type": "click", "events_count": int64(300)},
			{"event_type": "purchase", "events_count": int64(10)},
		},
	}
	assert.Equal(t, 1.0, FunnelConversion(table))
	assert.Equal(t, 0.0, FunnelConversion(query.EmptyTable()))
}

// TestLoyaltyTier 测试忠诚度分档
func TestLoyaltyTier(t *testing.T) {
	tests := []struct {
		name     string
		orders   int64
		expected string
	}{
		{"5单及以上为VIP", 5, "VIP"},
		{"大量订单为VIP", 42, "VIP"},
		{"3-4单为常客", 3, "Постоянный"},
		{"4单为常客", 4, "Постоянный"},
		{"1-2单为新客", 1, "Новый"},
		{"2单为新客", 2, "Новый"},
		{"无订单为不活跃", 0, "Неактивный"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LoyaltyTier(tt.orders))
		})
	}
}

// TestAdSummaryFrom 测试广告KPI计算
func TestAdSummaryFrom(t *testing.T) {
	t.Run("空表返回零值KPI", func(t *testing.T) {
		assert.Equal(t, DefaultAdSummary(), AdSummaryFrom(query.EmptyTable()))
	})

	t.Run("多活动汇总", func(t *testing.T) {
		table := query.Table{
			Columns: []string{"campaign_name", "total_spend", "total_revenue", "total_clicks", "total_impressions"},
			Rows: []query.Row{
				{"campaign_name": "A", "total_spend": 1000.0, "total_revenue": 3000.0, "total_clicks": 50.0, "total_impressions": 1000.0},
				{"campaign_name": "B", "total_spend": 1000.0, "total_revenue": 1000.0, "total_clicks": 50.0, "total_impressions": 1000.0},
			},
		}
		summary := AdSummaryFrom(table)
		assert.Equal(t, "2.0K ₽", summary.TotalSpend)
		assert.Equal(t, "4.0K ₽", summary.TotalRevenue)
		assert.Equal(t, "100.0%", summary.AvgROI)
		assert.Equal(t, "5.0%", summary.AvgCTR)
	})
}

// TestCustomerSummaryFrom 测试客户KPI计算
func TestCustomerSummaryFrom(t *testing.T) {
	t.Run("空输入返回零值KPI", func(t *testing.T) {
		summary := CustomerSummaryFrom(query.EmptyTable(), query.EmptyTable(), query.EmptyTable())
		assert.Equal(t, DefaultCustomerSummary(), summary)
	})

	t.Run("LTV与留存率", func(t *testing.T) {
		segments := query.Table{
			Columns: []string{"segment", "users_count"},
			Rows: []query.Row{
				{"segment": "loyal", "users_count": int64(25)},
				{"segment": "new", "users_count": int64(75)},
			},
		}
		funnel := query.Table{
			Columns: []string{"event_type", "events_count"},
			Rows: []query.Row{
				{"event_type": "view", "events_count": int64(1000)},
				{"event_type": "purchase", "events_count": int64(20)},
			},
		}
		trend := query.Table{
			Columns: []string{"date", "daily_revenue"},
			Rows: []query.Row{
				{"date": "2025-06-01", "daily_revenue": 60_000.0},
				{"date": "2025-06-02", "daily_revenue": 40_000.0},
			},
		}

		summary := CustomerSummaryFrom(segments, funnel, trend)
		assert.Equal(t, "100", summary.TotalUsers)
		assert.Equal(t, "2.0%", summary.ConversionRate)
		assert.Equal(t, "1.0K ₽", summary.LTV)
		assert.Equal(t, "25.0%", summary.RetentionRate)
	})
}

// TestServiceSummaryFrom 测试服务质量KPI计算
func TestServiceSummaryFrom(t *testing.T) {
	t.Run("空表返回零值KPI", func(t *testing.T) {
		assert.Equal(t, DefaultServiceSummary(), ServiceSummaryFrom(query.EmptyTable()))
	})

	t.Run("按工单数加权", func(t *testing.T) {
		table := query.Table{
			Columns: []string{"issue_type", "tickets_count", "avg_resolution_time", "resolution_rate"},
			Rows: []query.Row{
				{"issue_type": "delivery", "tickets_count": int64(30), "avg_resolution_time": 100.0, "resolution_rate": 90.0},
				{"issue_type": "payment", "tickets_count": int64(10), "avg_resolution_time": 300.0, "resolution_rate": 50.0},
			},
		}
		summary := ServiceSummaryFrom(table)
		assert.Equal(t, "40", summary.TotalTickets)
		assert.Equal(t, "150 мин", summary.AvgResolutionTime)
		assert.Equal(t, "80.0%", summary.ResolutionRate)
	})
}
