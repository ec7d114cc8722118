/*
 * @module service/dashboard/service_test
 * @description 仪表盘页面编排的单元测试,使用内存数据库走完整管线
 * @architecture 测试层
 */

package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malinka-analytics-service/service/charts"
	"malinka-analytics-service/service/filters"
	"malinka-analytics-service/service/query"
	"malinka-analytics-service/testutil"
)

func newTestService(t *testing.T) (*Service, *testutil.TestDataFactory) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	return NewService(query.NewGateway(tdb.DB, nil)), testutil.NewTestDataFactory(tdb.DB)
}

func testState() filters.State {
	state := filters.Default(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	state.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state.EndDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	return state
}

// TestOverviewEmptyDatabase 测试空库时总览页降级输出
func TestOverviewEmptyDatabase(t *testing.T) {
	service, _ := newTestService(t)

	result := service.Overview(context.Background(), testState())

	assert.Equal(t, "overview", result.Page)
	assert.Empty(t, result.Error)

	// KPI聚合在空库返回单行NULL,卡片显示零值
	require.Len(t, result.Cards, 4)
	assert.Equal(t, "Общая выручка", result.Cards[0].Title)
	assert.Equal(t, "0 ₽", result.Cards[0].Value)
	assert.Equal(t, "0", result.Cards[1].Value)
	assert.Equal(t, "0 ₽", result.Cards[2].Value)
	assert.Equal(t, "0.0%", result.Cards[3].Value)

	// 每个槽位都是同类型占位图表
	require.Len(t, result.Charts, len(overviewSlots))
	for slot, kind := range overviewSlots {
		spec, ok := result.Charts[slot]
		require.True(t, ok, slot)
		assert.Equal(t, kind, spec.Kind, slot)
		assert.Equal(t, charts.NoDataTitle, spec.Title, slot)
	}
}

// TestAllPagesEmptyDatabase 测试空库时五个页面都不会异常
func TestAllPagesEmptyDatabase(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	state := testState()

	pages := map[string]PageResult{
		"overview":          service.Overview(ctx, state),
		"business-sales":    service.BusinessSales(ctx, state),
		"customer-behavior": service.CustomerBehavior(ctx, state),
		"advertising":       service.Advertising(ctx, state),
		"service-quality":   service.ServiceQuality(ctx, state),
	}

	for page, result := range pages {
		assert.Equal(t, page, result.Page)
		assert.NotEmpty(t, result.Charts, page)
		assert.False(t, result.UpdatedAt.IsZero(), page)
	}

	assert.Equal(t, "0", pages["customer-behavior"].Cards[0].Value)
	assert.Equal(t, "0 ₽", pages["advertising"].Cards[0].Value)
	assert.Equal(t, "0", pages["service-quality"].Cards[0].Value)
}

// TestOverviewWithData 测试有数据时总览页的KPI与图表
func TestOverviewWithData(t *testing.T) {
	service, factory := newTestService(t)

	factory.CreateSupplier(1, "ООО Ромашка", 4.5)
	factory.CreateProduct(1, "Смартфон", "Электроника", 1000, 1)
	factory.CreateSale(1, 1, 10, 2, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateSale(2, 1, 11, 1, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	factory.CreateUserSegment(10, "loyal", "Москва")
	factory.CreateEvent(1, 10, "view", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	factory.CreateEvent(2, 10, "purchase", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	result := service.Overview(context.Background(), testState())

	require.Len(t, result.Cards, 4)
	assert.Equal(t, "3.0K ₽", result.Cards[0].Value)
	assert.Equal(t, "2", result.Cards[1].Value)

	trend := result.Charts["sales-trend-chart"]
	require.False(t, trend.Empty())
	assert.Equal(t, charts.KindLine, trend.Kind)
	assert.Len(t, trend.Series[0].Points, 2)

	funnel := result.Charts["funnel-chart"]
	require.False(t, funnel.Empty())
	assert.Equal(t, "view", funnel.Series[0].Points[0].Label)
	assert.Equal(t, "purchase", funnel.Series[0].Points[1].Label)

	segmentation := result.Charts["segmentation-chart"]
	require.False(t, segmentation.Empty())
	assert.Equal(t, "loyal", segmentation.Series[0].Points[0].Label)
}

// TestBusinessSalesCategoryFilter 测试业务销售页的品类过滤
func TestBusinessSalesCategoryFilter(t *testing.T) {
	service, factory := newTestService(t)

	factory.CreateSupplier(1, "ООО Ромашка", 4.5)
	factory.CreateProduct(1, "Смартфон", "Электроника", 1000, 1)
	factory.CreateProduct(2, "Куртка", "Одежда", 500, 1)
	factory.CreateSale(1, 1, 10, 1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateSale(2, 2, 11, 1, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	state := testState()
	state.Category = "Электроника"

	result := service.BusinessSales(context.Background(), state)

	require.Len(t, result.Cards, 4)
	assert.Equal(t, "1.0K ₽", result.Cards[0].Value)
	assert.Equal(t, "1", result.Cards[1].Value)
}

// TestPlaceholderResult 测试整页占位结果的构造
func TestPlaceholderResult(t *testing.T) {
	result := placeholderResult("overview", overviewSlots)

	assert.Equal(t, "overview", result.Page)
	assert.Equal(t, loadFailedMessage, result.Error)
	assert.Empty(t, result.Cards)
	assert.Len(t, result.Charts, len(overviewSlots))
	for slot, kind := range overviewSlots {
		assert.Equal(t, kind, result.Charts[slot].Kind, slot)
	}
}

// TestSafeUpdateRecovers 测试页面级panic被捕获并降级
func TestSafeUpdateRecovers(t *testing.T) {
	result := safeUpdate("overview", overviewSlots, func() PageResult {
		panic("页面构建异常")
	})

	assert.Equal(t, "overview", result.Page)
	assert.Equal(t, loadFailedMessage, result.Error)
	assert.Len(t, result.Charts, len(overviewSlots))
}
