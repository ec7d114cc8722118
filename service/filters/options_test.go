/*
 * @module service/filters/options_test
 * @description 过滤器选项加载的单元测试
 * @architecture 测试层
 */

package filters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"malinka-analytics-service/service/query"
	"malinka-analytics-service/testutil"
)

// TestOptionsLoad 测试选项加载与"all"前置
func TestOptionsLoad(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)
	factory := testutil.NewTestDataFactory(tdb.DB)

	factory.CreateSupplier(1, "ООО Ромашка", 4.5)
	factory.CreateProduct(1, "Смартфон", "Электроника", 1000, 1)
	factory.CreateProduct(2, "Куртка", "Одежда", 500, 1)
	factory.CreateUserSegment(1, "loyal", "Москва")
	factory.CreateTraffic(1, 1, "organic", "mobile", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	factory.CreateSupportTicket(1, 1, "delivery", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 60, true)

	loader := NewOptionsLoader(query.NewGateway(tdb.DB, nil))
	options := loader.Load(context.Background())

	// 首项永远是"all"
	require.NotEmpty(t, options.Categories)
	assert.Equal(t, Option{Label: "Все категории", Value: All}, options.Categories[0])

	// 去重取值按字母序跟在后面
	assert.Equal(t, []Option{
		{Label: "Все категории", Value: All},
		{Label: "Одежда", Value: "Одежда"},
		{Label: "Электроника", Value: "Электроника"},
	}, options.Categories)

	assert.Equal(t, Option{Label: "Все сегменты", Value: All}, options.Segments[0])
	assert.Len(t, options.Segments, 2)
	assert.Len(t, options.Channels, 2)
	assert.Len(t, options.Regions, 2)
	assert.Len(t, options.Suppliers, 2)
	assert.Len(t, options.IssueTypes, 2)
}

// TestOptionsLoadEmptyDatabase 测试空库时控件仍可用
func TestOptionsLoadEmptyDatabase(t *testing.T) {
	tdb := testutil.NewTestDB()
	t.Cleanup(tdb.Close)

	loader := NewOptionsLoader(query.NewGateway(tdb.DB, nil))
	options := loader.Load(context.Background())

	assert.Equal(t, []Option{{Label: "Все категории", Value: All}}, options.Categories)
	assert.Equal(t, []Option{{Label: "Все типы обращений", Value: All}}, options.IssueTypes)
}
