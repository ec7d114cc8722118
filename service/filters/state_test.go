/*
 * @module service/filters/state_test
 * @description 过滤器状态的单元测试
 * @architecture 测试层
 */

package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDefaultState 测试默认过滤器状态
func TestDefaultState(t *testing.T) {
	state := Default(testToday)

	assert.Equal(t, testToday.AddDate(0, 0, -30), state.StartDate)
	assert.Equal(t, testToday, state.EndDate)
	assert.Equal(t, All, state.Category)
	assert.Equal(t, All, state.Segment)
	assert.Equal(t, All, state.Channel)
	assert.Equal(t, All, state.Region)
	assert.Equal(t, All, state.Supplier)
	assert.Equal(t, All, state.IssueType)
}

// TestResolve 测试从控件值构造状态
func TestResolve(t *testing.T) {
	t.Run("速记优先", func(t *testing.T) {
		state := Resolve("7d", "2025-01-01", "2025-02-01", testToday)
		assert.Equal(t, testToday.AddDate(0, 0, -7), state.StartDate)
		assert.Equal(t, testToday, state.EndDate)
	})

	t.Run("custom使用显式日期", func(t *testing.T) {
		state := Resolve("custom", "2025-03-01", "2025-03-15", testToday)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), state.StartDate)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), state.EndDate)
	})

	t.Run("空period按默认30天", func(t *testing.T) {
		state := Resolve("", "", "", testToday)
		assert.Equal(t, testToday.AddDate(0, 0, -30), state.StartDate)
	})

	t.Run("日期格式错误回退默认窗口", func(t *testing.T) {
		state := Resolve("custom", "01.03.2025", "15.03.2025", testToday)
		assert.Equal(t, testToday.AddDate(0, 0, -30), state.StartDate)
		assert.Equal(t, testToday, state.EndDate)
	})

	t.Run("结束早于开始回退默认窗口", func(t *testing.T) {
		state := Resolve("custom", "2025-03-15", "2025-03-01", testToday)
		assert.Equal(t, testToday.AddDate(0, 0, -30), state.StartDate)
	})
}

// TestPreviousWindow 测试环比对照窗口
func TestPreviousWindow(t *testing.T) {
	state := Default(testToday)
	state.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	state.EndDate = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	state.Category = "Электроника"

	prev := state.PreviousWindow()

	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), prev.EndDate)
	assert.Equal(t, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), prev.StartDate)
	// 窗口等长
	assert.Equal(t, state.EndDate.Sub(state.StartDate), prev.EndDate.Sub(prev.StartDate))
	// 维度不变
	assert.Equal(t, "Электроника", prev.Category)
}

// TestStateParams 测试状态到查询参数的归一化
func TestStateParams(t *testing.T) {
	state := Default(testToday)
	state.Category = "Электроника"
	state.Region = ""

	params := state.Params()

	assert.Equal(t, testToday.AddDate(0, 0, -30).Format("2006-01-02"), params["start_date"])
	assert.Equal(t, testToday.Format("2006-01-02"), params["end_date"])
	assert.Equal(t, "Электроника", params["category"])
	// "all"与空值都归一化为nil
	assert.Nil(t, params["segment"])
	assert.Nil(t, params["region"])
	assert.Nil(t, params["supplier"])
	assert.Nil(t, params["issue_type"])
}
