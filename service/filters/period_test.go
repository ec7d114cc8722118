/*
 * @module service/filters/period_test
 * @description 周期速记解析的单元测试
 * @architecture 测试层
 */

package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

// TestResolvePeriod 测试周期速记解析
func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"1天", "1d", testToday.AddDate(0, 0, -1), testToday},
		{"7天", "7d", testToday.AddDate(0, 0, -7), testToday},
		{"30天", "30d", testToday.AddDate(0, 0, -30), testToday},
		{"90天", "90d", testToday.AddDate(0, 0, -90), testToday},
		{"365天", "365d", testToday.AddDate(0, 0, -365), testToday},
		{"全部从固定起点", "all", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), testToday},
		{"未知速记按默认处理", "14x", testToday.AddDate(0, 0, -30), testToday},
		{"空速记按默认处理", "", testToday.AddDate(0, 0, -30), testToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := ResolvePeriod(tt.shorthand, testToday)
			assert.True(t, ok)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

// TestResolvePeriodCustom 测试custom速记不解析
func TestResolvePeriodCustom(t *testing.T) {
	_, _, ok := ResolvePeriod(PeriodCustom, testToday)
	assert.False(t, ok)
}

// TestResolvePeriodDeterministic 测试同输入同输出
func TestResolvePeriodDeterministic(t *testing.T) {
	s1, e1, _ := ResolvePeriod("7d", testToday)
	s2, e2, _ := ResolvePeriod("7d", testToday)
	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}
