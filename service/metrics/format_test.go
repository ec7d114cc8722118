/*
 * @module service/metrics/format_test
 * @description 指标格式化的单元测试
 * @architecture 测试层
 */

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatCurrency 测试货币格式化
func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"百万级缩写", 1_500_000, "1.5M ₽"},
		{"千级缩写", 2_500, "2.5K ₽"},
		{"整数显示", 500, "500 ₽"},
		{"零值", 0, "0 ₽"},
		{"千级边界", 1_000, "1.0K ₽"},
		{"百万级边界", 1_000_000, "1.0M ₽"},
		{"千级以下边界", 999, "999 ₽"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

// TestFormatPercentage 测试百分比格式化
func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercentage(0))
	assert.Equal(t, "12.5%", FormatPercentage(12.5))
	assert.Equal(t, "100.0%", FormatPercentage(100))
	assert.Equal(t, "3.1%", FormatPercentage(3.14))
}

// TestFormatCount 测试计数格式化
func TestFormatCount(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected string
	}{
		{"零值", 0, "0"},
		{"三位以内", 999, "999"},
		{"千位分组", 1000, "1,000"},
		{"百万分组", 1234567, "1,234,567"},
		{"负数分组", -1234, "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCount(tt.value))
		})
	}
}

// TestPercentageChange 测试环比变化计算
func TestPercentageChange(t *testing.T) {
	assert.Equal(t, 0.0, PercentageChange(100, 0))
	assert.Equal(t, 100.0, PercentageChange(200, 100))
	assert.Equal(t, -50.0, PercentageChange(50, 100))
}
