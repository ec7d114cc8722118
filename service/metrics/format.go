/*
 * @module service/metrics/format
 * @description 指标显示格式化:货币、百分比、计数
 * @architecture 服务层 - 纯计算
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 数值 -> 显示字符串
 * @rules 货币按数量级缩写(M/K),百分比固定一位小数
 * @dependencies 无
 * @refs kpi.go
 */

package metrics

import (
	"fmt"
	"strings"
)

// FormatCurrency 货币格式化
// >=1,000,000 缩写为M,>=1,000 缩写为K,其余整数显示
func FormatCurrency(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM ₽", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("%.1fK ₽", value/1_000)
	default:
		return fmt.Sprintf("%s ₽", groupDigits(fmt.Sprintf("%.0f", value)))
	}
}

// FormatPercentage 百分比格式化,固定一位小数
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatCount 整数计数格式化,千位分组
func FormatCount(value int64) string {
	return groupDigits(fmt.Sprintf("%d", value))
}

// groupDigits 千位逗号分组
func groupDigits(digits string) string {
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	n := len(digits)
	if n <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if sb.Len() > 0 && !(negative && sb.Len() == 1) {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// PercentageChange 计算百分比变化,前值为0时返回0
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
