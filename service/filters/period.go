/*
 * @module service/filters/period
 * @description 周期速记解析:把"7d"/"30d"等速记映射为闭区间日期范围
 * @architecture 服务层 - 纯计算
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 速记 + 当前日期 -> (start_date, end_date)
 * @rules 同样的速记和"今天"必须解析出同样的区间;"custom"不解析,保留显式区间
 * @dependencies 无
 * @refs state.go
 */

package filters

import "time"

// DefaultPeriod 默认周期速记
const DefaultPeriod = "30d"

// PeriodCustom 显式日期区间速记,解析器不处理
const PeriodCustom = "custom"

// epochStart "all"周期的固定起点
var epochStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var periodDays = map[string]int{
	"1d":   1,
	"7d":   7,
	"30d":  30,
	"90d":  90,
	"365d": 365,
}

// ResolvePeriod 把周期速记解析为闭区间日期范围
// "custom"返回ok=false,调用方沿用显式区间;未知速记按默认30天处理
func ResolvePeriod(shorthand string, today time.Time) (start, end time.Time, ok bool) {
	if shorthand == PeriodCustom {
		return time.Time{}, time.Time{}, false
	}

	today = today.Truncate(24 * time.Hour)
	if shorthand == "all" {
		return epochStart, today, true
	}

	days, known := periodDays[shorthand]
	if !known {
		days = periodDays[DefaultPeriod]
	}
	return today.AddDate(0, 0, -days), today, true
}
