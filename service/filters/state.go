/*
 * @module service/filters/state
 * @description 过滤器状态:当前选中的日期范围与各分类维度
 * @architecture 服务层 - 请求作用域值对象
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow UI控件值 -> State -> 查询参数集
 * @rules 外部API接受"all"哨兵,进入查询前统一归一化为NULL参数;
 *        日期解析失败回退默认30天窗口并记录日志;下游各层只读State
 * @dependencies service/query
 * @refs period.go, options.go
 */

package filters

import (
	"log/slog"
	"time"

	"malinka-analytics-service/service/query"
)

// All 分类维度的"不过滤"哨兵值
const All = "all"

// dateLayout 日期控件的取值格式
const dateLayout = "2006-01-02"

// State 当前生效的过滤器取值
// 分类维度保留UI哨兵,构造查询参数时再归一化
type State struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Category  string    `json:"category"`
	Segment   string    `json:"segment"`
	Channel   string    `json:"channel"`
	Region    string    `json:"region"`
	Supplier  string    `json:"supplier"`
	IssueType string    `json:"issue_type"`
}

// Default 默认过滤器状态:最近30天,所有分类维度为"all"
func Default(today time.Time) State {
	start, end, _ := ResolvePeriod(DefaultPeriod, today)
	return State{
		StartDate: start,
		EndDate:   end,
		Category:  All,
		Segment:   All,
		Channel:   All,
		Region:    All,
		Supplier:  All,
		IssueType: All,
	}
}

// Resolve 从UI控件值构造过滤器状态
// period速记优先;"custom"时解析显式日期,失败回退默认窗口
func Resolve(period, startDate, endDate string, today time.Time) State {
	state := Default(today)

	if period == "" {
		period = DefaultPeriod
	}

	if start, end, ok := ResolvePeriod(period, today); ok {
		state.StartDate = start
		state.EndDate = end
		return state
	}

	start, errStart := time.Parse(dateLayout, startDate)
	end, errEnd := time.Parse(dateLayout, endDate)
	if errStart != nil || errEnd != nil || end.Before(start) {
		slog.Warn("日期解析失败,回退默认窗口",
			"start_date", startDate, "end_date", endDate)
		return state
	}

	state.StartDate = start
	state.EndDate = end
	return state
}

// PreviousWindow 返回紧邻当前窗口之前的等长窗口,其余维度不变
// 用于KPI环比对照
func (s State) PreviousWindow() State {
	days := int(s.EndDate.Sub(s.StartDate).Hours() / 24)
	prev := s
	prev.EndDate = s.StartDate.AddDate(0, 0, -1)
	prev.StartDate = prev.EndDate.AddDate(0, 0, -days)
	return prev
}

// dimension "all"与空值归一化为nil,绑定为SQL NULL
func dimension(value string) interface{} {
	if value == "" || value == All {
		return nil
	}
	return value
}

// Params 把过滤器状态展开为查询参数集
// 每个可选维度都能表达为无操作值,模板无论过滤与否统一组合
func (s State) Params() query.Params {
	return query.Params{
		"start_date": s.StartDate.Format(dateLayout),
		"end_date":   s.EndDate.Format(dateLayout),
		"category":   dimension(s.Category),
		"segment":    dimension(s.Segment),
		"channel":    dimension(s.Channel),
		"region":     dimension(s.Region),
		"supplier":   dimension(s.Supplier),
		"issue_type": dimension(s.IssueType),
	}
}
