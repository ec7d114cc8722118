/*
 * @module service/dashboard/service
 * @description 仪表盘页面编排服务:读取过滤器状态,执行目录查询,产出KPI卡片与图表规格
 * @architecture 服务层 - 页面控制器
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 触发事件 -> 过滤器状态 -> Gateway查询 -> 聚合/图表映射 -> 原子化页面结果
 * @rules 页面结果一次性整体返回,不做部分更新;管线任何一步失败,
 *        整页输出统一替换为占位,错误只进日志
 * @dependencies service/query, service/filters, service/metrics, service/charts
 * @refs overview.go, business_sales.go, customer_behavior.go, advertising.go, service_quality.go
 */

package dashboard

import (
	"log/slog"
	"time"

	"malinka-analytics-service/service/charts"
	"malinka-analytics-service/service/metrics"
	"malinka-analytics-service/service/query"
)

// loadFailedMessage 页面级失败时展示在KPI卡片位置的提示
const loadFailedMessage = "Ошибка загрузки данных"

// PageResult 一个页面的完整更新结果
// Charts 按稳定的输出槽位标识索引
type PageResult struct {
	Page      string                 `json:"page"`
	Cards     []metrics.Card         `json:"cards"`
	Charts    map[string]charts.Spec `json:"charts"`
	Error     string                 `json:"error,omitempty"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Service 仪表盘编排服务,持有注入的数据访问网关
type Service struct {
	gateway *query.Gateway
}

// NewService 创建仪表盘编排服务实例
func NewService(gateway *query.Gateway) *Service {
	return &Service{gateway: gateway}
}

// placeholderResult 构造整页占位结果:每个槽位同类型"无数据"图表,一条错误提示
func placeholderResult(page string, slots map[string]string) PageResult {
	specs := make(map[string]charts.Spec, len(slots))
	for slot, kind := range slots {
		specs[slot] = charts.Placeholder(kind)
	}
	return PageResult{
		Page:      page,
		Cards:     []metrics.Card{},
		Charts:    specs,
		Error:     loadFailedMessage,
		UpdatedAt: time.Now(),
	}
}

// safeUpdate 页面级降级保护
// 管线内任何panic被捕获并记录,整页输出替换为占位结果
func safeUpdate(page string, slots map[string]string, build func() PageResult) (result PageResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("页面更新失败", "page", page, "panic", r)
			result = placeholderResult(page, slots)
		}
	}()
	return build()
}
