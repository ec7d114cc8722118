/*
 * @module service/dashboard/refresh
 * @description 定时刷新:按固定间隔用默认过滤器重算全部页面,预热查询缓存
 * @architecture 服务层 - 后台任务
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow cron触发 -> 默认过滤器状态 -> 逐页更新 -> 缓存预热
 * @rules 刷新失败只记录日志,不影响下次调度;每轮刷新带独立run_id便于追踪
 * @dependencies service/filters, github.com/robfig/cron/v3, github.com/google/uuid
 * @refs service.go
 */

package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"malinka-analytics-service/service/filters"
)

// Refresher 仪表盘定时刷新器
type Refresher struct {
	service  *Service
	cron     *cron.Cron
	interval time.Duration
}

// NewRefresher 创建刷新器,interval为两次全量刷新的间隔
func NewRefresher(service *Service, interval time.Duration) *Refresher {
	return &Refresher{
		service:  service,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start 注册调度并启动,立刻执行一次预热
func (r *Refresher) Start() error {
	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, r.refreshAll); err != nil {
		return fmt.Errorf("注册刷新任务失败: %w", err)
	}
	r.cron.Start()
	go r.refreshAll()
	return nil
}

// Stop 停止调度,等待进行中的刷新结束
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// refreshAll 用默认过滤器状态重算全部页面
func (r *Refresher) refreshAll() {
	runID := uuid.NewString()
	started := time.Now()
	slog.Info("开始刷新仪表盘", "run_id", runID)

	ctx := context.Background()
	state := filters.Default(time.Now())

	pages := map[string]func(context.Context) PageResult{
		"overview":          func(ctx context.Context) PageResult { return r.service.Overview(ctx, state) },
		"business-sales":    func(ctx context.Context) PageResult { return r.service.BusinessSales(ctx, state) },
		"customer-behavior": func(ctx context.Context) PageResult { return r.service.CustomerBehavior(ctx, state) },
		"advertising":       func(ctx context.Context) PageResult { return r.service.Advertising(ctx, state) },
		"service-quality":   func(ctx context.Context) PageResult { return r.service.ServiceQuality(ctx, state) },
	}
	for page, update := range pages {
		result := update(ctx)
		if result.Error != "" {
			slog.Warn("页面刷新降级", "run_id", runID, "page", page)
		}
	}

	slog.Info("仪表盘刷新完成", "run_id", runID, "duration", time.Since(started).String())
}
