/*
 * @module api/controllers/dashboard_controller
 * @description 仪表盘控制器,五个分析页面的查询入口
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 查询参数 -> 过滤器状态 -> 页面编排服务 -> 页面结果
 * @rules 参数全部可选,缺省回退默认过滤器;页面失败降级在服务层处理,控制器永远返回200
 * @dependencies net/http, github.com/go-chi/render
 * @refs service/dashboard, service/filters
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"malinka-analytics-service/service"
	"malinka-analytics-service/service/dashboard"
	"malinka-analytics-service/service/filters"
)

// DashboardController 仪表盘控制器
type DashboardController struct {
	service *dashboard.Service
}

// NewDashboardController 创建仪表盘控制器实例
func NewDashboardController() *DashboardController {
	return &DashboardController{service: service.GlobalDashboardService}
}

// stateFromRequest 从查询参数构造过滤器状态
func stateFromRequest(r *http.Request) filters.State {
	q := r.URL.Query()
	state := filters.Resolve(q.Get("period"), q.Get("start_date"), q.Get("end_date"), time.Now())

	if v := q.Get("category"); v != "" {
		state.Category = v
	}
	if v := q.Get("segment"); v != "" {
		state.Segment = v
	}
	if v := q.Get("channel"); v != "" {
		state.Channel = v
	}
	if v := q.Get("region"); v != "" {
		state.Region = v
	}
	if v := q.Get("supplier"); v != "" {
		state.Supplier = v
	}
	if v := q.Get("issue_type"); v != "" {
		state.IssueType = v
	}
	return state
}

// Overview 总览页
// @Summary 总览页数据
// @Description 核心KPI与全局图表
// @Tags 仪表盘
// @Produce json
// @Param period query string false "周期速记: 1d/7d/30d/90d/365d/all/custom"
// @Param start_date query string false "起始日期(custom时生效), 格式2006-01-02"
// @Param end_date query string false "结束日期(custom时生效), 格式2006-01-02"
// @Param category query string false "商品品类, all为不过滤"
// @Param segment query string false "用户分段"
// @Param channel query string false "流量渠道"
// @Param region query string false "区域"
// @Param supplier query string false "供应商"
// @Success 200 {object} APIResponse{data=dashboard.PageResult}
// @Router /dashboard/overview [get]
func (c *DashboardController) Overview(w http.ResponseWriter, r *http.Request) {
	result := c.service.Overview(r.Context(), stateFromRequest(r))
	render.JSON(w, r, SuccessResponse("", result))
}

// BusinessSales 业务销售页
// @Summary 业务销售页数据
// @Description 品类与供应商维度的销售分析
// @Tags 仪表盘
// @Produce json
// @Param period query string false "周期速记"
// @Param category query string false "商品品类"
// @Param supplier query string false "供应商"
// @Success 200 {object} APIResponse{data=dashboard.PageResult}
// @Router /dashboard/business-sales [get]
func (c *DashboardController) BusinessSales(w http.ResponseWriter, r *http.Request) {
	result := c.service.BusinessSales(r.Context(), stateFromRequest(r))
	render.JSON(w, r, SuccessResponse("", result))
}

// CustomerBehavior 客户行为页
// @Summary 客户行为页数据
// @Description 分段、漏斗与忠诚度分析
// @Tags 仪表盘
// @Produce json
// @Param period query string false "周期速记"
// @Param segment query string false "用户分段"
// @Param region query string false "区域"
// @Success 200 {object} APIResponse{data=dashboard.PageResult}
// @Router /dashboard/customer-behavior [get]
func (c *DashboardController) CustomerBehavior(w http.ResponseWriter, r *http.Request) {
	result := c.service.CustomerBehavior(r.Context(), stateFromRequest(r))
	render.JSON(w, r, SuccessResponse("", result))
}

// Advertising 广告营销页
// @Summary 广告营销页数据
// @Description 活动效果、ROI动态与渠道转化
// @Tags 仪表盘
// @Produce json
// @Param period query string false "周期速记"
// @Param channel query string false "流量渠道"
// @Success 200 {object} APIResponse{data=dashboard.PageResult}
// @Router /dashboard/advertising [get]
func (c *DashboardController) Advertising(w http.ResponseWriter, r *http.Request) {
	result := c.service.Advertising(r.Context(), stateFromRequest(r))
	render.JSON(w, r, SuccessResponse("", result))
}

// ServiceQuality 服务质量页
// @Summary 服务质量页数据
// @Description 支持工单指标与退货关联
// @Tags 仪表盘
// @Produce json
// @Param period query string false "周期速记"
// @Param issue_type query string false "工单类型"
// @Param region query string false "区域"
// @Success 200 {object} APIResponse{data=dashboard.PageResult}
// @Router /dashboard/service-quality [get]
func (c *DashboardController) ServiceQuality(w http.ResponseWriter, r *http.Request) {
	result := c.service.ServiceQuality(r.Context(), stateFromRequest(r))
	render.JSON(w, r, SuccessResponse("", result))
}
