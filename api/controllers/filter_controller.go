/*
 * @module api/controllers/filter_controller
 * @description 过滤器控制器,下拉选项与默认状态查询
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow HTTP请求 -> 选项加载器/默认状态 -> JSON响应
 * @rules 选项加载失败降级为只含"all"的列表,在服务层处理
 * @dependencies net/http, github.com/go-chi/render
 * @refs service/filters
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"malinka-analytics-service/service"
	"malinka-analytics-service/service/filters"
)

// FilterController 过滤器控制器
type FilterController struct {
	loader *filters.OptionsLoader
}

// NewFilterController 创建过滤器控制器实例
func NewFilterController() *FilterController {
	return &FilterController{loader: service.GlobalOptionsLoader}
}

// Options 过滤器选项
// @Summary 过滤器选项
// @Description 全部下拉控件的选项列表,首项为"all"
// @Tags 过滤器
// @Produce json
// @Success 200 {object} APIResponse{data=filters.Options}
// @Router /filters/options [get]
func (c *FilterController) Options(w http.ResponseWriter, r *http.Request) {
	options := c.loader.Load(r.Context())
	render.JSON(w, r, SuccessResponse("", options))
}

// Defaults 默认过滤器状态
// @Summary 默认过滤器状态
// @Description 重置控件用的默认取值:最近30天,所有维度为"all"
// @Tags 过滤器
// @Produce json
// @Success 200 {object} APIResponse{data=filters.State}
// @Router /filters/defaults [get]
func (c *FilterController) Defaults(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SuccessResponse("", filters.Default(time.Now())))
}
