/*
 * @module api/controllers/health_controller
 * @description 健康检查控制器,提供存活与就绪状态检查
 * @architecture MVC架构 - 控制器层
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow HTTP请求处理流程
 * @rules 存活检查不依赖下游;就绪检查需要数据库连通
 * @dependencies net/http, github.com/go-chi/render
 * @refs service/init.go
 */

package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"malinka-analytics-service/service"
)

// HealthController 健康检查控制器
type HealthController struct{}

// NewHealthController 创建健康检查控制器实例
func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Version   string    `json:"version" example:"1.0.0"`
	Service   string    `json:"service" example:"malinka-analytics-service"`
}

// Health 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "malinka-analytics-service",
	}

	render.JSON(w, r, response)
}

// Ready 就绪检查
// @Summary 就绪检查
// @Description 检查服务是否就绪,含数据库连通性
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Service:   "malinka-analytics-service",
	}

	if err := service.GlobalGateway.Ping(r.Context()); err != nil {
		response.Status = "not ready"
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}
