/*
 * @module service/init
 * @description 服务初始化模块,负责数据库连接、缓存、仪表盘服务与定时刷新的装配
 * @architecture 分层架构 - 服务层
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 应用启动时执行初始化流程
 * @rules 确保数据库连接可用后才提供API服务;缓存与刷新为可选组件,按环境变量开关
 * @dependencies gorm.io/gorm, gorm.io/driver/postgres, github.com/joho/godotenv
 * @refs service/query, service/dashboard, service/filters
 */

package service

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"malinka-analytics-service/service/dashboard"
	"malinka-analytics-service/service/filters"
	"malinka-analytics-service/service/query"
)

var (
	DB                     *gorm.DB
	GlobalGateway          *query.Gateway
	GlobalDashboardService *dashboard.Service
	GlobalOptionsLoader    *filters.OptionsLoader
	GlobalRefresher        *dashboard.Refresher
)

func init() {
	// .env缺失不是错误,容器环境直接注入变量
	_ = godotenv.Load()

	initDatabase()
	initServices()
}

// initDatabase 初始化数据库连接
func initDatabase() {
	var dsn string

	// 优先使用DATABASE_URL环境变量
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		dsn = databaseURL
	} else {
		host := getEnvWithDefault("DB_HOST", "localhost")
		port := getEnvWithDefault("DB_PORT", "5432")
		user := getEnvWithDefault("DB_USER", "postgres")
		password := getEnvWithDefault("DB_PASSWORD", "postgres")
		dbname := getEnvWithDefault("DB_NAME", "malinka")
		sslmode := getEnvWithDefault("DB_SSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	log.Println("数据库连接成功")
}

// getEnvWithDefault 获取环境变量,如果不存在则返回默认值
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvSeconds 获取以秒计的环境变量时长
func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
		log.Printf("环境变量%s取值无效: %s,使用默认值", key, value)
	}
	return time.Duration(defaultSeconds) * time.Second
}

// initServices 初始化服务
func initServices() {
	var cache *query.Cache
	if getEnvWithDefault("ENABLE_CACHE", "false") == "true" {
		addr := getEnvWithDefault("REDIS_ADDR", "localhost:6379")
		ttl := getEnvSeconds("CACHE_TIMEOUT", 300)
		cache = query.NewCache(addr, ttl)
		log.Printf("查询缓存已启用: %s, TTL=%s", addr, ttl)
	}

	GlobalGateway = query.NewGateway(DB, cache)
	GlobalDashboardService = dashboard.NewService(GlobalGateway)
	GlobalOptionsLoader = filters.NewOptionsLoader(GlobalGateway)

	GlobalRefresher = dashboard.NewRefresher(GlobalDashboardService, getEnvSeconds("REFRESH_INTERVAL", 300))
	if err := GlobalRefresher.Start(); err != nil {
		log.Printf("启动定时刷新失败: %v", err)
	}

	log.Println("服务初始化完成")
}
