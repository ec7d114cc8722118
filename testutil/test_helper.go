/*
 * @module testutil/test_helper
 * @description 测试工具和辅助函数
 * @architecture 测试基础设施 - 提供测试通用工具和数据工厂
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 测试环境初始化 -> 测试数据创建 -> 测试执行 -> 清理资源
 * @rules 提供可重用的测试工具,确保测试环境的一致性;建表语句与目录查询引用的列保持同步
 * @dependencies gorm, sqlite, time
 * @refs service/query/catalog.go
 */

package testutil

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 市场平台分析库的表结构,列集合覆盖目录查询引用的全部列
var schemaDDL = []string{
	`CREATE TABLE products (
		product_id INTEGER PRIMARY KEY,
		product_name TEXT,
		category TEXT,
		price REAL,
		supplier_id INTEGER
	)`,
	`CREATE TABLE sales (
		transaction_id INTEGER PRIMARY KEY,
		product_id INTEGER,
		customer_id INTEGER,
		quantity INTEGER,
		transaction_date TEXT
	)`,
	`CREATE TABLE returns (
		return_id INTEGER PRIMARY KEY,
		transaction_id INTEGER,
		customer_id INTEGER,
		reason TEXT
	)`,
	`CREATE TABLE suppliers (
		supplier_id INTEGER PRIMARY KEY,
		supplier_name TEXT,
		rating REAL
	)`,
	`CREATE TABLE inventory (
		product_id INTEGER,
		stock_quantity INTEGER
	)`,
	`CREATE TABLE events (
		event_id INTEGER PRIMARY KEY,
		customer_id INTEGER,
		event_type TEXT,
		event_timestamp TEXT
	)`,
	`CREATE TABLE user_segments (
		customer_id INTEGER PRIMARY KEY,
		segment TEXT,
		region TEXT
	)`,
	`CREATE TABLE traffic (
		traffic_id INTEGER PRIMARY KEY,
		customer_id INTEGER,
		channel TEXT,
		device TEXT,
		session_start TEXT
	)`,
	`CREATE TABLE ad_revenue (
		date TEXT,
		campaign_name TEXT,
		product_id INTEGER,
		revenue REAL,
		spend REAL,
		clicks INTEGER,
		impressions INTEGER
	)`,
	`CREATE TABLE customer_support (
		ticket_id INTEGER PRIMARY KEY,
		customer_id INTEGER,
		issue_type TEXT,
		support_date TEXT,
		resolution_time_minutes REAL,
		resolved INTEGER
	)`,
}

// TestDB 测试数据库配置
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB 创建内存测试数据库并建表
func NewTestDB() *TestDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect test database: %v", err))
	}

	for _, ddl := range schemaDDL {
		if err := db.Exec(ddl).Error; err != nil {
			panic(fmt.Sprintf("failed to create test schema: %v", err))
		}
	}

	return &TestDB{DB: db}
}

// CleanDB 清理数据库
func (tdb *TestDB) CleanDB() {
	tables := []string{
		"products",
		"sales",
		"returns",
		"suppliers",
		"inventory",
		"events",
		"user_segments",
		"traffic",
		"ad_revenue",
		"customer_support",
	}

	for _, table := range tables {
		tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table))
	}
}

// Close 关闭数据库连接
func (tdb *TestDB) Close() {
	if db, err := tdb.DB.DB(); err == nil {
		db.Close()
	}
}

// TestDataFactory 测试数据工厂
type TestDataFactory struct {
	DB *gorm.DB
}

// NewTestDataFactory 创建测试数据工厂
func NewTestDataFactory(db *gorm.DB) *TestDataFactory {
	return &TestDataFactory{DB: db}
}

func (f *TestDataFactory) exec(sql string, args ...interface{}) {
	if err := f.DB.Exec(sql, args...).Error; err != nil {
		panic(fmt.Sprintf("failed to seed test data: %v", err))
	}
}

// CreateSupplier 创建测试供应商
func (f *TestDataFactory) CreateSupplier(id int, name string, rating float64) {
	f.exec(`INSERT INTO suppliers (supplier_id, supplier_name, rating) VALUES (?, ?, ?)`,
		id, name, rating)
}

// CreateProduct 创建测试商品
func (f *TestDataFactory) CreateProduct(id int, name, category string, price float64, supplierID int) {
	f.exec(`INSERT INTO products (product_id, product_name, category, price, supplier_id) VALUES (?, ?, ?, ?, ?)`,
		id, name, category, price, supplierID)
}

// CreateSale 创建测试销售记录
func (f *TestDataFactory) CreateSale(id, productID, customerID, quantity int, date time.Time) {
	f.exec(`INSERT INTO sales (transaction_id, product_id, customer_id, quantity, transaction_date) VALUES (?, ?, ?, ?, ?)`,
		id, productID, customerID, quantity, date.Format("2006-01-02"))
}

// CreateReturn 创建测试退货记录
func (f *TestDataFactory) CreateReturn(id, transactionID, customerID int, reason string) {
	f.exec(`INSERT INTO returns (return_id, transaction_id, customer_id, reason) VALUES (?, ?, ?, ?)`,
		id, transactionID, customerID, reason)
}

// CreateInventory 创建测试库存记录
func (f *TestDataFactory) CreateInventory(productID, stock int) {
	f.exec(`INSERT INTO inventory (product_id, stock_quantity) VALUES (?, ?)`,
		productID, stock)
}

// CreateEvent 创建测试用户事件
func (f *TestDataFactory) CreateEvent(id, customerID int, eventType string, ts time.Time) {
	f.exec(`INSERT INTO events (event_id, customer_id, event_type, event_timestamp) VALUES (?, ?, ?, ?)`,
		id, customerID, eventType, ts.Format("2006-01-02"))
}

// CreateUserSegment 创建测试用户分段
func (f *TestDataFactory) CreateUserSegment(customerID int, segment, region string) {
	f.exec(`INSERT INTO user_segments (customer_id, segment, region) VALUES (?, ?, ?)`,
		customerID, segment, region)
}

// CreateTraffic 创建测试流量会话
func (f *TestDataFactory) CreateTraffic(id, customerID int, channel, device string, start time.Time) {
	f.exec(`INSERT INTO traffic (traffic_id, customer_id, channel, device, session_start) VALUES (?, ?, ?, ?, ?)`,
		id, customerID, channel, device, start.Format("2006-01-02"))
}

// CreateAdRevenue 创建测试广告投放记录
func (f *TestDataFactory) CreateAdRevenue(date time.Time, campaign string, productID int, revenue, spend float64, clicks, impressions int) {
	f.exec(`INSERT INTO ad_revenue (date, campaign_name, product_id, revenue, spend, clicks, impressions) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		date.Format("2006-01-02"), campaign, productID, revenue, spend, clicks, impressions)
}

// CreateSupportTicket 创建测试支持工单
func (f *TestDataFactory) CreateSupportTicket(id, customerID int, issueType string, date time.Time, resolutionMinutes float64, resolved bool) {
	f.exec(`INSERT INTO customer_support (ticket_id, customer_id, issue_type, support_date, resolution_time_minutes, resolved) VALUES (?, ?, ?, ?, ?, ?)`,
		id, customerID, issueType, date.Format("2006-01-02"), resolutionMinutes, resolved)
}
