/*
 * @module service/query/gateway
 * @description 数据访问网关,按名称执行目录查询并返回结果表
 * @architecture 服务层 - 数据访问
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 查询名称 -> 参数绑定 -> (可选缓存) -> SQL执行 -> 行扫描 -> Table
 * @rules 失败即降级:任何执行错误记录日志并返回空表,绝不向调用方抛出;
 *        连接由gorm按调用粒度借还,调用方不管理生命周期
 * @dependencies gorm.io/gorm, log/slog, github.com/prometheus/client_golang
 * @refs catalog.go, cache.go
 */

package query

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "malinka_queries_total",
		Help: "已执行的目录查询次数",
	}, []string{"query"})

	queryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "malinka_query_failures_total",
		Help: "执行失败的目录查询次数",
	}, []string{"query"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "malinka_query_cache_hits_total",
		Help: "查询缓存命中次数",
	})
)

// Gateway 数据访问网关
// 持有共享的gorm连接池,可选挂载结果缓存
type Gateway struct {
	db    *gorm.DB
	cache *Cache
}

// NewGateway 创建数据访问网关实例
// cache 为 nil 时直连数据库
func NewGateway(db *gorm.DB, cache *Cache) *Gateway {
	return &Gateway{db: db, cache: cache}
}

// Params 命名参数集合,值为nil表示该维度不过滤(绑定为SQL NULL)
type Params map[string]interface{}

// Execute 按名称执行目录查询
// 未声明的参数绑定为NULL,执行失败返回空表
func (g *Gateway) Execute(ctx context.Context, name string, params Params) Table {
	def, ok := Lookup(name)
	if !ok {
		slog.Error("未知的目录查询", "query", name)
		queryFailures.WithLabelValues(name).Inc()
		return EmptyTable()
	}

	bound := make(map[string]interface{}, len(def.Params))
	for _, p := range def.Params {
		if v, present := params[p]; present {
			bound[p] = v
		} else {
			bound[p] = nil
		}
	}

	if g.cache != nil {
		if table, hit := g.cache.Get(ctx, name, bound); hit {
			cacheHits.Inc()
			return table
		}
	}

	table, err := g.run(ctx, def.SQL, bound)
	queriesTotal.WithLabelValues(name).Inc()
	if err != nil {
		slog.Error("查询执行失败", "query", name, "params", bound, "error", err)
		queryFailures.WithLabelValues(name).Inc()
		return EmptyTable()
	}

	if g.cache != nil {
		g.cache.Set(ctx, name, bound, table)
	}

	return table
}

// ExecuteSQL 执行任意SELECT语句,同样的降级语义
func (g *Gateway) ExecuteSQL(ctx context.Context, sqlText string, params Params) Table {
	table, err := g.run(ctx, sqlText, map[string]interface{}(params))
	if err != nil {
		slog.Error("查询执行失败", "query", sqlText, "params", params, "error", err)
		queryFailures.WithLabelValues("adhoc").Inc()
		return EmptyTable()
	}
	return table
}

// run 绑定命名参数执行SQL并把结果扫描为Table
func (g *Gateway) run(ctx context.Context, sqlText string, named map[string]interface{}) (Table, error) {
	queryCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx := g.db.WithContext(queryCtx)

	var rows *sql.Rows
	var err error
	if len(named) > 0 {
		rows, err = tx.Raw(sqlText, named).Rows()
	} else {
		rows, err = tx.Raw(sqlText).Rows()
	}
	if err != nil {
		return EmptyTable(), err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return EmptyTable(), err
	}

	table := Table{Columns: columns, Rows: []Row{}}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		scanArgs := make([]interface{}, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return EmptyTable(), err
		}

		record := make(Row, len(columns))
		for i, column := range columns {
			record[column] = convertDatabaseValue(values[i])
		}
		table.Rows = append(table.Rows, record)
	}

	if err := rows.Err(); err != nil {
		return EmptyTable(), err
	}

	return table, nil
}

// convertDatabaseValue 统一数据库驱动返回的原始类型
func convertDatabaseValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []byte:
		return string(v)
	default:
		return v
	}
}

// Ping 检查数据库连通性
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
