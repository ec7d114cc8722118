/*
 * @module service/query/cache
 * @description 查询结果缓存,以(查询名,参数元组)为键的Redis直读缓存
 * @architecture 服务层 - 数据访问
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 取缓存 -> 未命中则查库 -> 写缓存(TTL)
 * @rules 只有时间失效,没有写路径因此不做主动失效;缓存故障静默退化为直连数据库
 * @dependencies github.com/go-redis/redis/v8
 * @refs gateway.go
 */

package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache Redis查询结果缓存
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache 创建查询缓存实例
func NewCache(addr string, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Cache{client: client, ttl: ttl}
}

// cacheKey 构造缓存键:查询名 + 排序后的参数元组
func cacheKey(name string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("malinka:query:")
	sb.WriteString(name)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(":%s=%v", k, params[k]))
	}
	return sb.String()
}

// Get 读取缓存的结果表
func (c *Cache) Get(ctx context.Context, name string, params map[string]interface{}) (Table, bool) {
	data, err := c.client.Get(ctx, cacheKey(name, params)).Bytes()
	if err == redis.Nil {
		return EmptyTable(), false
	}
	if err != nil {
		slog.Warn("缓存读取失败", "query", name, "error", err)
		return EmptyTable(), false
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		slog.Warn("缓存数据解析失败", "query", name, "error", err)
		return EmptyTable(), false
	}
	return table, true
}

// Set 写入结果表,按TTL过期
func (c *Cache) Set(ctx context.Context, name string, params map[string]interface{}, table Table) {
	data, err := json.Marshal(table)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(name, params), data, c.ttl).Err(); err != nil {
		slog.Warn("缓存写入失败", "query", name, "error", err)
	}
}
