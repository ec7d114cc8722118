/*
 * @module service/query/table
 * @description 查询结果表结构,提供空值安全的标量取值方法
 * @architecture 服务层 - 数据访问
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow SQL执行 -> 行扫描 -> Table -> KPI计算/图表映射
 * @rules 查询结果永远是Table,空表表示"无数据"或"查询失败",调用方不做错误分支
 * @dependencies github.com/spf13/cast
 * @refs gateway.go, catalog.go
 */

package query

import (
	"time"

	"github.com/spf13/cast"
)

// Row 一行查询结果,列名到标量值的映射
type Row map[string]interface{}

// Table 一次查询的有序结果集
// 零行的Table是合法值,表示无匹配数据或查询失败
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// EmptyTable 创建空结果表
func EmptyTable() Table {
	return Table{Columns: []string{}, Rows: []Row{}}
}

// Empty 判断结果表是否为空
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Len 返回行数
func (t Table) Len() int {
	return len(t.Rows)
}

// First 返回第一行,空表时返回空Row
func (t Table) First() Row {
	if len(t.Rows) == 0 {
		return Row{}
	}
	return t.Rows[0]
}

// Float 取指定列的浮点值,NULL或缺失列返回0
func (r Row) Float(column string) float64 {
	v, ok := r[column]
	if !ok || v == nil {
		return 0
	}
	return cast.ToFloat64(v)
}

// Int 取指定列的整数值,NULL或缺失列返回0
func (r Row) Int(column string) int64 {
	v, ok := r[column]
	if !ok || v == nil {
		return 0
	}
	return cast.ToInt64(v)
}

// String 取指定列的字符串值,NULL或缺失列返回空字符串
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	if b, isBytes := v.([]byte); isBytes {
		return string(b)
	}
	if tm, isTime := v.(time.Time); isTime {
		return tm.Format("2006-01-02")
	}
	return cast.ToString(v)
}

// Bool 取指定列的布尔值,NULL或缺失列返回false
func (r Row) Bool(column string) bool {
	v, ok := r[column]
	if !ok || v == nil {
		return false
	}
	return cast.ToBool(v)
}

// Floats 按行序提取某一列的浮点值
func (t Table) Floats(column string) []float64 {
	values := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.Float(column))
	}
	return values
}

// Strings 按行序提取某一列的字符串值
func (t Table) Strings(column string) []string {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.String(column))
	}
	return values
}
