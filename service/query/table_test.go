/*
 * @module service/query/table_test
 * @description 结果表与空值安全访问器的单元测试
 * @architecture 测试层
 */

package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRowAccessors 测试行访问器的空值安全
func TestRowAccessors(t *testing.T) {
	row := Row{
		"revenue":  1234.5,
		"orders":   int64(42),
		"name":     "Электроника",
		"raw":      []byte("текст"),
		"date":     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		"resolved": true,
		"missing":  nil,
	}

	assert.Equal(t, 1234.5, row.Float("revenue"))
	assert.Equal(t, int64(42), row.Int("orders"))
	assert.Equal(t, "Электроника", row.String("name"))
	assert.Equal(t, "текст", row.String("raw"))
	assert.Equal(t, "2025-06-01", row.String("date"))
	assert.True(t, row.Bool("resolved"))

	// NULL与缺失列都按零值处理
	assert.Equal(t, 0.0, row.Float("missing"))
	assert.Equal(t, int64(0), row.Int("missing"))
	assert.Equal(t, "", row.String("missing"))
	assert.Equal(t, 0.0, row.Float("no_such_column"))
}

// TestTableHelpers 测试表辅助方法
func TestTableHelpers(t *testing.T) {
	table := Table{
		Columns: []string{"category", "revenue"},
		Rows: []Row{
			{"category": "A", "revenue": 100.0},
			{"category": "B", "revenue": 200.0},
		},
	}

	assert.False(t, table.Empty())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "A", table.First().String("category"))
	assert.Equal(t, []float64{100, 200}, table.Floats("revenue"))
	assert.Equal(t, []string{"A", "B"}, table.Strings("category"))

	empty := EmptyTable()
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Len())
	assert.NotNil(t, empty.Rows)
}
