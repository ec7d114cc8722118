/*
 * @module service/filters/options
 * @description 过滤器选项加载:各分类维度的去重取值列表
 * @architecture 服务层 - 数据访问编排
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 去重查询 -> 前置"all"选项 -> 下拉选项列表
 * @rules 查询失败退化为只含"all"的选项列表,控件永远可用
 * @dependencies service/query
 * @refs state.go
 */

package filters

import (
	"context"

	"malinka-analytics-service/service/query"
)

// Option 一个下拉选项
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options 全部过滤控件的选项集
type Options struct {
	Categories []Option `json:"categories"`
	Segments   []Option `json:"segments"`
	Channels   []Option `json:"channels"`
	Regions    []Option `json:"regions"`
	Suppliers  []Option `json:"suppliers"`
	IssueTypes []Option `json:"issue_types"`
}

// OptionsLoader 过滤器选项加载器
type OptionsLoader struct {
	gateway *query.Gateway
}

// NewOptionsLoader 创建选项加载器实例
func NewOptionsLoader(gateway *query.Gateway) *OptionsLoader {
	return &OptionsLoader{gateway: gateway}
}

// load 执行去重查询并前置"all"选项
// 空表(含查询失败)时只返回"all",不给出空控件
func (l *OptionsLoader) load(ctx context.Context, queryName, column, allLabel string) []Option {
	options := []Option{{Label: allLabel, Value: All}}

	table := l.gateway.Execute(ctx, queryName, nil)
	for _, value := range table.Strings(column) {
		if value == "" {
			continue
		}
		options = append(options, Option{Label: value, Value: value})
	}
	return options
}

// Load 加载全部过滤控件的选项
func (l *OptionsLoader) Load(ctx context.Context) Options {
	return Options{
		Categories: l.load(ctx, "options_categories", "category", "Все категории"),
		Segments:   l.load(ctx, "options_segments", "segment", "Все сегменты"),
		Channels:   l.load(ctx, "options_channels", "channel", "Все каналы"),
		Regions:    l.load(ctx, "options_regions", "region", "Все регионы"),
		Suppliers:  l.load(ctx, "options_suppliers", "supplier_name", "Все поставщики"),
		IssueTypes: l.load(ctx, "options_issue_types", "issue_type", "Все типы обращений"),
	}
}
