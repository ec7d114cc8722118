/*
 * @module service/charts/spec
 * @description 声明式图表规格:图表类型、系列、轴绑定与编码元数据
 * @architecture 服务层 - 数据传输对象
 * @documentReference ai_docs/query_pipeline_design.md
 * @stateFlow 结果表 -> 图表规格 -> 前端渲染
 * @rules 空数据也必须产出同类型的占位规格,渲染层不做特殊分支;
 *        颜色与连续色阶只是描述性元数据,不承载行为
 * @dependencies 无
 * @refs builder.go
 */

package charts

// 图表类型
const (
	KindLine     = "line"
	KindBar      = "bar"
	KindPie      = "pie"
	KindFunnel   = "funnel"
	KindScatter  = "scatter"
	KindTreemap  = "treemap"
	KindSunburst = "sunburst"
)

// NoDataTitle 空数据占位标题
const NoDataTitle = "Нет данных"

// Point 一个数据点
// 散点图用X作横轴值、Size作点径,其余图表只用Label/Value
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Series 一条数据系列
// Axis: primary/secondary 双轴绑定;Panel: 多面板图的面板下标
type Series struct {
	Name   string  `json:"name"`
	Axis   string  `json:"axis,omitempty"`
	Panel  int     `json:"panel,omitempty"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points"`
}

// Spec 一张图表的声明式规格
type Spec struct {
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	XTitle      string   `json:"x_title,omitempty"`
	YTitle      string   `json:"y_title,omitempty"`
	Y2Title     string   `json:"y2_title,omitempty"`
	PanelTitles []string `json:"panel_titles,omitempty"`
	Orientation string   `json:"orientation,omitempty"`
	TextInfo    string   `json:"text_info,omitempty"`
	HoverMode   string   `json:"hover_mode,omitempty"`
	ColorScale  string   `json:"color_scale,omitempty"`
	Hole        float64  `json:"hole,omitempty"`
	ShowLegend  bool     `json:"show_legend"`
	Series      []Series `json:"series"`
}

// Placeholder 构造指定类型的"无数据"占位规格
// 与有数据的规格同构,渲染层无需判空
func Placeholder(kind string) Spec {
	return Spec{
		Kind:   kind,
		Title:  NoDataTitle,
		Series: []Series{},
	}
}

// Empty 判断规格是否为占位规格
func (s Spec) Empty() bool {
	return len(s.Series) == 0
}
