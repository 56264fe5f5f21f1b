package models

// ChartKind ชนิดของกราฟที่ฝั่ง render รองรับ
type ChartKind string

const (
	ChartKindHistogram ChartKind = "histogram"
	ChartKindBar       ChartKind = "bar"
	ChartKindPie       ChartKind = "pie"
	ChartKindBox       ChartKind = "box"
)

// BoxStats - five-number summary สำหรับกราฟ box หนึ่งกล่อง
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// ChartSeries - หนึ่ง series ของกราฟ (หนึ่งสี หนึ่งชื่อใน legend)
// Labels/Values are parallel slices; Boxes is used only by box charts.
type ChartSeries struct {
	Name   string     `json:"name"`
	Color  string     `json:"color,omitempty"`
	Colors []string   `json:"colors,omitempty"` // สีรายชิ้น ใช้กับ pie
	Labels []string   `json:"labels,omitempty"`
	Values []float64  `json:"values,omitempty"`
	Boxes  []BoxStats `json:"boxes,omitempty"`
}

// ChartSpec - คำอธิบายกราฟแบบ declarative ที่ส่งให้ฝั่ง browser วาด
// Field order is fixed so that identical inputs marshal to identical bytes.
type ChartSpec struct {
	Kind    ChartKind     `json:"kind"`
	Title   string        `json:"title"`
	XAxis   string        `json:"xAxis,omitempty"`
	YAxis   string        `json:"yAxis,omitempty"`
	BarMode string        `json:"barMode,omitempty"` // "group" | "overlay"
	Series  []ChartSeries `json:"series"`
}
