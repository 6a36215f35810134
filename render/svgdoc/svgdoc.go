// Package svgdoc 把绘制调用记录为 SVG 元素，按顺序输出为文档。
package svgdoc

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/zooyer/drawpanel/core"
)

const fontStyle = "font-family:sans-serif;font-size:10px"

// Document 矢量绘图表面，Clear 后重新开始记录
type Document struct {
	width, height int
	elements      []func(canvas *svg.SVG)
}

func New(width, height int) *Document {
	return &Document{width: width, height: height}
}

func round(f float64) int {
	return int(math.Round(f))
}

func (d *Document) FillShape(g core.Geometry, color string) {
	style := fmt.Sprintf("fill:%s;stroke:none", color)

	switch shape := g.(type) {
	case core.Disc:
		d.elements = append(d.elements, func(canvas *svg.SVG) {
			canvas.Circle(round(shape.Center.X), round(shape.Center.Y), round(shape.Radius), style)
		})
	case core.Polygon:
		xs := make([]int, 0, len(shape.Vertices))
		ys := make([]int, 0, len(shape.Vertices))
		for _, v := range shape.Vertices {
			xs = append(xs, round(v.X))
			ys = append(ys, round(v.Y))
		}
		d.elements = append(d.elements, func(canvas *svg.SVG) {
			canvas.Polygon(xs, ys, style)
		})
	default:
		box := g.BBox()
		d.elements = append(d.elements, func(canvas *svg.SVG) {
			canvas.Rect(round(box.Min.X), round(box.Min.Y), round(box.Width()), round(box.Height()), style)
		})
	}
}

// StrokeText 文字只描边不填充
func (d *Document) StrokeText(text string, x, y float64, color string) {
	style := fmt.Sprintf("%s;fill:none;stroke:%s;stroke-width:0.5", fontStyle, color)
	d.elements = append(d.elements, func(canvas *svg.SVG) {
		canvas.Text(round(x), round(y), text, style)
	})
}

func (d *Document) Bounds() (width, height int) {
	return d.width, d.height
}

func (d *Document) Clear() {
	d.elements = nil
}

// Len 已记录的元素数
func (d *Document) Len() int {
	return len(d.elements)
}

// WriteTo 输出完整的 SVG 文档
func (d *Document) WriteTo(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(d.width, d.height)
	canvas.Rect(0, 0, d.width, d.height, "fill:white")
	for _, draw := range d.elements {
		draw(canvas)
	}
	canvas.End()
	return nil
}

// Save 写入文件
func (d *Document) Save(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return d.WriteTo(file)
}
