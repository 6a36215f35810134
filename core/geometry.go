package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// Point 代表画布上的一个点
type Point struct {
	X, Y float64
}

// Near 两点在 epsilon 误差内视为重合
func (p Point) Near(o Point, epsilon float64) bool {
	return xmath.Equal(p.X, o.X, epsilon) && xmath.Equal(p.Y, o.Y, epsilon)
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Geometry 是可被绘图表面填充的几何形状
type Geometry interface {
	BBox() BBox
	Contains(p Point) bool
}

// Disc 实心圆
type Disc struct {
	Center Point
	Radius float64
}

func (d Disc) BBox() BBox {
	return BBox{
		Min: Point{X: d.Center.X - d.Radius, Y: d.Center.Y - d.Radius},
		Max: Point{X: d.Center.X + d.Radius, Y: d.Center.Y + d.Radius},
	}
}

func (d Disc) Contains(p Point) bool {
	return math.Hypot(p.X-d.Center.X, p.Y-d.Center.Y) <= d.Radius
}

// Polygon 实心多边形，顶点按顺序连接并闭合
type Polygon struct {
	Vertices []Point
}

func (pg Polygon) BBox() BBox {
	if len(pg.Vertices) == 0 {
		return BBox{}
	}
	miX, miY, maX, maY := pg.Vertices[0].X, pg.Vertices[0].Y, pg.Vertices[0].X, pg.Vertices[0].Y
	for _, v := range pg.Vertices {
		miX = math.Min(miX, v.X)
		miY = math.Min(miY, v.Y)
		maX = math.Max(maX, v.X)
		maY = math.Max(maY, v.Y)
	}
	return BBox{Min: Point{X: miX, Y: miY}, Max: Point{X: maX, Y: maY}}
}

// Contains 射线法（奇偶规则）
func (pg Polygon) Contains(p Point) bool {
	inside := false
	n := len(pg.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg.Vertices[i], pg.Vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
