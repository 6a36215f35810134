package core

import "testing"

func TestDisc(t *testing.T) {
	d := Disc{Center: Point{X: 10, Y: 10}, Radius: 5}
	if !d.Contains(Point{X: 13, Y: 14}) {
		t.Error("(13,14) 在圆周上，应算作在内")
	}
	if d.Contains(Point{X: 14, Y: 14}) {
		t.Error("(14,14) 应在外部")
	}
	box := d.BBox()
	if box.Min != (Point{X: 5, Y: 5}) || box.Max != (Point{X: 15, Y: 15}) {
		t.Errorf("包围盒不符: %+v", box)
	}
}

func TestPolygon(t *testing.T) {
	tri := Polygon{Vertices: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}}
	if !tri.Contains(Point{X: 2, Y: 2}) {
		t.Error("(2,2) 应在内部")
	}
	if tri.Contains(Point{X: 8, Y: 8}) {
		t.Error("(8,8) 应在外部")
	}
	box := tri.BBox()
	if box.Width() != 10 || box.Height() != 10 {
		t.Errorf("包围盒不符: %+v", box)
	}
	if (Polygon{}).Contains(Point{}) {
		t.Error("空多边形不应包含任何点")
	}
}

func TestPoint_Near(t *testing.T) {
	if !(Point{X: 1, Y: 2}).Near(Point{X: 1.0000001, Y: 2}, 1e-6) {
		t.Error("误差范围内的点应视为相近")
	}
	if (Point{X: 1, Y: 2}).Near(Point{X: 1.1, Y: 2}, 1e-6) {
		t.Error("超出误差范围的点不应视为相近")
	}
}
