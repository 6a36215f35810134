package shapes

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/render/record"
)

func TestSizes_Range(t *testing.T) {
	const n = 3000
	surface := record.New(100, 100)

	for _, name := range Kinds() {
		t.Run(name, func(t *testing.T) {
			seen := map[int]int{}
			for i := 0; i < n; i++ {
				shape, err := Build(request(name, surface))
				if err != nil {
					t.Fatal(err)
				}
				seen[shape.Size()]++
			}

			if name == "Point" {
				if len(seen) != 1 || seen[PointRadius] != n {
					t.Fatalf("点的半径必须恒为 %d, 得到 %v", PointRadius, seen)
				}
				return
			}
			for size := range seen {
				if size < MinSize || size > MaxSize {
					t.Fatalf("尺寸 %d 超出 [%d,%d]", size, MinSize, MaxSize)
				}
			}
			// 两端都必须能取到
			for size := MinSize; size <= MaxSize; size++ {
				if seen[size] == 0 {
					t.Errorf("%d 次抽取中从未出现尺寸 %d", n, size)
				}
			}
		})
	}
}

func TestPosition_Rounding(t *testing.T) {
	cases := []struct {
		x, y   float64
		wx, wy int
	}{
		{10.6, 20.4, 11, 20},
		{0.5, 1.49, 1, 1},
		{-2.5, -0.4, -3, 0},
		{7, 8, 7, 8},
	}
	for _, c := range cases {
		p, err := NewPoint(c.x, c.y, false, false, record.New(10, 10))
		if err != nil {
			t.Fatal(err)
		}
		if x, y := p.Position(); x != c.wx || y != c.wy {
			t.Errorf("(%v,%v): 期望 (%d,%d), 得到 (%d,%d)", c.x, c.y, c.wx, c.wy, x, y)
		}
	}
}

func TestConstructors_Invalid(t *testing.T) {
	surface := record.New(10, 10)
	if _, err := NewCircle(math.NaN(), 0, true, true, surface); err == nil {
		t.Error("x 为 NaN 时应失败")
	}
	if _, err := NewSquare(0, math.Inf(1), true, true, surface); err == nil {
		t.Error("y 为无穷时应失败")
	}
	if _, err := NewTriangle(0, 0, true, true, nil); err == nil {
		t.Error("表面为 nil 时应失败")
	}
}

func TestColor(t *testing.T) {
	c, err := NewCircle(1, 1, true, false, record.New(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(Palette(), c.Color()) {
		t.Fatalf("颜色 %q 不在调色板中", c.Color())
	}

	// 只改模式不重新取色
	c.SetColorMode(false)
	if c.Color() == Neutral {
		t.Fatal("SetColorMode 不应重新取色")
	}
	c.SetColor()
	if c.Color() != Neutral {
		t.Fatalf("期望 %q, 得到 %q", Neutral, c.Color())
	}

	for i := 0; i < 100; i++ {
		if !slices.Contains(Palette(), c.RandomColor()) {
			t.Fatal("RandomColor 返回了调色板外的颜色")
		}
	}
	if c.Color() != Neutral {
		t.Fatal("RandomColor 不应修改形状")
	}
	if len(Palette()) != 12 {
		t.Fatalf("调色板应有 12 种颜色, 得到 %d", len(Palette()))
	}
}

func TestRotation_Random(t *testing.T) {
	for i := 0; i < 500; i++ {
		s, err := NewSquare(0, 0, false, false, record.New(10, 10))
		if err != nil {
			t.Fatal(err)
		}
		a := s.RotationAngle()
		if a < 0 || a >= 2*math.Pi {
			t.Fatalf("旋转角 %v 超出 [0, 2π)", a)
		}
		deg := a * 180 / math.Pi
		if math.Abs(deg-math.Round(deg)) > 1e-9 {
			t.Fatalf("旋转角 %v 不是整数度", deg)
		}
	}
}

func TestDescribe(t *testing.T) {
	surface := record.New(100, 100)

	p, _ := NewPoint(3, 4, false, false, surface)
	c, _ := NewCircle(3, 4, false, false, surface)
	c.radius = 7
	s, _ := NewSquare(3, 4, false, false, surface)
	s.side = 9
	tr, _ := NewTriangle(3, 4, false, false, surface)
	tr.side = 12

	cases := []struct {
		shape       Shape
		describe    string
		measurement string
	}{
		{p, "Point {x:3, y:4, color:black}", "radius: 2px"},
		{c, "Circle {x:3, y:4, radius:7, color:black}", "radius: 7px"},
		{s, "Square {x:3, y:4, side:9, color:black}", "side: 9px"},
		{tr, "Triangle {x:3, y:4, side:12, color:black}", "side: 12px"},
	}
	for _, tc := range cases {
		if got := tc.shape.Describe(); got != tc.describe {
			t.Errorf("Describe 不符: 期望 %q, 得到 %q", tc.describe, got)
		}
		if got := tc.shape.MeasurementLabel(); got != tc.measurement {
			t.Errorf("MeasurementLabel 不符: 期望 %q, 得到 %q", tc.measurement, got)
		}
	}
}

func TestDraw_Circle(t *testing.T) {
	surface := record.New(1000, 200)
	c, err := NewCircle(50, 60, true, true, surface)
	if err != nil {
		t.Fatal(err)
	}
	c.Draw()

	if len(surface.Calls) != 2 {
		t.Fatalf("期望一次填充加一次文字, 得到 %v", surface.Calls)
	}
	fill := surface.Calls[0]
	disc, ok := fill.Geometry.(core.Disc)
	if fill.Op != record.OpFill || !ok {
		t.Fatalf("第一次调用应填充圆, 得到 %+v", fill)
	}
	if disc.Center != (core.Point{X: 50, Y: 60}) || disc.Radius != float64(c.radius) || fill.Color != c.Color() {
		t.Errorf("填充不符: %+v", fill)
	}

	text := surface.Calls[1]
	if text.Op != record.OpText || text.Text != c.Describe() || text.Color != c.Color() {
		t.Errorf("标签不符: %+v", text)
	}
	if text.X != 50 || text.Y != 50 {
		t.Errorf("标签应在锚点上方, 得到 (%v,%v)", text.X, text.Y)
	}
}

func TestAnnotate_Disabled(t *testing.T) {
	surface := record.New(200, 200)
	for _, name := range Kinds() {
		shape, err := Build(request(name, surface))
		if err != nil {
			t.Fatal(err)
		}
		shape.Draw()
	}
	if texts := surface.Filter(record.OpText); len(texts) != 0 {
		t.Fatalf("关闭标注时不应绘制标签, 得到 %v", texts)
	}
	if fills := surface.Filter(record.OpFill); len(fills) != len(Kinds()) {
		t.Fatalf("每个形状应填充一次, 得到 %d", len(fills))
	}
}

func TestAnnotate_Placement(t *testing.T) {
	surface := record.New(120, 200)

	// 右上角：左移并放到形状下方
	c, _ := NewCircle(110, 5, false, true, surface)
	c.radius = 10
	c.Annotate()

	label := surface.Calls[0]
	width := float64(len(c.Describe()) * 4)
	if label.X != 110-width || label.Y != 5+10+10 {
		t.Fatalf("标签位置不符: (%v,%v)", label.X, label.Y)
	}

	// 颜色模式关闭时标签用中性色
	c.SetColorMode(false)
	c.Annotate()
	if got := surface.Calls[1].Color; got != Neutral {
		t.Fatalf("标签应为中性色, 得到 %q", got)
	}
}

func TestGeometry_Square(t *testing.T) {
	s, _ := NewSquare(10, 20, false, false, record.New(10, 10), WithRotation(0))
	s.side = 10

	want := []core.Point{{X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 25}, {X: 5, Y: 25}}
	got := s.Geometry().(core.Polygon).Vertices
	for i := range want {
		if !got[i].Near(want[i], 1e-9) {
			t.Errorf("第 %d 个顶点: 期望 %+v, 得到 %+v", i, want[i], got[i])
		}
	}

	rotated, _ := NewSquare(10, 20, false, false, record.New(10, 10), WithRotation(math.Pi/4))
	rotated.side = 10
	box := rotated.Geometry().BBox()
	if math.Abs(box.Width()-10*math.Sqrt2) > 1e-9 || !rotated.Geometry().Contains(core.Point{X: 10, Y: 20}) {
		t.Errorf("旋转后正方形包围盒不符: %+v", box)
	}
}

func TestGeometry_Triangle(t *testing.T) {
	tr, _ := NewTriangle(10, 20, false, false, record.New(10, 10), WithRotation(0))
	tr.side = 10

	h := 10 * math.Sqrt(3) / 2
	want := []core.Point{{X: 10, Y: 20}, {X: 15, Y: 20 + h}, {X: 5, Y: 20 + h}}
	got := tr.Geometry().(core.Polygon).Vertices
	for i := range want {
		if !got[i].Near(want[i], 1e-9) {
			t.Errorf("第 %d 个顶点: 期望 %+v, 得到 %+v", i, want[i], got[i])
		}
	}

	// 旋转 180° 后顶点仍在锚点，底边翻到上方
	flipped, _ := NewTriangle(10, 20, false, false, record.New(10, 10), WithRotation(math.Pi))
	flipped.side = 10
	vs := flipped.Geometry().(core.Polygon).Vertices
	if !vs[0].Near(core.Point{X: 10, Y: 20}, 1e-9) || vs[1].Y >= 20 {
		t.Errorf("旋转后顶点不符: %+v", vs)
	}
}

func TestDraw_Labels(t *testing.T) {
	surface := record.New(500, 500)
	p, _ := NewPoint(100, 100, true, true, surface)
	p.Draw()
	if texts := surface.Filter(record.OpText); len(texts) != 1 || !strings.HasPrefix(texts[0].Text, "Point {") {
		t.Fatalf("标签不符: %v", texts)
	}
}

func TestSize_FixedForLifetime(t *testing.T) {
	surface := record.New(500, 500)
	for _, name := range Kinds() {
		req := request(name, surface)
		req["colorMode"] = true
		req["annotationMode"] = true
		shape, err := Build(req)
		if err != nil {
			t.Fatal(err)
		}

		size, label := shape.Size(), shape.MeasurementLabel()
		shape.SetColorMode(false)
		shape.SetAnnotationMode(false)
		shape.SetColor()
		shape.Draw()
		if shape.Size() != size || shape.MeasurementLabel() != label {
			t.Errorf("%s: 尺寸在构造后发生变化, 由 %d 变为 %d", name, size, shape.Size())
		}
	}
}

func TestConstructors_SizeRange(t *testing.T) {
	surface := record.New(10, 10)
	for i := 0; i < 200; i++ {
		c, _ := NewCircle(0, 0, false, false, surface)
		s, _ := NewSquare(0, 0, false, false, surface)
		tr, _ := NewTriangle(0, 0, false, false, surface)
		p, _ := NewPoint(0, 0, false, false, surface)
		for _, size := range []int{c.Size(), s.Size(), tr.Size()} {
			if size < MinSize || size > MaxSize {
				t.Fatalf("尺寸 %d 超出 [%d,%d]", size, MinSize, MaxSize)
			}
		}
		if p.Size() != PointRadius {
			t.Fatalf("点的半径必须恒为 %d, 得到 %d", PointRadius, p.Size())
		}
	}
}
