package shapes

import (
	"fmt"
	"math"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/utils"
)

// Triangle 等边三角形，一个顶点固定在位置上
type Triangle struct {
	Base
	side int
}

func init() {
	register(KindTriangle, func(base Base) Shape { return newTriangle(base) })
}

func newTriangle(base Base) *Triangle {
	return &Triangle{Base: base, side: randomInt(MinSize, MaxSize)}
}

func NewTriangle(x, y float64, colorMode, annotationMode bool, surface core.Surface, opts ...Option) (*Triangle, error) {
	base, err := newBase(KindTriangle, x, y, colorMode, annotationMode, surface, opts...)
	if err != nil {
		return nil, err
	}
	return newTriangle(base), nil
}

func (t *Triangle) Size() int { return t.side }

// Height 边长 · √3/2
func (t *Triangle) Height() float64 {
	return float64(t.side) * math.Sqrt(3) / 2
}

// Geometry 顶点在锚点，底边在其下方，绕锚点旋转
func (t *Triangle) Geometry() core.Geometry {
	var (
		h    = t.Height()
		half = float64(t.side) / 2
	)
	local := []core.Point{{X: 0, Y: 0}, {X: half, Y: h}, {X: -half, Y: h}}
	return core.Polygon{Vertices: utils.Place(local, t.rotation, t.anchor())}
}

func (t *Triangle) Describe() string {
	return fmt.Sprintf("%s {x:%d, y:%d, side:%d, color:%s}", t.kind, t.x, t.y, t.side, t.color)
}

func (t *Triangle) MeasurementLabel() string { return measurement("side", t.side) }

func (t *Triangle) Annotate() { t.annotate(t.Describe(), t.side) }

func (t *Triangle) Draw() {
	t.fill(t.Geometry())
	t.Annotate()
}
