package shapes

import (
	"fmt"

	"github.com/zooyer/drawpanel/core"
)

// PointRadius 所有点使用的固定小半径
const PointRadius = 2

type Point struct {
	Base
	radius int
}

func init() {
	register(KindPoint, func(base Base) Shape { return newPoint(base) })
}

func newPoint(base Base) *Point {
	return &Point{Base: base, radius: PointRadius}
}

func NewPoint(x, y float64, colorMode, annotationMode bool, surface core.Surface, opts ...Option) (*Point, error) {
	base, err := newBase(KindPoint, x, y, colorMode, annotationMode, surface, opts...)
	if err != nil {
		return nil, err
	}
	return newPoint(base), nil
}

func (p *Point) Size() int { return p.radius }

func (p *Point) Geometry() core.Geometry {
	return core.Disc{Center: p.anchor(), Radius: float64(p.radius)}
}

func (p *Point) Describe() string {
	return fmt.Sprintf("%s {x:%d, y:%d, color:%s}", p.kind, p.x, p.y, p.color)
}

func (p *Point) MeasurementLabel() string { return measurement("radius", p.radius) }

func (p *Point) Annotate() { p.annotate(p.Describe(), p.radius) }

func (p *Point) Draw() {
	p.fill(p.Geometry())
	p.Annotate()
}
