package shapes

import (
	"fmt"

	"github.com/zooyer/drawpanel/core"
)

// 随机尺寸范围（含两端），Circle、Square、Triangle 共用
const (
	MinSize = 4
	MaxSize = 20
)

type Circle struct {
	Base
	radius int
}

func init() {
	register(KindCircle, func(base Base) Shape { return newCircle(base) })
}

func newCircle(base Base) *Circle {
	return &Circle{Base: base, radius: randomInt(MinSize, MaxSize)}
}

func NewCircle(x, y float64, colorMode, annotationMode bool, surface core.Surface, opts ...Option) (*Circle, error) {
	base, err := newBase(KindCircle, x, y, colorMode, annotationMode, surface, opts...)
	if err != nil {
		return nil, err
	}
	return newCircle(base), nil
}

func (c *Circle) Size() int { return c.radius }

func (c *Circle) Geometry() core.Geometry {
	return core.Disc{Center: c.anchor(), Radius: float64(c.radius)}
}

func (c *Circle) Describe() string {
	return fmt.Sprintf("%s {x:%d, y:%d, radius:%d, color:%s}", c.kind, c.x, c.y, c.radius, c.color)
}

func (c *Circle) MeasurementLabel() string { return measurement("radius", c.radius) }

func (c *Circle) Annotate() { c.annotate(c.Describe(), c.radius) }

func (c *Circle) Draw() {
	c.fill(c.Geometry())
	c.Annotate()
}
