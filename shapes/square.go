package shapes

import (
	"fmt"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/utils"
)

type Square struct {
	Base
	side int
}

func init() {
	register(KindSquare, func(base Base) Shape { return newSquare(base) })
}

func newSquare(base Base) *Square {
	return &Square{Base: base, side: randomInt(MinSize, MaxSize)}
}

func NewSquare(x, y float64, colorMode, annotationMode bool, surface core.Surface, opts ...Option) (*Square, error) {
	base, err := newBase(KindSquare, x, y, colorMode, annotationMode, surface, opts...)
	if err != nil {
		return nil, err
	}
	return newSquare(base), nil
}

func (s *Square) Size() int { return s.side }

// Geometry 以位置为中心、绕中心旋转的正方形
func (s *Square) Geometry() core.Geometry {
	h := float64(s.side) / 2
	local := []core.Point{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
	return core.Polygon{Vertices: utils.Place(local, s.rotation, s.anchor())}
}

func (s *Square) Describe() string {
	return fmt.Sprintf("%s {x:%d, y:%d, side:%d, color:%s}", s.kind, s.x, s.y, s.side, s.color)
}

func (s *Square) MeasurementLabel() string { return measurement("side", s.side) }

func (s *Square) Annotate() { s.annotate(s.Describe(), s.side) }

func (s *Square) Draw() {
	s.fill(s.Geometry())
	s.Annotate()
}
