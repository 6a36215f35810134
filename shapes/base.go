package shapes

import (
	"fmt"
	"math"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/utils"
)

// Shape 是一切形状的接口
type Shape interface {
	Kind() Kind
	Position() (x, y int)
	Color() string
	ColorMode() bool
	AnnotationMode() bool
	RotationAngle() float64
	Surface() core.Surface

	SetColorMode(colorMode bool)
	SetAnnotationMode(annotationMode bool)
	SetColor()
	RandomColor() string

	// Size 返回半径或边长
	Size() int
	Geometry() core.Geometry
	Describe() string
	MeasurementLabel() string
	Annotate()
	Draw()
}

// Base 存放所有形状通用的属性，位置和绘图表面构造后不再改变
type Base struct {
	kind           Kind
	x, y           int
	color          string
	colorMode      bool
	annotationMode bool
	rotation       float64
	surface        core.Surface
}

// Option 调整构造参数
type Option func(*Base)

// WithRotation 指定旋转角（弧度），不指定时随机
func WithRotation(angle float64) Option {
	return func(b *Base) {
		b.rotation = utils.NormalizeAngle(angle)
	}
}

func newBase(kind Kind, x, y float64, colorMode, annotationMode bool, surface core.Surface, opts ...Option) (Base, error) {
	if surface == nil {
		return Base{}, fmt.Errorf("%w: renderTarget must be a drawing surface", core.ErrInvalidArgument)
	}
	if _, err := (core.Value{Key: "x", Raw: x}).AsFinite(); err != nil {
		return Base{}, err
	}
	if _, err := (core.Value{Key: "y", Raw: y}).AsFinite(); err != nil {
		return Base{}, err
	}

	b := Base{
		kind:           kind,
		x:              int(math.Round(x)),
		y:              int(math.Round(y)),
		colorMode:      colorMode,
		annotationMode: annotationMode,
		rotation:       float64(randomInt(0, 359)) * math.Pi / 180,
		surface:        surface,
	}
	b.SetColor()

	for _, opt := range opts {
		opt(&b)
	}

	return b, nil
}

func (b *Base) Kind() Kind { return b.kind }

func (b *Base) Position() (x, y int) { return b.x, b.y }

func (b *Base) Color() string { return b.color }

func (b *Base) ColorMode() bool { return b.colorMode }

func (b *Base) AnnotationMode() bool { return b.annotationMode }

// RotationAngle 对 Point 和 Circle 没有意义
func (b *Base) RotationAngle() float64 { return b.rotation }

func (b *Base) Surface() core.Surface { return b.surface }

func (b *Base) SetColorMode(colorMode bool) { b.colorMode = colorMode }

func (b *Base) SetAnnotationMode(annotationMode bool) { b.annotationMode = annotationMode }

// SetColor 按当前颜色模式重新取色
func (b *Base) SetColor() {
	if b.colorMode {
		b.color = b.RandomColor()
	} else {
		b.color = Neutral
	}
}

func (b *Base) RandomColor() string { return randomColor() }

func (b *Base) anchor() core.Point {
	return core.Point{X: float64(b.x), Y: float64(b.y)}
}

// annotate 在形状附近绘制标签，避开表面右边缘和上边缘
func (b *Base) annotate(label string, size int) {
	if !b.annotationMode {
		return
	}

	width, _ := b.surface.Bounds()
	origin := utils.LabelOrigin(b.anchor(), float64(size), len(label), width)

	color := Neutral
	if b.colorMode {
		color = b.color
	}
	b.surface.StrokeText(label, origin.X, origin.Y, color)
}

func (b *Base) fill(g core.Geometry) {
	b.surface.FillShape(g, b.color)
}

func measurement(name string, size int) string {
	return fmt.Sprintf("%s: %dpx", name, size)
}
