// Package raster 基于 fogleman/gg 的位图绘图表面，可导出 PNG。
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zooyer/drawpanel/core"
)

// FontSize 标签字号(px)
const FontSize = 10

// Surface 位图表面，背景为白色
type Surface struct {
	dc         *gg.Context
	face       font.Face
	background color.Color
}

func New(width, height int) (*Surface, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	s := &Surface{
		dc:         gg.NewContext(width, height),
		face:       truetype.NewFace(f, &truetype.Options{Size: FontSize}),
		background: color.White,
	}
	s.Clear()
	return s, nil
}

// Color 把颜色名解析成 RGBA，未知名称按黑色处理
func Color(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return color.Black
}

func (s *Surface) FillShape(g core.Geometry, name string) {
	s.dc.SetColor(Color(name))

	switch shape := g.(type) {
	case core.Disc:
		s.dc.DrawCircle(shape.Center.X, shape.Center.Y, shape.Radius)
	case core.Polygon:
		if len(shape.Vertices) == 0 {
			return
		}
		s.dc.NewSubPath()
		s.dc.MoveTo(shape.Vertices[0].X, shape.Vertices[0].Y)
		for _, v := range shape.Vertices[1:] {
			s.dc.LineTo(v.X, v.Y)
		}
		s.dc.ClosePath()
	default:
		box := g.BBox()
		s.dc.DrawRectangle(box.Min.X, box.Min.Y, box.Width(), box.Height())
	}

	s.dc.Fill()
}

func (s *Surface) StrokeText(text string, x, y float64, name string) {
	s.dc.SetFontFace(s.face)
	s.dc.SetColor(Color(name))
	s.dc.DrawString(text, x, y)
}

func (s *Surface) Bounds() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// Clear 用背景色擦除整个表面
func (s *Surface) Clear() {
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Save 同 SavePNG
func (s *Surface) Save(path string) error {
	return s.SavePNG(path)
}
