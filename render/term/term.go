// Package term 把终端字符格当作低分辨率绘图表面，每个字符格对应 CellWidth×CellHeight 像素。
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/utils"
)

const (
	CellWidth  = 4 // 每格像素宽度
	CellHeight = 8 // 每格像素高度，约为宽度两倍以保持比例
)

// FillRune 填充形状使用的字符
const FillRune = '█'

// Surface 占用屏幕左上角 cols×rows 个字符格
type Surface struct {
	screen     tcell.Screen
	cols, rows int
}

func New(screen tcell.Screen, cols, rows int) *Surface {
	return &Surface{screen: screen, cols: cols, rows: rows}
}

// Resize 调整占用的字符格区域
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
}

// Cells 返回占用的字符格区域大小
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Contains 判断字符格是否在表面区域内
func (s *Surface) Contains(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < s.cols && cy < s.rows
}

// ToCanvas 字符格中心对应的像素坐标
func (s *Surface) ToCanvas(cx, cy int) (x, y float64) {
	return float64(cx*CellWidth + CellWidth/2), float64(cy*CellHeight + CellHeight/2)
}

// ToCell 像素坐标所在的字符格
func (s *Surface) ToCell(x, y float64) (cx, cy int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func style(color string) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.GetColor(color))
}

func (s *Surface) FillShape(g core.Geometry, color string) {
	width, height := s.Bounds()
	box, ok := utils.ClipBox(g.BBox(), float64(width), float64(height))
	if !ok {
		return
	}

	var (
		st         = style(color)
		painted    bool
		minX, minY = s.ToCell(box.Min.X, box.Min.Y)
		maxX, maxY = s.ToCell(box.Max.X, box.Max.Y)
	)
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !s.Contains(cx, cy) {
				continue
			}
			x, y := s.ToCanvas(cx, cy)
			// 格中心落在包围盒外的直接跳过
			if p := (core.Point{X: x, Y: y}); utils.InBox(box, p) && g.Contains(p) {
				s.screen.SetContent(cx, cy, FillRune, nil, st)
				painted = true
			}
		}
	}

	// 小于一个字符格的形状至少占一格
	if !painted {
		center := core.Point{X: (box.Min.X + box.Max.X) / 2, Y: (box.Min.Y + box.Max.Y) / 2}
		if cx, cy := s.ToCell(center.X, center.Y); s.Contains(cx, cy) {
			s.screen.SetContent(cx, cy, FillRune, nil, st)
		}
	}
}

// StrokeText 文字写在基线所在的字符格行上，超出右边缘截断
func (s *Surface) StrokeText(text string, x, y float64, color string) {
	cx, cy := s.ToCell(x, y)
	if cy < 0 || cy >= s.rows {
		return
	}

	st := style(color)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if cx+w > s.cols {
			break
		}
		if cx >= 0 {
			s.screen.SetContent(cx, cy, r, nil, st)
		}
		cx += max(w, 1)
	}
}

func (s *Surface) Bounds() (width, height int) {
	return s.cols * CellWidth, s.rows * CellHeight
}

// Clear 只擦除自己占用的区域
func (s *Surface) Clear() {
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
		}
	}
}
