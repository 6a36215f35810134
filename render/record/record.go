// Package record 提供记录所有绘制调用的假绘图表面，用于无界面测试。
package record

import "github.com/zooyer/drawpanel/core"

type Op uint8

const (
	OpFill Op = iota + 1
	OpText
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpFill:
		return "fill"
	case OpText:
		return "text"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Call 一次绘制调用
type Call struct {
	Op       Op
	Geometry core.Geometry
	Color    string
	Text     string
	X, Y     float64
}

// Recorder 按顺序记录调用
type Recorder struct {
	Width, Height int
	Calls         []Call
}

func New(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) FillShape(g core.Geometry, color string) {
	r.Calls = append(r.Calls, Call{Op: OpFill, Geometry: g, Color: color})
}

func (r *Recorder) StrokeText(text string, x, y float64, color string) {
	r.Calls = append(r.Calls, Call{Op: OpText, Text: text, X: x, Y: y, Color: color})
}

func (r *Recorder) Bounds() (width, height int) { return r.Width, r.Height }

// Clear 记录一次擦除
func (r *Recorder) Clear() {
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

// Reset 丢弃已记录的调用
func (r *Recorder) Reset() { r.Calls = nil }

// Filter 返回指定类型的调用
func (r *Recorder) Filter(op Op) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}
