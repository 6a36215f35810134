// Package tui 在终端里运行画板：鼠标左键放置形状，按键切换模式。
package tui

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zooyer/drawpanel"
	"github.com/zooyer/drawpanel/render/term"
	"github.com/zooyer/drawpanel/shapes"
)

// LogRows 底部表格日志占用的行数（含表头）
const LogRows = 6

var (
	statusStyle = tcell.StyleDefault.Reverse(true)
	logStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// App 终端画板
type App struct {
	screen  tcell.Screen
	canvas  *term.Surface
	panel   *drawpanel.Panel
	pressed bool
	message string
}

// New 接管已初始化的屏幕，画布占据除底部状态栏和日志外的区域
func New(screen tcell.Screen, opts ...drawpanel.PanelOption) *App {
	cols, rows := screen.Size()
	canvas := term.New(screen, cols, canvasRows(rows))

	screen.EnableMouse()
	screen.Clear()

	return &App{
		screen: screen,
		canvas: canvas,
		panel:  drawpanel.NewPanel(canvas, opts...),
	}
}

func canvasRows(rows int) int {
	return max(rows-LogRows-1, 1)
}

func (a *App) Panel() *drawpanel.Panel { return a.panel }

// Run 处理事件直到用户退出或屏幕关闭
func (a *App) Run() error {
	for {
		a.draw()

		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		quit, err := a.Handle(ev)
		if err != nil {
			a.message = err.Error()
			drawpanel.Logger().Warn("tui: event failed", "error", err)
		}
		if quit {
			return nil
		}
	}
}

// Handle 处理单个事件，返回是否退出
func (a *App) Handle(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		cols, rows := ev.Size()
		a.canvas.Resize(cols, canvasRows(rows))
		a.screen.Clear()
		return false, a.panel.Repaint()

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		defer func() { a.pressed = down }()
		if !down || a.pressed {
			return false, nil
		}
		cx, cy := ev.Position()
		if !a.canvas.Contains(cx, cy) {
			return false, nil
		}
		x, y := a.canvas.ToCanvas(cx, cy)
		shape, err := a.panel.Place(x, y)
		if err != nil {
			return false, err
		}
		a.message = shape.Describe()
		return false, nil

	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false, nil
}

func (a *App) handleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyTab:
		return false, a.cycleKind()
	case tcell.KeyRune:
	default:
		return false, nil
	}

	placement := a.panel.PlacementModes()
	switch r := ev.Rune(); r {
	case 'q':
		return true, nil
	case 'c':
		return false, a.panel.ToggleColors()
	case 'a':
		return false, a.panel.ToggleAnnotations()
	case 'C':
		a.panel.SetPlacementModes(!placement.Color, placement.Annotation)
	case 'A':
		a.panel.SetPlacementModes(placement.Color, !placement.Annotation)
	case 'r':
		a.panel.Reset()
		a.message = "canvas cleared"
	case '1', '2', '3', '4':
		return false, a.panel.SelectKind(shapes.Kinds()[r-'1'])
	}
	return false, nil
}

func (a *App) cycleKind() error {
	kinds := shapes.Kinds()
	next := (slices.Index(kinds, a.panel.Kind()) + 1) % len(kinds)
	return a.panel.SelectKind(kinds[next])
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) draw() {
	cols, rows := a.screen.Size()
	_, top := a.canvas.Cells()

	var (
		placement = a.panel.PlacementModes()
		display   = a.panel.DisplayModes()
		status    = fmt.Sprintf(" %s | colors:%s annotations:%s | next color:%s annotate:%s | shapes:%d | tab/1-4 kind  c/a toggle  C/A next  r reset  q quit",
			a.panel.Kind(), onOff(display.Color), onOff(display.Annotation),
			onOff(placement.Color), onOff(placement.Annotation), a.panel.Registry().Count())
	)
	a.line(top, cols, status, statusStyle)

	lines := a.panel.Log().Format(LogRows - 2)
	for i := 0; i < LogRows-1 && top+1+i < rows; i++ {
		text := ""
		if i < len(lines) {
			text = lines[i]
		}
		a.line(top+1+i, cols, text, logStyle)
	}
	if a.message != "" && rows > 0 {
		a.line(rows-1, cols, a.message, logStyle)
	}

	a.screen.Show()
}

func (a *App) line(y, cols int, text string, st tcell.Style) {
	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x+w > cols {
			break
		}
		a.screen.SetContent(x, y, r, nil, st)
		x += max(w, 1)
	}
	for ; x < cols; x++ {
		a.screen.SetContent(x, y, ' ', nil, st)
	}
}
