package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/zooyer/drawpanel/render/term"
	"github.com/zooyer/drawpanel/shapes"
)

func newApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return New(screen), screen
}

func TestApp_ClickPlacesOnce(t *testing.T) {
	app, _ := newApp(t)

	events := []tcell.Event{
		tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone), // 拖动不重复放置
		tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(30, 8, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(30, 8, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventMouse(30, 28, tcell.Button1, tcell.ModNone), // 日志区域
	}
	for _, ev := range events {
		if quit, err := app.Handle(ev); quit || err != nil {
			t.Fatalf("意外的返回 quit=%v err=%v", quit, err)
		}
	}

	if n := app.Panel().Registry().Count(); n != 2 {
		t.Fatalf("期望 2 个形状, 得到 %d", n)
	}
	info, err := app.Panel().Registry().InfoAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if info.X != 10*term.CellWidth+term.CellWidth/2 || info.Y != 5*term.CellHeight+term.CellHeight/2 {
		t.Fatalf("点击位置映射错误: (%d,%d)", info.X, info.Y)
	}
}

func TestApp_Keys(t *testing.T) {
	app, _ := newApp(t)
	key := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

	if _, err := app.Handle(key('3')); err != nil {
		t.Fatal(err)
	}
	if app.Panel().Kind() != shapes.Kinds()[2] {
		t.Fatalf("期望 %s, 得到 %s", shapes.Kinds()[2], app.Panel().Kind())
	}
	if _, err := app.Handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if app.Panel().Kind() != shapes.Kinds()[3] {
		t.Fatalf("Tab 应切换到 %s, 得到 %s", shapes.Kinds()[3], app.Panel().Kind())
	}

	app.Handle(key('c'))
	app.Handle(key('a'))
	if m := app.Panel().DisplayModes(); m.Color || m.Annotation {
		t.Fatalf("切换后两种模式都应关闭, 得到 %+v", m)
	}
	app.Handle(key('C'))
	if m := app.Panel().PlacementModes(); !m.Color || m.Annotation {
		t.Fatalf("C 只应切换下一个形状的颜色模式, 得到 %+v", m)
	}
	if m := app.Panel().DisplayModes(); m.Color {
		t.Fatal("C 不应改变显示模式")
	}

	app.Handle(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	app.Handle(key('r'))
	if app.Panel().Registry().Count() != 0 {
		t.Fatal("r 应重置画布")
	}

	if quit, _ := app.Handle(key('q')); !quit {
		t.Fatal("q 应退出")
	}
	if quit, _ := app.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatal("Esc 应退出")
	}
}

func TestApp_Run(t *testing.T) {
	app, screen := newApp(t)

	screen.InjectMouse(12, 4, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(12, 4, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := app.Run(); err != nil {
		t.Fatal(err)
	}
	if app.Panel().Registry().Count() != 1 {
		t.Fatalf("期望 1 个形状, 得到 %d", app.Panel().Registry().Count())
	}

	// 状态栏和日志已渲染
	cells, cols, _ := screen.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		}
		if (i+1)%cols == 0 {
			b.WriteByte('\n')
		}
	}
	out := b.String()
	for _, want := range []string{"shapes:1", "Type", app.Panel().Kind()} {
		if !strings.Contains(out, want) {
			t.Errorf("屏幕上缺少 %q", want)
		}
	}
}
