package drawpanel

import (
	"fmt"
	"maps"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/shapes"
	"github.com/zooyer/drawpanel/table"
)

// Panel 把画布、形状登记表和表格日志串起来，对应界面上的各个操作。
type Panel struct {
	surface  core.Surface
	registry *Registry
	log      *table.Log

	kind      string
	placement Modes // 新形状使用的模式（复选框）
	display   Modes // 画布当前的全局模式
}

// PanelOption 调整 Panel 的初始状态
type PanelOption func(*Panel)

// WithRegistry 使用外部提供的登记表
func WithRegistry(r *Registry) PanelOption {
	return func(p *Panel) { p.registry = r }
}

// WithModes 设置初始模式，同时作用于复选框和画布
func WithModes(m Modes) PanelOption {
	return func(p *Panel) {
		p.placement = m
		p.display = m
	}
}

func NewPanel(surface core.Surface, opts ...PanelOption) *Panel {
	p := &Panel{
		surface:   surface,
		registry:  NewRegistry(),
		log:       table.New(),
		kind:      shapes.Kinds()[0],
		placement: Modes{Color: true, Annotation: true},
		display:   Modes{Color: true, Annotation: true},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Panel) Registry() *Registry { return p.registry }

func (p *Panel) Log() *table.Log { return p.log }

func (p *Panel) Surface() core.Surface { return p.surface }

func (p *Panel) Kind() string { return p.kind }

func (p *Panel) PlacementModes() Modes { return p.placement }

func (p *Panel) DisplayModes() Modes { return p.display }

// SelectKind 选择之后放置的形状种类
func (p *Panel) SelectKind(kind string) error {
	if _, ok := shapes.ParseKind(kind); !ok {
		return fmt.Errorf("%w: unknown shape kind %q", core.ErrInvalidArgument, kind)
	}
	p.kind = kind
	return nil
}

// SetPlacementModes 对应两个复选框，只影响之后放置的形状
func (p *Panel) SetPlacementModes(color, annotation bool) {
	p.placement = Modes{Color: color, Annotation: annotation}
}

// Place 在 (x, y) 放置当前种类的形状：创建、登记、绘制、写入日志
func (p *Panel) Place(x, y float64) (shapes.Shape, error) {
	return p.PlaceRequest(core.Request{"x": x, "y": y})
}

// PlaceRequest 与 Place 相同，但允许请求自带 kind、模式或 rotation，缺失字段取面板当前值
func (p *Panel) PlaceRequest(req core.Request) (shapes.Shape, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", core.ErrInvalidArgument)
	}
	req = maps.Clone(req)
	req.Default("kind", p.kind)
	req.Default("colorMode", p.placement.Color)
	req.Default("annotationMode", p.placement.Annotation)
	req.Default("renderTarget", p.surface)

	shape, err := shapes.Build(req)
	if err != nil {
		Logger().Warn("panel: placement rejected", "error", err)
		return nil, err
	}

	p.registry.Append(shape)
	shape.Draw()
	p.log.InsertRow(shapes.Snapshot(p.registry.Count()-1, shape))

	x, y := shape.Position()
	Logger().Debug("panel: shape placed", "kind", shape.Kind(), "x", x, "y", y, "color", shape.Color())
	return shape, nil
}

// ToggleColors 切换颜色模式并重绘全部形状
func (p *Panel) ToggleColors() error {
	p.placement.Color = !p.placement.Color
	p.display.Color = !p.display.Color
	return p.refresh()
}

// ToggleAnnotations 切换标注模式并重绘全部形状
func (p *Panel) ToggleAnnotations() error {
	p.placement.Annotation = !p.placement.Annotation
	p.display.Annotation = !p.display.Annotation
	return p.refresh()
}

func (p *Panel) refresh() error {
	p.clearSurface()
	if err := p.registry.RefreshAll(p.display.Map()); err != nil {
		return err
	}
	return p.log.Refresh(p.registry)
}

// Repaint 擦除后按现有状态重绘，不改变任何模式
func (p *Panel) Repaint() error {
	p.clearSurface()
	return p.registry.RefreshAll(nil)
}

// Reset 清空形状、画布和日志
func (p *Panel) Reset() {
	p.registry.Clear()
	p.clearSurface()
	p.log.Clear()
	Logger().Debug("panel: reset")
}

func (p *Panel) clearSurface() {
	if c, ok := p.surface.(core.Clearer); ok {
		c.Clear()
	}
}
