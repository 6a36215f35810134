// Package drawpanel 管理画布上的形状：按创建顺序登记、批量切换颜色/标注模式并重绘，
// 同时为表格日志提供按行的快照。
//
// 形状本身及其工厂位于 shapes 包，绘图表面的实现位于 render 下的各个子包。
package drawpanel

import (
	"fmt"
	"sync"

	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/shapes"
)

// Modes 全局颜色模式和标注模式
type Modes struct {
	Color      bool
	Annotation bool
}

// Map 转成 RefreshAll 接受的未定类型形式
func (m Modes) Map() map[string]any {
	return map[string]any{"color": m.Color, "annotation": m.Annotation}
}

// ParseModes 要求 color 和 annotation 两个字段都存在且为 bool
func ParseModes(input map[string]any) (Modes, error) {
	var modes Modes
	for key, dst := range map[string]*bool{"color": &modes.Color, "annotation": &modes.Annotation} {
		raw, ok := input[key]
		if !ok {
			return Modes{}, fmt.Errorf("%w: modes missing %q", core.ErrInvalidArgument, key)
		}
		b, err := core.Value{Key: key, Raw: raw}.AsBool()
		if err != nil {
			return Modes{}, err
		}
		*dst = b
	}
	return modes, nil
}

// Registry 按创建顺序保存形状，只能追加或整体清空。
// 所有方法串行执行。
type Registry struct {
	mu     sync.Mutex
	shapes []shapes.Shape
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Append 追加到末尾，nil 被忽略
func (r *Registry) Append(shape shapes.Shape) {
	if shape == nil {
		Logger().Warn("registry: ignoring nil shape")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = append(r.shapes, shape)
	Logger().Debug("registry: shape appended", "kind", shape.Kind(), "count", len(r.shapes))
}

// Clear 清空所有形状
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.shapes = nil
	Logger().Debug("registry: cleared")
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.shapes)
}

// At 按下标取形状
func (r *Registry) At(index int) (shapes.Shape, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.at(index)
}

func (r *Registry) at(index int) (shapes.Shape, error) {
	if index < 0 || index >= len(r.shapes) {
		return nil, fmt.Errorf("%w: index %d, count %d", core.ErrOutOfRange, index, len(r.shapes))
	}
	return r.shapes[index], nil
}

// InfoAt 返回第 index 个形状的快照
func (r *Registry) InfoAt(index int) (shapes.Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	shape, err := r.at(index)
	if err != nil {
		return shapes.Info{}, err
	}
	return shapes.Snapshot(index, shape), nil
}

// RefreshAll 重绘所有形状。
// modes 为 nil 时只重绘；否则先校验 color 和 annotation，
// 再依次为每个形状设置标注模式、颜色模式、重新取色并绘制。
// 调用方负责在此之前擦除表面。
func (r *Registry) RefreshAll(modes map[string]any) error {
	var (
		parsed Modes
		apply  = modes != nil
	)
	if apply {
		var err error
		if parsed, err = ParseModes(modes); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, shape := range r.shapes {
		if apply {
			shape.SetAnnotationMode(parsed.Annotation)
			shape.SetColorMode(parsed.Color)
			shape.SetColor()
		}
		shape.Draw()
	}

	Logger().Debug("registry: refreshed", "count", len(r.shapes), "modes", apply,
		"color", parsed.Color, "annotation", parsed.Annotation)
	return nil
}
