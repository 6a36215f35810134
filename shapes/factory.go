package shapes

import (
	"fmt"

	"github.com/zooyer/drawpanel/core"
)

// constructor 从已校验的公共属性构造具体形状
type constructor func(base Base) Shape

var registry = map[Kind]constructor{}

// register 登记某一种类的构造函数，种类本身由 kinds 固定
func register(kind Kind, ctor constructor) {
	registry[kind] = ctor
}

// Fields 创建请求的必填字段
var Fields = []string{"kind", "x", "y", "colorMode", "annotationMode", "renderTarget"}

// Build 校验未定类型的请求并构造对应形状。
// 请求为 core.Request 或 map[string]any，可选字段 rotation（弧度）。
func Build(request any) (Shape, error) {
	req, err := core.AsRequest(request)
	if err != nil {
		return nil, err
	}
	if err = req.Require(Fields...); err != nil {
		return nil, err
	}

	field := func(key string) core.Value {
		v, _ := req.Field(key)
		return v
	}

	name, err := field("kind").AsString()
	if err != nil {
		return nil, err
	}
	kind, ok := ParseKind(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shape kind %q", core.ErrInvalidArgument, name)
	}
	ctor, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: shape kind %q has no constructor", core.ErrInvalidArgument, name)
	}

	colorMode, err := field("colorMode").AsBool()
	if err != nil {
		return nil, err
	}
	annotationMode, err := field("annotationMode").AsBool()
	if err != nil {
		return nil, err
	}

	x, err := field("x").AsFinite()
	if err != nil {
		return nil, err
	}
	y, err := field("y").AsFinite()
	if err != nil {
		return nil, err
	}

	surface, _ := field("renderTarget").Raw.(core.Surface)

	var opts []Option
	if v, ok := req.Field("rotation"); ok {
		angle, err := v.AsFinite()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRotation(angle))
	}

	base, err := newBase(kind, x, y, colorMode, annotationMode, surface, opts...)
	if err != nil {
		return nil, err
	}
	return ctor(base), nil
}
