package core

import (
	"fmt"
	"math"
)

// Value 代表请求中的一个未定类型字段
type Value struct {
	Key string
	Raw any
}

// AsFloat 将值转换为 float64，非数值返回 false
func (v Value) AsFloat() (float64, bool) {
	switch n := v.Raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AsFinite 同 AsFloat，但 NaN 和 ±Inf 视为非法
func (v Value) AsFinite() (float64, error) {
	f, ok := v.AsFloat()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q must be a finite number, got %v", ErrInvalidArgument, v.Key, v.Raw)
	}
	return f, nil
}

// AsBool 要求值必须是 bool
func (v Value) AsBool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q must be a boolean, got %T", ErrInvalidArgument, v.Key, v.Raw)
	}
	return b, nil
}

// AsString 取字符串原值，不做清洗，名称类字段必须精确匹配
func (v Value) AsString() (string, error) {
	s, ok := v.Raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidArgument, v.Key, v.Raw)
	}
	return s, nil
}

// Request 是一次未定类型的创建请求
type Request map[string]any

// Field 取出字段，不存在时返回 false
func (r Request) Field(key string) (Value, bool) {
	raw, ok := r[key]
	return Value{Key: key, Raw: raw}, ok
}

// Require 检查所有必填字段都存在
func (r Request) Require(keys ...string) error {
	for _, key := range keys {
		if _, ok := r[key]; !ok {
			return fmt.Errorf("%w: missing field %q", ErrInvalidArgument, key)
		}
	}
	return nil
}

// Default 仅在字段缺失时填入默认值
func (r Request) Default(key string, value any) {
	if _, ok := r[key]; !ok {
		r[key] = value
	}
}

// AsRequest 把任意输入解释为请求，nil 或非对象返回错误
func AsRequest(input any) (Request, error) {
	switch m := input.(type) {
	case Request:
		if m == nil {
			return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
		}
		return m, nil
	case map[string]any:
		if m == nil {
			return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
		}
		return Request(m), nil
	case nil:
		return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
	}
	return nil, fmt.Errorf("%w: request must be an object, got %T", ErrInvalidArgument, input)
}
