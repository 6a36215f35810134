package core

import "errors"

var (
	// ErrInvalidArgument 请求字段缺失、类型错误或取值非法
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange 索引超出当前范围
	ErrOutOfRange = errors.New("out of range")
)
