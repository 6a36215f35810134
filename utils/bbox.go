package utils

import (
	"math"

	"github.com/zooyer/drawpanel/core"
)

// InBox 判断点是否落在包围盒内（含边界）
func InBox(box core.BBox, point core.Point) bool {
	if point.X >= box.Min.X && point.X <= box.Max.X && point.Y >= box.Min.Y && point.Y <= box.Max.Y {
		return true
	}

	return false
}

// ClipBox 把包围盒裁剪到 [0,width]x[0,height]，完全在外时返回 false
func ClipBox(box core.BBox, width, height float64) (core.BBox, bool) {
	clipped := core.BBox{
		Min: core.Point{X: math.Max(box.Min.X, 0), Y: math.Max(box.Min.Y, 0)},
		Max: core.Point{X: math.Min(box.Max.X, width), Y: math.Min(box.Max.Y, height)},
	}
	if clipped.Min.X > clipped.Max.X || clipped.Min.Y > clipped.Max.Y {
		return core.BBox{}, false
	}
	return clipped, true
}
