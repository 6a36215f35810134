package utils

import "github.com/zooyer/drawpanel/core"

const (
	LabelCharWidth = 4  // 每个字符估算宽度(px)
	LabelHeight    = 10 // 标签高度(px)
	LabelTopMargin = 6  // 距上边缘小于该值加标签高度时移到下方
)

// LabelOrigin 计算标签基线起点：
// 右侧溢出时放到锚点左边，顶部溢出时放到形状下方，否则放在锚点上方。
func LabelOrigin(anchor core.Point, size float64, textLen int, surfaceWidth int) core.Point {
	var (
		width  = float64(textLen * LabelCharWidth)
		origin = anchor
	)

	if anchor.X >= float64(surfaceWidth)-width {
		origin.X = anchor.X - width
	}

	if anchor.Y <= LabelHeight+LabelTopMargin {
		origin.Y = anchor.Y + size + LabelHeight
	} else {
		origin.Y = anchor.Y - LabelHeight
	}

	return origin
}
