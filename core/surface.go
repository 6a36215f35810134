package core

// Surface 是形状绘制所需的最小绘图能力
type Surface interface {
	// FillShape 以指定颜色名填充几何形状
	FillShape(g Geometry, color string)
	// StrokeText 在 (x, y) 处以指定颜色绘制文字，y 为基线
	StrokeText(text string, x, y float64, color string)
	// Bounds 返回表面的像素尺寸
	Bounds() (width, height int)
}

// Clearer 由可以整体擦除的表面实现
type Clearer interface {
	Clear()
}
