package utils

import (
	"math"

	"github.com/zooyer/drawpanel/core"
)

// RotateAbout 将点 p 绕 origin 旋转 angle 弧度
func RotateAbout(p core.Point, angle float64, origin core.Point) core.Point {
	cos, sin := math.Cos(angle), math.Sin(angle)

	// 1. 平移到原点
	tx, ty := p.X-origin.X, p.Y-origin.Y

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移回去
	return core.Point{X: rx + origin.X, Y: ry + origin.Y}
}

// Place 将局部坐标（以锚点为原点）先旋转 angle 再平移到 anchor
func Place(local []core.Point, angle float64, anchor core.Point) []core.Point {
	var (
		zero   core.Point
		placed = make([]core.Point, 0, len(local))
	)
	for _, p := range local {
		r := RotateAbout(p, angle, zero)
		placed = append(placed, core.Point{X: r.X + anchor.X, Y: r.Y + anchor.Y})
	}
	return placed
}

// NormalizeAngle 把弧度规范到 [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
