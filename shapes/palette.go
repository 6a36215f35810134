package shapes

import "math/rand/v2"

// Neutral 关闭颜色模式时使用的颜色
const Neutral = "black"

var palette = [...]string{
	"blue", "gray", "orange", "red", "green", "magenta",
	"slateblue", "indigo", "plum", "royalblue", "firebrick", "darkblue",
}

// Palette 返回调色板副本
func Palette() []string {
	return append([]string(nil), palette[:]...)
}

// randomInt 返回 [min, max] 闭区间内的均匀随机整数
func randomInt(min, max int) int {
	return min + rand.IntN(max-min+1)
}

func randomColor() string {
	return palette[rand.IntN(len(palette))]
}
