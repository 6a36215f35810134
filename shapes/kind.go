package shapes

// Kind 形状种类标签，构造时写入，显示和分派都直接读取
type Kind uint8

const (
	KindSquare Kind = iota + 1
	KindTriangle
	KindPoint
	KindCircle
)

var kindNames = map[Kind]string{
	KindSquare:   "Square",
	KindTriangle: "Triangle",
	KindPoint:    "Point",
	KindCircle:   "Circle",
}

// kinds 是 UI 下拉框的固定顺序
var kinds = []Kind{KindSquare, KindTriangle, KindPoint, KindCircle}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind 按名称查找种类，大小写敏感
func ParseKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Kinds 返回所有可用的形状名称
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}
