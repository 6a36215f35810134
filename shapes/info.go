package shapes

// Info 是某个形状在表格日志中的一行快照，Ordinal 从 1 开始
type Info struct {
	Ordinal        int
	Kind           string
	X, Y           int
	Color          string
	AnnotationMode bool
	Measurement    string
}

// Snapshot 读取形状当前状态，index 从 0 开始
func Snapshot(index int, s Shape) Info {
	x, y := s.Position()
	return Info{
		Ordinal:        index + 1,
		Kind:           s.Kind().String(),
		X:              x,
		Y:              y,
		Color:          s.Color(),
		AnnotationMode: s.AnnotationMode(),
		Measurement:    s.MeasurementLabel(),
	}
}
