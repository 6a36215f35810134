// Package table 维护与画布形状一一对应的表格日志。
package table

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/drawpanel/shapes"
)

// Columns 表头
var Columns = []string{"#", "Type", "X", "Y", "Color", "Annotated", "Info"}

// Source 提供按下标的快照，通常是 drawpanel.Registry
type Source interface {
	Count() int
	InfoAt(index int) (shapes.Info, error)
}

// Log 表格日志，每个形状一行
type Log struct {
	rows []shapes.Info
}

func New() *Log {
	return &Log{}
}

// InsertRow 追加一行
func (l *Log) InsertRow(info shapes.Info) {
	l.rows = append(l.rows, info)
}

// Refresh 按现有行数从 source 重新读取每一行
func (l *Log) Refresh(source Source) error {
	for i := range l.rows {
		info, err := source.InfoAt(i)
		if err != nil {
			return err
		}
		l.rows[i] = info
	}
	return nil
}

func (l *Log) Clear() {
	l.rows = nil
}

func (l *Log) Len() int {
	return len(l.rows)
}

// Rows 返回所有行的副本
func (l *Log) Rows() []shapes.Info {
	return append([]shapes.Info(nil), l.rows...)
}

// Cells 把一行转换成各列的文本
func Cells(info shapes.Info) []string {
	return []string{
		strconv.Itoa(info.Ordinal),
		info.Kind,
		strconv.Itoa(info.X),
		strconv.Itoa(info.Y),
		info.Color,
		strconv.FormatBool(info.AnnotationMode),
		info.Measurement,
	}
}

// WriteCSV 写入表头并逐行追加
func (l *Log) WriteCSV(filename string) error {
	header := strings.Join(Columns, ",") + "\n"
	if err := os.WriteFile(filename, []byte(header), 0644); err != nil {
		return err
	}

	for _, row := range l.rows {
		line := strings.Join(Cells(row), ",") + "\n"
		if err := xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return fmt.Errorf("write row %d: %w", row.Ordinal, err)
		}
	}
	return nil
}

// Format 以对齐的文本列输出，最多保留最后 limit 行（limit <= 0 表示全部）
func (l *Log) Format(limit int) []string {
	rows := l.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	table := [][]string{Columns}
	for _, row := range rows {
		table = append(table, Cells(row))
	}

	widths := make([]int, len(Columns))
	for _, cells := range table {
		for i, cell := range cells {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(table))
	for _, cells := range table {
		var b strings.Builder
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
