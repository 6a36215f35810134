package core

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Scanner 逐行读取摆放脚本，每行一个创建请求：
//
//	Kind X Y [color=on|off] [annotate=on|off] [rotation=DEG]
//
// 空行和 # 开头的行被忽略。
type Scanner struct {
	reader      *bufio.Reader
	line        int
	LastRequest Request
	err         error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	for {
		text, err := s.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			s.err = err
			return false
		}
		if text == "" && err == io.EOF {
			return false
		}
		s.line++

		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			if err == io.EOF {
				return false
			}
			continue
		}

		req, perr := parseLine(text)
		if perr != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, perr)
			return false
		}
		s.LastRequest = req
		return true
	}
}

func (s *Scanner) Err() error {
	return s.err
}

func parseLine(text string) (Request, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: want \"Kind X Y\", got %q", ErrInvalidArgument, text)
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad x %q", ErrInvalidArgument, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad y %q", ErrInvalidArgument, fields[2])
	}

	req := Request{"kind": fields[0], "x": x, "y": y}
	for _, opt := range fields[3:] {
		key, val, ok := strings.Cut(opt, "=")
		if !ok {
			return nil, fmt.Errorf("%w: option %q is not key=value", ErrInvalidArgument, opt)
		}
		switch strings.ToLower(key) {
		case "color":
			b, err := parseSwitch(val)
			if err != nil {
				return nil, err
			}
			req["colorMode"] = b
		case "annotate":
			b, err := parseSwitch(val)
			if err != nil {
				return nil, err
			}
			req["annotationMode"] = b
		case "rotation":
			deg, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad rotation %q", ErrInvalidArgument, val)
			}
			req["rotation"] = deg * math.Pi / 180
		default:
			return nil, fmt.Errorf("%w: unknown option %q", ErrInvalidArgument, key)
		}
	}
	return req, nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: bad switch %q", ErrInvalidArgument, s)
}
