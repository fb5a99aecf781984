// Package codec 实现画板存档的行文本格式：每行一个图形，空画板写一个 "0"。
//
//	Square: id(<id>), size( <n> ), coordinates( <x>,<y> ), color( <tag> ), filled( yes|no )
package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"text-blackboard/internal/domain"
)

// EmptyMarker 是空画板存档的唯一内容
const EmptyMarker = "0"

// ErrCorruptFile 表示存档中有无法识别的行
var ErrCorruptFile = errors.New("file structure damaged")

// fieldPattern 匹配 "name( value )" 形式的字段
var fieldPattern = regexp.MustCompile(`(\w+)\(\s*([^()]*?)\s*\)`)

type lineParser func(fields map[string]string) (domain.Record, error)

var parsers = map[domain.Kind]lineParser{
	domain.KindSquare: parseSquare,
}

// Encode 把图形列表编码为存档行。
func Encode(figures []domain.Figure) []string {
	if len(figures) == 0 {
		return []string{EmptyMarker}
	}
	lines := make([]string, 0, len(figures))
	for _, f := range figures {
		lines = append(lines, f.Describe())
	}
	return lines
}

// Write 把图形列表写入 w，每行以换行结尾。
func Write(w io.Writer, figures []domain.Figure) error {
	bw := bufio.NewWriter(w)
	for _, line := range Encode(figures) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read 从 r 读取全部行并解码。
func Read(r io.Reader) ([]domain.Record, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Decode(lines)
}

// Decode 解析存档行。以 "0" 开头的行表示存档结束；
// 任何一行无法识别都会使整个解码失败。
func Decode(lines []string) ([]domain.Record, error) {
	var records []domain.Record
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, EmptyMarker) {
			break
		}
		rec, err := decodeLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptFile, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeLine(line string) (domain.Record, error) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok {
		return domain.Record{}, fmt.Errorf("missing figure label")
	}
	kind, ok := domain.KindByLabel(strings.TrimSpace(label))
	if !ok {
		return domain.Record{}, fmt.Errorf("unknown figure label %q", label)
	}
	parse, ok := parsers[kind]
	if !ok {
		return domain.Record{}, fmt.Errorf("figure %q cannot be loaded", label)
	}

	fields := make(map[string]string)
	for _, m := range fieldPattern.FindAllStringSubmatch(rest, -1) {
		fields[m[1]] = m[2]
	}
	return parse(fields)
}

func parseSquare(fields map[string]string) (domain.Record, error) {
	size, err := intField(fields, "size")
	if err != nil {
		return domain.Record{}, err
	}

	coords, ok := fields["coordinates"]
	if !ok {
		return domain.Record{}, fmt.Errorf("missing field coordinates")
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return domain.Record{}, fmt.Errorf("malformed coordinates %q", coords)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return domain.Record{}, fmt.Errorf("malformed x coordinate: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return domain.Record{}, fmt.Errorf("malformed y coordinate: %w", err)
	}

	tag, ok := fields["color"]
	if !ok || len(tag) != 1 {
		return domain.Record{}, fmt.Errorf("malformed color tag %q", tag)
	}
	color, _ := domain.ColorByTag(tag[0])

	var fill bool
	switch fields["filled"] {
	case "yes":
		fill = true
	case "no":
		fill = false
	default:
		return domain.Record{}, fmt.Errorf("malformed filled flag %q", fields["filled"])
	}

	return domain.Record{
		Kind:   domain.KindSquare,
		Fill:   fill,
		Color:  color.Name,
		Params: []int{size, x, y},
	}, nil
}

func intField(fields map[string]string, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing field %s", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("malformed %s: %w", name, err)
	}
	return v, nil
}
