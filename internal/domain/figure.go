package domain

import (
	"fmt"
	"strings"
)

// Kind 是图形类型名，与命令行和存档中使用的名称一致 (小写)。
type Kind string

const (
	KindSquare   Kind = "square"
	KindTriangle Kind = "triangle"
	KindCircle   Kind = "circle"
	KindLine     Kind = "line"
)

// Label 返回存档行首的标签，例如 "Square"。
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Figure 是放置在画板上的图形。
type Figure interface {
	// ID 返回画板分配的唯一编号
	ID() int
	Kind() Kind
	// Rasterize 把图形画到网格上；失败时不修改网格
	Rasterize(g *Grid) error
	// Placed 报告最近一次栅格化时外接区域是否与画板相交
	Placed() bool
	// Describe 返回人类可读的单行描述，同时也是存档格式
	Describe() string
	// Equal 结构相等：同类型且几何参数相同，与编号和颜色无关
	Equal(other Figure) bool
	Recolor(c Color)
	Color() Color
	Glyph() byte
	// Cells 返回该图形实际画过的存储坐标
	Cells() []Position
}

// Spec 是构造图形所需的全部输入。
type Spec struct {
	ID     int
	Fill   bool
	Color  Color
	Params []int
}

// Constructor 根据 Spec 构造某一类型的图形。
type Constructor func(spec Spec) (Figure, error)

// Shape 描述一种图形类型：构造函数、参数个数和帮助文本。
type Shape struct {
	Kind   Kind
	Arity  int
	Usage  string
	Anchor string
	New    Constructor
}

var shapes = []Shape{
	{Kind: KindSquare, Arity: 3, Usage: "size, coordinates", Anchor: "of top left edge", New: newSquareFromSpec},
	{Kind: KindCircle, Arity: 3, Usage: "radius, coordinates", Anchor: "of centre", New: notImplemented(KindCircle)},
	{Kind: KindTriangle, Arity: 3, Usage: "height, coordinates", Anchor: "of upmost edge", New: notImplemented(KindTriangle)},
	{Kind: KindLine, Arity: 4, Usage: "length, angle, coordinates", Anchor: "of left edge", New: notImplemented(KindLine)},
}

// Shapes 返回所有已登记的图形类型。
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)
	return out
}

// LookupShape 按类型名查找图形登记。
func LookupShape(kind Kind) (Shape, bool) {
	for _, s := range shapes {
		if s.Kind == kind {
			return s, true
		}
	}
	return Shape{}, false
}

// KindByLabel 按存档标签 (如 "Square") 查找图形类型。
func KindByLabel(label string) (Kind, bool) {
	for _, s := range shapes {
		if s.Kind.Label() == label {
			return s.Kind, true
		}
	}
	return "", false
}

// NewFigure 构造指定类型的图形。
func NewFigure(kind Kind, spec Spec) (Figure, error) {
	shape, ok := LookupShape(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFigure, kind)
	}
	if len(spec.Params) != shape.Arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrInvalidParams, kind, shape.Arity, len(spec.Params))
	}
	return shape.New(spec)
}

func notImplemented(kind Kind) Constructor {
	return func(Spec) (Figure, error) {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, kind)
	}
}

// Record 是从存档中解析出的一个图形，编号不保存 (加载时重新分配)。
type Record struct {
	Kind   Kind
	Fill   bool
	Color  string // 调色板颜色名；未知颜色为空
	Params []int
}
