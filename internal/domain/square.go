package domain

import "fmt"

// Square 是与坐标轴对齐的正方形，可以是空心或实心。
type Square struct {
	id      int
	Size    int
	TopLeft Point // 左上角，画板坐标
	Filled  bool
	color   Color
	placed  bool
	cells   []Position
}

// NewSquare 创建一个尚未放置的正方形。
func NewSquare(id int, filled bool, color Color, size, x, y int) *Square {
	return &Square{
		id:      id,
		Size:    size,
		TopLeft: Point{X: x, Y: y},
		Filled:  filled,
		color:   color,
	}
}

func newSquareFromSpec(spec Spec) (Figure, error) {
	return NewSquare(spec.ID, spec.Fill, spec.Color, spec.Params[0], spec.Params[1], spec.Params[2]), nil
}

// Resized 返回编号、位置、颜色和填充方式相同但尺寸为 size 的新正方形。
func (s *Square) Resized(size int) *Square {
	return NewSquare(s.id, s.Filled, s.color, size, s.TopLeft.X, s.TopLeft.Y)
}

func (s *Square) ID() int { return s.id }
func (s *Square) Kind() Kind { return KindSquare }
func (s *Square) Placed() bool { return s.placed }
func (s *Square) Color() Color { return s.color }
func (s *Square) Glyph() byte { return s.color.Tag }
func (s *Square) Recolor(c Color) { s.color = c }

func (s *Square) Cells() []Position {
	out := make([]Position, len(s.cells))
	copy(out, s.cells)
	return out
}

// Rasterize 先做整体放置检查，再逐格绘制边框 (实心时包括内部)。
// 与画板部分重叠是允许的，越界的格子逐个裁掉。
func (s *Square) Rasterize(g *Grid) error {
	if s.Size <= 0 {
		return ErrInvalidSize
	}

	x, y := s.TopLeft.X, s.TopLeft.Y
	height, width := g.Height(), g.Width()

	// 比较时不做加法，超大尺寸或坐标不会溢出
	s.placed = !(y < 0 || s.Size > height-y || x > width || x < -s.Size)
	if !s.placed {
		return ErrOutsideBoard
	}

	s.cells = s.cells[:0]
	for i := 0; i < s.Size; i++ {
		row := y - i
		if i == 0 || i == s.Size-1 {
			s.span(g, row, x, x+s.Size)
			continue
		}
		s.paint(g, row, x)
		s.paint(g, row, x+s.Size-1)
	}

	if s.Filled {
		for i := 1; i < s.Size-1; i++ {
			s.span(g, y-i, x, x+s.Size)
		}
	}
	return nil
}

func (s *Square) span(g *Grid, row, from, to int) {
	for col := from; col < to; col++ {
		s.paint(g, row, col)
	}
}

func (s *Square) paint(g *Grid, row, col int) {
	if row < 0 || row >= g.Height() {
		return
	}
	pos, ok := g.ToStorage(Point{X: col, Y: row})
	if !ok {
		return
	}
	if g.Paint(pos, s) {
		s.cells = append(s.cells, pos)
	}
}

func (s *Square) Describe() string {
	filled := "no"
	if s.Filled {
		filled = "yes"
	}
	return fmt.Sprintf("Square: id(%d), size( %d ), coordinates( %d,%d ), color( %c ), filled( %s )",
		s.id, s.Size, s.TopLeft.X, s.TopLeft.Y, s.color.Tag, filled)
}

func (s *Square) Equal(other Figure) bool {
	o, ok := other.(*Square)
	if !ok {
		return false
	}
	return s.Size == o.Size && s.TopLeft == o.TopLeft
}
