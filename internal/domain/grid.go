package domain

// Point 是画板坐标：原点在左下角，y 轴向上。
type Point struct {
	X int
	Y int
}

// Position 是存储坐标：第 0 行是屏幕最上方一行。
type Position struct {
	Row int
	Col int
}

// Cell 是被一个或多个图形共享的格子。
// 它按绘制顺序保存所有画过它的图形，显示时总是取最后一个 (栈顶)。
// 字符和颜色在查询时动态计算，因此重新着色的图形无需重新栅格化即可生效。
type Cell struct {
	painters []Figure
}

// Top 返回最上层的图形，空格子返回 nil。
func (c *Cell) Top() Figure {
	if c == nil || len(c.painters) == 0 {
		return nil
	}
	return c.painters[len(c.painters)-1]
}

// Glyph 返回最上层图形的显示字符，空格子返回空格。
func (c *Cell) Glyph() byte {
	if top := c.Top(); top != nil {
		return top.Glyph()
	}
	return ' '
}

// Color 返回最上层图形的颜色。
func (c *Cell) Color() Color {
	if top := c.Top(); top != nil {
		return top.Color()
	}
	return Color{}
}

// Painters 返回画过该格子的图形副本，按绘制顺序排列。
func (c *Cell) Painters() []Figure {
	if c == nil {
		return nil
	}
	out := make([]Figure, len(c.painters))
	copy(out, c.painters)
	return out
}

// Empty 报告格子是否已没有任何图形。
func (c *Cell) Empty() bool {
	return c == nil || len(c.painters) == 0
}

func (c *Cell) push(f Figure) bool {
	if c.Top() == f {
		return false
	}
	c.painters = append(c.painters, f)
	return true
}

func (c *Cell) remove(f Figure) {
	kept := c.painters[:0]
	for _, p := range c.painters {
		if p != f {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(c.painters); i++ {
		c.painters[i] = nil
	}
	c.painters = kept
}

// Grid 是固定尺寸的稀疏格子表。
// 只有被画过的位置才有 Cell；不存在或已空的 Cell 视为未绘制。
type Grid struct {
	width  int
	height int
	cells  map[Position]*Cell
}

// NewGrid 创建 width x height 的空画板网格。
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make(map[Position]*Cell),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains 报告存储坐标是否在网格内。
func (g *Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// ToStorage 把画板坐标换算为存储坐标：row = height - y - 1。
// 坐标越界时 ok 为 false。
func (g *Grid) ToStorage(p Point) (Position, bool) {
	pos := Position{Row: g.height - p.Y - 1, Col: p.X}
	return pos, g.Contains(pos)
}

// Cell 返回存储坐标处的格子；未绘制时返回 nil。
func (g *Grid) Cell(pos Position) *Cell {
	c, ok := g.cells[pos]
	if !ok || c.Empty() {
		return nil
	}
	return c
}

// CellAt 按画板坐标返回格子。
func (g *Grid) CellAt(p Point) *Cell {
	pos, ok := g.ToStorage(p)
	if !ok {
		return nil
	}
	return g.Cell(pos)
}

// Paint 让 f 画在 pos 上：格子不存在就创建，已存在就把 f 压入其图形栈。
// 越界的位置被静默跳过。只有 f 新近成为该格子的画者时返回 true。
func (g *Grid) Paint(pos Position, f Figure) bool {
	if !g.Contains(pos) {
		return false
	}
	c, ok := g.cells[pos]
	if !ok {
		c = &Cell{}
		g.cells[pos] = c
	}
	return c.push(f)
}

// Erase 从 pos 处的格子中移除 f 的所有记录，格子变空时一并删除。
func (g *Grid) Erase(pos Position, f Figure) {
	c, ok := g.cells[pos]
	if !ok {
		return
	}
	c.remove(f)
	if c.Empty() {
		delete(g.cells, pos)
	}
}

// Painted 返回当前有图形的格子数量。
func (g *Grid) Painted() int {
	n := 0
	for _, c := range g.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// Clone 深拷贝每个格子的图形栈 (图形本身共享)，用作撤销快照。
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.width, g.height)
	for pos, c := range g.cells {
		if c.Empty() {
			continue
		}
		out.cells[pos] = &Cell{painters: c.Painters()}
	}
	return out
}

// Equal 比较两个网格每个位置上的图形栈是否完全一致。
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	if g.Painted() != other.Painted() {
		return false
	}
	for pos, c := range g.cells {
		if c.Empty() {
			continue
		}
		oc := other.Cell(pos)
		if oc == nil || len(oc.painters) != len(c.painters) {
			return false
		}
		for i := range c.painters {
			if c.painters[i] != oc.painters[i] {
				return false
			}
		}
	}
	return true
}
