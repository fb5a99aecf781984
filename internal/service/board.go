package service

import (
	"errors"
	"fmt"

	"text-blackboard/internal/domain"

	"github.com/sirupsen/logrus"
)

// Board 持有有序的图形列表 (插入顺序即绘制顺序和层叠顺序) 和画板网格。
// 它不是并发安全的：所有操作都假定一次只执行一条命令。
type Board struct {
	figures  []domain.Figure
	grid     *domain.Grid
	previous *domain.Grid // 最近一次 Add 之前的网格，只保留一层撤销
	selected domain.Figure
	nextID   int
	log      *logrus.Entry
}

// NewBoard 创建 width x height 的空画板。logger 为 nil 时使用 logrus 的标准 logger。
func NewBoard(width, height int, logger *logrus.Logger) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Board{
		grid:     domain.NewGrid(width, height),
		previous: domain.NewGrid(width, height),
		log:      logger.WithField("component", "board"),
	}
}

// Grid 返回当前网格。
func (b *Board) Grid() *domain.Grid { return b.grid }

// Selected 返回当前选中的图形，未选中时为 nil。
func (b *Board) Selected() domain.Figure { return b.selected }

// Len 返回画板上的图形数量。
func (b *Board) Len() int { return len(b.figures) }

// Figures 返回图形列表的副本，按层叠顺序排列。
func (b *Board) Figures() []domain.Figure {
	out := make([]domain.Figure, len(b.figures))
	copy(out, b.figures)
	return out
}

// Add 构造一个图形并画到画板上。
// 无论成功与否，调用前的网格都会成为撤销快照。
func (b *Board) Add(kind domain.Kind, fill bool, colorName string, params ...int) (domain.Figure, error) {
	logCtx := b.log.WithFields(logrus.Fields{"kind": kind, "params": params, "color": colorName})

	b.previous = b.grid.Clone()

	color, known := domain.LookupColor(colorName)
	if !known {
		logCtx.Warn("Unknown color name, figure will have an undefined tag")
	}

	figure, err := domain.NewFigure(kind, domain.Spec{ID: b.nextID, Fill: fill, Color: color, Params: params})
	if err != nil {
		logCtx.WithError(err).Debug("Figure construction rejected")
		return nil, err
	}

	for _, existing := range b.figures {
		if existing.Equal(figure) {
			logCtx.WithField("existing_id", existing.ID()).Debug("Duplicate figure rejected")
			return nil, ErrDuplicateFigure
		}
	}

	if err := figure.Rasterize(b.grid); err != nil {
		logCtx.WithError(err).Debug("Figure placement rejected")
		return nil, err
	}

	b.figures = append(b.figures, figure)
	b.nextID++
	logCtx.WithField("figure_id", figure.ID()).Info("Figure added")
	return figure, nil
}

// Undo 移除最近添加的图形并把网格恢复为快照。
// 连续撤销会重复恢复同一份快照。
func (b *Board) Undo() (domain.Figure, error) {
	if len(b.figures) == 0 {
		return nil, ErrEmptyBoard
	}
	last := b.figures[len(b.figures)-1]
	b.figures[len(b.figures)-1] = nil
	b.figures = b.figures[:len(b.figures)-1]
	b.grid = b.previous.Clone()

	if b.selected == last {
		b.selected = nil
	}
	b.log.WithField("figure_id", last.ID()).Info("Figure undone")
	return last, nil
}

// SelectAt 选中画板坐标 (x, y) 处最上层的图形。
func (b *Board) SelectAt(x, y int) (domain.Figure, error) {
	pos, ok := b.grid.ToStorage(domain.Point{X: x, Y: y})
	if !ok {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	cell := b.grid.Cell(pos)
	if cell == nil {
		return nil, ErrNoFigureAt
	}

	// 撤销快照可能残留已不在列表中的图形，选择时跳过它们
	painters := cell.Painters()
	for i := len(painters) - 1; i >= 0; i-- {
		if b.live(painters[i]) {
			b.selected = painters[i]
			return b.selected, nil
		}
	}
	return nil, ErrNoFigureAt
}

// SelectByID 按编号选中图形。
func (b *Board) SelectByID(id int) (domain.Figure, error) {
	i := b.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrFigureNotFound, id)
	}
	b.selected = b.figures[i]
	return b.selected, nil
}

// Remove 删除当前选中的图形，并把它从画过的格子中抹去。
func (b *Board) Remove() (domain.Figure, error) {
	if b.selected == nil {
		return nil, ErrNothingSelected
	}
	i := b.indexOf(b.selected.ID())
	if i < 0 {
		b.selected = nil
		return nil, ErrFigureNotFound
	}

	removed := b.figures[i]
	b.erase(removed)
	b.figures = append(b.figures[:i], b.figures[i+1:]...)
	b.selected = nil

	b.log.WithField("figure_id", removed.ID()).Info("Figure removed")
	return removed, nil
}

// Edit 把选中的正方形替换为尺寸为 size 的新正方形。
// 新正方形追加到列表末尾 (层叠顺序改变)。替换失败时原图形保持不变。
func (b *Board) Edit(size int) (domain.Figure, error) {
	if b.selected == nil {
		return nil, ErrNothingSelected
	}
	square, ok := b.selected.(*domain.Square)
	if !ok {
		return nil, ErrNotASquare
	}
	i := b.indexOf(square.ID())
	if i < 0 {
		b.selected = nil
		return nil, ErrFigureNotFound
	}
	logCtx := b.log.WithFields(logrus.Fields{"figure_id": square.ID(), "size": size})

	resized := square.Resized(size)
	for j, existing := range b.figures {
		if j != i && existing.Equal(resized) {
			logCtx.Debug("Edit would duplicate an existing figure")
			return nil, ErrDuplicateFigure
		}
	}

	backup := b.grid.Clone()
	b.erase(square)
	if err := resized.Rasterize(b.grid); err != nil {
		b.grid = backup
		logCtx.WithError(err).Debug("Edit rejected, original kept")
		return nil, err
	}

	b.figures = append(b.figures[:i], b.figures[i+1:]...)
	b.figures = append(b.figures, resized)
	b.selected = resized

	logCtx.Info("Square resized")
	return resized, nil
}

// Paint 原地修改选中图形的颜色，它作为最上层的格子会立即显示新颜色。
func (b *Board) Paint(colorName string) (domain.Figure, error) {
	if b.selected == nil {
		return nil, ErrNothingSelected
	}
	color, known := domain.LookupColor(colorName)
	logCtx := b.log.WithFields(logrus.Fields{"figure_id": b.selected.ID(), "color": colorName})
	if !known {
		logCtx.Warn("Unknown color name, figure will have an undefined tag")
	}
	b.selected.Recolor(color)
	logCtx.Info("Figure repainted")
	return b.selected, nil
}

// List 返回所有图形的描述，按层叠顺序排列。
func (b *Board) List() []string {
	out := make([]string, 0, len(b.figures))
	for _, f := range b.figures {
		out = append(out, f.Describe())
	}
	return out
}

// Clear 删除所有图形并重置网格和撤销快照。
func (b *Board) Clear() {
	b.figures = nil
	b.selected = nil
	b.grid = domain.NewGrid(b.grid.Width(), b.grid.Height())
	b.previous = domain.NewGrid(b.grid.Width(), b.grid.Height())
	b.log.Info("Board cleared")
}

// Restore 清空画板后按顺序重新添加存档中的图形 (重新分配编号)。
// 单个图形添加失败不会中断恢复，所有失败合并返回。
func (b *Board) Restore(records []domain.Record) (int, error) {
	b.Clear()
	var errs []error
	added := 0
	for i, rec := range records {
		if _, err := b.Add(rec.Kind, rec.Fill, rec.Color, rec.Params...); err != nil {
			errs = append(errs, fmt.Errorf("figure %d: %w", i+1, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

func (b *Board) indexOf(id int) int {
	for i, f := range b.figures {
		if f.ID() == id {
			return i
		}
	}
	return -1
}

func (b *Board) live(f domain.Figure) bool {
	i := b.indexOf(f.ID())
	return i >= 0 && b.figures[i] == f
}

func (b *Board) erase(f domain.Figure) {
	for _, pos := range f.Cells() {
		b.grid.Erase(pos, f)
	}
}
