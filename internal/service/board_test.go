package service_test

import (
	"math"
	"testing"

	"text-blackboard/internal/domain"
	"text-blackboard/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *service.Board {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return service.NewBoard(10, 10, logger)
}

func mustAdd(t *testing.T, b *service.Board, fill bool, color string, size, x, y int) domain.Figure {
	t.Helper()
	f, err := b.Add(domain.KindSquare, fill, color, size, x, y)
	require.NoError(t, err)
	return f
}

func glyph(b *service.Board, x, y int) byte {
	return b.Grid().CellAt(domain.Point{X: x, Y: y}).Glyph()
}

func TestBoard_AddAssignsIncreasingIDs(t *testing.T) {
	b := newTestBoard(t)

	first := mustAdd(t, b, false, "red", 2, 0, 5)
	_, err := b.Add(domain.KindSquare, false, "blue", 2, 0, 5)
	assert.ErrorIs(t, err, service.ErrDuplicateFigure, "几何相同即视为重复")
	_, err = b.Add(domain.KindSquare, false, "blue", 2, 20, 5)
	assert.ErrorIs(t, err, service.ErrOutsideBoard)
	_, err = b.Add(domain.KindSquare, false, "blue", 0, 1, 5)
	assert.ErrorIs(t, err, service.ErrInvalidSize)
	second := mustAdd(t, b, true, "green", 3, 4, 5)

	assert.Equal(t, 0, first.ID())
	assert.Equal(t, 1, second.ID(), "失败的添加不消耗编号")
	assert.Equal(t, []string{
		"Square: id(0), size( 2 ), coordinates( 0,5 ), color( r ), filled( no )",
		"Square: id(1), size( 3 ), coordinates( 4,5 ), color( g ), filled( yes )",
	}, b.List())
}

func TestBoard_AddRejectsUnknownAndUnimplemented(t *testing.T) {
	b := newTestBoard(t)

	_, err := b.Add("hexagon", false, "red", 1, 2, 3)
	assert.ErrorIs(t, err, service.ErrUnknownFigure)
	_, err = b.Add(domain.KindCircle, false, "red", 1, 2, 3)
	assert.ErrorIs(t, err, service.ErrNotImplemented)
	_, err = b.Add(domain.KindSquare, false, "red", 1, 2)
	assert.ErrorIs(t, err, service.ErrInvalidParams)
	assert.Equal(t, 0, b.Len())
}

func TestBoard_AddUnknownColor(t *testing.T) {
	logger, hook := test.NewNullLogger()
	b := service.NewBoard(10, 10, logger)

	f, err := b.Add(domain.KindSquare, false, "teal", 2, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.UndefinedTag, f.Glyph())
	assert.Equal(t, domain.UndefinedTag, glyph(b, 1, 5))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.AllEntries()[0].Level)
}

func TestBoard_UndoRestoresSnapshot(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 3, 0, 5)
	before := b.Grid().Clone()
	second := mustAdd(t, b, true, "blue", 3, 1, 4)

	undone, err := b.Undo()
	require.NoError(t, err)
	assert.Same(t, second, undone)
	assert.Equal(t, 1, b.Len())
	assert.True(t, b.Grid().Equal(before), "撤销后网格与添加前完全一致")
	assert.Equal(t, byte('r'), glyph(b, 1, 5))
}

func TestBoard_DoubleUndoReusesSnapshot(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 2, 0, 5)
	mustAdd(t, b, false, "blue", 2, 5, 5)

	_, err := b.Undo()
	require.NoError(t, err)
	_, err = b.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	// 只保留一层快照：第一个图形的格子仍在网格上，但已不可选中
	assert.Equal(t, byte('r'), glyph(b, 0, 5))
	_, err = b.SelectAt(0, 5)
	assert.ErrorIs(t, err, service.ErrNoFigureAt)

	_, err = b.Undo()
	assert.ErrorIs(t, err, service.ErrEmptyBoard)
}

func TestBoard_UndoClearsSelection(t *testing.T) {
	b := newTestBoard(t)
	f := mustAdd(t, b, false, "red", 2, 0, 5)
	_, err := b.SelectByID(f.ID())
	require.NoError(t, err)

	_, err = b.Undo()
	require.NoError(t, err)
	assert.Nil(t, b.Selected())
}

func TestBoard_SelectAt(t *testing.T) {
	b := newTestBoard(t)
	bottom := mustAdd(t, b, false, "red", 3, 0, 5)
	top := mustAdd(t, b, false, "blue", 3, 2, 5)

	f, err := b.SelectAt(2, 5)
	require.NoError(t, err)
	assert.Same(t, top, f, "重叠处选中最上层图形")

	f, err = b.SelectAt(0, 4)
	require.NoError(t, err)
	assert.Same(t, bottom, f)
	assert.Same(t, bottom, b.Selected())

	_, err = b.SelectAt(1, 4)
	assert.ErrorIs(t, err, service.ErrNoFigureAt)
	_, err = b.SelectAt(10, 0)
	assert.ErrorIs(t, err, service.ErrOutOfBounds)
	_, err = b.SelectAt(0, -1)
	assert.ErrorIs(t, err, service.ErrOutOfBounds)
}

func TestBoard_SelectByID(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 2, 0, 5)
	second := mustAdd(t, b, false, "green", 2, 4, 5)

	f, err := b.SelectByID(1)
	require.NoError(t, err)
	assert.Same(t, second, f)

	_, err = b.SelectByID(7)
	assert.ErrorIs(t, err, service.ErrFigureNotFound)
	assert.Same(t, second, b.Selected(), "失败的选择不改变当前选中")
}

func TestBoard_RemoveRevealsFigureBelow(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Remove()
	assert.ErrorIs(t, err, service.ErrNothingSelected)

	mustAdd(t, b, false, "red", 3, 0, 5)
	top := mustAdd(t, b, false, "blue", 3, 2, 5)
	_, err = b.SelectByID(top.ID())
	require.NoError(t, err)

	removed, err := b.Remove()
	require.NoError(t, err)
	assert.Same(t, top, removed)
	assert.Nil(t, b.Selected())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, byte('r'), glyph(b, 2, 5), "移除后露出下层图形")
	assert.Equal(t, byte(' '), glyph(b, 4, 5))

	next := mustAdd(t, b, false, "green", 1, 8, 8)
	assert.Equal(t, 2, next.ID(), "编号不复用")
}

func TestBoard_EditResizesSquare(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 2, 1, 5)
	mustAdd(t, b, false, "blue", 2, 6, 5)
	_, err := b.SelectByID(0)
	require.NoError(t, err)

	edited, err := b.Edit(4)
	require.NoError(t, err)
	assert.Equal(t, 0, edited.ID(), "编辑保留编号")
	assert.Same(t, edited, b.Selected())
	assert.Equal(t, []string{
		"Square: id(1), size( 2 ), coordinates( 6,5 ), color( b ), filled( no )",
		"Square: id(0), size( 4 ), coordinates( 1,5 ), color( r ), filled( no )",
	}, b.List(), "编辑后的正方形移到最上层")
	assert.Equal(t, byte('r'), glyph(b, 4, 2))
	assert.Equal(t, byte(' '), glyph(b, 2, 4))
}

func TestBoard_EditFailureKeepsOriginal(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 2, 1, 5)
	mustAdd(t, b, false, "blue", 3, 1, 5)
	_, err := b.SelectByID(0)
	require.NoError(t, err)
	listBefore := b.List()
	gridBefore := b.Grid().Clone()

	for _, tc := range []struct {
		size    int
		wantErr error
	}{
		{0, service.ErrInvalidSize},
		{-1, service.ErrInvalidSize},
		{6, service.ErrOutsideBoard},
		{3, service.ErrDuplicateFigure},
	} {
		_, err := b.Edit(tc.size)
		assert.ErrorIs(t, err, tc.wantErr, "size %d", tc.size)
		assert.Equal(t, listBefore, b.List())
		assert.True(t, b.Grid().Equal(gridBefore), "size %d 失败后网格不变", tc.size)
		assert.Equal(t, 0, b.Selected().ID())
	}
}

func TestBoard_RejectsHugeSquares(t *testing.T) {
	b := newTestBoard(t)

	_, err := b.Add(domain.KindSquare, false, "red", math.MaxInt, 0, 1)
	assert.ErrorIs(t, err, service.ErrOutsideBoard)
	_, err = b.Add(domain.KindSquare, true, "red", math.MaxInt, math.MinInt, math.MinInt)
	assert.ErrorIs(t, err, service.ErrOutsideBoard)
	assert.Equal(t, 0, b.Len())

	f := mustAdd(t, b, false, "red", 2, 1, 5)
	_, err = b.SelectByID(f.ID())
	require.NoError(t, err)
	_, err = b.Edit(math.MaxInt)
	assert.ErrorIs(t, err, service.ErrOutsideBoard)
	assert.Equal(t, []string{"Square: id(0), size( 2 ), coordinates( 1,5 ), color( r ), filled( no )"}, b.List())
}

func TestBoard_EditRequiresSelection(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Edit(3)
	assert.ErrorIs(t, err, service.ErrNothingSelected)
}

func TestBoard_Paint(t *testing.T) {
	b := newTestBoard(t)
	_, err := b.Paint("red")
	assert.ErrorIs(t, err, service.ErrNothingSelected)

	f := mustAdd(t, b, true, "red", 2, 1, 5)
	_, err = b.SelectAt(1, 5)
	require.NoError(t, err)

	_, err = b.Paint("cyan")
	require.NoError(t, err)
	assert.Equal(t, byte('c'), f.Glyph())
	assert.Equal(t, byte('c'), glyph(b, 2, 4))
	assert.Contains(t, b.List()[0], "color( c )")

	_, err = b.Paint("teal")
	require.NoError(t, err)
	assert.Equal(t, domain.UndefinedTag, glyph(b, 1, 5))
}

func TestBoard_PaintLeavesOtherFiguresUnchanged(t *testing.T) {
	b := newTestBoard(t)
	bottom := mustAdd(t, b, true, "red", 3, 0, 5)
	top := mustAdd(t, b, false, "blue", 3, 2, 5)
	topBefore := b.List()[1]

	_, err := b.SelectByID(bottom.ID())
	require.NoError(t, err)
	_, err = b.Paint("green")
	require.NoError(t, err)

	assert.Equal(t, "Square: id(0), size( 3 ), coordinates( 0,5 ), color( g ), filled( yes )", b.List()[0])
	assert.Equal(t, topBefore, b.List()[1], "其他图形的描述不变")
	assert.Equal(t, byte('b'), top.Glyph())
	for _, pos := range top.Cells() {
		assert.Equal(t, byte('b'), b.Grid().Cell(pos).Glyph(), "上层图形的格子仍显示原颜色 %v", pos)
	}
	assert.Equal(t, byte('g'), glyph(b, 0, 5))
	assert.Equal(t, byte('g'), glyph(b, 1, 4))
}

func TestBoard_Clear(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "red", 2, 1, 5)
	_, err := b.SelectByID(0)
	require.NoError(t, err)

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Selected())
	assert.Equal(t, 0, b.Grid().Painted())
	assert.Empty(t, b.List())

	_, err = b.Undo()
	assert.ErrorIs(t, err, service.ErrEmptyBoard)
	next := mustAdd(t, b, false, "red", 2, 1, 5)
	assert.Equal(t, 1, next.ID())
}

func TestBoard_RestoreCollectsErrors(t *testing.T) {
	b := newTestBoard(t)
	mustAdd(t, b, false, "yellow", 1, 9, 0)

	added, err := b.Restore([]domain.Record{
		{Kind: domain.KindSquare, Color: "red", Params: []int{2, 1, 5}},
		{Kind: domain.KindSquare, Color: "blue", Params: []int{2, 1, 5}},
		{Kind: domain.KindSquare, Fill: true, Color: "green", Params: []int{3, 4, 5}},
	})
	assert.Equal(t, 2, added)
	assert.ErrorIs(t, err, service.ErrDuplicateFigure)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, byte(' '), glyph(b, 9, 0), "恢复前画板被清空")
}

func TestNewBoard_PanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { service.NewBoard(0, 5, nil) })
}
