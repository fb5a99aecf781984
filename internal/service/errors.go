package service

import (
	"errors"
	"fmt"

	"text-blackboard/internal/domain"
	"text-blackboard/internal/repository"
)

// 栅格化与构造阶段的错误直接沿用 domain 包的定义
var (
	ErrInvalidSize    = domain.ErrInvalidSize
	ErrOutsideBoard   = domain.ErrOutsideBoard
	ErrUnknownFigure  = domain.ErrUnknownFigure
	ErrNotImplemented = domain.ErrNotImplemented
	ErrInvalidParams  = domain.ErrInvalidParams
)

var (
	ErrDuplicateFigure    = errors.New("same figure exists")
	ErrEmptyBoard         = errors.New("no figures on board")
	ErrOutOfBounds        = errors.New("coordinates are outside the board")
	ErrNoFigureAt         = errors.New("there is no figure on coordinates")
	ErrFigureNotFound     = errors.New("no figure with that id")
	ErrNothingSelected    = errors.New("no figure selected")
	ErrNotASquare         = errors.New("selected figure is not a square")
	ErrDrawingNotFound    = errors.New("drawing not found")
	// ErrInvalidDrawingName 表示存档名为空或指向存储范围之外
	ErrInvalidDrawingName = errors.New("invalid drawing name")
	ErrStorage            = errors.New("drawing storage failed")
)

// mapRepoError 把存储层的错误映射为服务层错误，保留原始错误便于日志排查。
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrDrawingNotFound
	}
	if errors.Is(err, repository.ErrInvalidName) {
		return fmt.Errorf("%w: %w", ErrInvalidDrawingName, err)
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
