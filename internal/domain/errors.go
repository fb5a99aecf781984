package domain

import "errors"

// 图形构造与栅格化阶段的错误
var (
	// ErrInvalidSize 表示尺寸参数不是正数
	ErrInvalidSize = errors.New("size must be a positive number")
	// ErrOutsideBoard 表示图形的外接区域与画板完全不相交
	ErrOutsideBoard = errors.New("figure is outside the board")
	// ErrUnknownFigure 表示不存在该类型的图形
	ErrUnknownFigure = errors.New("no such figure")
	// ErrNotImplemented 表示图形类型已登记但尚未实现
	ErrNotImplemented = errors.New("figure is not implemented yet")
	// ErrInvalidParams 表示参数个数与图形类型不匹配
	ErrInvalidParams = errors.New("wrong number of figure parameters")
)
