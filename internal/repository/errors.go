package repository

import "errors"

// 通用的存储库错误
var (
	// ErrNotFound 表示请求的存档不存在
	ErrNotFound = errors.New("repository: record not found")
	// ErrInvalidName 表示存档名为空或不可用
	ErrInvalidName = errors.New("repository: invalid drawing name")
)

// 特定资源的错误
var (
	ErrDrawingNotFound = ErrNotFound
)
