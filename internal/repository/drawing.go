package repository

import "context"

// DrawingRepository 定义了画板存档的保存和读取。
// 存档内容是编解码器产生的文本行，存储层不解释其含义。
type DrawingRepository interface {
	// Save 以 name 保存存档，已存在时覆盖。
	Save(ctx context.Context, name string, lines []string) error

	// Load 读取名为 name 的存档。
	// 存档不存在时返回 ErrNotFound。
	Load(ctx context.Context, name string) ([]string, error)
}
