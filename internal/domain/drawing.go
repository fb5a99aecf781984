package domain

import "time"

// Drawing 是一份保存在数据库中的画板存档。
// Content 保存编解码器输出的文本，每行一个图形。
type Drawing struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:191;not null"` // 存档名，load/save 命令的参数
	Content   string    `gorm:"type:text;not null"`
	LineCount int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
