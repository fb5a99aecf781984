package gormpersistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"text-blackboard/internal/domain"
	"text-blackboard/internal/repository"
)

// GormDrawingRepository 是 DrawingRepository 接口的 GORM 实现
type GormDrawingRepository struct {
	db *gorm.DB
}

// NewGormDrawingRepository 创建 GormDrawingRepository 实例
func NewGormDrawingRepository(db *gorm.DB) *GormDrawingRepository {
	if db == nil {
		panic("database connection cannot be nil for GormDrawingRepository")
	}
	return &GormDrawingRepository{db: db}
}

// Save 按存档名插入或覆盖存档记录
func (r *GormDrawingRepository) Save(ctx context.Context, name string, lines []string) error {
	if strings.TrimSpace(name) == "" {
		return repository.ErrInvalidName
	}
	drawing := &domain.Drawing{
		Name:      name,
		Content:   strings.Join(lines, "\n"),
		LineCount: len(lines),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "line_count", "updated_at"}),
		}).
		Create(drawing).Error
	if err != nil {
		return fmt.Errorf("gorm: failed to save drawing %q (%d lines): %w", name, len(lines), err)
	}
	return nil
}

// Load 按存档名读取存档记录
func (r *GormDrawingRepository) Load(ctx context.Context, name string) ([]string, error) {
	var drawing domain.Drawing
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&drawing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDrawingNotFound
		}
		return nil, fmt.Errorf("gorm: failed to load drawing %q: %w", name, err)
	}
	if drawing.Content == "" {
		return []string{}, nil
	}
	return strings.Split(drawing.Content, "\n"), nil
}
