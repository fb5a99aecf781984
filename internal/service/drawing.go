package service

import (
	"context"

	"text-blackboard/internal/codec"
	"text-blackboard/internal/repository"

	"github.com/sirupsen/logrus"
)

// DrawingService 负责画板存档的保存与加载：编解码 + 存储库。
type DrawingService struct {
	drawingRepo repository.DrawingRepository
}

// NewDrawingService 创建 DrawingService 实例。
func NewDrawingService(drawingRepo repository.DrawingRepository) *DrawingService {
	if drawingRepo == nil {
		panic("DrawingRepository cannot be nil for DrawingService")
	}
	return &DrawingService{drawingRepo: drawingRepo}
}

// Save 把画板上的全部图形编码后以 name 保存。
func (s *DrawingService) Save(ctx context.Context, board *Board, name string) error {
	logCtx := logrus.WithFields(logrus.Fields{"drawing": name, "figures": board.Len()})

	lines := codec.Encode(board.Figures())
	if err := s.drawingRepo.Save(ctx, name, lines); err != nil {
		logCtx.WithError(err).Error("Failed to save drawing")
		return mapRepoError(err)
	}
	logCtx.Info("Drawing saved")
	return nil
}

// Load 清空画板，然后从名为 name 的存档恢复图形。
// 存档读取或解析失败时画板保持清空状态；返回恢复的图形数量。
func (s *DrawingService) Load(ctx context.Context, board *Board, name string) (int, error) {
	logCtx := logrus.WithField("drawing", name)

	board.Clear()

	lines, err := s.drawingRepo.Load(ctx, name)
	if err != nil {
		logCtx.WithError(err).Warn("Failed to read drawing")
		return 0, mapRepoError(err)
	}

	records, err := codec.Decode(lines)
	if err != nil {
		logCtx.WithError(err).Warn("Drawing is corrupt, load aborted")
		return 0, err
	}

	added, err := board.Restore(records)
	if err != nil {
		logCtx.WithError(err).Warn("Some figures could not be restored")
	}
	logCtx.WithField("figures", added).Info("Drawing loaded")
	return added, err
}
