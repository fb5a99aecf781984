// Package filestore 把画板存档保存为本地文本文件，存档名即文件路径。
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"text-blackboard/internal/repository"
)

// FileDrawingRepository 是 DrawingRepository 接口的本地文件实现
type FileDrawingRepository struct {
	baseDir string // 存档名基于该目录解析；空字符串表示按原样使用路径 (交互模式)
}

// NewFileDrawingRepository 创建 FileDrawingRepository 实例
func NewFileDrawingRepository(baseDir string) *FileDrawingRepository {
	return &FileDrawingRepository{baseDir: baseDir}
}

func (r *FileDrawingRepository) path(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", repository.ErrInvalidName
	}
	if r.baseDir == "" {
		return name, nil
	}
	// 设置了基础目录时，存档名只能是目录内的相对路径
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q escapes %s", repository.ErrInvalidName, name, r.baseDir)
	}
	return filepath.Join(r.baseDir, name), nil
}

// Save 覆盖写入存档文件，每行以换行结尾
func (r *FileDrawingRepository) Save(ctx context.Context, name string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := r.path(name)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("file: failed to save drawing %s: %w", path, err)
	}
	return nil
}

// Load 读取存档文件的全部行
func (r *FileDrawingRepository) Load(ctx context.Context, name string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := r.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrDrawingNotFound
		}
		return nil, fmt.Errorf("file: failed to load drawing %s: %w", path, err)
	}
	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}
