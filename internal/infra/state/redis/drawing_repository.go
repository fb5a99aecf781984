package redisstate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"text-blackboard/internal/repository"
)

// RedisDrawingRepository 是 DrawingRepository 接口的 Redis 实现，
// 每份存档保存为一个 List，一行一个元素。
type RedisDrawingRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration // 0 表示不过期
}

// NewRedisDrawingRepository 创建 RedisDrawingRepository 实例
func NewRedisDrawingRepository(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisDrawingRepository {
	if client == nil {
		panic("redis client cannot be nil for RedisDrawingRepository")
	}
	if keyPrefix == "" {
		keyPrefix = "bb:" // 默认前缀 "bb:" (blackboard)
	}
	return &RedisDrawingRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *RedisDrawingRepository) drawingKey(name string) string {
	return fmt.Sprintf("%sdrawing:%s", r.keyPrefix, name)
}

// Save 在一个事务中替换存档的全部行并刷新过期时间
func (r *RedisDrawingRepository) Save(ctx context.Context, name string, lines []string) error {
	if strings.TrimSpace(name) == "" {
		return repository.ErrInvalidName
	}
	if len(lines) == 0 {
		return fmt.Errorf("redis: refusing to save drawing %q with no lines", name)
	}
	key := r.drawingKey(name)
	values := make([]interface{}, len(lines))
	for i, line := range lines {
		values[i] = line
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, values...)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: failed to save drawing %q on key %s: %w", name, key, err)
	}
	return nil
}

// Load 读取存档的全部行
func (r *RedisDrawingRepository) Load(ctx context.Context, name string) ([]string, error) {
	key := r.drawingKey(name)
	lines, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: failed to load drawing %q from %s: %w", name, key, err)
	}
	// 不存在的 key 在 LRANGE 中表现为空列表，Save 从不写入空列表
	if len(lines) == 0 {
		return nil, repository.ErrDrawingNotFound
	}
	return lines, nil
}
