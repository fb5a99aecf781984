package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// 存档存储后端
const (
	StoreFile  = "file"
	StoreMySQL = "mysql"
	StoreRedis = "redis"
)

// Config 结构体用于存储从环境变量或 .env 文件加载的配置
type Config struct {
	AppEnv      string // development/production
	LogLevel    string
	BoardWidth  int
	BoardHeight int
	Color       bool // 终端输出是否带 ANSI 颜色

	Store      string // file/mysql/redis
	DrawingDir string // file 存储的基础目录

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
	DrawingTTL    time.Duration

	ServerPort string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        os.Getenv("APP_ENV"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		Store:         strings.ToLower(os.Getenv("STORE")),
		DrawingDir:    os.Getenv("DRAWING_DIR"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KeyPrefix:     os.Getenv("REDIS_KEY_PREFIX"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		// --- 设置默认值 ---
		BoardWidth:  90,
		BoardHeight: 50,
		Color:       true,
	}

	var err error
	if cfg.BoardWidth, err = intEnv("BOARD_WIDTH", cfg.BoardWidth); err != nil {
		return nil, err
	}
	if cfg.BoardHeight, err = intEnv("BOARD_HEIGHT", cfg.BoardHeight); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	ttlSeconds, err := intEnv("DRAWING_TTL_SECONDS", 0)
	if err != nil {
		return nil, err
	}
	cfg.DrawingTTL = time.Duration(ttlSeconds) * time.Second
	if v := os.Getenv("COLOR"); v != "" {
		if cfg.Color, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("environment variable COLOR must be a boolean: %w", err)
		}
	}

	// --- 设置其他默认值和进行必要检查 ---
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.Store == "" {
		cfg.Store = StoreFile
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "bb:"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.BoardWidth <= 0 || cfg.BoardHeight <= 0 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d", cfg.BoardWidth, cfg.BoardHeight)
	}

	switch cfg.Store {
	case StoreFile:
	case StoreMySQL:
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("environment variable DB_USER must be set when STORE=mysql")
		}
	case StoreRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("environment variable REDIS_ADDR must be set when STORE=redis")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE %q (want file, mysql or redis)", cfg.Store)
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'warn'", cfg.LogLevel)
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return v, nil
}
