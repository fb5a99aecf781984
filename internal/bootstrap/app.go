package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"text-blackboard/internal/handler/cli"
	httpHandler "text-blackboard/internal/handler/http"
	filestore "text-blackboard/internal/infra/persistence/file"
	gormpersistence "text-blackboard/internal/infra/persistence/gorm"
	"text-blackboard/internal/infra/setup"
	redisstate "text-blackboard/internal/infra/state/redis"
	"text-blackboard/internal/middleware"
	"text-blackboard/internal/render"
	"text-blackboard/internal/repository"
	"text-blackboard/internal/service"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Board       *service.Board
	Drawings    *service.DrawingService
	Dispatcher  *cli.Dispatcher
	HttpServer  *http.Server
}

// NewApp 加载配置并初始化应用的所有组件
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		// 使用标准输出记录启动时错误，因为 logrus 可能还未完全配置
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}
	return NewAppWithConfig(cfg)
}

// NewAppWithConfig 使用给定配置初始化应用
func NewAppWithConfig(cfg *Config) (*App, error) {
	log := newLogger(cfg)
	log.Info("Configuration loaded successfully")

	app := &App{Config: cfg, Log: log}

	drawingRepo, err := app.initDrawingRepository()
	if err != nil {
		app.Shutdown()
		return nil, err
	}
	log.WithField("store", cfg.Store).Info("Drawing repository initialized")

	app.Board = service.NewBoard(cfg.BoardWidth, cfg.BoardHeight, log)
	app.Drawings = service.NewDrawingService(drawingRepo)
	app.Dispatcher = cli.NewDispatcher(app.Board, app.Drawings, render.Options{Color: cfg.Color}, log)
	log.WithFields(logrus.Fields{"width": cfg.BoardWidth, "height": cfg.BoardHeight}).Info("Board initialized")

	return app, nil
}

func newLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.WarnLevel
	}
	log.SetLevel(logLevel)
	// 标准输出留给画板和命令提示
	log.SetOutput(os.Stderr)
	return log
}

func (a *App) initDrawingRepository() (repository.DrawingRepository, error) {
	cfg := a.Config
	switch cfg.Store {
	case StoreMySQL:
		db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, fmt.Errorf("failed to init DB: %w", err)
		}
		a.DB = db
		if err := setup.MigrateDB(db); err != nil {
			return nil, fmt.Errorf("failed to migrate DB: %w", err)
		}
		return gormpersistence.NewGormDrawingRepository(db), nil
	case StoreRedis:
		client, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		a.RedisClient = client
		return redisstate.NewRedisDrawingRepository(client, cfg.KeyPrefix, cfg.DrawingTTL), nil
	default:
		return filestore.NewFileDrawingRepository(cfg.DrawingDir), nil
	}
}

// RunInteractive 运行交互式命令循环，直到 exit 或输入结束
func (a *App) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	a.Log.Info("Interactive session started")
	err := cli.Run(ctx, in, out, a.Dispatcher)
	a.Log.Info("Interactive session finished")
	return err
}

// Router 构建 Gin Engine 和路由
func (a *App) Router() *gin.Engine {
	if a.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(a.Log))
	httpHandler.RegisterRoutes(router, httpHandler.NewBoardHandler(a.Board, a.Dispatcher))
	return router
}

// StartHTTP 在后台启动 HTTP 服务器
func (a *App) StartHTTP() {
	a.HttpServer = &http.Server{
		Addr:              ":" + a.Config.ServerPort,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	if a.HttpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.HttpServer.Shutdown(ctx); err != nil {
			a.Log.Errorf("Error shutting down HTTP server: %v", err)
		} else {
			a.Log.Info("HTTP server shut down gracefully.")
		}
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Log.Errorf("Error closing database connection: %v", err)
			} else {
				a.Log.Info("Database connection closed.")
			}
		}
	}

	a.Log.Info("Application shutdown complete.")
}
